package repository

import (
	"errors"

	"github.com/venturebase/backoffice/internal/model"
	"gorm.io/gorm"
)

type programRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) List(f ListFilter) ([]model.Program, error) {
	var list []model.Program
	err := r.db.Scopes(listScope(f, "title")).Find(&list).Error
	return list, err
}

func (r *programRepository) Get(id uint) (*model.Program, error) {
	var p model.Program
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *programRepository) Create(p *model.Program) error {
	return r.db.Create(p).Error
}

func (r *programRepository) UpdateVersioned(id, version uint, changes map[string]interface{}) error {
	return updateVersioned(r.db, &model.Program{}, id, version, changes)
}

func (r *programRepository) Delete(id uint) error {
	return r.db.Delete(&model.Program{}, id).Error
}
