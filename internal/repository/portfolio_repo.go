package repository

import (
	"errors"

	"github.com/venturebase/backoffice/internal/model"
	"gorm.io/gorm"
)

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) List(f ListFilter) ([]model.Portfolio, error) {
	var list []model.Portfolio
	err := r.db.Scopes(listScope(f, "name")).Find(&list).Error
	return list, err
}

func (r *portfolioRepository) ListRecent(limit int) ([]model.Portfolio, error) {
	var list []model.Portfolio
	err := r.db.Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *portfolioRepository) Get(id uint) (*model.Portfolio, error) {
	var p model.Portfolio
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *portfolioRepository) Create(p *model.Portfolio) error {
	return r.db.Create(p).Error
}

func (r *portfolioRepository) UpdateVersioned(id, version uint, changes map[string]interface{}) error {
	return updateVersioned(r.db, &model.Portfolio{}, id, version, changes)
}

func (r *portfolioRepository) Delete(id uint) error {
	return r.db.Delete(&model.Portfolio{}, id).Error
}
