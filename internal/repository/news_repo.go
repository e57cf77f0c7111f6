package repository

import (
	"errors"

	"github.com/venturebase/backoffice/internal/model"
	"gorm.io/gorm"
)

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) List(f ListFilter) ([]model.News, error) {
	var list []model.News
	err := r.db.Scopes(listScope(f, "title")).Find(&list).Error
	return list, err
}

func (r *newsRepository) ListRecent(limit int) ([]model.News, error) {
	var list []model.News
	err := r.db.Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *newsRepository) Get(id uint) (*model.News, error) {
	var n model.News
	if err := r.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *newsRepository) Create(n *model.News) error {
	return r.db.Create(n).Error
}

func (r *newsRepository) UpdateVersioned(id, version uint, changes map[string]interface{}) error {
	return updateVersioned(r.db, &model.News{}, id, version, changes)
}

func (r *newsRepository) Delete(id uint) error {
	return r.db.Delete(&model.News{}, id).Error
}
