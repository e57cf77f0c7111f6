package repository

import (
	"errors"

	"github.com/venturebase/backoffice/internal/model"
)

// ErrNotFound 레코드가 존재하지 않음
var ErrNotFound = errors.New("record not found")

// ErrVersionConflict 버전이 달라 갱신하지 못함 (동시 수정 충돌)
var ErrVersionConflict = errors.New("version conflict")

// ListFilter holds the optional list query parameters. Page is 1-based;
// PageSize 0 disables pagination.
type ListFilter struct {
	Category string
	Keyword  string
	Page     int
	PageSize int
}

type PortfolioRepository interface {
	List(f ListFilter) ([]model.Portfolio, error)
	ListRecent(limit int) ([]model.Portfolio, error)
	Get(id uint) (*model.Portfolio, error)
	Create(p *model.Portfolio) error
	// UpdateVersioned applies changes only if the stored version still
	// matches; ErrVersionConflict signals a concurrent writer won.
	UpdateVersioned(id, version uint, changes map[string]interface{}) error
	Delete(id uint) error
}

type NewsRepository interface {
	List(f ListFilter) ([]model.News, error)
	ListRecent(limit int) ([]model.News, error)
	Get(id uint) (*model.News, error)
	Create(n *model.News) error
	UpdateVersioned(id, version uint, changes map[string]interface{}) error
	Delete(id uint) error
}

type ProgramRepository interface {
	List(f ListFilter) ([]model.Program, error)
	Get(id uint) (*model.Program, error)
	Create(p *model.Program) error
	UpdateVersioned(id, version uint, changes map[string]interface{}) error
	Delete(id uint) error
}
