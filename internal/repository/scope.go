package repository

import (
	"strings"

	"gorm.io/gorm"
)

// listScope applies the shared list filters: exact category match,
// case-insensitive substring match on the given column, newest first,
// optional fixed-size pagination.
func listScope(f ListFilter, keywordColumn string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Category != "" {
			db = db.Where("category = ?", f.Category)
		}
		if f.Keyword != "" {
			db = db.Where("LOWER("+keywordColumn+") LIKE ?", "%"+strings.ToLower(f.Keyword)+"%")
		}
		db = db.Order("created_at DESC")
		if f.PageSize > 0 {
			page := f.Page
			if page < 1 {
				page = 1
			}
			db = db.Offset((page - 1) * f.PageSize).Limit(f.PageSize)
		}
		return db
	}
}

// updateVersioned runs the optimistic concurrency update shared by the three
// collections: the row changes apply only when the version column has not
// moved, and the version is bumped in the same statement.
func updateVersioned(db *gorm.DB, table interface{}, id, version uint, changes map[string]interface{}) error {
	values := make(map[string]interface{}, len(changes)+1)
	for k, v := range changes {
		values[k] = v
	}
	values["version"] = version + 1

	res := db.Model(table).Where("id = ? AND version = ?", id, version).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}
