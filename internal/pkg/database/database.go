package database

import (
	"github.com/glebarez/sqlite"
	"github.com/venturebase/backoffice/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func InitDB(dbType, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType {
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		// github.com/glebarez/sqlite 드라이버 사용 (cgo 불필요)
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Portfolio{}, &model.News{}, &model.Program{}); err != nil {
		return nil, err
	}
	return db, nil
}
