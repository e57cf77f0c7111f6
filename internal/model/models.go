package model

import (
	"time"
)

// Portfolio 포트폴리오 레코드
type Portfolio struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Category string `json:"category" gorm:"size:50;not null"`
	Name     string `json:"name" gorm:"size:255;not null"`
	Content  string `json:"content" gorm:"type:text;not null"`
	// Logo is a path relative to the upload root, e.g. 20240101/logo/acme123.png.
	Logo      string    `json:"logo" gorm:"size:500"`
	Version   uint      `json:"-" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Portfolio) TableName() string { return "portfolio" }

// News 뉴스 레코드
type News struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Category  string    `json:"category" gorm:"size:50"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Thumbnail string    `json:"thumbnail" gorm:"size:500"`
	Image     PathList  `json:"image" gorm:"type:text"`
	Shortcut  string    `json:"shortcut" gorm:"size:255"`
	Link      string    `json:"link" gorm:"size:500"`
	Visible   bool      `json:"visible" gorm:"not null;default:false"`
	Version   uint      `json:"-" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}

func (News) TableName() string { return "news" }

// Program 프로그램 레코드. title/content/shortcut은 UTF-8 바이트 길이 제한이 있다
// (255 / 30000 / 255, 서비스 계층에서 검증).
type Program struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Category  string    `json:"category" gorm:"size:50"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Thumbnail string    `json:"thumbnail" gorm:"size:500"`
	Image     PathList  `json:"image" gorm:"type:text"`
	Shortcut  string    `json:"shortcut" gorm:"size:255"`
	Link      string    `json:"link" gorm:"size:500"`
	Visible   bool      `json:"visible" gorm:"not null;default:false"`
	Version   uint      `json:"-" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Program) TableName() string { return "program" }
