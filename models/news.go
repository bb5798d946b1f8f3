package models

import (
	"time"
)

// News is a single news item. CreatedAt is server-assigned on insert; rows
// are read-only once written.
type News struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Author    string    `gorm:"type:varchar(80);not null;default:系统" json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func (News) TableName() string {
	return "news"
}
