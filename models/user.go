package models

import (
	"time"
)

// User model for authentication. The username is set once at registration
// and never changes; PasswordHash holds a bcrypt digest and is never
// serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(512);not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);default:user" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
