package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Name        string         `json:"name"`
	Email       string         `gorm:"unique" json:"email"`
	Password    string         `json:"-"`
	Role        string         `json:"role"`
	Active      bool           `gorm:"default:true" json:"active"`
	ProfilePic  string         `json:"profile_pic,omitempty"`
	Description string         `json:"description,omitempty"`
}
