package entity

import (
	"gorm.io/gorm"
)

type Account struct {
	gorm.Model
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string `json:"-"` // bcrypt hash
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"size:20;default:'customer'" json:"role"`

	Orders []Order `json:"-"`
}
