package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name      string  `json:"name"`
	Detail    string  `json:"detail"`
	Price     float64 `json:"price"`
	Available bool    `gorm:"default:true" json:"available"`

	OrderItems []OrderItem `json:"-"`
}
