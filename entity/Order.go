package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `gorm:"size:30;default:'PENDING';index" json:"status"`

	DeliveryAddress string `json:"deliveryAddress"`
	Notes           string `json:"notes"`

	AccountID uint    `gorm:"index" json:"accountId"`
	Account   Account `json:"-"` // preload เฉพาะตอนต้องการ account detail

	Items []OrderItem `json:"items"`

	Payments []Payment `json:"-"` // preload เมื่อจำเป็น
}
