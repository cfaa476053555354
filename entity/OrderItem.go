package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`    // snapshot ราคาตอนสั่ง ไม่อ่านใหม่จาก catalog
	Subtotal float64 `json:"subtotal"` // Price * Quantity

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload เฉพาะตอนต้องการชื่อเมนู
}
