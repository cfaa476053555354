package entity

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	Amount float64       `json:"amount"` // copy มาจาก total ของออเดอร์ตอนสร้าง
	Method PaymentMethod `gorm:"size:30;default:'MOMO';index" json:"paymentMethod"`
	Status PaymentStatus `gorm:"size:30;default:'PENDING';index" json:"status"`

	// ฝั่ง gateway — มีค่าเฉพาะ method = MOMO
	MomoTransactionID string `gorm:"index" json:"momoTransactionId,omitempty"`
	MomoOrderID       string `gorm:"index" json:"momoOrderId,omitempty"`
	MomoPayURL        string `json:"momoPayUrl,omitempty"`
	MomoResponseCode  string `json:"momoResponseCode,omitempty"`
	MomoMessage       string `json:"momoMessage,omitempty"`

	PaidAt      *time.Time `json:"paidAt,omitempty"` // set เฉพาะตอน SUCCESS
	Description string     `json:"description"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"` // preload เฉพาะ endpoint ที่ต้องการ
}
