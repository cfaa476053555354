package entity

import "fmt"

// สถานะของออเดอร์ เก็บเป็น string ตรง ๆ ใน DB
type OrderStatus string

const (
	OrderPending        OrderStatus = "PENDING"
	OrderConfirmed      OrderStatus = "CONFIRMED"
	OrderPreparing      OrderStatus = "PREPARING"
	OrderReady          OrderStatus = "READY"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady,
		OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status: %s", s)
}
