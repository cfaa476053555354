package entity

import "fmt"

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentSuccess    PaymentStatus = "SUCCESS"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentCancelled  PaymentStatus = "CANCELLED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentProcessing, PaymentSuccess,
		PaymentFailed, PaymentCancelled, PaymentRefunded:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status: %s", s)
}
