package entity

import "fmt"

// ช่องทางชำระเงิน — มีแค่ MOMO เท่านั้นที่วิ่งผ่าน gateway
type PaymentMethod string

const (
	MethodMomo         PaymentMethod = "MOMO"
	MethodCash         PaymentMethod = "CASH"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodMomo, MethodCash, MethodBankTransfer, MethodCreditCard:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method: %s", s)
}
