package repository

import (
	"foodorder/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) Get(paymentID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, paymentID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) Exists(paymentID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Payment{}).Where("id = ?", paymentID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *PaymentRepository) Save(tx *gorm.DB, p *entity.Payment) error {
	return tx.Save(p).Error
}

// ---------------- Queries ----------------

func (r *PaymentRepository) ListAll() ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListByOrder(orderID uint) ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.Where("order_id = ?", orderID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListByStatus(status entity.PaymentStatus) ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.Where("status = ?", status).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListByMethod(method entity.PaymentMethod) ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.Where("method = ?", method).Order("id DESC").Find(&out).Error
	return out, err
}

// GetByMomoOrderID หา payment จาก order id ฝั่ง gateway (ใช้ตอน callback)
func (r *PaymentRepository) GetByMomoOrderID(momoOrderID string) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("momo_order_id = ?", momoOrderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByMomoTransactionID(momoTransID string) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("momo_transaction_id = ?", momoTransID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// HasSuccessfulPayment เช็คว่าออเดอร์นี้มี payment ที่ SUCCESS แล้วหรือยัง
// หมายเหตุ: check-then-insert ตรงนี้มี race window ระหว่างสอง request (ดู payment_service)
func (r *PaymentRepository) HasSuccessfulPayment(orderID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Payment{}).
		Where("order_id = ? AND status = ?", orderID, entity.PaymentSuccess).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---------------- Delete ----------------

func (r *PaymentRepository) SoftDelete(paymentID uint) error {
	return r.DB.Delete(&entity.Payment{}, paymentID).Error
}

func (r *PaymentRepository) Delete(paymentID uint) error {
	return r.DB.Unscoped().Delete(&entity.Payment{}, paymentID).Error
}
