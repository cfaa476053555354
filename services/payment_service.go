package services

import (
	"errors"
	"fmt"
	"time"

	"foodorder/entity"
	"foodorder/pkg/apperr"
	"foodorder/pkg/momo"
	"foodorder/repository"

	"gorm.io/gorm"
)

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
	Momo      *momo.Client
}

func NewPaymentService(
	db *gorm.DB,
	repo *repository.PaymentRepository,
	orderRepo *repository.OrderRepository,
	momoClient *momo.Client,
) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, OrderRepo: orderRepo, Momo: momoClient}
}

// ----- DTOs from Controller -----

type CreatePaymentReq struct {
	OrderID     uint                 `json:"orderId" binding:"required"`
	Method      entity.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=MOMO CASH BANK_TRANSFER CREDIT_CARD"`
	Description string               `json:"description"`
}

type UpdatePaymentReq struct {
	Description *string `json:"description"`
}

// ----- Create -----

// Create เปิด payment attempt ใหม่ให้ออเดอร์
// gateway ปฏิเสธไม่ใช่ error ของ request — payment ถูกบันทึกเป็น FAILED พร้อม code/message แล้วคืนตามปกติ
func (s *PaymentService) Create(req *CreatePaymentReq) (*entity.Payment, error) {
	order, err := s.OrderRepo.Get(req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found with id %d", req.OrderID)
		}
		return nil, err
	}

	// กันจ่ายซ้ำ — เช็คตอนสร้างเท่านั้น
	// NOTE: สอง request พร้อมกันผ่านเช็คนี้ได้ทั้งคู่ (ไม่มี unique constraint คุม) — design gap ที่รู้อยู่
	hasSuccess, err := s.Repo.HasSuccessfulPayment(req.OrderID)
	if err != nil {
		return nil, err
	}
	if hasSuccess {
		return nil, apperr.Conflict("order %d already has a successful payment", req.OrderID)
	}

	if order.TotalAmount <= 0 {
		return nil, apperr.InvalidState("order amount is invalid: %v", order.TotalAmount)
	}

	method := req.Method
	if method == "" {
		method = entity.MethodMomo
	}
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Payment for order %d", req.OrderID)
	}

	p := &entity.Payment{
		OrderID:     req.OrderID,
		Amount:      order.TotalAmount,
		Method:      method,
		Status:      entity.PaymentPending,
		Description: description,
	}

	if method == entity.MethodMomo {
		session := s.Momo.CreateSession(req.OrderID, order.TotalAmount, description)
		p.MomoResponseCode = session.ResultCode
		p.MomoMessage = session.Message
		if session.ResultCode == "0" {
			p.MomoOrderID = session.OrderID
			p.MomoPayURL = session.PayURL
			p.Status = entity.PaymentProcessing
		} else {
			p.Status = entity.PaymentFailed
		}
	}

	if err := s.Repo.Create(s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ----- Read -----

func (s *PaymentService) GetByID(paymentID uint) (*entity.Payment, error) {
	p, err := s.Repo.Get(paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment not found with id %d", paymentID)
		}
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) GetAll() ([]entity.Payment, error) {
	return s.Repo.ListAll()
}

func (s *PaymentService) GetByOrder(orderID uint) ([]entity.Payment, error) {
	return s.Repo.ListByOrder(orderID)
}

func (s *PaymentService) GetByStatus(status entity.PaymentStatus) ([]entity.Payment, error) {
	return s.Repo.ListByStatus(status)
}

func (s *PaymentService) GetByMethod(method entity.PaymentMethod) ([]entity.Payment, error) {
	return s.Repo.ListByMethod(method)
}

func (s *PaymentService) GetByTransactionID(transactionID string) (*entity.Payment, error) {
	p, err := s.Repo.GetByMomoTransactionID(transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment not found for transaction id %s", transactionID)
		}
		return nil, err
	}
	return p, nil
}

// ----- Process -----

// ProcessPayment เช็ค gate แล้วคืน record เดิม
// TODO: ต่อ API เช็คสถานะฝั่ง MoMo ตรงนี้แทนการคืนเฉย ๆ
func (s *PaymentService) ProcessPayment(paymentID uint) (*entity.Payment, error) {
	p, err := s.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if p.Method != entity.MethodMomo {
		return nil, apperr.Conflict("payment %d is not a MoMo payment", paymentID)
	}
	if p.Status != entity.PaymentPending && p.Status != entity.PaymentProcessing {
		return nil, apperr.InvalidState("payment cannot be processed in current status: %s", p.Status)
	}
	return p, nil
}

// ----- Reconcile -----

// ReconcileCallback อัปเดต payment ตามผลจาก gateway
// caller ต้อง verify signature มาก่อนแล้ว — ฟังก์ชันนี้เชื่อ input ที่ได้รับ
// resultCode "0" = SUCCESS + stamp paidAt, อื่น ๆ = FAILED; บันทึก code/message ล่าสุดเสมอ
// ถ้าจ่ายสำเร็จและออเดอร์ยัง PENDING จะ flip เป็น CONFIRMED (conditional update กันชนกับ transition อื่น)
func (s *PaymentService) ReconcileCallback(momoOrderID, resultCode, message string) (*entity.Payment, error) {
	p, err := s.Repo.GetByMomoOrderID(momoOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment not found for momo order id %s", momoOrderID)
		}
		return nil, err
	}

	if resultCode == "0" {
		now := time.Now()
		p.Status = entity.PaymentSuccess
		p.PaidAt = &now
		p.MomoTransactionID = momoOrderID
	} else {
		p.Status = entity.PaymentFailed
	}
	p.MomoResponseCode = resultCode
	p.MomoMessage = message

	if err := s.Repo.Save(s.DB, p); err != nil {
		return nil, err
	}

	if p.Status == entity.PaymentSuccess {
		// affected = 0 ก็ปล่อยผ่าน — ออเดอร์ไม่ได้อยู่ PENDING แล้ว ไม่ไปยุ่ง
		if _, err := s.OrderRepo.UpdateStatusFromTo(s.DB, p.OrderID, entity.OrderPending, entity.OrderConfirmed); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ----- Update -----

// Update แก้ได้เฉพาะ description และเฉพาะตอนยัง PENDING
func (s *PaymentService) Update(paymentID uint, req *UpdatePaymentReq) (*entity.Payment, error) {
	p, err := s.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status != entity.PaymentPending {
		return nil, apperr.InvalidState("cannot update payment with status %s", p.Status)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if err := s.Repo.Save(s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ----- Delete -----

func (s *PaymentService) SoftDelete(paymentID uint) error {
	if _, err := s.GetByID(paymentID); err != nil {
		return err
	}
	return s.Repo.SoftDelete(paymentID)
}

func (s *PaymentService) Delete(paymentID uint) error {
	ok, err := s.Repo.Exists(paymentID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("payment not found with id %d", paymentID)
	}
	return s.Repo.Delete(paymentID)
}
