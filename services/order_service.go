package services

import (
	"errors"

	"foodorder/entity"
	"foodorder/pkg/apperr"
	"foodorder/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	AccountRepo *repository.AccountRepository
	MenuRepo    *repository.MenuRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	accountRepo *repository.AccountRepository,
	menuRepo *repository.MenuRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, AccountRepo: accountRepo, MenuRepo: menuRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	AccountID       uint          `json:"accountId" binding:"required"`
	Items           []OrderItemIn `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress string        `json:"deliveryAddress"`
	Notes           string        `json:"notes"`
}

type UpdateOrderReq struct {
	DeliveryAddress *string       `json:"deliveryAddress"`
	Notes           *string       `json:"notes"`
	Items           []OrderItemIn `json:"items" binding:"omitempty,min=1,dive"`
}

// ----- Create -----

func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	ok, err := s.AccountRepo.Exists(req.AccountID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("account not found with id %d", req.AccountID)
	}

	items, total, err := s.priceItems(req.Items)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		AccountID:       req.AccountID,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		Status:          entity.OrderPending,
		Items:           items,
		TotalAmount:     total,
	}
	if err := s.Repo.Create(s.DB, order); err != nil {
		return nil, err
	}
	return order, nil
}

// priceItems validate ทุก line + snapshot ราคาจาก catalog ณ ตอนนี้
// เจอเมนูหาย = NotFound, เมนูปิดขาย = Conflict — ทั้งคู่หยุดทันที ไม่เขียนอะไรลง DB
func (s *OrderService) priceItems(in []OrderItemIn) ([]entity.OrderItem, float64, error) {
	items := make([]entity.OrderItem, 0, len(in))
	var total float64
	for _, it := range in {
		m, err := s.MenuRepo.Get(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, apperr.NotFound("menu item not found with id %d", it.MenuItemID)
			}
			return nil, 0, err
		}
		if !m.Available {
			return nil, 0, apperr.Conflict("menu item is not available: %s", m.Name)
		}
		sub := m.Price * float64(it.Quantity)
		items = append(items, entity.OrderItem{
			MenuItemID: m.ID,
			Quantity:   it.Quantity,
			Price:      m.Price,
			Subtotal:   sub,
		})
		total += sub
	}
	return items, total, nil
}

// ----- Read -----

func (s *OrderService) GetByID(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found with id %d", orderID)
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) GetAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

func (s *OrderService) GetByAccount(accountID uint) ([]entity.Order, error) {
	return s.Repo.ListByAccount(accountID)
}

func (s *OrderService) GetByStatus(status entity.OrderStatus) ([]entity.Order, error) {
	return s.Repo.ListByStatus(status)
}

func (s *OrderService) GetByAccountAndStatus(accountID uint, status entity.OrderStatus) ([]entity.Order, error) {
	return s.Repo.ListByAccountAndStatus(accountID, status)
}

// ----- Update -----

// Update แก้ได้เฉพาะตอนยัง PENDING — address/notes อัปเดตแยกกับ line ได้
// ส่ง items มาใหม่ = ตีราคาใหม่ทั้งชุดแบบเดียวกับตอน create
func (s *OrderService) Update(orderID uint, req *UpdateOrderReq) (*entity.Order, error) {
	order, err := s.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.OrderPending {
		return nil, apperr.InvalidState("cannot update order with status %s", order.Status)
	}

	if req.DeliveryAddress != nil {
		order.DeliveryAddress = *req.DeliveryAddress
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if len(req.Items) > 0 {
			items, total, err := s.priceItems(req.Items)
			if err != nil {
				return err
			}
			if err := s.Repo.ReplaceItems(tx, order.ID, items); err != nil {
				return err
			}
			order.Items = items
			order.TotalAmount = total
		}
		return tx.Model(&entity.Order{}).Where("id = ?", order.ID).
			Updates(map[string]any{
				"delivery_address": order.DeliveryAddress,
				"notes":            order.Notes,
				"total_amount":     order.TotalAmount,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(orderID)
}

// UpdateStatus ทับสถานะตรง ๆ จากสถานะไหนก็ได้ ไม่มี transition graph
func (s *OrderService) UpdateStatus(orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	ok, err := s.Repo.UpdateStatus(s.DB, orderID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("order not found with id %d", orderID)
	}
	return s.GetByID(orderID)
}

// ----- Delete -----

func (s *OrderService) SoftDelete(orderID uint) error {
	if _, err := s.GetByID(orderID); err != nil {
		return err
	}
	return s.Repo.SoftDelete(orderID)
}

func (s *OrderService) Delete(orderID uint) error {
	ok, err := s.Repo.Exists(orderID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("order not found with id %d", orderID)
	}
	return s.Repo.Delete(orderID)
}
