package repository

import (
	"foodorder/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (CRUD หลัก) ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Exists(orderID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *OrderRepository) Save(tx *gorm.DB, o *entity.Order) error {
	return tx.Save(o).Error
}

// ---------------- Queries ----------------
// ตัวกรองธรรมดา คืนทุกแถวที่ match ไม่มี pagination

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByAccount(accountID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("account_id = ?", accountID).
		Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByStatus(status entity.OrderStatus) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("status = ?", status).
		Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByAccountAndStatus(accountID uint, status entity.OrderStatus) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("account_id = ? AND status = ?", accountID, status).
		Order("id DESC").Find(&out).Error
	return out, err
}

// ---------------- Status ----------------

// UpdateStatus ทับสถานะตรง ๆ ไม่มี state machine คุม
func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// UpdateStatusFromTo อัปเดตแบบมี guard — สำเร็จเฉพาะตอนสถานะปัจจุบันตรงกับ from
// ใช้ปิด race ตอน reconcile callback (load-then-save สองจังหวะมีช่องว่าง)
func (r *OrderRepository) UpdateStatusFromTo(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Order Items ----------------

// ReplaceItems ลบ line เดิมทิ้งทั้งชุดแล้วใส่ชุดใหม่ ใช้ตอน update order ที่ยัง PENDING
func (r *OrderRepository) ReplaceItems(tx *gorm.DB, orderID uint, items []entity.OrderItem) error {
	if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = orderID
		if err := tx.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// ---------------- Delete ----------------

// SoftDelete แค่ mark flag ข้อมูลยังอยู่
func (r *OrderRepository) SoftDelete(orderID uint) error {
	return r.DB.Delete(&entity.Order{}, orderID).Error
}

// Delete ลบถาวรพร้อม line ทั้งหมด
func (r *OrderRepository) Delete(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Order{}, orderID).Error
	})
}
