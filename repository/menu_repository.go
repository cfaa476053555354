package repository

import (
	"foodorder/entity"

	"gorm.io/gorm"
)

// MenuRepository เป็นแค่ read service ของ catalog — order/payment ไม่แก้เมนู
type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Get(menuItemID uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, menuItemID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) ListAvailable() ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("available = ?", true).Order("id").Find(&out).Error
	return out, err
}
