package repository

import (
	"foodorder/entity"

	"gorm.io/gorm"
)

type AccountRepository struct {
	DB *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// เช็คว่า account มีอยู่จริงมั้ย
func (r *AccountRepository) Exists(accountID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Account{}).Where("id = ?", accountID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *AccountRepository) GetByEmail(email string) (*entity.Account, error) {
	var a entity.Account
	if err := r.DB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
