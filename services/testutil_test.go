package services

import (
	"fmt"
	"strconv"
	"testing"

	"foodorder/entity"
	"foodorder/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlite in-memory แยก DB ต่อ test กันข้อมูลปนกัน
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Account{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Payment{},
	))
	return db
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func seedAccount(t *testing.T, db *gorm.DB) *entity.Account {
	t.Helper()
	a := &entity.Account{Email: "customer@example.com", Role: "customer"}
	require.NoError(t, db.Create(a).Error)
	return a
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64, available bool) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Name: name, Price: price, Available: available}
	require.NoError(t, db.Create(m).Error)
	return m
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewAccountRepository(db),
		repository.NewMenuRepository(db),
	)
}
