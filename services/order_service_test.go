package services

import (
	"testing"

	"foodorder/entity"
	"foodorder/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreate_SnapshotsPricesAndComputesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	acc := seedAccount(t, db)
	pho := seedMenuItem(t, db, "Pho Bo", 5.50, true)
	banhmi := seedMenuItem(t, db, "Banh Mi", 3.00, true)

	order, err := svc.Create(&CreateOrderReq{
		AccountID: acc.ID,
		Items: []OrderItemIn{
			{MenuItemID: pho.ID, Quantity: 2},
			{MenuItemID: banhmi.ID, Quantity: 1},
		},
		DeliveryAddress: "12 Hang Bac",
		Notes:           "no cilantro",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 5.50, order.Items[0].Price)
	assert.Equal(t, 11.0, order.Items[0].Subtotal)
	assert.Equal(t, 3.0, order.Items[1].Subtotal)
	assert.Equal(t, 14.0, order.TotalAmount)

	// เปลี่ยนราคาใน catalog ทีหลัง ออเดอร์เดิมต้องไม่ขยับ
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", pho.ID).Update("price", 99.0).Error)
	reloaded, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 14.0, reloaded.TotalAmount)
	assert.Equal(t, 5.50, reloaded.Items[0].Price)
}

func TestOrderCreate_AccountNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	m := seedMenuItem(t, db, "Pho Bo", 5.50, true)

	_, err := svc.Create(&CreateOrderReq{
		AccountID: 999,
		Items:     []OrderItemIn{{MenuItemID: m.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var cnt int64
	db.Model(&entity.Order{}).Count(&cnt)
	assert.Zero(t, cnt)
}

func TestOrderCreate_MenuItemNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	acc := seedAccount(t, db)

	_, err := svc.Create(&CreateOrderReq{
		AccountID: acc.ID,
		Items:     []OrderItemIn{{MenuItemID: 777, Quantity: 1}},
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var cnt int64
	db.Model(&entity.Order{}).Count(&cnt)
	assert.Zero(t, cnt, "failed create must persist nothing")
}

func TestOrderCreate_UnavailableMenuItemConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	acc := seedAccount(t, db)
	off := seedMenuItem(t, db, "Sold Out Special", 9.99, false)

	_, err := svc.Create(&CreateOrderReq{
		AccountID: acc.ID,
		Items:     []OrderItemIn{{MenuItemID: off.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	var cnt int64
	db.Model(&entity.Order{}).Count(&cnt)
	assert.Zero(t, cnt)
}

func TestOrderUpdate_RepricesLines(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	acc := seedAccount(t, db)
	pho := seedMenuItem(t, db, "Pho Bo", 5.0, true)
	comtam := seedMenuItem(t, db, "Com Tam", 4.0, true)

	order, err := svc.Create(&CreateOrderReq{
		AccountID: acc.ID,
		Items:     []OrderItemIn{{MenuItemID: pho.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, 10.0, order.TotalAmount)

	addr := "34 Tran Phu"
	updated, err := svc.Update(order.ID, &UpdateOrderReq{
		DeliveryAddress: &addr,
		Items:           []OrderItemIn{{MenuItemID: comtam.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, "34 Tran Phu", updated.DeliveryAddress)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, comtam.ID, updated.Items[0].MenuItemID)
	assert.Equal(t, 12.0, updated.TotalAmount)
}

func TestOrderUpdate_PartialFieldsWithoutItems(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	acc := seedAccount(t, db)
	pho := seedMenuItem(t, db, "Pho Bo", 5.0, true)

	order, err := svc.Create(&CreateOrderReq{
		AccountID: acc.ID,
		Items:     []OrderItemIn{{MenuItemID: pho.ID, Quantity: 1}},
		Notes:     "old note",
	})
	require.NoError(t, err)

	notes := "ring the bell"
	updated, err := svc.Update(order.ID, &UpdateOrderReq{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, "ring the bell", updated.Notes)
	assert.Equal(t, 5.0, updated.TotalAmount, "total untouched when lines not replaced")
	require.Len(t, updated.Items, 1)
}

func TestOrderUpdate_NonPendingInvalidState(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	acc := seedAccount(t, db)
	pho := seedMenuItem(t, db, "Pho Bo", 5.0, true)

	order, err := svc.Create(&CreateOrderReq{
		AccountID: acc.ID,
		Items:     []OrderItemIn{{MenuItemID: pho.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(order.ID, entity.OrderDelivered)
	require.NoError(t, err)

	notes := "whatever"
	_, err = svc.Update(order.ID, &UpdateOrderReq{Notes: &notes})
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestOrderUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	acc := seedAccount(t, db)
	pho := seedMenuItem(t, db, "Pho Bo", 5.0, true)

	order, err := svc.Create(&CreateOrderReq{
		AccountID: acc.ID,
		Items:     []OrderItemIn{{MenuItemID: pho.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// ไม่มี graph คุม — DELIVERED กลับ PENDING ก็ได้
	for _, s := range []entity.OrderStatus{entity.OrderDelivered, entity.OrderPending, entity.OrderCancelled} {
		got, err := svc.UpdateStatus(order.ID, s)
		require.NoError(t, err)
		assert.Equal(t, s, got.Status)
	}

	_, err = svc.UpdateStatus(999, entity.OrderConfirmed)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestOrderDelete_SoftAndHard(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	acc := seedAccount(t, db)
	pho := seedMenuItem(t, db, "Pho Bo", 5.0, true)

	order, err := svc.Create(&CreateOrderReq{
		AccountID: acc.ID,
		Items:     []OrderItemIn{{MenuItemID: pho.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(order.ID))

	// soft delete = หายจาก query ปกติ แต่แถวยังอยู่
	_, err = svc.GetByID(order.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	var cnt int64
	db.Unscoped().Model(&entity.Order{}).Where("id = ?", order.ID).Count(&cnt)
	assert.EqualValues(t, 1, cnt)

	// hard delete บน id ที่ไม่มี (เพราะโดน soft ไปแล้วก็ยังเจอผ่าน Exists ... ใช้ id อื่น)
	err = svc.Delete(12345)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestOrderQueries_Filters(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	acc := seedAccount(t, db)
	other := &entity.Account{Email: "other@example.com"}
	require.NoError(t, db.Create(other).Error)
	pho := seedMenuItem(t, db, "Pho Bo", 5.0, true)

	mk := func(accountID uint) *entity.Order {
		o, err := svc.Create(&CreateOrderReq{
			AccountID: accountID,
			Items:     []OrderItemIn{{MenuItemID: pho.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		return o
	}
	o1 := mk(acc.ID)
	mk(acc.ID)
	o3 := mk(other.ID)

	_, err := svc.UpdateStatus(o1.ID, entity.OrderConfirmed)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(o3.ID, entity.OrderConfirmed)
	require.NoError(t, err)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.GetByAccount(acc.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	confirmed, err := svc.GetByStatus(entity.OrderConfirmed)
	require.NoError(t, err)
	assert.Len(t, confirmed, 2)

	both, err := svc.GetByAccountAndStatus(acc.ID, entity.OrderConfirmed)
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, o1.ID, both[0].ID)
}
