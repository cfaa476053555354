package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodorder/entity"
	"foodorder/pkg/momo"
	"foodorder/repository"
	"foodorder/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func setupCallbackRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	client := momo.NewClient(momo.Config{SecretKey: testSecret})
	svc := services.NewPaymentService(db,
		repository.NewPaymentRepository(db),
		repository.NewOrderRepository(db),
		client,
	)
	ctrl := NewPaymentController(svc, client)

	r := gin.New()
	r.POST("/api/payments/callback", ctrl.Callback)
	r.POST("/api/payments/webhook", ctrl.Webhook)
	return r, db
}

func seedProcessingPayment(t *testing.T, db *gorm.DB) *entity.Payment {
	t.Helper()
	order := &entity.Order{AccountID: 1, TotalAmount: 50, Status: entity.OrderPending}
	require.NoError(t, db.Create(order).Error)
	p := &entity.Payment{
		OrderID:     order.ID,
		Amount:      50,
		Method:      entity.MethodMomo,
		Status:      entity.PaymentProcessing,
		MomoOrderID: "ORDER_1_1700000000000",
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func callbackPayload(momoOrderID, resultCode string, sign bool) []byte {
	fields := map[string]string{
		"partnerCode": "MOMO",
		"accessKey":   "F8BBA842ECF85",
		"requestId":   "req-1",
		"amount":      "5000",
		"orderId":     momoOrderID,
		"orderInfo":   "Payment for order 1",
		"redirectUrl": "http://localhost:8080/api/payments/callback",
		"ipnUrl":      "http://localhost:8080/api/payments/webhook",
		"extraData":   "",
		"requestType": "captureWallet",
		"resultCode":  resultCode,
		"message":     "Successful.",
	}
	if sign {
		fields["signature"] = momo.Sign(momo.RawSignature(fields), testSecret)
	}
	body, _ := json.Marshal(fields)
	return body
}

func TestCallback_ValidSignatureReconciles(t *testing.T) {
	r, db := setupCallbackRouter(t)
	p := seedProcessingPayment(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/callback",
		bytes.NewReader(callbackPayload(p.MomoOrderID, "0", true)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got entity.Payment
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, entity.PaymentSuccess, got.Status)
	assert.NotNil(t, got.PaidAt)

	var o entity.Order
	require.NoError(t, db.First(&o, p.OrderID).Error)
	assert.Equal(t, entity.OrderConfirmed, o.Status)
}

func TestCallback_BadSignatureRejectedWithoutStateChange(t *testing.T) {
	r, db := setupCallbackRouter(t)
	p := seedProcessingPayment(t, db)

	body := callbackPayload(p.MomoOrderID, "0", true)
	tampered := bytes.Replace(body, []byte(`"5000"`), []byte(`"1"`), 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/callback", bytes.NewReader(tampered))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var got entity.Payment
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, entity.PaymentProcessing, got.Status, "reconciliation must not run")
}

func TestCallback_MissingSignatureRejected(t *testing.T) {
	r, db := setupCallbackRouter(t)
	p := seedProcessingPayment(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/callback",
		bytes.NewReader(callbackPayload(p.MomoOrderID, "0", false)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhook_ValidSignatureRepliesOK(t *testing.T) {
	r, db := setupCallbackRouter(t)
	p := seedProcessingPayment(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook",
		bytes.NewReader(callbackPayload(p.MomoOrderID, "1", true)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	var got entity.Payment
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, entity.PaymentFailed, got.Status)
}
