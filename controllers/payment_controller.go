package controllers

import (
	"log"

	"foodorder/entity"
	"foodorder/pkg/momo"
	"foodorder/pkg/resp"
	"foodorder/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Service *services.PaymentService
	Momo    *momo.Client
}

func NewPaymentController(service *services.PaymentService, momoClient *momo.Client) *PaymentController {
	return &PaymentController{Service: service, Momo: momoClient}
}

// POST /api/payments
func (pc *PaymentController) Create(c *gin.Context) {
	var req services.CreatePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// gateway ล้มไม่ทำให้ request ล้ม — ได้ payment FAILED กลับไปพร้อม code/message
	payment, err := pc.Service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, payment)
}

// GET /api/payments/:id
func (pc *PaymentController) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	payment, err := pc.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, payment)
}

// GET /api/payments
func (pc *PaymentController) List(c *gin.Context) {
	payments, err := pc.Service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, payments)
}

// GET /api/payments/order/:orderId
func (pc *PaymentController) ListByOrder(c *gin.Context) {
	orderID, ok := parseID(c, "orderId")
	if !ok {
		return
	}
	payments, err := pc.Service.GetByOrder(orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, payments)
}

// GET /api/payments/status/:status
func (pc *PaymentController) ListByStatus(c *gin.Context) {
	status, err := entity.ParsePaymentStatus(c.Param("status"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payments, err := pc.Service.GetByStatus(status)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, payments)
}

// GET /api/payments/transaction/:transactionId
func (pc *PaymentController) DetailByTransaction(c *gin.Context) {
	payment, err := pc.Service.GetByTransactionID(c.Param("transactionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, payment)
}

// GET /api/payments/method/:method
func (pc *PaymentController) ListByMethod(c *gin.Context) {
	method, err := entity.ParsePaymentMethod(c.Param("method"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payments, err := pc.Service.GetByMethod(method)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, payments)
}

// POST /api/payments/:id/process-momo
func (pc *PaymentController) ProcessMomo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	payment, err := pc.Service.ProcessPayment(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, payment)
}

// POST /api/payments/callback
// redirect กลับจากหน้า MoMo — ต้องผ่าน signature ก่อนถึงจะ reconcile
func (pc *PaymentController) Callback(c *gin.Context) {
	fields, ok := pc.verifiedFields(c)
	if !ok {
		return
	}
	payment, err := pc.Service.ReconcileCallback(fields["orderId"], fields["resultCode"], fields["message"])
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, payment)
}

// POST /api/payments/webhook
// IPN จาก MoMo — ตัว payload เดียวกับ callback แต่ตอบแค่ OK
func (pc *PaymentController) Webhook(c *gin.Context) {
	fields, ok := pc.verifiedFields(c)
	if !ok {
		return
	}
	if _, err := pc.Service.ReconcileCallback(fields["orderId"], fields["resultCode"], fields["message"]); err != nil {
		respondError(c, err)
		return
	}
	c.String(200, "OK")
}

func (pc *PaymentController) verifiedFields(c *gin.Context) (map[string]string, bool) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		resp.BadRequest(c, err.Error())
		return nil, false
	}
	if !pc.Momo.VerifyCallback(fields) {
		log.Printf("rejected gateway callback with bad signature, momo order id=%s", fields["orderId"])
		resp.BadRequest(c, "invalid signature")
		return nil, false
	}
	return fields, true
}

// PUT /api/payments/:id
func (pc *PaymentController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req services.UpdatePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payment, err := pc.Service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, payment)
}

// DELETE /api/payments/:id
func (pc *PaymentController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := pc.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.NoContent(c)
}

// PUT /api/payments/:id/soft-delete
func (pc *PaymentController) SoftDelete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := pc.Service.SoftDelete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
