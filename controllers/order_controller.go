package controllers

import (
	"strconv"

	"foodorder/entity"
	"foodorder/pkg/resp"
	"foodorder/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := oc.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/account/:accountId
func (oc *OrderController) ListByAccount(c *gin.Context) {
	accountID, ok := parseID(c, "accountId")
	if !ok {
		return
	}
	orders, err := oc.Service.GetByAccount(accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/status/:status
func (oc *OrderController) ListByStatus(c *gin.Context) {
	status, err := entity.ParseOrderStatus(c.Param("status"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	orders, err := oc.Service.GetByStatus(status)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/account/:accountId/status/:status
func (oc *OrderController) ListByAccountAndStatus(c *gin.Context) {
	accountID, ok := parseID(c, "accountId")
	if !ok {
		return
	}
	status, err := entity.ParseOrderStatus(c.Param("status"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	orders, err := oc.Service.GetByAccountAndStatus(accountID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PUT /api/orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /api/orders/:id/status?status=CONFIRMED
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	status, err := entity.ParseOrderStatus(c.Query("status"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.UpdateStatus(id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /api/orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := oc.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.NoContent(c)
}

// PUT /api/orders/:id/soft-delete
func (oc *OrderController) SoftDelete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := oc.Service.SoftDelete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
