package controllers

import (
	"errors"

	"foodorder/pkg/apperr"
	"foodorder/pkg/resp"
	"foodorder/repository"

	"github.com/gin-gonic/gin"

	"gorm.io/gorm"
)

// catalog อ่านอย่างเดียว — การจัดการเมนูไม่อยู่ใน service นี้
type MenuController struct {
	Repo *repository.MenuRepository
}

func NewMenuController(repo *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: repo}
}

// GET /api/menu-items
func (mc *MenuController) ListAvailable(c *gin.Context) {
	items, err := mc.Repo.ListAvailable()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu-items/:id
func (mc *MenuController) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := mc.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperr.NotFound("menu item not found with id %d", id))
			return
		}
		respondError(c, err)
		return
	}
	resp.OK(c, item)
}
