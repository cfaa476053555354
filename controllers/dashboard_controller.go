package controllers

import (
	"strconv"
	"time"

	"foodorder/pkg/resp"
	"foodorder/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{Service: service}
}

// GET /api/dashboard/menu-item-stats
func (dc *DashboardController) AllStats(c *gin.Context) {
	stats, err := dc.Service.AllStats()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /api/dashboard/menu-item-stats/month?year=2024&month=1
func (dc *DashboardController) StatsByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		resp.BadRequest(c, "invalid year")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		resp.BadRequest(c, "invalid month")
		return
	}
	stats, err := dc.Service.StatsByMonth(year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /api/dashboard/menu-item-stats/range?startMonth=2024-01&endMonth=2024-12
func (dc *DashboardController) StatsByRange(c *gin.Context) {
	start := c.Query("startMonth")
	end := c.Query("endMonth")
	if _, err := time.Parse("2006-01", start); err != nil {
		resp.BadRequest(c, "invalid startMonth, want YYYY-MM")
		return
	}
	if _, err := time.Parse("2006-01", end); err != nil {
		resp.BadRequest(c, "invalid endMonth, want YYYY-MM")
		return
	}
	stats, err := dc.Service.StatsByRange(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /api/dashboard/top-menu-items?limit=10
func (dc *DashboardController) TopMenuItems(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			resp.BadRequest(c, "invalid limit")
			return
		}
		limit = n
	}
	items, err := dc.Service.TopOrderedMenuItems(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, items)
}
