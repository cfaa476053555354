package services

import (
	"sort"
	"time"

	"foodorder/entity"
	"foodorder/repository"
)

type DashboardService struct {
	OrderRepo *repository.OrderRepository
	MenuRepo  *repository.MenuRepository
}

func NewDashboardService(orderRepo *repository.OrderRepository, menuRepo *repository.MenuRepository) *DashboardService {
	return &DashboardService{OrderRepo: orderRepo, MenuRepo: menuRepo}
}

const monthKeyLayout = "2006-01"

// ----- Output DTOs -----

type MenuItemOrderStats struct {
	MenuItemID    uint           `json:"menuItemId"`
	MenuItemName  string         `json:"menuItemName"`
	OrdersByMonth map[string]int `json:"ordersByMonth"`
	TotalOrders   int            `json:"totalOrders"`
	TotalQuantity int            `json:"totalQuantity"`
	TotalRevenue  float64        `json:"totalRevenue"`
}

type MonthlyStats struct {
	Month                 string  `json:"month"`
	TotalOrders           int     `json:"totalOrders"`
	TotalMenuItemsOrdered int     `json:"totalMenuItemsOrdered"`
	TotalRevenue          float64 `json:"totalRevenue"`
}

type DashboardStats struct {
	MenuItemStats  []MenuItemOrderStats    `json:"menuItemStats"`
	MonthlySummary map[string]MonthlyStats `json:"monthlySummary"`
	TotalOrders    int                     `json:"totalOrders"`
	TotalRevenue   float64                 `json:"totalRevenue"`
}

// ----- Queries -----

// AllStats รวมสถิติทั้งหมด (ออเดอร์ CANCELLED ไม่นับทุกกรณี)
func (s *DashboardService) AllStats() (*DashboardStats, error) {
	orders, err := s.OrderRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return s.build(filterCancelled(orders)), nil
}

// StatsByMonth สถิติเดือนเดียว
func (s *DashboardService) StatsByMonth(year, month int) (*DashboardStats, error) {
	key := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local).Format(monthKeyLayout)
	return s.StatsByRange(key, key)
}

// StatsByRange สถิติช่วงเดือน [start, end] แบบ inclusive, key รูปแบบ "YYYY-MM"
func (s *DashboardService) StatsByRange(startMonth, endMonth string) (*DashboardStats, error) {
	orders, err := s.OrderRepo.ListAll()
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.Order, 0, len(orders))
	for _, o := range filterCancelled(orders) {
		// key เทียบเป็น string ได้เลย เพราะ YYYY-MM เรียง lexicographic ตรงกับเวลา
		key := monthKey(o.CreatedAt)
		if key >= startMonth && key <= endMonth {
			filtered = append(filtered, o)
		}
	}
	return s.build(filtered), nil
}

// TopOrderedMenuItems เอา N อันดับแรกจากสถิติ all-time เรียงตาม totalOrders มากไปน้อย
func (s *DashboardService) TopOrderedMenuItems(limit int) ([]MenuItemOrderStats, error) {
	if limit <= 0 {
		limit = 10
	}
	stats, err := s.AllStats()
	if err != nil {
		return nil, err
	}
	items := stats.MenuItemStats
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// ----- Fold -----

func filterCancelled(orders []entity.Order) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status != entity.OrderCancelled {
			out = append(out, o)
		}
	}
	return out
}

func monthKey(t time.Time) string {
	return t.In(time.Local).Format(monthKeyLayout)
}

// build fold สถิติทั้งหมดจาก snapshot ของออเดอร์ใน memory
func (s *DashboardService) build(orders []entity.Order) *DashboardStats {
	perItemMonthCount := map[uint]map[string]int{}
	perItemMonthQty := map[uint]map[string]int{}
	perItemMonthRevenue := map[uint]map[string]float64{}
	itemNames := map[uint]string{}
	itemOrder := []uint{} // ลำดับที่เจอครั้งแรก ใช้เป็น tie-break ให้ผล stable

	for _, o := range orders {
		key := monthKey(o.CreatedAt)
		for _, item := range o.Items {
			id := item.MenuItemID
			if _, seen := perItemMonthCount[id]; !seen {
				perItemMonthCount[id] = map[string]int{}
				perItemMonthQty[id] = map[string]int{}
				perItemMonthRevenue[id] = map[string]float64{}
				itemOrder = append(itemOrder, id)
				// resolve ชื่อครั้งเดียวตอนเจอครั้งแรก เมนูที่โดนลบไปแล้วใช้ชื่อแทน
				if m, err := s.MenuRepo.Get(id); err == nil {
					itemNames[id] = m.Name
				} else {
					itemNames[id] = "Unknown Item"
				}
			}
			perItemMonthCount[id][key]++
			perItemMonthQty[id][key] += item.Quantity
			perItemMonthRevenue[id][key] += item.Subtotal
		}
	}

	itemStats := make([]MenuItemOrderStats, 0, len(itemOrder))
	for _, id := range itemOrder {
		st := MenuItemOrderStats{
			MenuItemID:    id,
			MenuItemName:  itemNames[id],
			OrdersByMonth: map[string]int{},
		}
		for month, cnt := range perItemMonthCount[id] {
			st.OrdersByMonth[month] = cnt
			st.TotalOrders += cnt
			st.TotalQuantity += perItemMonthQty[id][month]
			st.TotalRevenue += perItemMonthRevenue[id][month]
		}
		itemStats = append(itemStats, st)
	}
	sort.SliceStable(itemStats, func(i, j int) bool {
		return itemStats[i].TotalOrders > itemStats[j].TotalOrders
	})

	// สรุปรายเดือน — totalMenuItemsOrdered นับจำนวน line ไม่ใช่ quantity
	monthly := map[string]MonthlyStats{}
	for _, o := range orders {
		key := monthKey(o.CreatedAt)
		m := monthly[key]
		m.Month = key
		m.TotalOrders++
		m.TotalMenuItemsOrdered += len(o.Items)
		m.TotalRevenue += o.TotalAmount
		monthly[key] = m
	}

	out := &DashboardStats{
		MenuItemStats:  itemStats,
		MonthlySummary: monthly,
		TotalOrders:    len(orders),
	}
	for _, o := range orders {
		out.TotalRevenue += o.TotalAmount
	}
	return out
}
