package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// --- Dashboard Overview Stats ---
//

// DashboardStats holds the KPI counts for the dashboard overview tab.
// ActiveRepairRatio drives the progress bar: (pending + in_progress) / total.
type DashboardStats struct {
	TotalRepairs   int `json:"totalRepairs"`
	TotalOrders    int `json:"totalOrders"`
	TotalPhones    int `json:"totalPhones"`
	TotalParts     int `json:"totalParts"`
	PendingRepairs int `json:"pendingRepairs"`
	PendingOrders  int `json:"pendingOrders"`
	PendingPhones  int `json:"pendingPhones"`
	LowStockParts  int `json:"lowStockParts"`
	OutOfStock     int `json:"outOfStockParts"`

	ActiveRepairRatio float64 `json:"activeRepairRatio"`
}

// GetDashboardStats returns KPI data for the dashboard overview
// GET /v1/admin/dashboard-stats
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	stats := DashboardStats{}

	// 1. Per-resource totals
	err := h.DB.QueryRow("SELECT COUNT(*) FROM repair_requests").Scan(&stats.TotalRepairs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count repair requests"})
		return
	}
	err = h.DB.QueryRow("SELECT COUNT(*) FROM purchase_orders").Scan(&stats.TotalOrders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
		return
	}
	err = h.DB.QueryRow("SELECT COUNT(*) FROM used_phones").Scan(&stats.TotalPhones)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count trade-ins"})
		return
	}
	err = h.DB.QueryRow("SELECT COUNT(*) FROM parts_inventory").Scan(&stats.TotalParts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count parts"})
		return
	}

	// 2. Work queues
	err = h.DB.QueryRow("SELECT COUNT(*) FROM repair_requests WHERE status = 'pending'").Scan(&stats.PendingRepairs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count pending repairs"})
		return
	}
	err = h.DB.QueryRow("SELECT COUNT(*) FROM purchase_orders WHERE status = 'pending'").Scan(&stats.PendingOrders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count pending orders"})
		return
	}
	err = h.DB.QueryRow("SELECT COUNT(*) FROM used_phones WHERE status = 'pending'").Scan(&stats.PendingPhones)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count pending trade-ins"})
		return
	}

	// 3. Stock alerts
	err = h.DB.QueryRow("SELECT COUNT(*) FROM parts_inventory WHERE status = 'low_stock'").Scan(&stats.LowStockParts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count low stock parts"})
		return
	}
	err = h.DB.QueryRow("SELECT COUNT(*) FROM parts_inventory WHERE status = 'out_of_stock'").Scan(&stats.OutOfStock)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count out of stock parts"})
		return
	}

	// 4. Progress bar ratio
	var activeRepairs int
	err = h.DB.QueryRow("SELECT COUNT(*) FROM repair_requests WHERE status IN ('pending', 'in_progress')").Scan(&activeRepairs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count active repairs"})
		return
	}
	if stats.TotalRepairs > 0 {
		stats.ActiveRepairRatio = float64(activeRepairs) / float64(stats.TotalRepairs)
	}

	c.JSON(http.StatusOK, stats)
}
