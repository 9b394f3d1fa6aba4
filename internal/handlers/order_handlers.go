package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/4phone-ma/4phone-golang/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Purchase Order Handlers ---
//

// OrderItemInput is one line of the order snapshot sent by the storefront.
type OrderItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"gte=0"`
}

// CreateOrderInput defines the expected JSON for the public buy flow.
// No total field: the server recomputes it from the items.
type CreateOrderInput struct {
	CustomerName string           `json:"customerName" binding:"required"`
	Phone        string           `json:"phone" binding:"required"`
	Items        []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder is the handler for POST /v1/orders
func (h *Handlers) CreateOrder(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Snapshot the items and recompute the total ---
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, models.OrderItem{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}

	now := time.Now()
	order := &models.PurchaseOrder{
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Items:        items,
		Total:        models.OrderTotal(items),
		Status:       models.OrderPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode order items"})
		return
	}

	// 3. --- Insert ---
	query := `
		INSERT INTO purchase_orders
		(customer_name, phone, items, total, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		order.CustomerName, order.Phone, string(itemsJSON),
		order.Total, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	orderID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new order ID"})
		return
	}
	order.ID = orderID

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetAllOrders is the handler for GET /v1/admin/orders
func (h *Handlers) GetAllOrders(c *gin.Context) {
	query := `
		SELECT id, customer_name, phone, items, total, status, created_at, updated_at
		FROM purchase_orders
		ORDER BY created_at DESC`

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	defer rows.Close()

	var orders []models.PurchaseOrder
	for rows.Next() {
		var o models.PurchaseOrder
		var itemsJSON []byte

		if err := rows.Scan(
			&o.ID, &o.CustomerName, &o.Phone, &itemsJSON,
			&o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan order row"})
			return
		}

		o.Items = []models.OrderItem{}
		if len(itemsJSON) > 0 {
			json.Unmarshal(itemsJSON, &o.Items)
		}

		orders = append(orders, o)
	}

	if orders == nil {
		orders = []models.PurchaseOrder{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrderStatusInput carries the requested status.
type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered"`
}

// UpdateOrderStatus is the handler for PATCH /v1/admin/orders/:id/status.
// Orders advance one step at a time; no skip-ahead, no regression.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 1. --- Fetch the current status ---
	var current string
	err := h.DB.QueryRow("SELECT status FROM purchase_orders WHERE id = ?", orderID).Scan(&current)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking order"})
		return
	}

	// 2. --- Only the immediate successor is allowed ---
	next, ok := models.NextOrderStatus(current)
	if !ok || next != input.Status {
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition from '" + current + "' to '" + input.Status + "'"})
		return
	}

	// 3. --- Persist ---
	_, err = h.DB.Exec("UPDATE purchase_orders SET status = ?, updated_at = ? WHERE id = ?", input.Status, time.Now(), orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"status":  input.Status,
	})
}
