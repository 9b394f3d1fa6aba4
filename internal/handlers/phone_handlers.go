package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/4phone-ma/4phone-golang/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Used Phone (Trade-In) Handlers ---
//

// CreatePhoneInput defines the expected JSON for the public sell flow.
// CustomerName and Phone are optional so staff can register inventory-only
// units from the dashboard.
type CreatePhoneInput struct {
	CustomerName *string `json:"customerName"`
	Phone        *string `json:"phone"`
	DeviceModel  string  `json:"deviceModel" binding:"required"`
	Condition    string  `json:"condition" binding:"required"`
	OfferPrice   float64 `json:"offerPrice" binding:"gte=0"`
}

// CreateUsedPhone is the handler for POST /v1/trade-ins
func (h *Handlers) CreateUsedPhone(c *gin.Context) {
	var input CreatePhoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	phone := &models.UsedPhone{
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		DeviceModel:  input.DeviceModel,
		Condition:    input.Condition,
		OfferPrice:   input.OfferPrice,
		Status:       models.PhonePending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := "INSERT INTO used_phones " +
		"(customer_name, phone, device_model, `condition`, offer_price, status, created_at, updated_at) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?)"

	result, err := h.DB.Exec(query,
		phone.CustomerName, phone.Phone, phone.DeviceModel, phone.Condition,
		phone.OfferPrice, phone.Status, phone.CreatedAt, phone.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trade-in"})
		return
	}

	phoneID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new trade-in ID"})
		return
	}
	phone.ID = phoneID

	c.JSON(http.StatusCreated, gin.H{
		"message": "Trade-in submitted successfully",
		"phone":   phone,
	})
}

// GetAllUsedPhones is the handler for GET /v1/admin/trade-ins
func (h *Handlers) GetAllUsedPhones(c *gin.Context) {
	query := "SELECT id, customer_name, phone, device_model, `condition`, offer_price, status, created_at, updated_at " +
		"FROM used_phones ORDER BY created_at DESC"

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trade-ins"})
		return
	}
	defer rows.Close()

	var phones []models.UsedPhone
	for rows.Next() {
		var p models.UsedPhone
		var customerName, customerPhone sql.NullString

		if err := rows.Scan(
			&p.ID, &customerName, &customerPhone, &p.DeviceModel, &p.Condition,
			&p.OfferPrice, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan trade-in row"})
			return
		}
		if customerName.Valid {
			p.CustomerName = &customerName.String
		}
		if customerPhone.Valid {
			p.Phone = &customerPhone.String
		}

		phones = append(phones, p)
	}

	if phones == nil {
		phones = []models.UsedPhone{}
	}

	c.JSON(http.StatusOK, gin.H{"phones": phones})
}

// UpdatePhoneStatusInput carries the requested status.
type UpdatePhoneStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected in_inventory"`
}

// UpdatePhoneStatus is the handler for PATCH /v1/admin/trade-ins/:id/status.
// Transitions follow the lifecycle: pending -> approved | rejected,
// approved -> in_inventory. rejected and in_inventory are terminal.
func (h *Handlers) UpdatePhoneStatus(c *gin.Context) {
	phoneID := c.Param("id")

	var input UpdatePhoneStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var current string
	err := h.DB.QueryRow("SELECT status FROM used_phones WHERE id = ?", phoneID).Scan(&current)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade-in not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking trade-in"})
		return
	}

	if !models.ValidPhoneTransition(current, input.Status) {
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition from '" + current + "' to '" + input.Status + "'"})
		return
	}

	_, err = h.DB.Exec("UPDATE used_phones SET status = ?, updated_at = ? WHERE id = ?", input.Status, time.Now(), phoneID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trade-in status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Trade-in status updated successfully",
		"status":  input.Status,
	})
}

// DeleteUsedPhone is the handler for DELETE /v1/admin/trade-ins/:id.
// Staff may delete a record in any status.
func (h *Handlers) DeleteUsedPhone(c *gin.Context) {
	phoneID := c.Param("id")

	result, err := h.DB.Exec("DELETE FROM used_phones WHERE id = ?", phoneID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trade-in"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trade-in not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trade-in deleted successfully"})
}
