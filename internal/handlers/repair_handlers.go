package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/4phone-ma/4phone-golang/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Repair Request Handlers ---
//

// CreateRepairInput defines the expected JSON from the public repair form.
// EstimatedCost stays nil until staff quote the job.
type CreateRepairInput struct {
	CustomerName  string   `json:"customerName" binding:"required"`
	Phone         string   `json:"phone" binding:"required"`
	DeviceModel   string   `json:"deviceModel" binding:"required"`
	Problem       string   `json:"problem" binding:"required"`
	EstimatedCost *float64 `json:"estimatedCost" binding:"omitempty,gte=0"`
}

// CreateRepairRequest is the handler for POST /v1/repairs
func (h *Handlers) CreateRepairRequest(c *gin.Context) {
	var input CreateRepairInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	req := &models.RepairRequest{
		CustomerName:  input.CustomerName,
		Phone:         input.Phone,
		DeviceModel:   input.DeviceModel,
		Problem:       input.Problem,
		EstimatedCost: input.EstimatedCost,
		Status:        models.RepairPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	query := `
		INSERT INTO repair_requests
		(customer_name, phone, device_model, problem, estimated_cost, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		req.CustomerName, req.Phone, req.DeviceModel, req.Problem,
		req.EstimatedCost, req.Status, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create repair request"})
		return
	}

	reqID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new request ID"})
		return
	}
	req.ID = reqID

	c.JSON(http.StatusCreated, gin.H{
		"message": "Repair request submitted successfully",
		"request": req,
	})
}

// GetAllRepairRequests is the handler for GET /v1/admin/repairs
func (h *Handlers) GetAllRepairRequests(c *gin.Context) {
	query := `
		SELECT id, customer_name, phone, device_model, problem, estimated_cost, status, created_at, updated_at
		FROM repair_requests
		ORDER BY created_at DESC`

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch repair requests"})
		return
	}
	defer rows.Close()

	var requests []models.RepairRequest
	for rows.Next() {
		var r models.RepairRequest
		var cost sql.NullFloat64

		if err := rows.Scan(
			&r.ID, &r.CustomerName, &r.Phone, &r.DeviceModel, &r.Problem,
			&cost, &r.Status, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan repair request row"})
			return
		}
		if cost.Valid {
			val := cost.Float64
			r.EstimatedCost = &val
		}

		requests = append(requests, r)
	}

	if requests == nil {
		requests = []models.RepairRequest{}
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// UpdateRepairStatusInput carries the requested status and, optionally, the
// quote set when the job is taken on.
type UpdateRepairStatusInput struct {
	Status        string   `json:"status" binding:"required,oneof=pending in_progress completed rejected"`
	EstimatedCost *float64 `json:"estimatedCost" binding:"omitempty,gte=0"`
}

// UpdateRepairStatus is the handler for PATCH /v1/admin/repairs/:id/status.
// Transitions follow the lifecycle: pending -> in_progress | rejected,
// in_progress -> completed. completed and rejected are terminal.
func (h *Handlers) UpdateRepairStatus(c *gin.Context) {
	requestID := c.Param("id")

	var input UpdateRepairStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 1. --- Fetch the current status ---
	var current string
	err := h.DB.QueryRow("SELECT status FROM repair_requests WHERE id = ?", requestID).Scan(&current)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Repair request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking request"})
		return
	}

	// 2. --- Validate the transition ---
	if !models.ValidRepairTransition(current, input.Status) {
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition from '" + current + "' to '" + input.Status + "'"})
		return
	}

	// 3. --- Persist (quote may be set in the same call) ---
	if input.EstimatedCost != nil {
		_, err = h.DB.Exec(
			"UPDATE repair_requests SET status = ?, estimated_cost = ?, updated_at = ? WHERE id = ?",
			input.Status, *input.EstimatedCost, time.Now(), requestID,
		)
	} else {
		_, err = h.DB.Exec(
			"UPDATE repair_requests SET status = ?, updated_at = ? WHERE id = ?",
			input.Status, time.Now(), requestID,
		)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Repair request status updated successfully",
		"status":  input.Status,
	})
}
