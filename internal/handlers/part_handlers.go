package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/4phone-ma/4phone-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

//
// --- Parts Inventory Handlers ---
//

// CreatePartInput defines the expected JSON for adding a part. Stock and
// MinStock are pointers so that an explicit 0 survives validation.
type CreatePartInput struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Stock    *int    `json:"stock" binding:"required,gte=0"`
	MinStock *int    `json:"minStock" binding:"omitempty,gte=0"`
}

// CreatePart is the handler for POST /v1/admin/parts
func (h *Handlers) CreatePart(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input CreatePartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	minStock := models.DefaultMinStock
	if input.MinStock != nil {
		minStock = *input.MinStock
	}

	// 2. --- Build the Part (status is always derived, never caller-supplied) ---
	now := time.Now()
	part := &models.Part{
		Name:      input.Name,
		Slug:      slug.Make(input.Name),
		Category:  input.Category,
		Price:     input.Price,
		Stock:     *input.Stock,
		MinStock:  minStock,
		Status:    models.DerivePartStatus(*input.Stock, minStock),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 3. --- Insert ---
	query := `
		INSERT INTO parts_inventory
		(name, slug, category, price, stock, min_stock, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		part.Name, part.Slug, part.Category, part.Price,
		part.Stock, part.MinStock, part.Status, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert part"})
		return
	}

	partID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new part ID"})
		return
	}
	part.ID = partID

	// 4. --- Return the full row so the dashboard can prepend it ---
	c.JSON(http.StatusCreated, gin.H{
		"message": "Part added successfully",
		"part":    part,
	})
}

// GetAllParts is the handler for GET /v1/parts (public catalog and dashboard)
func (h *Handlers) GetAllParts(c *gin.Context) {
	query := `
		SELECT id, name, slug, category, price, stock, min_stock, status, created_at, updated_at
		FROM parts_inventory
		ORDER BY created_at DESC`

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch parts"})
		return
	}
	defer rows.Close()

	var parts []models.Part
	for rows.Next() {
		var p models.Part
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Category, &p.Price,
			&p.Stock, &p.MinStock, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan part row"})
			return
		}
		parts = append(parts, p)
	}

	if parts == nil {
		parts = []models.Part{}
	}

	c.JSON(http.StatusOK, gin.H{"parts": parts})
}

// UpdatePartStockInput carries the new on-hand count.
type UpdatePartStockInput struct {
	Stock *int `json:"stock" binding:"required,gte=0"`
}

// UpdatePartStock is the handler for PATCH /v1/admin/parts/:id/stock.
// Status is recomputed from the stored min_stock on every call.
func (h *Handlers) UpdatePartStock(c *gin.Context) {
	partID := c.Param("id")

	var input UpdatePartStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 1. --- Fetch the reorder threshold for this part ---
	var minStock int
	err := h.DB.QueryRow("SELECT min_stock FROM parts_inventory WHERE id = ?", partID).Scan(&minStock)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Part not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking part"})
		return
	}

	// 2. --- Re-derive and persist ---
	newStatus := models.DerivePartStatus(*input.Stock, minStock)

	query := "UPDATE parts_inventory SET stock = ?, status = ?, updated_at = ? WHERE id = ?"
	_, err = h.DB.Exec(query, *input.Stock, newStatus, time.Now(), partID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}

	// 3. --- Return just the patched fields; the client updates its copy in place ---
	c.JSON(http.StatusOK, gin.H{
		"message": "Stock updated successfully",
		"stock":   *input.Stock,
		"status":  newStatus,
	})
}

// DeletePart is the handler for DELETE /v1/admin/parts/:id
func (h *Handlers) DeletePart(c *gin.Context) {
	partID := c.Param("id")

	result, err := h.DB.Exec("DELETE FROM parts_inventory WHERE id = ?", partID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete part"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Part not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Part deleted successfully"})
}

// ReconcilePartStatuses re-derives the status column for every part and
// fixes drift from out-of-band edits. Invoked by the background worker.
func (h *Handlers) ReconcilePartStatuses() {
	rows, err := h.DB.Query("SELECT id, stock, min_stock, status FROM parts_inventory")
	if err != nil {
		log.Printf("Status reconcile: query failed: %v", err)
		return
	}
	defer rows.Close()

	type fix struct {
		id     int64
		status models.PartStatus
	}
	var fixes []fix

	for rows.Next() {
		var (
			id              int64
			stock, minStock int
			stored          models.PartStatus
		)
		if err := rows.Scan(&id, &stock, &minStock, &stored); err != nil {
			log.Printf("Status reconcile: scan failed: %v", err)
			return
		}
		if derived := models.DerivePartStatus(stock, minStock); derived != stored {
			fixes = append(fixes, fix{id: id, status: derived})
		}
	}

	for _, f := range fixes {
		_, err := h.DB.Exec("UPDATE parts_inventory SET status = ?, updated_at = ? WHERE id = ?", f.status, time.Now(), f.id)
		if err != nil {
			log.Printf("Status reconcile: update of part %d failed: %v", f.id, err)
			continue
		}
		log.Printf("Status reconcile: part %d corrected to %s", f.id, f.status)
	}
}
