package models

import "time"

// PartStatus is the derived stock level of a spare part.
type PartStatus string

const (
	PartInStock    PartStatus = "in_stock"
	PartLowStock   PartStatus = "low_stock"
	PartOutOfStock PartStatus = "out_of_stock"
)

// DefaultMinStock is applied when a part is created without a reorder threshold.
const DefaultMinStock = 5

// Part is the model for the 'parts_inventory' table.
// Status is never stored by the caller; it is always derived from
// stock and min_stock via DerivePartStatus.
type Part struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Slug      string     `json:"slug" db:"slug"`
	Category  string     `json:"category" db:"category"`
	Price     float64    `json:"price" db:"price"`
	Stock     int        `json:"stock" db:"stock"`
	MinStock  int        `json:"minStock" db:"min_stock"`
	Status    PartStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// DerivePartStatus maps a stock count and reorder threshold to a status.
// Zero stock is always out_of_stock, even when min_stock is 0; a positive
// stock at or below the threshold is low_stock.
func DerivePartStatus(stock, minStock int) PartStatus {
	if stock == 0 {
		return PartOutOfStock
	}
	if stock <= minStock {
		return PartLowStock
	}
	return PartInStock
}
