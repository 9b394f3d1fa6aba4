package models

import "time"

// Purchase order lifecycle. Orders only ever move forward, one step at a
// time: pending -> processing -> shipped -> delivered.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
)

// orderSequence is the forward progression of order statuses.
var orderSequence = []string{OrderPending, OrderProcessing, OrderShipped, OrderDelivered}

// PurchaseOrder is the model for the 'purchase_orders' table.
// Items is a snapshot taken at order time, not references to parts rows.
type PurchaseOrder struct {
	ID           int64       `json:"id" db:"id"`
	CustomerName string      `json:"customerName" db:"customer_name"`
	Phone        string      `json:"phone" db:"phone"`
	Items        []OrderItem `json:"items" db:"items"`
	Total        float64     `json:"total" db:"total"`
	Status       string      `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderItem is one line of the order snapshot, stored as JSON in the
// 'items' column.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// NextOrderStatus returns the immediate successor of the given status.
// ok is false for 'delivered' (terminal) and for unknown values.
func NextOrderStatus(current string) (string, bool) {
	for i, s := range orderSequence {
		if s == current {
			if i == len(orderSequence)-1 {
				return "", false
			}
			return orderSequence[i+1], true
		}
	}
	return "", false
}

// OrderTotal sums price * quantity over the snapshot. The server recomputes
// the total from the items instead of trusting the caller.
func OrderTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
