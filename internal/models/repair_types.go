package models

import "time"

// Repair request lifecycle: pending -> in_progress -> completed, with a
// rejected branch reachable only from pending. completed and rejected are
// terminal.
const (
	RepairPending    = "pending"
	RepairInProgress = "in_progress"
	RepairCompleted  = "completed"
	RepairRejected   = "rejected"
)

var repairTransitions = map[string][]string{
	RepairPending:    {RepairInProgress, RepairRejected},
	RepairInProgress: {RepairCompleted},
}

// RepairRequest is the model for the 'repair_requests' table.
type RepairRequest struct {
	ID            int64     `json:"id" db:"id"`
	CustomerName  string    `json:"customerName" db:"customer_name"`
	Phone         string    `json:"phone" db:"phone"`
	DeviceModel   string    `json:"deviceModel" db:"device_model"`
	Problem       string    `json:"problem" db:"problem"`
	EstimatedCost *float64  `json:"estimatedCost" db:"estimated_cost"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// ValidRepairTransition reports whether a repair request may move from one
// status to another.
func ValidRepairTransition(from, to string) bool {
	for _, next := range repairTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
