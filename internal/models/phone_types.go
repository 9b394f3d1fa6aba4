package models

import "time"

// Used phone (trade-in) lifecycle: pending -> approved | rejected, and
// approved units may be moved in_inventory once they become sellable stock.
const (
	PhonePending     = "pending"
	PhoneApproved    = "approved"
	PhoneRejected    = "rejected"
	PhoneInInventory = "in_inventory"
)

var phoneTransitions = map[string][]string{
	PhonePending:  {PhoneApproved, PhoneRejected},
	PhoneApproved: {PhoneInInventory},
}

// UsedPhone is the model for the 'used_phones' table. CustomerName and
// Phone are pointers because staff may add inventory-only units with no
// customer attached.
type UsedPhone struct {
	ID           int64     `json:"id" db:"id"`
	CustomerName *string   `json:"customerName" db:"customer_name"`
	Phone        *string   `json:"phone" db:"phone"`
	DeviceModel  string    `json:"deviceModel" db:"device_model"`
	Condition    string    `json:"condition" db:"condition"`
	OfferPrice   float64   `json:"offerPrice" db:"offer_price"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// ValidPhoneTransition reports whether a trade-in may move from one status
// to another.
func ValidPhoneTransition(from, to string) bool {
	for _, next := range phoneTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
