package models

import "testing"

func TestValidRepairTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{RepairPending, RepairInProgress, true},
		{RepairPending, RepairRejected, true},
		{RepairInProgress, RepairCompleted, true},

		{RepairPending, RepairCompleted, false},
		{RepairInProgress, RepairRejected, false},
		{RepairInProgress, RepairPending, false},
		{RepairCompleted, RepairInProgress, false},
		{RepairCompleted, RepairPending, false},
		{RepairRejected, RepairInProgress, false},
		{RepairRejected, RepairPending, false},
		{"bogus", RepairPending, false},
	}

	for _, tt := range tests {
		if got := ValidRepairTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("ValidRepairTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidPhoneTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{PhonePending, PhoneApproved, true},
		{PhonePending, PhoneRejected, true},
		{PhoneApproved, PhoneInInventory, true},

		{PhonePending, PhoneInInventory, false},
		{PhoneApproved, PhoneRejected, false},
		{PhoneRejected, PhoneApproved, false},
		{PhoneRejected, PhonePending, false},
		{PhoneInInventory, PhoneApproved, false},
		{PhoneInInventory, PhonePending, false},
	}

	for _, tt := range tests {
		if got := ValidPhoneTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("ValidPhoneTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNextOrderStatus(t *testing.T) {
	tests := []struct {
		current string
		next    string
		ok      bool
	}{
		{OrderPending, OrderProcessing, true},
		{OrderProcessing, OrderShipped, true},
		{OrderShipped, OrderDelivered, true},
		{OrderDelivered, "", false},
		{"bogus", "", false},
	}

	for _, tt := range tests {
		next, ok := NextOrderStatus(tt.current)
		if next != tt.next || ok != tt.ok {
			t.Errorf("NextOrderStatus(%q) = (%q, %v), want (%q, %v)", tt.current, next, ok, tt.next, tt.ok)
		}
	}
}

func TestOrderTotal(t *testing.T) {
	items := []OrderItem{
		{Name: "iPhone 13 screen", Quantity: 2, Price: 250},
		{Name: "Battery", Quantity: 1, Price: 120},
	}
	if got := OrderTotal(items); got != 620 {
		t.Errorf("OrderTotal = %v, want 620", got)
	}

	if got := OrderTotal(nil); got != 0 {
		t.Errorf("OrderTotal(nil) = %v, want 0", got)
	}
}
