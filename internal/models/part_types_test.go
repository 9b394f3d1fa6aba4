package models

import "testing"

func TestDerivePartStatus(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		minStock int
		want     PartStatus
	}{
		{"zero stock is out of stock", 0, 5, PartOutOfStock},
		{"zero stock with zero threshold", 0, 0, PartOutOfStock},
		{"zero stock with large threshold", 0, 100, PartOutOfStock},
		{"stock below threshold", 3, 5, PartLowStock},
		{"stock at threshold", 5, 5, PartLowStock},
		{"stock of one at threshold one", 1, 1, PartLowStock},
		{"stock above threshold", 15, 5, PartInStock},
		{"stock just above threshold", 6, 5, PartInStock},
		{"zero threshold never yields low stock", 1, 0, PartInStock},
		{"zero threshold with plenty", 50, 0, PartInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DerivePartStatus(tt.stock, tt.minStock); got != tt.want {
				t.Errorf("DerivePartStatus(%d, %d) = %s, want %s", tt.stock, tt.minStock, got, tt.want)
			}
		})
	}
}

func TestDerivePartStatusDeterministic(t *testing.T) {
	// Same input twice must give the same answer; the rule carries no state.
	for i := 0; i < 3; i++ {
		if got := DerivePartStatus(3, 5); got != PartLowStock {
			t.Fatalf("call %d: DerivePartStatus(3, 5) = %s, want %s", i, got, PartLowStock)
		}
	}
}

func TestDerivePartStatusLifecycle(t *testing.T) {
	// A part created with stock 15 and threshold 5, then restocked and
	// drained, walks through every status.
	steps := []struct {
		stock int
		want  PartStatus
	}{
		{15, PartInStock},
		{3, PartLowStock},
		{0, PartOutOfStock},
		{10, PartInStock},
	}
	for _, step := range steps {
		if got := DerivePartStatus(step.stock, 5); got != step.want {
			t.Errorf("stock %d: got %s, want %s", step.stock, got, step.want)
		}
	}
}
