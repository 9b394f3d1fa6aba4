package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func ordersRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.POST("/v1/orders", h.CreateOrder)
	r.GET("/v1/admin/orders", h.GetAllOrders)
	r.PATCH("/v1/admin/orders/:id/status", h.UpdateOrderStatus)
	return r
}

func TestCreateOrderRecomputesTotal(t *testing.T) {
	h, mock := newMockHandlers(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO purchase_orders")).
		WithArgs("Youssef", "0698765432", sqlmock.AnyArg(), 620.0, "pending",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))

	// The client-sent total is ignored; the snapshot sums to 620.
	body := `{
		"customerName": "Youssef",
		"phone": "0698765432",
		"total": 9999,
		"items": [
			{"name": "iPhone 13 Screen", "quantity": 2, "price": 250},
			{"name": "Battery", "quantity": 1, "price": 120}
		]
	}`
	w := performRequest(ordersRouter(h), "POST", "/v1/orders", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Order struct {
			ID     int64   `json:"id"`
			Total  float64 `json:"total"`
			Status string  `json:"status"`
		} `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Order.Total != 620 {
		t.Errorf("got total %v, want recomputed 620", resp.Order.Total)
	}
	if resp.Order.Status != "pending" {
		t.Errorf("got status %q, want pending", resp.Order.Status)
	}
	if resp.Order.ID != 3 {
		t.Errorf("got id %d, want 3", resp.Order.ID)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	h, _ := newMockHandlers(t)

	bodies := []string{
		`{}`,
		`{"customerName":"Youssef","phone":"0698765432","items":[]}`,
		`{"customerName":"Youssef","phone":"0698765432","items":[{"name":"Screen","quantity":0,"price":10}]}`,
	}
	for _, body := range bodies {
		w := performRequest(ordersRouter(h), "POST", "/v1/orders", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: got status %d, want 400", body, w.Code)
		}
	}
}

func TestGetAllOrdersDecodesItems(t *testing.T) {
	h, mock := newMockHandlers(t)

	now := time.Now()
	itemsJSON := `[{"name":"iPhone 13 Screen","quantity":2,"price":250}]`
	rows := sqlmock.NewRows([]string{
		"id", "customer_name", "phone", "items", "total", "status", "created_at", "updated_at",
	}).
		AddRow(1, "Youssef", "0698765432", []byte(itemsJSON), 500.0, "pending", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM purchase_orders")).WillReturnRows(rows)

	w := performRequest(ordersRouter(h), "GET", "/v1/admin/orders", "")
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}

	var resp struct {
		Orders []struct {
			Items []struct {
				Name     string  `json:"name"`
				Quantity int     `json:"quantity"`
				Price    float64 `json:"price"`
			} `json:"items"`
		} `json:"orders"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if len(resp.Orders) != 1 || len(resp.Orders[0].Items) != 1 {
		t.Fatalf("expected one order with one item, got %+v", resp.Orders)
	}
	item := resp.Orders[0].Items[0]
	if item.Name != "iPhone 13 Screen" || item.Quantity != 2 || item.Price != 250 {
		t.Errorf("item snapshot lost in round trip: %+v", item)
	}
}

func TestUpdateOrderStatusSingleStep(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		target   string
		wantCode int
	}{
		{"pending advances to processing", "pending", "processing", http.StatusOK},
		{"processing advances to shipped", "processing", "shipped", http.StatusOK},
		{"shipped advances to delivered", "shipped", "delivered", http.StatusOK},
		{"no skip-ahead", "pending", "shipped", http.StatusConflict},
		{"no regression", "shipped", "processing", http.StatusConflict},
		{"delivered is terminal", "delivered", "pending", http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock := newMockHandlers(t)

			mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM purchase_orders WHERE id = ?")).
				WithArgs("1").
				WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(tt.current))

			if tt.wantCode == http.StatusOK {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE purchase_orders SET status = ?, updated_at = ? WHERE id = ?")).
					WithArgs(tt.target, sqlmock.AnyArg(), "1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			}

			body := `{"status":"` + tt.target + `"}`
			w := performRequest(ordersRouter(h), "PATCH", "/v1/admin/orders/1/status", body)
			if w.Code != tt.wantCode {
				t.Fatalf("got status %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	h, mock := newMockHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM purchase_orders WHERE id = ?")).
		WithArgs("99").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	w := performRequest(ordersRouter(h), "PATCH", "/v1/admin/orders/99/status", `{"status":"processing"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}
