package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
	"rentdesk-backend/internal/service"

	"github.com/gorilla/mux"
)

// OrderHandler exposes order creation, item replacement and the collaborator
// read/delete endpoints.
type OrderHandler struct {
	svc    service.OrderService
	orders repository.OrderRepository
}

func NewOrderHandler(svc service.OrderService, orders repository.OrderRepository) *OrderHandler {
	return &OrderHandler{svc: svc, orders: orders}
}

// CreateOrder handles POST /orders: new customer row unconditionally, even
// when the phone number already exists.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var in service.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request body"})
		return
	}

	result, err := h.svc.CreateOrder(r.Context(), in, domain.CustomerAlwaysInsert)
	if err != nil {
		writeFailure(w, "CreateOrder", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{
		"customer_id": result.CustomerID,
		"order_id":    result.OrderID,
	})
}

// GenerateBill handles POST /bills: finds or creates the customer by exact
// phone match; the order date is always the current date.
func (h *OrderHandler) GenerateBill(w http.ResponseWriter, r *http.Request) {
	var in service.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request body"})
		return
	}
	in.OrderDate = nil

	result, err := h.svc.CreateOrder(r.Context(), in, domain.CustomerFindOrCreateByPhone)
	if err != nil {
		writeFailure(w, "GenerateBill", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{
		"order_id":   result.OrderID,
		"invoice_no": result.InvoiceNo,
	})
}

// ReplaceItems handles PUT /orders/{id}/items.
func (h *OrderHandler) ReplaceItems(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}

	var in service.ReplaceOrderItemsInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request body"})
		return
	}

	total, err := h.svc.ReplaceOrderItems(r.Context(), orderID, in)
	if err != nil {
		writeFailure(w, "ReplaceItems", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"total": total})
}

// GetOrder handles GET /orders/{id}: order with its items.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetByID(r.Context(), orderID)
	if err != nil {
		writeFailure(w, "GetOrder", err)
		return
	}
	items, err := h.orders.ListItems(r.Context(), orderID)
	if err != nil {
		writeFailure(w, "GetOrder", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"order": order, "items": items})
}

// DeleteOrder handles DELETE /orders/{id}; items cascade.
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.orders.Delete(r.Context(), orderID); err != nil {
		writeFailure(w, "DeleteOrder", err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid id"})
		return 0, false
	}
	return int32(id), true
}
