package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

// CustomerHandler covers the collaborator endpoints: free-text search, plain
// status updates and cascading deletes. None of them touch order totals.
type CustomerHandler struct {
	customers repository.CustomerRepository
}

func NewCustomerHandler(customers repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// Search handles GET /customers?q=.
func (h *CustomerHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	customers, err := h.customers.Search(r.Context(), query)
	if err != nil {
		writeFailure(w, "SearchCustomers", err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeSuccess(w, http.StatusOK, map[string]any{"customers": customers})
}

type customerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	AltPhone string `json:"alt_phone"`
	Address  string `json:"address"`
}

func decodeCustomer(w http.ResponseWriter, r *http.Request) (*domain.Customer, bool) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request body"})
		return nil, false
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "name and phone are required"})
		return nil, false
	}
	return &domain.Customer{
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		AltPhone: strings.TrimSpace(req.AltPhone),
		Address:  strings.TrimSpace(req.Address),
	}, true
}

// Create handles POST /customers: a standalone customer row with no order.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	customer, ok := decodeCustomer(w, r)
	if !ok {
		return
	}
	if err := h.customers.Create(r.Context(), customer); err != nil {
		writeFailure(w, "CreateCustomer", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"customer_id": customer.ID})
}

// Update handles PUT /customers/{id}: full replacement of the contact fields.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	customer, ok := decodeCustomer(w, r)
	if !ok {
		return
	}
	customer.ID = id
	if err := h.customers.Update(r.Context(), customer); err != nil {
		writeFailure(w, "UpdateCustomer", err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /customers/{id}/status.
func (h *CustomerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Status) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "status is required"})
		return
	}

	if err := h.customers.UpdateStatus(r.Context(), id, strings.TrimSpace(req.Status)); err != nil {
		writeFailure(w, "UpdateCustomerStatus", err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}

// Delete handles DELETE /customers/{id}; orders and items cascade.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.customers.Delete(r.Context(), id); err != nil {
		writeFailure(w, "DeleteCustomer", err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}
