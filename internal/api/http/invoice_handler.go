package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"rentdesk-backend/internal/invoice"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/service"
)

// InvoiceHandler streams rendered invoices and mails them on request.
type InvoiceHandler struct {
	invoices service.InvoiceService
	renderer *invoice.Renderer
	email    service.EmailService
}

func NewInvoiceHandler(invoices service.InvoiceService, renderer *invoice.Renderer, email service.EmailService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, renderer: renderer, email: email}
}

// Download handles GET /orders/{id}/invoice. The document is written straight
// to the response; once bytes are out a failure can only terminate the stream
// and be logged, not turned into a structured error.
func (h *InvoiceHandler) Download(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := h.invoices.Assemble(r.Context(), orderID)
	if err != nil {
		writeFailure(w, "RenderInvoice", err)
		return
	}

	name := view.InvoiceNo
	if name == "" {
		name = fmt.Sprintf("%d", view.OrderID)
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", name))

	if err := h.renderer.RenderPDF(view, w); err != nil {
		logger.Error("invoice stream failed after headers sent", "operation", "RenderInvoice", "orderID", orderID, "error", err)
	}
}

type emailInvoiceRequest struct {
	Email string `json:"email"`
}

// Email handles POST /orders/{id}/invoice/email: renders the invoice and
// sends it as an attachment to the supplied address.
func (h *InvoiceHandler) Email(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req emailInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "email is required"})
		return
	}

	view, err := h.invoices.Assemble(r.Context(), orderID)
	if err != nil {
		writeFailure(w, "EmailInvoice", err)
		return
	}

	err = h.email.SendInvoice(r.Context(), req.Email, view.CustomerName, view.InvoiceNo, view.GrandTotal(),
		func(out io.Writer) error {
			return h.renderer.RenderPDF(view, out)
		})
	if err != nil {
		writeFailure(w, "EmailInvoice", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"invoice_no": view.InvoiceNo})
}
