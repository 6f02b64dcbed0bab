package service

import (
	"context"
	"io"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/invoice"
)

// ItemInput is one requested order line. Price and quantity pass through
// defensive coercion; bad numbers become zero rather than failing the write.
type ItemInput struct {
	Product  string  `json:"product"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

type CreateOrderInput struct {
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	AltPhone  string      `json:"alt_phone"`
	Address   string      `json:"address"`
	OrderDate *string     `json:"order_date"`
	RentStart *string     `json:"rent_start"`
	RentEnd   *string     `json:"rent_end"`
	Items     []ItemInput `json:"items"`
}

type CreateOrderResult struct {
	CustomerID int32
	OrderID    int32
	InvoiceNo  string
	Total      float64
}

type ReplaceOrderItemsInput struct {
	OrderDate *string     `json:"order_date"`
	RentStart *string     `json:"rent_start"`
	RentEnd   *string     `json:"rent_end"`
	Items     []ItemInput `json:"items"`
}

type OrderService interface {
	// CreateOrder persists customer, order and items as one atomic unit. The
	// resolution policy decides whether the customer row is inserted
	// unconditionally or found-or-created by phone.
	CreateOrder(ctx context.Context, in CreateOrderInput, resolution domain.CustomerResolution) (*CreateOrderResult, error)
	// ReplaceOrderItems atomically swaps the order's item set, recomputes the
	// total and merge-patches any supplied dates.
	ReplaceOrderItems(ctx context.Context, orderID int32, in ReplaceOrderItemsInput) (float64, error)
}

type InvoiceService interface {
	// Assemble joins the committed order, customer and items into a
	// render-ready view. Returns domain.ErrOrderNotFound when the order id
	// does not resolve.
	Assemble(ctx context.Context, orderID int32) (*invoice.View, error)
}

type EmailService interface {
	// SendInvoice mails the rendered invoice as a PDF attachment; attach
	// streams the document into the message body writer.
	SendInvoice(ctx context.Context, to, customerName, invoiceNo string, total float64, attach func(io.Writer) error) error
	// SendDailySalesReport mails order count and revenue for one day.
	SendDailySalesReport(ctx context.Context, to, date string, orderCount int32, total float64) error
}
