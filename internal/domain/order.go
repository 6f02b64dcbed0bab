package domain

import "time"

// Order is a time-bounded rental order owned by exactly one customer.
// Total always equals the sum of the current items' line totals; both are
// rewritten inside the same database transaction on every item write.
type Order struct {
	ID         int32     `json:"id"`
	InvoiceNo  string    `json:"invoice_no"`
	CustomerID int32     `json:"customer_id"`
	OrderDate  string    `json:"order_date"` // yyyy-mm-dd
	RentStart  *string   `json:"rent_start,omitempty"`
	RentEnd    *string   `json:"rent_end,omitempty"`
	Total      float64   `json:"total"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}

// OrderItem is a line within an order. LineTotal is price x quantity; rental
// days are applied at render time only, never persisted.
type OrderItem struct {
	ID        int32   `json:"id"`
	OrderID   int32   `json:"order_id"`
	Product   string  `json:"product"`
	Price     float64 `json:"price"`
	Quantity  int32   `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// OrderPatch carries optional date updates for a replace-items call. Nil
// fields leave the stored value unchanged (merge-patch, not overwrite).
type OrderPatch struct {
	OrderDate *string
	RentStart *string
	RentEnd   *string
}
