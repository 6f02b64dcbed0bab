package invoice

import "rentdesk-backend/internal/utils"

// View is the render-ready join of an order, its owning customer's display
// fields and its items in insertion order. Assembled from committed rows; the
// renderer never touches the store.
type View struct {
	OrderID         int32
	InvoiceNo       string
	OrderDate       string
	RentStart       *string
	RentEnd         *string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []Line
}

// Line carries one item's stored figures. LineTotal is price x quantity; the
// renderer multiplies by the rental day count itself.
type Line struct {
	Product   string
	Price     float64
	Quantity  int32
	LineTotal float64
}

// Days returns the rental day count for the view's rental window.
func (v *View) Days() int {
	return utils.RentalDays(v.RentStart, v.RentEnd)
}

// GrandTotal is the sum of rendered line amounts, the figure shown in the
// document's total box. Distinct from the persisted order total, which
// excludes rental days.
func (v *View) GrandTotal() float64 {
	total := 0.0
	days := v.Days()
	for _, line := range v.Items {
		total += utils.RenderedLineAmount(line.LineTotal, days)
	}
	return total
}
