package invoice

import (
	"fmt"
	"io"

	"rentdesk-backend/internal/utils"
)

// Page geometry, A4 portrait, millimetres.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginTop    = 16.0
	marginBottom = 22.0
	marginLeft   = 14.0
	marginRight  = 14.0

	colHeaderHeight = 9.0
	rowHeight       = 6.0
	subLineHeight   = 4.5
	summaryHeight   = 13.5
	rowGap          = 2.0
	totalBoxHeight  = 12.0
)

// Column layout: product takes the left span, the three numeric columns are
// right-aligned boxes.
const (
	colProductX = marginLeft
	colPriceX   = 118.0
	colQtyX     = 146.0
	colAmountX  = 166.0
	colNumW     = 26.0
	contentW    = pageWidth - marginLeft - marginRight
)

// Business is the shop identity printed on every invoice.
type Business struct {
	Name        string
	ContactLine string
	AddressLine string
	Currency    string
}

// Renderer lays an assembled view out into a paginated document. It holds no
// per-document state; rendering the same view twice produces an identical
// sequence of draw operations.
type Renderer struct {
	biz Business
}

func NewRenderer(biz Business) *Renderer {
	return &Renderer{biz: biz}
}

// RenderPDF renders the view as a PDF document streamed to w.
func (r *Renderer) RenderPDF(v *View, w io.Writer) error {
	c := newPDFCanvas()
	r.Render(v, c)
	return c.Output(w)
}

// Render draws the full invoice through the canvas: fixed header once, column
// headers on every page, one block per item (row, breakdown sub-line and
// price-calculation summary, never split across pages), then the grand total
// box and footer.
func (r *Renderer) Render(v *View, c Canvas) {
	l := NewLayout(pageHeight, marginTop, marginBottom, colHeaderHeight+2)
	days := utils.RentalDays(v.RentStart, v.RentEnd)

	r.drawDocumentHeader(c, l, v, days)
	r.drawColumnHeaders(c, l.CursorY())
	l.Advance(colHeaderHeight)

	grandTotal := 0.0
	blockHeight := rowHeight + subLineHeight + summaryHeight + rowGap
	for _, item := range v.Items {
		_, y, newPage := l.PlaceBlock(blockHeight)
		if newPage {
			c.AddPage()
			r.drawColumnHeaders(c, marginTop)
		}
		rendered := utils.RenderedLineAmount(item.LineTotal, days)
		grandTotal += rendered
		r.drawItem(c, y, item, days, rendered, grandTotal)
	}

	_, boxY, newPage := l.PlaceBlock(totalBoxHeight + 4)
	if newPage {
		c.AddPage()
	}
	r.drawTotalBox(c, boxY+2, grandTotal)
	r.drawFooter(c)
}

func (r *Renderer) drawDocumentHeader(c Canvas, l *Layout, v *View, days int) {
	if r.biz.ContactLine != "" {
		c.TextBox(marginLeft, l.CursorY(), contentW, 8, "", "C", r.biz.ContactLine)
		l.Advance(5)
	}
	c.TextBox(marginLeft, l.CursorY()+4, contentW, 16, "B", "C", r.biz.Name)
	l.Advance(9)
	c.Line(marginLeft, l.CursorY(), pageWidth-marginRight, l.CursorY())
	l.Advance(4)

	meta := []string{
		fmt.Sprintf("Date: %s", orDash(v.OrderDate)),
		fmt.Sprintf("Customer: %s", v.CustomerName),
		fmt.Sprintf("Phone: %s", v.CustomerPhone),
		fmt.Sprintf("Address: %s", v.CustomerAddress),
		fmt.Sprintf("Rental: %s to %s (%s)",
			orDashPtr(v.RentStart), orDashPtr(v.RentEnd), utils.FormatDays(days)),
	}
	for _, line := range meta {
		c.TextBox(marginLeft, l.CursorY()+3.5, contentW, 10, "", "C", line)
		l.Advance(5.5)
	}
	l.Advance(3)
}

func (r *Renderer) drawColumnHeaders(c Canvas, y float64) {
	base := y + 5
	c.Text(colProductX, base, 10, "B", "Product")
	c.TextBox(colPriceX, base, colNumW, 10, "B", "R", "Price")
	c.TextBox(colQtyX, base, 18, 10, "B", "R", "Qty")
	c.TextBox(colAmountX, base, pageWidth-marginRight-colAmountX, 10, "B", "R", "Amount")
	c.Line(marginLeft, base+2, pageWidth-marginRight, base+2)
}

func (r *Renderer) drawItem(c Canvas, y float64, item Line, days int, rendered, runningTotal float64) {
	base := y + rowHeight - 1
	c.Text(colProductX, base, 10, "", item.Product)
	c.TextBox(colPriceX, base, colNumW, 10, "", "R", utils.FormatAmount(item.Price))
	c.TextBox(colQtyX, base, 18, 10, "", "R", fmt.Sprintf("%d", item.Quantity))
	c.TextBox(colAmountX, base, pageWidth-marginRight-colAmountX, 10, "", "R", utils.FormatAmount(rendered))

	// price x quantity x days breakdown under the row
	sub := base + subLineHeight
	c.Text(colProductX+4, sub, 8, "I", fmt.Sprintf("%s x %d x %s = %s %s",
		utils.FormatAmount(item.Price), item.Quantity, utils.FormatDays(days),
		r.biz.Currency, utils.FormatAmount(rendered)))

	// Price calculation summary, emitted once per item. The per-day line uses
	// this row's figures, so the last drawn occurrence shows only the final
	// item's product — kept for output compatibility with the billing book.
	sy := sub + 4.5
	c.Text(colProductX+4, sy, 8, "", fmt.Sprintf("Per-day products total: %s %s",
		r.biz.Currency, utils.FormatAmount(item.LineTotal)))
	c.Text(colProductX+4, sy+4, 8, "", fmt.Sprintf("Rental period: %s", utils.FormatDays(days)))
	c.Text(colProductX+4, sy+8, 8, "", fmt.Sprintf("Total: %s %s",
		r.biz.Currency, utils.FormatAmount(runningTotal)))

	c.Line(marginLeft, y+rowHeight+subLineHeight+summaryHeight, pageWidth-marginRight, y+rowHeight+subLineHeight+summaryHeight)
}

func (r *Renderer) drawTotalBox(c Canvas, y float64, grandTotal float64) {
	boxW := 80.0
	boxX := pageWidth - marginRight - boxW
	c.Rect(boxX, y, boxW, totalBoxHeight)
	c.TextBox(boxX+4, y+7.5, 36, 11, "B", "L", "GRAND TOTAL")
	c.TextBox(boxX+40, y+7.5, boxW-44, 11, "B", "R",
		fmt.Sprintf("%s %s", r.biz.Currency, utils.FormatAmount(grandTotal)))
}

func (r *Renderer) drawFooter(c Canvas) {
	if r.biz.AddressLine != "" {
		c.TextBox(marginLeft, pageHeight-13, contentW, 8, "", "C", r.biz.AddressLine)
	}
	c.TextBox(marginLeft, pageHeight-8, contentW, 8, "I", "C", "Thank you for your business!")
}

func orDash(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orDashPtr(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
