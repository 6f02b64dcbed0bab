package invoice

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// pdfCanvas renders onto A4 portrait pages via gofpdf. Page breaks are driven
// entirely by the Layout; auto page break stays off.
type pdfCanvas struct {
	pdf *gofpdf.Fpdf
}

func newPDFCanvas() *pdfCanvas {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &pdfCanvas{pdf: pdf}
}

func (c *pdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *pdfCanvas) Text(x, y, size float64, style string, text string) {
	c.pdf.SetFont("Helvetica", style, size)
	c.pdf.Text(x, y, text)
}

func (c *pdfCanvas) TextBox(x, y, w, size float64, style, align, text string) {
	c.pdf.SetFont("Helvetica", style, size)
	height := size * 0.42
	c.pdf.SetXY(x, y-height)
	c.pdf.CellFormat(w, height, text, "", 0, align, false, 0, "")
}

func (c *pdfCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *pdfCanvas) Rect(x, y, w, h float64) {
	c.pdf.Rect(x, y, w, h, "D")
}

// Output writes the finished document to w.
func (c *pdfCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}
