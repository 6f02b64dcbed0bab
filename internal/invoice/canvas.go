package invoice

// Canvas is the drawing surface the renderer writes to. Coordinates are in
// millimetres from the page's top-left corner; y values address a text
// baseline. The production canvas is a PDF page; tests substitute a recorder.
type Canvas interface {
	// AddPage starts a new page and makes it current.
	AddPage()
	// Text draws left-aligned text at (x, y).
	Text(x, y, size float64, style string, text string)
	// TextBox draws text inside a box of width w starting at x, aligned
	// "L", "C" or "R" within it.
	TextBox(x, y, w, size float64, style, align, text string)
	// Line draws a straight rule between two points.
	Line(x1, y1, x2, y2 float64)
	// Rect draws an unfilled rectangle border.
	Rect(x, y, w, h float64)
}
