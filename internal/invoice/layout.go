package invoice

// Layout tracks the vertical write cursor across pages. It owns the
// page-break policy; drawing code asks it where a block of a given height
// lands and never inspects the cursor arithmetic itself.
type Layout struct {
	page          int
	cursorY       float64
	pageHeight    float64
	topMargin     float64
	bottomMargin  float64
	headerReserve float64 // space kept under the top margin on continuation pages
}

func NewLayout(pageHeight, topMargin, bottomMargin, headerReserve float64) *Layout {
	return &Layout{
		page:          1,
		cursorY:       topMargin,
		pageHeight:    pageHeight,
		topMargin:     topMargin,
		bottomMargin:  bottomMargin,
		headerReserve: headerReserve,
	}
}

func (l *Layout) Page() int {
	return l.page
}

func (l *Layout) CursorY() float64 {
	return l.cursorY
}

// Advance moves the cursor down without a page-break check. Used for blocks
// that are drawn unconditionally at the current position, like the document
// header on page one.
func (l *Layout) Advance(height float64) {
	l.cursorY += height
}

// Fits reports whether a block of the given height ends above the bottom
// margin at the current cursor.
func (l *Layout) Fits(height float64) bool {
	return l.cursorY+height <= l.pageHeight-l.bottomMargin
}

// PlaceBlock reserves height of vertical space at the cursor, breaking to a
// new page when the block would cross the bottom margin. On a break the
// cursor restarts below the top margin plus the header reserve, so the caller
// can redraw repeated headers above the returned y. Returns the page and y
// where the block starts and whether a break occurred.
func (l *Layout) PlaceBlock(height float64) (page int, y float64, newPage bool) {
	if !l.Fits(height) {
		l.page++
		l.cursorY = l.topMargin + l.headerReserve
		newPage = true
	}
	y = l.cursorY
	l.cursorY += height
	return l.page, y, newPage
}
