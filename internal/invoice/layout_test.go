package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout_PlaceBlock(t *testing.T) {
	t.Run("Blocks stack on one page while they fit", func(t *testing.T) {
		l := NewLayout(100, 10, 10, 5)

		page, y, newPage := l.PlaceBlock(30)
		assert.Equal(t, 1, page)
		assert.Equal(t, 10.0, y)
		assert.False(t, newPage)

		page, y, newPage = l.PlaceBlock(30)
		assert.Equal(t, 1, page)
		assert.Equal(t, 40.0, y)
		assert.False(t, newPage)
	})

	t.Run("Block crossing the bottom margin starts a new page", func(t *testing.T) {
		l := NewLayout(100, 10, 10, 5)
		l.PlaceBlock(30)
		l.PlaceBlock(30)

		// Cursor at 70; a 30-unit block would end at 100, past the 90 limit.
		page, y, newPage := l.PlaceBlock(30)
		assert.Equal(t, 2, page)
		assert.True(t, newPage)
		// Continuation pages leave the header reserve under the top margin.
		assert.Equal(t, 15.0, y)
	})

	t.Run("Block exactly filling the page does not break", func(t *testing.T) {
		l := NewLayout(100, 10, 10, 5)
		page, y, newPage := l.PlaceBlock(80)
		assert.Equal(t, 1, page)
		assert.Equal(t, 10.0, y)
		assert.False(t, newPage)
	})

	t.Run("Advance moves the cursor without breaking", func(t *testing.T) {
		l := NewLayout(100, 10, 10, 5)
		l.Advance(25)
		assert.Equal(t, 35.0, l.CursorY())
		assert.Equal(t, 1, l.Page())
	})

	t.Run("Fits accounts for the bottom margin", func(t *testing.T) {
		l := NewLayout(100, 10, 10, 5)
		assert.True(t, l.Fits(80))
		assert.False(t, l.Fits(81))
	})
}
