package utils

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// DateLayout is the yyyy-mm-dd format used for all business dates.
const DateLayout = "2006-01-02"

// Coerce clamps a price-like input to a finite non-negative number. NaN,
// infinities and negatives all become zero; a bad number never fails a write.
func Coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// LineAmount computes the stored amount for an order item: price x quantity.
// Rental days are not applied here.
func LineAmount(price, quantity float64) float64 {
	return Coerce(price) * Coerce(quantity)
}

// RentalDays returns the inclusive day count between start and end, minimum 1.
// A missing or unparseable date yields 1, as does an end before the start.
func RentalDays(start, end *string) int {
	if start == nil || end == nil {
		return 1
	}
	s, err := time.Parse(DateLayout, *start)
	if err != nil {
		return 1
	}
	e, err := time.Parse(DateLayout, *end)
	if err != nil {
		return 1
	}
	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// RenderedLineAmount is the amount shown on the invoice: stored line amount
// multiplied by the rental day count. Computed at render time only.
func RenderedLineAmount(lineTotal float64, days int) float64 {
	return lineTotal * float64(days)
}

// FormatAmount renders a money value with exactly two decimal places.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatDays renders a day count with a pluralized unit label.
func FormatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
