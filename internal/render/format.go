package render

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// maxCents bounds what go-money can hold as int64 cents.
const maxCents = 1e17

// Money formats v as US dollars with two decimals, e.g. $1,234.56.
func Money(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if math.Abs(v)*100 >= maxCents {
		return "$" + d.StringFixed(2)
	}
	return money.New(d.Shift(2).IntPart(), money.USD).Display()
}

// Quantity formats an asset quantity, already rounded to 8 decimals.
func Quantity(v float64) string {
	return decimal.NewFromFloat(v).Round(8).String()
}

// Growth formats a growth rate in percent; nil means not applicable.
func Growth(pct *float64) string {
	if pct == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *pct)
}

// Rate formats a fractional rate as percent.
func Rate(r float64) string {
	return fmt.Sprintf("%.2f%%", r*100)
}
