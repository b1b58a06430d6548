package funding

import (
	"fmt"

	"golang.org/x/text/currency"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "USD"

// Scale returns the number of decimal places of the minor unit of an
// ISO 4217 currency code, e.g. 2 for USD and 0 for JPY.
func Scale(code string) (int32, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 0, fmt.Errorf("unknown currency %q: %w", code, err)
	}

	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale), nil
}
