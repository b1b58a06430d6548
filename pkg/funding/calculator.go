package funding

import (
	"github.com/shopspring/decimal"
)

// Split is the division of a cost into the part covered by donations and
// the part that needs external funding.
//
// Covered + Outstanding always equals TotalCost.
type Split struct {
	TotalCost   decimal.Decimal `json:"totalCost" example:"120.5"`
	Covered     decimal.Decimal `json:"covered" example:"100"`
	Outstanding decimal.Decimal `json:"outstanding" example:"20.5"`
}

// ComputeSplit divides totalCost between the available balance and external
// funding.
//
// scale is the number of decimal places of the minor currency unit. The cost
// is rounded to it, the available balance is truncated so that the covered
// amount never exceeds what is actually available. A negative balance counts
// as zero.
func ComputeSplit(totalCost, available decimal.Decimal, scale int32) (Split, error) {
	total := totalCost.Round(scale)
	if !total.IsPositive() {
		return Split{}, ErrInvalidAmount
	}

	available = decimal.Max(available, decimal.Zero).Truncate(scale)
	covered := decimal.Min(total, available)

	return Split{
		TotalCost:   total,
		Covered:     covered,
		Outstanding: total.Sub(covered),
	}, nil
}
