package funding

import (
	"github.com/google/uuid"
	"github.com/shelterfund/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// Pool is the donation balance of an animal. It is never stored, but always
// derived from the donations and the live allocations.
type Pool struct {
	AnimalID     uuid.UUID       `json:"animalId" example:"a0909e84-e8f9-4cb6-82a5-025dff105ff2"`
	AmountRaised decimal.Decimal `json:"amountRaised" example:"1000"` // Sum of all donations for the animal
	Committed    decimal.Decimal `json:"committed" example:"850"`     // Sum of the donation covered amounts of all allocations
	Remaining    decimal.Decimal `json:"remaining" example:"150"`     // Donations not yet spent
}

// newPool derives the pool from the amount raised and the allocations.
// The allocation with the ID in excluding is left out of the sum.
func newPool(animalID uuid.UUID, amountRaised decimal.Decimal, allocations []models.Allocation, excluding uuid.UUID) Pool {
	committed := decimal.Zero
	for _, a := range allocations {
		if excluding != uuid.Nil && a.ID == excluding {
			continue
		}
		committed = committed.Add(a.DonationCoveredAmount)
	}

	return Pool{
		AnimalID:     animalID,
		AmountRaised: amountRaised,
		Committed:    committed,
		Remaining:    amountRaised.Sub(committed),
	}
}
