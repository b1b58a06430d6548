package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/shelterfund/backend/pkg/funding"
	"github.com/shelterfund/backend/pkg/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Donations reads the donations of animals. It is the donation ledger the
// funding engine consumes.
type Donations struct {
	DB *gorm.DB
}

var _ funding.DonationSource = Donations{}

// AmountRaised returns the sum of all donations ever received for the animal.
func (s Donations) AmountRaised(ctx context.Context, animalID uuid.UUID) (decimal.Decimal, error) {
	db := s.DB.WithContext(ctx)

	err := db.First(&models.Animal{}, "id = ?", animalID).Error
	if err != nil {
		return decimal.Zero, err
	}

	var donations []models.Donation
	err = db.Where(&models.Donation{AnimalID: animalID}).Find(&donations).Error
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, donation := range donations {
		sum = sum.Add(donation.Amount)
	}

	return sum, nil
}
