package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Donation is money received for a specific animal.
type Donation struct {
	DefaultModel
	AnimalID uuid.UUID `gorm:"type:uuid;index"`
	Animal   Animal
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8);check:donation_amount_positive,amount > 0"`
	Date     time.Time
	Note     string
}

// BeforeSave
//   - sets the timezone for the Date for UTC
//   - trims whitespace from the note
//   - rejects non-positive amounts
func (d *Donation) BeforeSave(_ *gorm.DB) error {
	d.Note = strings.TrimSpace(d.Note)

	if d.Date.IsZero() {
		d.Date = time.Now().In(time.UTC)
	} else {
		d.Date = d.Date.In(time.UTC)
	}

	if !d.Amount.IsPositive() {
		return ErrDonationAmountNotPositive
	}

	return nil
}
