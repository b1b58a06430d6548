package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AllocationStatus controls if an allocation is visible to donors.
type AllocationStatus string

const (
	AllocationStatusDraft     AllocationStatus = "Draft"
	AllocationStatusVerified  AllocationStatus = "Verified"
	AllocationStatusPublished AllocationStatus = "Published"
)

// Valid reports if the status is one of the known statuses.
func (s AllocationStatus) Valid() bool {
	switch s {
	case AllocationStatusDraft, AllocationStatusVerified, AllocationStatusPublished:
		return true
	}
	return false
}

// FundingStatus is derived from the external share of an allocation.
type FundingStatus string

const (
	FundingStatusFullyFunded     FundingStatus = "Fully Funded"
	FundingStatusPartiallyFunded FundingStatus = "Partially Funded"
)

// Allocation is an expense for an animal, funded by the animal's donations
// and, for the part that donations do not cover, by an external source.
//
// Amounts are only ever set by the funding ledger.
type Allocation struct {
	DefaultModel
	AnimalID              uuid.UUID `gorm:"type:uuid;index"`
	Animal                Animal
	Category              string
	AllocationType        string
	ServiceProvider       string
	TotalCost             decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DonationCoveredAmount decimal.Decimal `gorm:"type:DECIMAL(20,8);check:allocation_amounts_non_negative,donation_covered_amount >= 0 AND external_covered_amount >= 0"`
	ExternalCoveredAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ExternalFundingSource string
	ExternalFundingNotes  string
	Status                AllocationStatus `gorm:"default:Draft"`
	PublicDescription     string
	InternalNotes         string
	ConditionUpdate       string
	ReceiptImage          string // Reference to the receipt in the media store
	TreatmentPhoto        string // Reference to the treatment photo in the media store
	Version               uint64 `gorm:"not null"` // Incremented with every committed change
	LastUpdatedBy         string
}

// FundingStatus is "Fully Funded" when donations cover the whole cost.
func (a Allocation) FundingStatus() FundingStatus {
	if a.ExternalCoveredAmount.IsZero() {
		return FundingStatusFullyFunded
	}
	return FundingStatusPartiallyFunded
}

// BeforeSave trims whitespace from string fields and verifies that the split
// of the cost adds up.
func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	a.Category = strings.TrimSpace(a.Category)
	a.AllocationType = strings.TrimSpace(a.AllocationType)
	a.ServiceProvider = strings.TrimSpace(a.ServiceProvider)
	a.ExternalFundingSource = strings.TrimSpace(a.ExternalFundingSource)
	a.ExternalFundingNotes = strings.TrimSpace(a.ExternalFundingNotes)
	a.PublicDescription = strings.TrimSpace(a.PublicDescription)
	a.InternalNotes = strings.TrimSpace(a.InternalNotes)
	a.ConditionUpdate = strings.TrimSpace(a.ConditionUpdate)
	a.ReceiptImage = strings.TrimSpace(a.ReceiptImage)
	a.TreatmentPhoto = strings.TrimSpace(a.TreatmentPhoto)
	a.LastUpdatedBy = strings.TrimSpace(a.LastUpdatedBy)

	if a.Status == "" {
		a.Status = AllocationStatusDraft
	}

	if a.DonationCoveredAmount.IsNegative() || a.ExternalCoveredAmount.IsNegative() {
		return ErrAllocationNegative
	}

	if !a.DonationCoveredAmount.Add(a.ExternalCoveredAmount).Equal(a.TotalCost) {
		return ErrSplitMismatch
	}

	return nil
}
