package funding

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shelterfund/backend/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// DefaultExternalFundingSources are the external sources recognized when none are configured.
var DefaultExternalFundingSources = []string{
	"Shelter Budget",
	"Grant",
	"Corporate Sponsor",
	"Veterinary Partner",
	"Fundraiser",
}

// DefaultReceiptCategories are the category patterns that need a receipt
// when none are configured.
var DefaultReceiptCategories = []string{
	"medical*",
	"surgery*",
	"vaccination*",
	"medication*",
	"veterinary*",
}

// AllocationInput is a proposed allocation. The amounts covered by donations
// and by external funding are not part of it, the ledger computes them.
type AllocationInput struct {
	ID                       *uuid.UUID // nil for new allocations
	Category                 string
	AllocationType           string
	ServiceProvider          string
	TotalCost                *decimal.Decimal // nil when not supplied
	ExternalFundingSource    string
	ExternalFundingNotes     string
	ExternalFundingConfirmed bool // The caller confirmed the external funding
	Status                   models.AllocationStatus
	PublicDescription        string
	InternalNotes            string
	ConditionUpdate          string
	ReceiptImage             string
	TreatmentPhoto           string
	LastUpdatedBy            string
}

// Validator checks allocations before they are committed.
type Validator struct {
	ExternalFundingSources []string // Closed set of recognized external funding sources
	ReceiptCategories      []string // Glob patterns of categories that need a receipt
}

// NewValidator returns a Validator using the defaults for all unset lists.
func NewValidator(sources, receiptCategories []string) Validator {
	if len(sources) == 0 {
		sources = DefaultExternalFundingSources
	}

	if len(receiptCategories) == 0 {
		receiptCategories = DefaultReceiptCategories
	}

	return Validator{
		ExternalFundingSources: sources,
		ReceiptCategories:      receiptCategories,
	}
}

// Validate runs the checks that do not depend on the donation balance.
func (v Validator) Validate(input AllocationInput) error {
	var verr ValidationError

	if input.TotalCost == nil || !input.TotalCost.IsPositive() {
		verr.add("totalCost", ErrAmountRequired)
	}

	if input.Status != "" && !input.Status.Valid() {
		verr.add("status", ErrInvalidStatus)
	}

	if v.RequiresReceipt(input.Category) && strings.TrimSpace(input.ReceiptImage) == "" {
		verr.add("receiptImage", ErrReceiptRequired)
	}

	return verr.errOrNil()
}

// ValidateFunding checks that the part of the cost donations do not cover
// has a recognized, confirmed external source.
func (v Validator) ValidateFunding(input AllocationInput, split Split) error {
	if !split.Outstanding.IsPositive() {
		return nil
	}

	var verr ValidationError

	if !v.RecognizedSource(input.ExternalFundingSource) {
		verr.add("externalFundingSource", ErrExternalFundingRequired)
	}

	if strings.TrimSpace(input.ExternalFundingNotes) == "" {
		verr.add("externalFundingNotes", ErrExternalFundingRequired)
	}

	if !input.ExternalFundingConfirmed {
		verr.add("externalFundingConfirmed", ErrExternalConfirmationRequired)
	}

	return verr.errOrNil()
}

// RecognizedSource reports if the source is in the closed set of external
// funding sources. Matching ignores case.
func (v Validator) RecognizedSource(source string) bool {
	source = strings.TrimSpace(source)
	if source == "" {
		return false
	}

	return slices.ContainsFunc(v.ExternalFundingSources, func(s string) bool {
		return strings.EqualFold(s, source)
	})
}

// RequiresReceipt reports if allocations of the category need a receipt.
func (v Validator) RequiresReceipt(category string) bool {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return false
	}

	for _, pattern := range v.ReceiptCategories {
		if glob.Glob(strings.ToLower(pattern), category) {
			return true
		}
	}

	return false
}
