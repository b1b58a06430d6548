package funding

import (
	"context"

	"github.com/google/uuid"
	"github.com/shelterfund/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// Reader loads committed allocations.
type Reader interface {
	// LoadAllocations returns all live allocations of an animal.
	LoadAllocations(ctx context.Context, animalID uuid.UUID) ([]models.Allocation, error)

	// LoadAllocation returns a single allocation. A missing allocation
	// is reported as models.ErrResourceNotFound.
	LoadAllocation(ctx context.Context, id uuid.UUID) (models.Allocation, error)
}

// Writer persists allocations. Commit and Remove are atomic with respect to
// expectedVersion and report a mismatch as models.ErrVersionConflict.
type Writer interface {
	Reader

	// Commit inserts the allocation when expectedVersion is 0 and updates it
	// otherwise. On success, the allocation's Version is the new version.
	Commit(ctx context.Context, allocation *models.Allocation, expectedVersion uint64) error

	// Remove deletes the allocation if its version is expectedVersion.
	Remove(ctx context.Context, id uuid.UUID, expectedVersion uint64) error
}

// Store is the persistence adapter for allocations.
type Store interface {
	Reader

	// Transaction runs fn in a single database transaction. When fn returns
	// an error, nothing fn wrote is persisted.
	Transaction(ctx context.Context, fn func(Writer) error) error
}

// DonationSource provides the total donations received for an animal.
// It is owned by the donation subsystem and read-only here.
type DonationSource interface {
	AmountRaised(ctx context.Context, animalID uuid.UUID) (decimal.Decimal, error)
}
