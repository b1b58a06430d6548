package funding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shelterfund/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// DefaultLockTimeout is the longest time an operation waits for the lock of an animal.
const DefaultLockTimeout = 5 * time.Second

// Ledger is the only component that creates, updates or deletes allocations.
//
// All changes for one animal are serialized by the Locker, run in one store
// transaction and are committed with a compare-and-swap on the allocation
// version. The remaining balance is always derived from the committed
// allocations inside that transaction.
type Ledger struct {
	store       Store
	donations   DonationSource
	locker      Locker
	validator   Validator
	scale       int32
	lockTimeout time.Duration
}

// Result is a committed allocation together with the pool of its animal
// after the commit.
//
// When an operation fails, Pool holds the current pool if it could be read.
type Result struct {
	Allocation models.Allocation
	Pool       Pool
}

type Option func(*Ledger)

// WithLocker replaces the default in-process locker.
func WithLocker(locker Locker) Option {
	return func(l *Ledger) {
		l.locker = locker
	}
}

// WithValidator replaces the default validator.
func WithValidator(v Validator) Option {
	return func(l *Ledger) {
		l.validator = v
	}
}

// WithScale sets the number of decimal places of the minor currency unit.
func WithScale(scale int32) Option {
	return func(l *Ledger) {
		l.scale = scale
	}
}

// WithLockTimeout sets how long operations wait for the lock of an animal.
func WithLockTimeout(d time.Duration) Option {
	return func(l *Ledger) {
		l.lockTimeout = d
	}
}

func NewLedger(store Store, donations DonationSource, opts ...Option) *Ledger {
	l := &Ledger{
		store:       store,
		donations:   donations,
		locker:      NewSemaphoreLocker(),
		validator:   NewValidator(nil, nil),
		scale:       2,
		lockTimeout: DefaultLockTimeout,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Validator returns the validator the ledger uses.
func (l *Ledger) Validator() Validator {
	return l.validator
}

// Summary returns the current pool of an animal.
func (l *Ledger) Summary(ctx context.Context, animalID uuid.UUID) (Pool, error) {
	raised, err := l.donations.AmountRaised(ctx, animalID)
	if err != nil {
		return Pool{}, err
	}

	allocations, err := l.store.LoadAllocations(ctx, animalID)
	if err != nil {
		return Pool{}, err
	}

	return newPool(animalID, raised, allocations, uuid.Nil), nil
}

// Allocation returns a single allocation.
func (l *Ledger) Allocation(ctx context.Context, id uuid.UUID) (models.Allocation, error) {
	return l.store.LoadAllocation(ctx, id)
}

// Allocations returns the allocations of an animal. With visibleOnly, only
// allocations shown to donors are returned.
func (l *Ledger) Allocations(ctx context.Context, animalID uuid.UUID, visibleOnly bool) ([]models.Allocation, error) {
	allocations, err := l.store.LoadAllocations(ctx, animalID)
	if err != nil {
		return nil, err
	}

	if !visibleOnly {
		return allocations, nil
	}

	visible := make([]models.Allocation, 0, len(allocations))
	for _, a := range allocations {
		if Visible(a.Status) {
			visible = append(visible, a)
		}
	}

	return visible, nil
}

// ProposeSplit previews the split of totalCost for an animal without
// committing anything. With excluding set, that allocation's own claim on the
// donations is treated as available, which is what an edit of it would see.
//
// The result may be stale by the time the allocation is saved, Save always
// recomputes it.
func (l *Ledger) ProposeSplit(ctx context.Context, totalCost decimal.Decimal, animalID uuid.UUID, excluding *uuid.UUID) (Split, error) {
	if !totalCost.IsPositive() {
		return Split{}, ErrInvalidAmount
	}

	pool, err := l.Summary(ctx, animalID)
	if err != nil {
		return Split{}, err
	}

	available := pool.Remaining
	if excluding != nil {
		existing, err := l.store.LoadAllocation(ctx, *excluding)
		if err != nil {
			return Split{}, err
		}

		if existing.AnimalID != animalID {
			return Split{}, fmt.Errorf("%w allocation matching your query for this animal", models.ErrResourceNotFound)
		}

		available = available.Add(existing.DonationCoveredAmount)
	}

	return ComputeSplit(totalCost, available, l.scale)
}

// Save creates an allocation when input.ID is nil and updates it otherwise.
// Updates need the version the caller last saw in expectedVersion.
//
// The donation covered and external amounts are computed from the committed
// state of the animal's pool at the time of the commit. The allocation's own
// previous claim on the donations is returned to the pool before its new
// claim is computed.
func (l *Ledger) Save(ctx context.Context, animalID uuid.UUID, input AllocationInput, expectedVersion *uint64) (Result, error) {
	if err := l.validator.Validate(input); err != nil {
		return l.failure(ctx, opSave, animalID, input.ID, err)
	}

	if input.ID != nil && expectedVersion == nil {
		return l.failure(ctx, opSave, animalID, input.ID, ErrVersionRequired)
	}

	unlock, err := l.lock(ctx, animalID)
	if err != nil {
		return l.failure(ctx, opSave, animalID, input.ID, err)
	}
	defer unlock()

	start := time.Now()

	raised, err := l.donations.AmountRaised(ctx, animalID)
	if err != nil {
		return l.failure(ctx, opSave, animalID, input.ID, err)
	}

	var result Result
	err = l.store.Transaction(ctx, func(tx Writer) error {
		allocations, err := tx.LoadAllocations(ctx, animalID)
		if err != nil {
			return err
		}
		pool := newPool(animalID, raised, allocations, uuid.Nil)

		record := models.Allocation{
			AnimalID: animalID,
			Status:   models.AllocationStatusDraft,
		}
		var expected uint64
		priorUsage := decimal.Zero

		if input.ID != nil {
			existing, err := tx.LoadAllocation(ctx, *input.ID)
			if err != nil {
				return err
			}

			if existing.AnimalID != animalID {
				return ErrAnimalImmutable
			}

			if existing.Version != *expectedVersion {
				return models.ErrVersionConflict
			}

			if input.Status != "" {
				if err := Transition(existing.Status, input.Status); err != nil {
					return &ValidationError{Fields: map[string]error{"status": err}}
				}
			}

			record = existing
			expected = existing.Version
			priorUsage = existing.DonationCoveredAmount
		}

		available := pool.Remaining.Add(priorUsage)
		split, err := ComputeSplit(*input.TotalCost, available, l.scale)
		if err != nil {
			return err
		}

		if err := l.validator.ValidateFunding(input, split); err != nil {
			return err
		}

		apply(&record, input, split)

		committed := pool.Committed.Sub(priorUsage).Add(split.Covered)
		remaining := raised.Sub(committed)
		if remaining.IsNegative() {
			// On a breached pool a commit may only hold on to or give back donations
			if split.Covered.GreaterThan(priorUsage) {
				return ErrPoolOvercommitted
			}

			log.Error().
				Str("animal", animalID.String()).
				Str("raised", raised.String()).
				Str("committed", committed.String()).
				Msg("donation pool is overcommitted")
		}

		if err := tx.Commit(ctx, &record, expected); err != nil {
			return err
		}

		result = Result{
			Allocation: record,
			Pool: Pool{
				AnimalID:     animalID,
				AmountRaised: raised,
				Committed:    committed,
				Remaining:    remaining,
			},
		}
		return nil
	})
	if err != nil {
		return l.failure(ctx, opSave, animalID, input.ID, err)
	}

	observeCommit(opSave, start)
	log.Debug().
		Str("animal", animalID.String()).
		Str("allocation", result.Allocation.ID.String()).
		Uint64("version", result.Allocation.Version).
		Str("covered", result.Allocation.DonationCoveredAmount.String()).
		Str("external", result.Allocation.ExternalCoveredAmount.String()).
		Str("remaining", result.Pool.Remaining.String()).
		Msg("allocation committed")

	return result, nil
}

// Delete removes an allocation. Its donation covered amount is available
// again right after.
func (l *Ledger) Delete(ctx context.Context, id uuid.UUID, expectedVersion uint64) (Pool, error) {
	existing, err := l.store.LoadAllocation(ctx, id)
	if err != nil {
		return Pool{}, err
	}
	animalID := existing.AnimalID

	unlock, err := l.lock(ctx, animalID)
	if err != nil {
		r, err := l.failure(ctx, opDelete, animalID, &id, err)
		return r.Pool, err
	}
	defer unlock()

	start := time.Now()

	raised, err := l.donations.AmountRaised(ctx, animalID)
	if err != nil {
		r, err := l.failure(ctx, opDelete, animalID, &id, err)
		return r.Pool, err
	}

	var pool Pool
	err = l.store.Transaction(ctx, func(tx Writer) error {
		if err := tx.Remove(ctx, id, expectedVersion); err != nil {
			return err
		}

		allocations, err := tx.LoadAllocations(ctx, animalID)
		if err != nil {
			return err
		}

		pool = newPool(animalID, raised, allocations, uuid.Nil)
		return nil
	})
	if err != nil {
		r, err := l.failure(ctx, opDelete, animalID, &id, err)
		return r.Pool, err
	}

	observeCommit(opDelete, start)
	log.Debug().
		Str("animal", animalID.String()).
		Str("allocation", id.String()).
		Str("remaining", pool.Remaining.String()).
		Msg("allocation deleted")

	return pool, nil
}

// SetStatus moves an allocation to another status. The amounts of the
// allocation are not touched.
func (l *Ledger) SetStatus(ctx context.Context, id uuid.UUID, status models.AllocationStatus, expectedVersion uint64, updatedBy string) (Result, error) {
	existing, err := l.store.LoadAllocation(ctx, id)
	if err != nil {
		return Result{}, err
	}
	animalID := existing.AnimalID

	unlock, err := l.lock(ctx, animalID)
	if err != nil {
		return l.failure(ctx, opStatus, animalID, &id, err)
	}
	defer unlock()

	start := time.Now()

	var record models.Allocation
	err = l.store.Transaction(ctx, func(tx Writer) error {
		current, err := tx.LoadAllocation(ctx, id)
		if err != nil {
			return err
		}

		if current.Version != expectedVersion {
			return models.ErrVersionConflict
		}

		if err := Transition(current.Status, status); err != nil {
			return &ValidationError{Fields: map[string]error{"status": err}}
		}

		current.Status = status
		if updatedBy != "" {
			current.LastUpdatedBy = updatedBy
		}

		if err := tx.Commit(ctx, &current, expectedVersion); err != nil {
			return err
		}

		record = current
		return nil
	})
	if err != nil {
		return l.failure(ctx, opStatus, animalID, &id, err)
	}

	observeCommit(opStatus, start)

	pool, err := l.Summary(ctx, animalID)
	if err != nil {
		return Result{Allocation: record}, err
	}

	return Result{Allocation: record, Pool: pool}, nil
}

// lock acquires the lock for the animal, waiting at most the lock timeout.
func (l *Ledger) lock(ctx context.Context, animalID uuid.UUID) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, l.lockTimeout)
	defer cancel()

	unlock, err := l.locker.Lock(lockCtx, animalID)
	if err != nil {
		return nil, &ConflictError{Err: fmt.Errorf("waiting for the lock of animal %s: %w", animalID, err)}
	}

	return unlock, nil
}

// failure attaches the current state of the pool to a failed operation.
// Version conflicts and lock timeouts become a ConflictError which also
// carries the current allocation.
func (l *Ledger) failure(ctx context.Context, operation string, animalID uuid.UUID, id *uuid.UUID, err error) (Result, error) {
	var result Result

	// The pool is informational here, an error reading it must not hide
	// the original error
	if pool, perr := l.Summary(ctx, animalID); perr == nil {
		result.Pool = pool
	}

	var conflict *ConflictError
	if !errors.As(err, &conflict) && !errors.Is(err, models.ErrVersionConflict) {
		return result, err
	}

	if conflict == nil {
		conflict = &ConflictError{Err: err}
	}
	conflict.Pool = result.Pool

	if id != nil {
		if current, lerr := l.store.LoadAllocation(ctx, *id); lerr == nil {
			conflict.Allocation = &current
			result.Allocation = current
		}
	}

	observeConflict(operation)
	log.Info().
		Str("animal", animalID.String()).
		Str("operation", operation).
		Err(err).
		Msg("concurrent modification of allocations")

	return result, conflict
}

// apply copies the user editable fields and the computed split to the allocation.
func apply(record *models.Allocation, input AllocationInput, split Split) {
	record.Category = input.Category
	record.AllocationType = input.AllocationType
	record.ServiceProvider = input.ServiceProvider
	record.PublicDescription = input.PublicDescription
	record.InternalNotes = input.InternalNotes
	record.ConditionUpdate = input.ConditionUpdate
	record.ReceiptImage = input.ReceiptImage
	record.TreatmentPhoto = input.TreatmentPhoto
	record.LastUpdatedBy = input.LastUpdatedBy

	if input.Status != "" {
		record.Status = input.Status
	}

	record.TotalCost = split.TotalCost
	record.DonationCoveredAmount = split.Covered
	record.ExternalCoveredAmount = split.Outstanding

	// External funding details only exist for partially funded allocations
	if split.Outstanding.IsPositive() {
		record.ExternalFundingSource = input.ExternalFundingSource
		record.ExternalFundingNotes = input.ExternalFundingNotes
	} else {
		record.ExternalFundingSource = ""
		record.ExternalFundingNotes = ""
	}
}
