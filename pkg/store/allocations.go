// Package store implements the persistence ports of the funding ledger
// with gorm.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shelterfund/backend/pkg/funding"
	"github.com/shelterfund/backend/pkg/models"
	"gorm.io/gorm"
)

// allocationColumns are all columns written when an allocation is updated.
// ID, AnimalID and CreatedAt never change.
var allocationColumns = []string{
	"Category",
	"AllocationType",
	"ServiceProvider",
	"TotalCost",
	"DonationCoveredAmount",
	"ExternalCoveredAmount",
	"ExternalFundingSource",
	"ExternalFundingNotes",
	"Status",
	"PublicDescription",
	"InternalNotes",
	"ConditionUpdate",
	"ReceiptImage",
	"TreatmentPhoto",
	"Version",
	"LastUpdatedBy",
}

// Allocations is the gorm implementation of funding.Store.
type Allocations struct {
	DB *gorm.DB
}

var _ funding.Store = Allocations{}

func (s Allocations) LoadAllocations(ctx context.Context, animalID uuid.UUID) ([]models.Allocation, error) {
	var allocations []models.Allocation

	err := s.DB.WithContext(ctx).
		Where(&models.Allocation{AnimalID: animalID}).
		Order("created_at ASC").
		Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	return allocations, nil
}

func (s Allocations) LoadAllocation(ctx context.Context, id uuid.UUID) (models.Allocation, error) {
	var allocation models.Allocation

	err := s.DB.WithContext(ctx).First(&allocation, "id = ?", id).Error
	if err != nil {
		return models.Allocation{}, err
	}

	return allocation, nil
}

// Commit inserts or updates the allocation. Updates only match the row if
// its version still is expectedVersion.
func (s Allocations) Commit(ctx context.Context, allocation *models.Allocation, expectedVersion uint64) error {
	db := s.DB.WithContext(ctx)

	if expectedVersion == 0 {
		allocation.Version = 1
		err := db.Create(allocation).Error
		if err != nil {
			allocation.Version = 0
		}
		return err
	}

	allocation.Version = expectedVersion + 1
	tx := db.Model(allocation).
		Where("version = ?", expectedVersion).
		Select(allocationColumns).
		Updates(allocation)

	if tx.Error != nil {
		allocation.Version = expectedVersion
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		allocation.Version = expectedVersion
		return s.missOrConflict(ctx, allocation.ID)
	}

	return nil
}

// Remove soft-deletes the allocation if its version is expectedVersion.
func (s Allocations) Remove(ctx context.Context, id uuid.UUID, expectedVersion uint64) error {
	tx := s.DB.WithContext(ctx).
		Where("version = ?", expectedVersion).
		Delete(&models.Allocation{}, "id = ?", id)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return s.missOrConflict(ctx, id)
	}

	return nil
}

func (s Allocations) Transaction(ctx context.Context, fn func(funding.Writer) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Allocations{DB: tx})
	})
}

// missOrConflict tells apart a compare-and-swap that matched no row because
// the allocation is gone from one that lost against a newer version.
func (s Allocations) missOrConflict(ctx context.Context, id uuid.UUID) error {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Allocation{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return fmt.Errorf("%w allocation matching your query", models.ErrResourceNotFound)
	}

	return models.ErrVersionConflict
}
