package funding

import (
	"github.com/shelterfund/backend/pkg/models"
)

var statusOrder = map[models.AllocationStatus]int{
	models.AllocationStatusDraft:     0,
	models.AllocationStatusVerified:  1,
	models.AllocationStatusPublished: 2,
}

// Transition checks if an allocation may move from one status to another.
//
// Allocations move forward one step at a time (Draft, Verified, Published)
// and can be re-opened to any earlier status.
func Transition(from, to models.AllocationStatus) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}

	if !from.Valid() {
		return ErrInvalidTransition
	}

	if statusOrder[to] > statusOrder[from]+1 {
		return ErrInvalidTransition
	}

	return nil
}

// Visible reports if allocations with this status are shown to donors.
// Published allocations are visible as soon as they are committed.
func Visible(status models.AllocationStatus) bool {
	return status == models.AllocationStatusPublished
}
