package funding

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shelterfund/backend/pkg/models"
)

var (
	ErrInvalidAmount          = errors.New("the total cost must be a positive amount")
	ErrConcurrentModification = errors.New("the funding of this animal was changed concurrently, please reload and try again")
	ErrPoolOvercommitted      = errors.New("the allocation would spend more donations than are available")
	ErrVersionRequired        = errors.New("the version of the allocation must be specified when updating it")
	ErrAnimalImmutable        = errors.New("the animal of an allocation cannot be changed")
)

// Validation errors, reported per field in a ValidationError
var (
	ErrAmountRequired               = errors.New("a total cost greater than zero is required")
	ErrExternalFundingRequired      = errors.New("an external funding source is required when donations do not cover the full cost")
	ErrExternalConfirmationRequired = errors.New("external funding must be confirmed when donations do not cover the full cost")
	ErrReceiptRequired              = errors.New("a receipt is required for this category")
	ErrInvalidStatus                = errors.New("the status must be one of Draft, Verified, Published")
	ErrInvalidTransition            = errors.New("this status change is not allowed")
)

// ValidationError contains all failed validations, keyed by the name of the
// field that needs to be fixed.
type ValidationError struct {
	Fields map[string]error
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// Is makes errors.Is match any of the field errors.
func (e *ValidationError) Is(target error) bool {
	for _, err := range e.Fields {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field string, err error) {
	if e.Fields == nil {
		e.Fields = make(map[string]error)
	}
	e.Fields[field] = err
}

// errOrNil returns nil when no field failed.
func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ConflictError is returned when a commit lost a race. It carries the
// current state so that the caller can resubmit based on fresh data.
type ConflictError struct {
	Pool       Pool
	Allocation *models.Allocation // nil when the allocation no longer exists or was never created
	Err        error
}

func (e *ConflictError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", ErrConcurrentModification, e.Err)
	}
	return ErrConcurrentModification.Error()
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConcurrentModification
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}
