package v1

import (
	"errors"
	"net/http"

	"github.com/shelterfund/backend/pkg/funding"
	"github.com/shelterfund/backend/pkg/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, funding.ErrConcurrentModification) || errors.Is(err, models.ErrVersionConflict) || errors.Is(err, funding.ErrPoolOvercommitted) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// fieldErrors returns the messages of a funding.ValidationError by field.
// For all other errors, it returns nil.
func fieldErrors(err error) map[string]string {
	var verr *funding.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}

	fields := make(map[string]string, len(verr.Fields))
	for field, e := range verr.Fields {
		fields[field] = e.Error()
	}

	return fields
}

var (
	errVersionParameter = errors.New("the version query parameter must be set to the version of the allocation")
	errTotalCostMissing = errors.New("the totalCost must be set")
)

