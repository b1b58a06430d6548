package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Allocation errors
var (
	ErrVersionConflict    = errors.New("the allocation was modified by someone else since you last loaded it")
	ErrSplitMismatch      = errors.New("the donation and external amounts of an allocation must add up to its total cost")
	ErrAllocationNegative = errors.New("allocation amounts must not be negative")
)

// Donation errors
var (
	ErrDonationAmountNotPositive = errors.New("donation amounts must be positive")
)

// Animal errors
var (
	ErrAnimalNameEmpty = errors.New("the name of an animal must not be empty")
)
