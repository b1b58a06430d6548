package models

import (
	"strings"

	"gorm.io/gorm"
)

// Animal is an animal in the care of the shelter. Donations and
// allocations are always scoped to one animal.
type Animal struct {
	DefaultModel
	Name    string
	Species string
	Note    string
}

func (a *Animal) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Species = strings.TrimSpace(a.Species)
	a.Note = strings.TrimSpace(a.Note)

	if a.Name == "" {
		return ErrAnimalNameEmpty
	}

	return nil
}
