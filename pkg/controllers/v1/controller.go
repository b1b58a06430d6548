// Package v1 implements the v1 HTTP API of the shelter fund backend.
package v1

import (
	"github.com/shelterfund/backend/pkg/funding"
	"gorm.io/gorm"
)

// Controller holds the dependencies of the API handlers.
type Controller struct {
	DB     *gorm.DB        // Animals and donations
	Ledger *funding.Ledger // Allocations and funding pools
}
