package test

import (
	"testing"

	v1 "github.com/shelterfund/backend/pkg/controllers/v1"
	"github.com/shelterfund/backend/pkg/funding"
	"github.com/shelterfund/backend/pkg/models"
	"github.com/shelterfund/backend/pkg/store"
	"github.com/stretchr/testify/require"
)

// Controller returns a controller backed by a new in-memory database.
// The database is closed when the test ends.
func Controller(t *testing.T, opts ...funding.Option) v1.Controller {
	db, err := models.Connect(":memory:")
	require.NoError(t, err, "Database initialization failed")

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return v1.Controller{
		DB:     db,
		Ledger: funding.NewLedger(store.Allocations{DB: db}, store.Donations{DB: db}, opts...),
	}
}
