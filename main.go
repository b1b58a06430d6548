package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shelterfund/backend/internal/config"
	v1 "github.com/shelterfund/backend/pkg/controllers/v1"
	"github.com/shelterfund/backend/pkg/funding"
	"github.com/shelterfund/backend/pkg/models"
	"github.com/shelterfund/backend/pkg/router"
	"github.com/shelterfund/backend/pkg/store"
)

//go:generate swag init --outputTypes go --output api

//	@title			Shelter Fund
//	@description	The backend for Shelter Fund, tracking how donations for shelter animals are spent on their care.
//	@license.name	AGPL-3.0
//	@license.url	https://www.gnu.org/licenses/agpl-3.0.html
func main() {
	cfg := config.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := run(cfg); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// run serves the API until SIGINT or SIGTERM is received. All resources
// are released before it returns.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Create data directory
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm); err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	db, err := models.Connect(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	opts := []funding.Option{
		funding.WithScale(cfg.Scale),
		funding.WithLockTimeout(cfg.LockTimeout),
		funding.WithValidator(funding.NewValidator(cfg.ExternalFundingSources, cfg.ReceiptRequiredCategories)),
	}

	// With more than one instance of the backend, the lock for an
	// animal must be shared through redis
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		locker, err := funding.NewRedisLocker(ctx, cfg.RedisURL, 2*cfg.LockTimeout)
		cancel()
		if err != nil {
			return err
		}
		defer locker.Close()

		opts = append(opts, funding.WithLocker(locker))
		log.Info().Msg("using redis for funding locks")
	}

	ledger := funding.NewLedger(store.Allocations{DB: db}, store.Donations{DB: db}, opts...)

	r, teardown, err := router.Config(cfg.APIURL)
	defer teardown()
	if err != nil {
		return err
	}

	router.AttachRoutes(v1.Controller{DB: db, Ledger: ledger}, r.Group("/"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("backend startup complete")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
