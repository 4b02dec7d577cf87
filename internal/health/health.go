// Package health reports the readiness of the service and its dependencies:
// the database connection and the generation provider.
package health

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/loom/internal/generation"
)

// Component status labels used in health responses.
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

const checkTimeout = 5 * time.Second

// Status is the aggregate health of the service at a point in time.
type Status struct {
	Server     string    `json:"server"`
	Database   string    `json:"database"`
	Generation string    `json:"generation"`
	Timestamp  time.Time `json:"timestamp"`
}

// Healthy reports whether every component is available.
func (s Status) Healthy() bool {
	return s.Database == StatusOK && s.Generation == StatusOK
}

// System defines the public contract for health reporting.
type System interface {
	Handler() *Handler

	Check(ctx context.Context) Status
}

type checker struct {
	db       *sql.DB
	provider generation.Provider
	logger   *slog.Logger
}

// New creates a health system probing the given database and generation
// provider.
func New(db *sql.DB, provider generation.Provider, logger *slog.Logger) System {
	return &checker{
		db:       db,
		provider: provider,
		logger:   logger.With("system", "health"),
	}
}

func (c *checker) Handler() *Handler {
	return NewHandler(c, c.logger)
}

// Check probes both dependencies concurrently. Probes report status rather
// than failing, so the errgroup never returns an error.
func (c *checker) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	status := Status{
		Server:    StatusOK,
		Timestamp: time.Now().UTC(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		status.Database = StatusOK
		if err := c.db.PingContext(ctx); err != nil {
			c.logger.Warn("database unreachable", "error", err)
			status.Database = StatusUnavailable
		}
		return nil
	})

	g.Go(func() error {
		status.Generation = StatusOK
		if !c.provider.HealthCheck(ctx) {
			status.Generation = StatusUnavailable
		}
		return nil
	})

	g.Wait()
	return status
}
