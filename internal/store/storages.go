package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/logger"
)

// Backend names the storage implementation selected by a DSN.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
	BackendMemory   Backend = "memory"
)

// Storages groups the repositories of one backend together with its health
// check and lifecycle.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
	Health         HealthChecker

	Backend Backend
	closer  io.Closer
}

// NewStorages opens the backend selected by cfg.DB.DSN, applies migrations
// for SQL backends and builds the repositories.
//
//   - postgres://… or postgresql://…: PostgreSQL via pgx
//   - sqlite://path or file:…        : SQLite via mattn/go-sqlite3
//   - memory://                      : in-process [MemoryStore]
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	backend, target, err := ParseDSN(cfg.DB.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("unsupported DSN")
		return nil, err
	}

	if backend == BackendMemory {
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		mem := NewMemoryStore()
		return &Storages{
			UserRepository: mem,
			PostRepository: mem,
			Health:         mem,
			Backend:        backend,
		}, nil
	}

	var db *DB
	switch backend {
	case BackendPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case BackendSQLite:
		db, err = NewConnectSQLite(ctx, target, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return newSQLStorages(db, backend, log), nil
}

func newSQLStorages(db *DB, backend Backend, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		Health:         db,
		Backend:        backend,
		closer:         db,
	}
}

// Ping reports whether the backend is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.Health.Ping(ctx)
}

// Close releases the backend's connections. It is a no-op for the memory
// backend.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// ParseDSN maps dsn to a backend and the driver-specific connection target.
func ParseDSN(dsn string) (Backend, string, error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnknownBackend)
		}
		return BackendSQLite, path, nil
	case strings.HasPrefix(dsn, "file:"):
		return BackendSQLite, dsn, nil
	case strings.HasPrefix(dsn, "memory://"):
		return BackendMemory, "", nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnknownBackend, redactDSN(dsn))
}

// redactDSN drops everything after the scheme so credentials never reach
// logs or error messages.
func redactDSN(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://…"
	}
	return "…"
}
