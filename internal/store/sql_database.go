package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/migrations"
	sq "github.com/Masterminds/squirrel"
)

// maxQueryAttempts bounds how often a query failing with a Retryable error
// is attempted.
const maxQueryAttempts = 3

// retryBackoff is the wait before the second attempt; it grows linearly.
var retryBackoff = 50 * time.Millisecond

// DB is a database/sql connection together with the dialect specifics the
// repositories need: the placeholder format of the driver and an error
// classifier for its error values.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// storedTime normalises t to what every SQL backend stores losslessly: UTC
// with microsecond precision, the resolution of PostgreSQL timestamptz.
func storedTime(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Truncate(time.Microsecond)
}

// Migrate applies the embedded schema migrations of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.logger)
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// builder returns a squirrel statement builder bound to the DB's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// withRetry runs fn until it succeeds, fails with an error the classifier
// considers non-retryable, ctx is done, or maxQueryAttempts is reached.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxQueryAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable || attempt == maxQueryAttempts {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Str("func", "*DB.withRetry").Msg("retrying query")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}
