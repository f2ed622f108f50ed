package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-call-recorder/internal/config"
	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/migrations"
	"github.com/Masterminds/squirrel"
)

// Database drivers registered with database/sql. The names double as goose
// dialects.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB is a database/sql pool together with the driver-specific pieces the
// repositories need: the squirrel placeholder format and an error classifier.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by the scheme of cfg.DSN.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, dataSource, err := DriverFromDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("unsupported database DSN")
		return nil, err
	}

	switch driver {
	case DriverSQLite:
		return NewConnectSQLite(ctx, dataSource, log)
	default:
		return NewConnectPostgres(ctx, dataSource, log)
	}
}

// DriverFromDSN maps a DSN to a database/sql driver name and the data source
// that driver expects.
//
//	postgres://..., postgresql://...  -> pgx, unchanged
//	sqlite://path                     -> sqlite3, file:path
//	file:path                         -> sqlite3, unchanged
//
// SQLite data sources get foreign keys enabled unless the DSN already
// configures them.
func DriverFromDSN(dsn string) (string, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return DriverSQLite, withForeignKeys("file:" + strings.TrimPrefix(dsn, "sqlite://")), nil
	case strings.HasPrefix(dsn, "file:"):
		return DriverSQLite, withForeignKeys(dsn), nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

func withForeignKeys(dataSource string) string {
	if strings.Contains(dataSource, "_foreign_keys=") || strings.Contains(dataSource, "_fk=") {
		return dataSource
	}
	if strings.Contains(dataSource, "?") {
		return dataSource + "&_foreign_keys=1"
	}
	return dataSource + "?_foreign_keys=1"
}

// Driver returns the database/sql driver name of the pool.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Builder returns a squirrel statement builder using the placeholder
// format of the driver.
func (db *DB) Builder() squirrel.StatementBuilderType {
	if db.driver == DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// IsRetryable reports whether the classifier of the driver considers err
// transient. It is reported in logs only; repositories never retry.
func (db *DB) IsRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// constraintViolation is the driver-independent kind of an integrity
// constraint failure.
type constraintViolation int

const (
	noViolation constraintViolation = iota
	foreignKeyViolation
	uniqueViolation
)

func classifyConstraint(err error) constraintViolation {
	if violation := postgresConstraint(postgresError(err)); violation != noViolation {
		return violation
	}
	return sqliteConstraint(err)
}
