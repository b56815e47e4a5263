package store

import (
	"database/sql"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/migrations"
)

// DB wraps the standard library connection pool together with a
// driver-specific constraint classifier and the application logger.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	driver             string
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// constraint maps a driver-level error to a [ConstraintKind] using the
// classifier matching the connected driver.
func (db *DB) constraint(err error) ConstraintKind {
	if db.errorClassificator == nil {
		return ConstraintNone
	}
	return db.errorClassificator.Classify(err)
}
