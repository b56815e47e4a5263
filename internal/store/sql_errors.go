package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ConstraintKind is the result type returned by [ErrorClassificator.Classify].
// It identifies which class of integrity constraint, if any, a failed database
// operation violated, so repositories can map driver errors to domain
// sentinels without inspecting driver types themselves.
type ConstraintKind int

const (
	// ConstraintNone indicates the error is not a recognised integrity
	// constraint violation.
	ConstraintNone ConstraintKind = iota

	// ConstraintUnique indicates a unique constraint violation
	// (e.g. a duplicate username).
	ConstraintUnique

	// ConstraintForeignKey indicates a foreign key constraint violation
	// (e.g. assigning a chore to a household that does not exist).
	ConstraintForeignKey
)

// ErrorClassificator inspects a driver-level error and maps it to a
// [ConstraintKind]. Implementations exist for PostgreSQL and SQLite.
type ErrorClassificator interface {
	Classify(err error) ConstraintKind
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and maps Class 23 integrity codes to constraint kinds.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) ConstraintKind {
	if err == nil {
		return ConstraintNone
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ConstraintNone
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation: // 23505
		return ConstraintUnique
	case pgerrcode.ForeignKeyViolation: // 23503
		return ConstraintForeignKey
	}

	return ConstraintNone
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
// It inspects the extended error code returned by the mattn/go-sqlite3
// driver.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator] for sqlite3.Error values.
func (c *SQLiteErrorClassifier) Classify(err error) ConstraintKind {
	if err == nil {
		return ConstraintNone
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return ConstraintNone
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ConstraintUnique
	case sqlite3.ErrConstraintForeignKey:
		return ConstraintForeignKey
	}

	return ConstraintNone
}
