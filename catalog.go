package main

import (
	"context"
	"database/sql"
	"fmt"
)

// CatalogSource abstracts catalog metadata access so pgrust can introspect
// multiple engines (PostgreSQL, MySQL, SQLite). Implementations normalize
// engine type names into the vocabulary the type mapper speaks; names they
// cannot normalize pass through and fail in the mapper.
type CatalogSource interface {
	// Name returns a human-readable engine name ("PostgreSQL", "MySQL", "SQLite").
	Name() string

	// Open opens a database connection with engine-specific options applied.
	Open(dsn string) (*sql.DB, error)

	// ListTables returns the base tables (and views, when includeViews is
	// set) in the named schema, sorted by name.
	ListTables(ctx context.Context, db *sql.DB, schema string, includeViews bool) ([]string, error)

	// TableColumns returns the column rows for one table in ordinal order.
	// An empty result means the table does not exist.
	TableColumns(ctx context.Context, db *sql.DB, schema, table string) ([]CatalogColumn, error)
}

// newCatalogSource returns the CatalogSource for the given engine type.
func newCatalogSource(sourceType string) (CatalogSource, error) {
	switch sourceType {
	case "postgres":
		return &postgresCatalog{}, nil
	case "mysql":
		return &mysqlCatalog{}, nil
	case "sqlite":
		return &sqliteCatalog{}, nil
	default:
		return nil, fmt.Errorf("unsupported source type %q (must be postgres, mysql or sqlite)", sourceType)
	}
}
