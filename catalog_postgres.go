package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver
)

type postgresCatalog struct{}

func (p *postgresCatalog) Name() string { return "PostgreSQL" }

func (p *postgresCatalog) Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	// introspection only, a single connection keeps catalog reads consistent
	db.SetMaxOpenConns(1)
	return db, nil
}

func (p *postgresCatalog) ListTables(ctx context.Context, db *sql.DB, schema string, includeViews bool) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name`
	tables, err := collectNames(ctx, db, query, schema)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	if includeViews {
		views, err := collectNames(ctx, db, `
			SELECT table_name
			FROM information_schema.views
			WHERE table_schema = $1
			ORDER BY table_name`, schema)
		if err != nil {
			return nil, fmt.Errorf("list views: %w", err)
		}
		tables = append(tables, views...)
	}
	return tables, nil
}

func (p *postgresCatalog) TableColumns(ctx context.Context, db *sql.DB, schema, table string) ([]CatalogColumn, error) {
	query := `
		SELECT column_name, data_type, is_nullable = 'YES', ordinal_position, column_default
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`

	rows, err := db.QueryContext(ctx, query, schema, table)
	if err != nil {
		return nil, fmt.Errorf("query columns for %s.%s: %w", schema, table, err)
	}
	defer rows.Close()

	var cols []CatalogColumn
	for rows.Next() {
		var col CatalogColumn
		var def sql.NullString
		if err := rows.Scan(&col.Name, &col.DataType, &col.Nullable, &col.OrdinalPos, &def); err != nil {
			return nil, fmt.Errorf("scan column for %s.%s: %w", schema, table, err)
		}
		if def.Valid {
			col.Default = &def.String
		}
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

// collectNames collects a single-column string result set.
func collectNames(ctx context.Context, db *sql.DB, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
