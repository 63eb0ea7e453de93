package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

type sqliteCatalog struct{}

func (s *sqliteCatalog) Name() string { return "SQLite" }

func (s *sqliteCatalog) Open(dsn string) (*sql.DB, error) {
	uri, err := sqliteReadOnlyURI(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", uri)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// sqliteReadOnlyURI adds mode=ro to a SQLite DSN; introspection never
// needs write access and must not create a missing database file.
func sqliteReadOnlyURI(dsn string) (string, error) {
	if dsn == "" {
		return "", fmt.Errorf("sqlite dsn is required")
	}
	if !strings.HasPrefix(dsn, "file:") {
		return "file:" + dsn + "?mode=ro", nil
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse sqlite dsn: %w", err)
	}
	q := u.Query()
	if q.Get("mode") == "" {
		q.Set("mode", "ro")
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// ListTables ignores the schema name; SQLite has a single namespace.
func (s *sqliteCatalog) ListTables(ctx context.Context, db *sql.DB, _ string, includeViews bool) ([]string, error) {
	types := "'table'"
	if includeViews {
		types = "'table', 'view'"
	}
	query := fmt.Sprintf(`
		SELECT name FROM sqlite_master
		WHERE type IN (%s) AND name NOT LIKE 'sqlite_%%'
		ORDER BY name`, types)
	names, err := collectNames(ctx, db, query)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return names, nil
}

func (s *sqliteCatalog) TableColumns(ctx context.Context, db *sql.DB, _ string, table string) ([]CatalogColumn, error) {
	rows, err := db.QueryContext(ctx, `SELECT cid, name, type, "notnull", dflt_value FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, fmt.Errorf("query columns for %s: %w", table, err)
	}
	defer rows.Close()

	var cols []CatalogColumn
	for rows.Next() {
		var (
			cid      int
			declType string
			notNull  bool
			def      sql.NullString
			col      CatalogColumn
		)
		if err := rows.Scan(&cid, &col.Name, &declType, &notNull, &def); err != nil {
			return nil, fmt.Errorf("scan column for %s: %w", table, err)
		}
		// pragma cid is zero-based, catalog ordinals are one-based
		col.OrdinalPos = cid + 1
		col.Nullable = !notNull
		col.DataType = normalizeSQLiteType(declType)
		if def.Valid {
			col.Default = &def.String
		}
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

// normalizeSQLiteType maps declared SQLite types onto the catalog
// vocabulary using affinity-style prefix matching. SQLite declared types
// are free-form, so this follows the affinity rules rather than exact
// names. Unrecognized declarations pass through and fail in the mapper.
func normalizeSQLiteType(declType string) string {
	d := strings.ToLower(strings.TrimSpace(declType))
	// strip length suffix, e.g. varchar(64)
	if i := strings.IndexByte(d, '('); i >= 0 {
		d = strings.TrimSpace(d[:i])
	}

	switch d {
	case "boolean", "bool":
		return "boolean"
	case "date":
		return "date"
	case "datetime", "timestamp":
		return "timestamp"
	}

	switch {
	case strings.Contains(d, "int"):
		return "bigint"
	case strings.Contains(d, "char"), strings.Contains(d, "clob"), strings.Contains(d, "text"):
		return "text"
	case strings.Contains(d, "blob"), d == "":
		return "bytea"
	case strings.Contains(d, "real"), strings.Contains(d, "floa"), strings.Contains(d, "doub"):
		return "double precision"
	case strings.Contains(d, "dec"), strings.Contains(d, "num"):
		return "numeric"
	default:
		return declType
	}
}
