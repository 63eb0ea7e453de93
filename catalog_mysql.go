package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

type mysqlCatalog struct{}

func (m *mysqlCatalog) Name() string { return "MySQL" }

func (m *mysqlCatalog) Open(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// ListTables treats the schema name as the MySQL database name.
func (m *mysqlCatalog) ListTables(ctx context.Context, db *sql.DB, schema string, includeViews bool) ([]string, error) {
	types := "'BASE TABLE'"
	if includeViews {
		types = "'BASE TABLE', 'VIEW'"
	}
	query := fmt.Sprintf(`
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = ? AND TABLE_TYPE IN (%s)
		ORDER BY TABLE_NAME`, types)
	names, err := collectNames(ctx, db, query, schema)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return names, nil
}

func (m *mysqlCatalog) TableColumns(ctx context.Context, db *sql.DB, schema, table string) ([]CatalogColumn, error) {
	query := `
		SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE = 'YES', ORDINAL_POSITION, COLUMN_DEFAULT
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION`

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
		col.DataType = normalizeMySQLType(col.DataType)
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

// normalizeMySQLType maps MySQL DATA_TYPE names onto the catalog vocabulary
// the type mapper speaks. Names without an equivalent pass through
// unchanged and fail in the mapper.
func normalizeMySQLType(dataType string) string {
	switch strings.ToLower(dataType) {
	case "tinyint", "smallint":
		return "smallint"
	case "mediumint", "int":
		return "integer"
	case "bigint":
		return "bigint"
	case "float":
		return "real"
	case "double":
		return "double precision"
	case "decimal", "numeric":
		return "numeric"
	case "char":
		return "character"
	case "varchar", "tinytext", "text", "mediumtext", "longtext":
		return "text"
	case "binary", "varbinary", "tinyblob", "blob", "mediumblob", "longblob":
		return "bytea"
	case "date":
		return "date"
	case "time":
		return "time"
	case "datetime":
		return "timestamp"
	case "timestamp":
		return "timestamptz"
	case "year":
		return "smallint"
	case "json":
		return "json"
	case "enum", "set":
		return "text"
	default:
		return dataType
	}
}
