package main

import (
	"context"
	"database/sql"
	"fmt"
)

// TableRequest names one table to generate and the output key to expose it
// under. Requests are ordered; the model preserves that order.
type TableRequest struct {
	Schema    string
	Table     string
	OutputKey string
}

// buildSchemaModel resolves every request into a TableDescriptor. The whole
// build fails on the first missing table or unmapped column type; a
// half-generated struct is worse than no struct.
func buildSchemaModel(ctx context.Context, db *sql.DB, src CatalogSource, requests []TableRequest, mapper *TypeMapper) (*SchemaModel, error) {
	model := &SchemaModel{Tables: make([]TableDescriptor, 0, len(requests))}
	for _, req := range requests {
		table, err := buildTable(ctx, db, src, req, mapper)
		if err != nil {
			return nil, err
		}
		model.Tables = append(model.Tables, table)
	}
	return model, nil
}

func buildTable(ctx context.Context, db *sql.DB, src CatalogSource, req TableRequest, mapper *TypeMapper) (TableDescriptor, error) {
	rows, err := src.TableColumns(ctx, db, req.Schema, req.Table)
	if err != nil {
		return TableDescriptor{}, fmt.Errorf("catalog fetch for %s.%s: %w", req.Schema, req.Table, err)
	}
	if len(rows) == 0 {
		return TableDescriptor{}, &TableNotFoundError{Schema: req.Schema, Table: req.Table}
	}

	desc := TableDescriptor{
		SchemaName: req.Schema,
		TableName:  req.Table,
		OutputKey:  req.OutputKey,
		StructName: sanitizeIdent(req.Table, identType),
		Columns:    make([]ColumnDescriptor, 0, len(rows)),
	}

	taken := make(map[string]bool, len(rows))
	for _, row := range rows {
		rt, err := mapper.Map(row.DataType, row.Nullable)
		if err != nil {
			return TableDescriptor{}, fmt.Errorf("table %s.%s column %q: %w", req.Schema, req.Table, row.Name, err)
		}

		name := uniqueFieldName(sanitizeIdent(row.Name, identField), taken)
		taken[name] = true

		desc.Columns = append(desc.Columns, ColumnDescriptor{
			FieldName:  name,
			SourceName: row.Name,
			SourceType: row.DataType,
			RustType:   rt,
			Nullable:   row.Nullable,
			OrdinalPos: row.OrdinalPos,
			Default:    row.Default,
		})
	}
	return desc, nil
}

// uniqueFieldName resolves sanitized-name collisions within one table.
// Catalog identifiers are case- and punctuation-sensitive in ways Rust
// field names are not, so distinct columns can sanitize identically. The
// second and later occurrences, in ordinal order, get _2, _3, ...; the
// counter advances past names that are themselves already taken.
func uniqueFieldName(name string, taken map[string]bool) string {
	if !taken[name] {
		return name
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d", name, n)
		if !taken[candidate] {
			return candidate
		}
	}
}
