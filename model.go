package main

import "slices"

// CatalogColumn is one raw column row as reported by a catalog source.
type CatalogColumn struct {
	Name       string
	DataType   string // catalog type name, e.g. "integer", "character varying", "timestamptz"
	Nullable   bool
	OrdinalPos int
	Default    *string
}

// ColumnDescriptor is a resolved column: sanitized Rust field name plus the
// mapped Rust type. SourceName keeps the raw catalog spelling so the
// renderer can emit a serde rename when the two differ.
type ColumnDescriptor struct {
	FieldName  string
	SourceName string
	SourceType string
	RustType   RustType
	Nullable   bool
	OrdinalPos int
	Default    *string // informational only, never rendered as code
}

// TableDescriptor is a resolved table. OutputKey is the user-chosen name
// the generated struct/file is exposed under; it defaults to the table name
// but table-list requests may remap it.
type TableDescriptor struct {
	SchemaName string
	TableName  string
	OutputKey  string
	StructName string
	Columns    []ColumnDescriptor
}

// SchemaModel holds all resolved tables in request order. Built once by the
// schema model builder and treated as read-only afterwards.
type SchemaModel struct {
	Tables []TableDescriptor
}

// Crates returns the sorted set of Rust crates required by the mapped
// column types, beyond serde which every generated struct derives.
func (m *SchemaModel) Crates() []string {
	seen := map[string]bool{}
	for _, t := range m.Tables {
		for _, c := range t.Columns {
			if c.RustType.Crate != "" {
				seen[c.RustType.Crate] = true
			}
		}
	}
	crates := make([]string, 0, len(seen))
	for c := range seen {
		crates = append(crates, c)
	}
	slices.Sort(crates)
	return crates
}

// OutputUnit is one rendered piece of source text destined for one file.
// Immutable once created.
type OutputUnit struct {
	RelativePath string
	Contents     string
}
