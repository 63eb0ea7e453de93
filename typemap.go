package main

import "strings"

// RustType is a resolved Rust type expression plus the crate it requires.
// Expressions are fully qualified (e.g. "chrono::NaiveDate") so generated
// files need no use items; Crate is surfaced in the generated header.
type RustType struct {
	Expr  string
	Crate string
}

// rustTypes maps catalog type names to Rust types. Both the
// information_schema long spellings and the pg_catalog short spellings are
// listed; catalog sources for other engines normalize into this vocabulary.
// The table is read-only after init.
var rustTypes = map[string]RustType{
	// integers, width-matched so the full signed range fits
	"smallint":    {Expr: "i16"},
	"int2":        {Expr: "i16"},
	"smallserial": {Expr: "i16"},
	"integer":     {Expr: "i32"},
	"int4":        {Expr: "i32"},
	"serial":      {Expr: "i32"},
	"bigint":      {Expr: "i64"},
	"int8":        {Expr: "i64"},
	"bigserial":   {Expr: "i64"},

	// floating point
	"real":             {Expr: "f32"},
	"float4":           {Expr: "f32"},
	"double precision": {Expr: "f64"},
	"float8":           {Expr: "f64"},
	// lossy for high-precision values; kept for parity with the float types
	"numeric": {Expr: "f64"},
	"decimal": {Expr: "f64"},

	"boolean": {Expr: "bool"},
	"bool":    {Expr: "bool"},

	// text and character variants
	"text":              {Expr: "String"},
	"character varying": {Expr: "String"},
	"varchar":           {Expr: "String"},
	"character":         {Expr: "String"},
	"bpchar":            {Expr: "String"},
	"char":              {Expr: "String"},

	"bytea": {Expr: "Vec<u8>"},

	// date/time via chrono
	"date":                        {Expr: "chrono::NaiveDate", Crate: "chrono"},
	"time":                        {Expr: "chrono::NaiveTime", Crate: "chrono"},
	"time without time zone":      {Expr: "chrono::NaiveTime", Crate: "chrono"},
	"timestamp":                   {Expr: "chrono::NaiveDateTime", Crate: "chrono"},
	"timestamp without time zone": {Expr: "chrono::NaiveDateTime", Crate: "chrono"},
	"timestamptz":                 {Expr: "chrono::DateTime<chrono::Utc>", Crate: "chrono"},
	"timestamp with time zone":    {Expr: "chrono::DateTime<chrono::Utc>", Crate: "chrono"},

	"json":  {Expr: "serde_json::Value", Crate: "serde_json"},
	"jsonb": {Expr: "serde_json::Value", Crate: "serde_json"},

	// opaque textual representations: networking, geometry, bit strings
	"interval":    {Expr: "String"},
	"money":       {Expr: "String"},
	"inet":        {Expr: "String"},
	"cidr":        {Expr: "String"},
	"macaddr":     {Expr: "String"},
	"bit":         {Expr: "String"},
	"bit varying": {Expr: "String"},
	"box":         {Expr: "String"},
	"circle":      {Expr: "String"},
	"line":        {Expr: "String"},
	"lseg":        {Expr: "String"},
	"path":        {Expr: "String"},
	"point":       {Expr: "String"},
	"polygon":     {Expr: "String"},
	"pg_lsn":      {Expr: "String"},
}

// TypeMapper resolves catalog type names to Rust types. UseUUID mirrors the
// --uuid flag: uuid columns become uuid::Uuid instead of String.
type TypeMapper struct {
	UseUUID bool
}

// Map resolves a catalog type name. A nullable column is wrapped in
// Option<...>; absence of the wrapper for a nullable column would make NULL
// values unrepresentable. Unknown names fail with UnsupportedTypeError
// instead of defaulting to String.
func (m *TypeMapper) Map(dataType string, nullable bool) (RustType, error) {
	name := strings.ToLower(strings.TrimSpace(dataType))

	var rt RustType
	if name == "uuid" {
		rt = RustType{Expr: "String"}
		if m.UseUUID {
			rt = RustType{Expr: "uuid::Uuid", Crate: "uuid"}
		}
	} else {
		var ok bool
		rt, ok = rustTypes[name]
		if !ok {
			return RustType{}, &UnsupportedTypeError{TypeName: dataType}
		}
	}

	if nullable {
		rt.Expr = "Option<" + rt.Expr + ">"
	}
	return rt, nil
}

// supportedTypeNames returns every catalog type name the mapper accepts.
func supportedTypeNames() []string {
	names := make([]string, 0, len(rustTypes)+1)
	for name := range rustTypes {
		names = append(names, name)
	}
	names = append(names, "uuid")
	return names
}
