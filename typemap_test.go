package main

import (
	"errors"
	"testing"
)

func TestTypeMapperMap(t *testing.T) {
	m := &TypeMapper{}
	tests := []struct {
		dataType string
		nullable bool
		want     string
	}{
		{"smallint", false, "i16"},
		{"int2", false, "i16"},
		{"integer", false, "i32"},
		{"int4", false, "i32"},
		{"serial", false, "i32"},
		{"bigint", false, "i64"},
		{"int8", false, "i64"},
		{"real", false, "f32"},
		{"double precision", false, "f64"},
		{"numeric", false, "f64"},
		{"boolean", false, "bool"},
		{"text", false, "String"},
		{"character varying", false, "String"},
		{"varchar", false, "String"},
		{"bytea", false, "Vec<u8>"},
		{"date", false, "chrono::NaiveDate"},
		{"timestamp without time zone", false, "chrono::NaiveDateTime"},
		{"timestamptz", false, "chrono::DateTime<chrono::Utc>"},
		{"timestamp with time zone", false, "chrono::DateTime<chrono::Utc>"},
		{"json", false, "serde_json::Value"},
		{"jsonb", false, "serde_json::Value"},
		{"uuid", false, "String"},
		{"interval", false, "String"},
		{"bit varying", false, "String"},
		// case and whitespace normalization
		{"  TEXT ", false, "String"},
		{"Integer", false, "i32"},
		// nullable wrapping
		{"integer", true, "Option<i32>"},
		{"text", true, "Option<String>"},
		{"bytea", true, "Option<Vec<u8>>"},
		{"timestamptz", true, "Option<chrono::DateTime<chrono::Utc>>"},
	}
	for _, tt := range tests {
		rt, err := m.Map(tt.dataType, tt.nullable)
		if err != nil {
			t.Errorf("Map(%q, %t) error: %v", tt.dataType, tt.nullable, err)
			continue
		}
		if rt.Expr != tt.want {
			t.Errorf("Map(%q, %t) = %q, want %q", tt.dataType, tt.nullable, rt.Expr, tt.want)
		}
	}
}

func TestTypeMapperUUIDOption(t *testing.T) {
	withUUID := &TypeMapper{UseUUID: true}

	rt, err := withUUID.Map("uuid", false)
	if err != nil {
		t.Fatalf("Map(uuid) error: %v", err)
	}
	if rt.Expr != "uuid::Uuid" || rt.Crate != "uuid" {
		t.Errorf("Map(uuid) = %+v, want uuid::Uuid from crate uuid", rt)
	}

	rt, err = withUUID.Map("uuid", true)
	if err != nil {
		t.Fatalf("Map(uuid, nullable) error: %v", err)
	}
	if rt.Expr != "Option<uuid::Uuid>" {
		t.Errorf("Map(uuid, nullable) = %q, want Option<uuid::Uuid>", rt.Expr)
	}
}

func TestTypeMapperCrates(t *testing.T) {
	m := &TypeMapper{}
	tests := []struct {
		dataType string
		crate    string
	}{
		{"integer", ""},
		{"text", ""},
		{"date", "chrono"},
		{"timestamptz", "chrono"},
		{"jsonb", "serde_json"},
	}
	for _, tt := range tests {
		rt, err := m.Map(tt.dataType, false)
		if err != nil {
			t.Fatalf("Map(%q) error: %v", tt.dataType, err)
		}
		if rt.Crate != tt.crate {
			t.Errorf("Map(%q).Crate = %q, want %q", tt.dataType, rt.Crate, tt.crate)
		}
	}
}

func TestTypeMapperUnsupported(t *testing.T) {
	m := &TypeMapper{}
	for _, name := range []string{"geometry", "tsvector", "int4range", "mood", ""} {
		_, err := m.Map(name, false)
		if err == nil {
			t.Errorf("Map(%q) expected error", name)
			continue
		}
		var ute *UnsupportedTypeError
		if !errors.As(err, &ute) {
			t.Errorf("Map(%q) error = %v, want UnsupportedTypeError", name, err)
		} else if ute.TypeName != name {
			t.Errorf("UnsupportedTypeError.TypeName = %q, want %q", ute.TypeName, name)
		}
	}
}

// Every name in the supported set must map without error, and repeated
// calls must agree.
func TestTypeMapperTotalAndDeterministic(t *testing.T) {
	m := &TypeMapper{UseUUID: true}
	for _, name := range supportedTypeNames() {
		for _, nullable := range []bool{false, true} {
			first, err := m.Map(name, nullable)
			if err != nil {
				t.Fatalf("Map(%q, %t) error: %v", name, nullable, err)
			}
			second, err := m.Map(name, nullable)
			if err != nil {
				t.Fatalf("Map(%q, %t) second call error: %v", name, nullable, err)
			}
			if first != second {
				t.Errorf("Map(%q, %t) not deterministic: %+v vs %+v", name, nullable, first, second)
			}
		}
	}
}
