package main

import (
	"strings"
	"testing"
)

func testModel() *SchemaModel {
	return &SchemaModel{Tables: []TableDescriptor{
		{
			SchemaName: "public", TableName: "profiles", OutputKey: "profiles", StructName: "Profiles",
			Columns: []ColumnDescriptor{
				{FieldName: "id", SourceName: "id", SourceType: "int4", RustType: RustType{Expr: "i32"}, OrdinalPos: 1},
				{FieldName: "bio", SourceName: "bio", SourceType: "text", RustType: RustType{Expr: "Option<String>"}, Nullable: true, OrdinalPos: 2},
			},
		},
		{
			SchemaName: "public", TableName: "users", OutputKey: "users", StructName: "Users",
			Columns: []ColumnDescriptor{
				{FieldName: "created_at", SourceName: "createdAt", SourceType: "timestamptz",
					RustType: RustType{Expr: "chrono::DateTime<chrono::Utc>", Crate: "chrono"}, OrdinalPos: 1},
			},
		},
	}}
}

func TestRenderStruct(t *testing.T) {
	unit := renderTableUnit(testModel().Tables[0])
	if unit.RelativePath != "profiles.rs" {
		t.Errorf("RelativePath = %q, want profiles.rs", unit.RelativePath)
	}

	want := `#[derive(Debug, Clone, PartialEq, serde::Serialize, serde::Deserialize)]
pub struct Profiles {
    pub id: i32,
    pub bio: Option<String>,
}
`
	if unit.Contents != want {
		t.Errorf("renderTableUnit() =\n%s\nwant\n%s", unit.Contents, want)
	}
}

// A field whose name was changed by sanitization carries a serde rename
// back to the source column; unchanged fields carry no attribute.
func TestRenderStructSerdeRename(t *testing.T) {
	out := renderStruct(testModel().Tables[1])
	if !strings.Contains(out, "#[serde(rename = \"createdAt\")]\n    pub created_at:") {
		t.Errorf("missing serde rename:\n%s", out)
	}

	out = renderStruct(testModel().Tables[0])
	if strings.Contains(out, "serde(rename") {
		t.Errorf("unexpected serde rename for unchanged names:\n%s", out)
	}
}

func TestRenderIndexUnit(t *testing.T) {
	unit := renderIndexUnit(testModel(), "schema.rs")
	if unit.RelativePath != "schema.rs" {
		t.Errorf("RelativePath = %q, want schema.rs", unit.RelativePath)
	}

	// module declarations in output-key order
	profilesAt := strings.Index(unit.Contents, "pub mod profiles;\n")
	usersAt := strings.Index(unit.Contents, "pub mod users;\n")
	if profilesAt < 0 || usersAt < 0 || usersAt < profilesAt {
		t.Errorf("module declarations missing or misordered:\n%s", unit.Contents)
	}

	if !strings.Contains(unit.Contents, "// Required crates: chrono, serde\n") {
		t.Errorf("missing crate header:\n%s", unit.Contents)
	}
	if !strings.HasPrefix(unit.Contents, generatedHeader) {
		t.Errorf("missing generated header:\n%s", unit.Contents)
	}
}

func TestRenderAggregateUnit(t *testing.T) {
	unit := renderAggregateUnit(testModel(), "schema.rs")

	if strings.Contains(unit.Contents, "pub mod") {
		t.Errorf("aggregate output must not declare modules:\n%s", unit.Contents)
	}
	profilesAt := strings.Index(unit.Contents, "pub struct Profiles")
	usersAt := strings.Index(unit.Contents, "pub struct Users")
	if profilesAt < 0 || usersAt < 0 || usersAt < profilesAt {
		t.Errorf("structs missing or misordered:\n%s", unit.Contents)
	}
}

// Byte-identical output across calls on the same model; regeneration must
// be diff-clean, so the header may not contain timestamps.
func TestRenderIdempotent(t *testing.T) {
	model := testModel()
	for _, tbl := range model.Tables {
		if a, b := renderTableUnit(tbl), renderTableUnit(tbl); a != b {
			t.Errorf("renderTableUnit(%s) not idempotent", tbl.TableName)
		}
	}
	if a, b := renderIndexUnit(model, "schema.rs"), renderIndexUnit(model, "schema.rs"); a != b {
		t.Error("renderIndexUnit not idempotent")
	}
	if a, b := renderAggregateUnit(model, "schema.rs"), renderAggregateUnit(model, "schema.rs"); a != b {
		t.Error("renderAggregateUnit not idempotent")
	}
}
