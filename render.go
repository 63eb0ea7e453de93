package main

import (
	"fmt"
	"slices"
	"strings"
)

// generatedHeader opens every aggregate/index file. Deliberately carries no
// timestamp so regenerating against an unchanged catalog is byte-identical.
const generatedHeader = "// This file was generated by pgrust.\n// Do not edit this file directly.\n"

const structDerives = "#[derive(Debug, Clone, PartialEq, serde::Serialize, serde::Deserialize)]"

// renderTableUnit renders one table's struct declaration as a standalone
// per-table file. Pure text templating; no catalog access, no I/O.
func renderTableUnit(t TableDescriptor) OutputUnit {
	return OutputUnit{
		RelativePath: t.OutputKey + ".rs",
		Contents:     renderStruct(t),
	}
}

// renderStruct emits the struct declaration with fields in ordinal order.
// Columns whose field name differs from the raw catalog name carry a serde
// rename so a serializer can map back to the source column.
func renderStruct(t TableDescriptor) string {
	var b strings.Builder
	b.WriteString(structDerives)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "pub struct %s {\n", t.StructName)
	for _, col := range t.Columns {
		if col.FieldName != col.SourceName {
			fmt.Fprintf(&b, "    #[serde(rename = %q)]\n", col.SourceName)
		}
		fmt.Fprintf(&b, "    pub %s: %s,\n", col.FieldName, col.RustType.Expr)
	}
	b.WriteString("}\n")
	return b.String()
}

// renderIndexUnit renders the module-index file for directory mode: one
// pub mod declaration per generated unit, in output-key order.
func renderIndexUnit(model *SchemaModel, indexFileName string) OutputUnit {
	var b strings.Builder
	writeFileHeader(&b, model)
	for _, t := range model.Tables {
		fmt.Fprintf(&b, "pub mod %s;\n", t.OutputKey)
	}
	return OutputUnit{RelativePath: indexFileName, Contents: b.String()}
}

// renderAggregateUnit renders the single-file output: every struct in model
// order under one namespace, no module declarations.
func renderAggregateUnit(model *SchemaModel, fileName string) OutputUnit {
	var b strings.Builder
	writeFileHeader(&b, model)
	for _, t := range model.Tables {
		b.WriteByte('\n')
		b.WriteString(renderStruct(t))
	}
	return OutputUnit{RelativePath: fileName, Contents: b.String()}
}

func writeFileHeader(b *strings.Builder, model *SchemaModel) {
	b.WriteString(generatedHeader)
	crates := append(model.Crates(), "serde")
	slices.Sort(crates)
	fmt.Fprintf(b, "// Required crates: %s\n", strings.Join(crates, ", "))
}
