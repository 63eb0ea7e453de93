package main

import "fmt"

// UnsupportedTypeError is returned by the type mapper for a catalog type
// name outside the supported set. Generation fails rather than guessing a
// Rust type; a wrong guess would silently change the data shape.
type UnsupportedTypeError struct {
	TypeName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported catalog type %q", e.TypeName)
}

// TableNotFoundError is returned when a requested table has no rows in the
// catalog. An empty table is never silently generated.
type TableNotFoundError struct {
	Schema string
	Table  string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table %s.%s not found in catalog", e.Schema, e.Table)
}

// PathCollisionError is returned by the output planner when two output keys
// resolve to the same relative path. Detected before any file is written.
type PathCollisionError struct {
	Path string
	Keys []string
}

func (e *PathCollisionError) Error() string {
	return fmt.Sprintf("output keys %v collide on path %q", e.Keys, e.Path)
}
