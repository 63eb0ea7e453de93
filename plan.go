package main

import (
	"fmt"
	"path"
	"strings"
)

// OutputPlan maps relative output paths to rendered contents. The plan is
// computed in full, collision-checked, and only then handed to the sink;
// nothing is ever written for a failed run.
type OutputPlan map[string]string

// planSingleFile places the aggregate unit at base/<unit path>.
func planSingleFile(base string, aggregate OutputUnit) OutputPlan {
	return OutputPlan{path.Join(base, aggregate.RelativePath): aggregate.Contents}
}

// planDirectory places the module index at base/<indexFile> and each table
// unit under the index file's stem: base/<stem>/<outputKey>.rs. A schema.rs
// index therefore re-exports src/schema/profiles.rs, which is where Rust
// resolves `pub mod profiles;` declared in src/schema.rs.
func planDirectory(base string, index OutputUnit, units []OutputUnit) (OutputPlan, error) {
	dir := strings.TrimSuffix(index.RelativePath, path.Ext(index.RelativePath))
	if dir == index.RelativePath {
		// without an extension the index file and the table directory
		// would resolve to the same path
		return nil, fmt.Errorf("output file %q needs an extension for per-table output", index.RelativePath)
	}

	plan := make(OutputPlan, len(units)+1)
	owner := make(map[string]string, len(units)+1)

	indexPath := path.Join(base, index.RelativePath)
	plan[indexPath] = index.Contents
	owner[indexPath] = index.RelativePath

	for _, u := range units {
		p := path.Join(base, dir, u.RelativePath)
		if prev, ok := owner[p]; ok {
			return nil, &PathCollisionError{Path: p, Keys: []string{prev, u.RelativePath}}
		}
		plan[p] = u.Contents
		owner[p] = u.RelativePath
	}
	return plan, nil
}
