package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// writePlan writes every planned file, creating parent directories as
// needed. Paths are written in sorted order so failures are reproducible;
// each failure names the offending path.
func writePlan(plan OutputPlan) ([]string, error) {
	paths := make([]string, 0, len(plan))
	for p := range plan {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	for _, p := range paths {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, fmt.Errorf("create directory for %s: %w", p, err)
		}
		if err := os.WriteFile(p, []byte(plan[p]), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", p, err)
		}
	}
	return paths, nil
}
