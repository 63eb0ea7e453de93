package main

import (
	"errors"
	"log"
	"os/exec"
)

// formatFiles runs rustfmt over the written files. A missing rustfmt binary
// is a warning, not an error; the generated code is valid either way.
func formatFiles(paths []string) {
	for _, p := range paths {
		out, err := exec.Command("rustfmt", p).CombinedOutput()
		if err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				log.Printf("rustfmt not found, skipping formatting")
				return
			}
			log.Printf("WARN: rustfmt %s: %v (%s)", p, err, out)
		}
	}
}
