package main

import "strings"

// Injected at release time via -ldflags "-X main.releaseVersion=... -X main.releaseCommit=...".
var (
	releaseVersion = ""
	releaseCommit  = ""
)

// versionString renders the string cobra prints for --version: the release
// tag when one was injected, otherwise a dev pseudo-version carrying the
// short commit so generated-file consumers can still pin what produced
// their schema.
func versionString() string {
	return renderVersion(releaseVersion, releaseCommit)
}

func renderVersion(version, commit string) string {
	if v := strings.TrimSpace(version); v != "" {
		return v
	}
	c := strings.TrimSpace(commit)
	if len(c) > 7 {
		c = c[:7]
	}
	if c == "" {
		return "dev"
	}
	return "dev+" + c
}
