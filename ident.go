package main

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// rustReservedWords are Rust keywords (strict, reserved and path keywords)
// that cannot be used as plain identifiers. Escaped with a trailing
// underscore rather than r# raw identifiers, which are not legal for
// self/Self/super/crate.
var rustReservedWords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true,
	// reserved for future use
	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"macro": true, "override": true, "priv": true, "try": true,
	"typeof": true, "unsized": true, "virtual": true, "yield": true,
}

// identKind selects the target naming convention.
type identKind int

const (
	identField identKind = iota // snake_case
	identType                   // PascalCase
)

// sanitizeIdent converts a raw catalog identifier into a valid Rust
// identifier in the convention for kind. Deterministic and idempotent;
// collisions between columns are resolved by the builder, not here.
func sanitizeIdent(raw string, kind identKind) string {
	cleaned := cleanIdentChars(raw)

	var name string
	switch kind {
	case identType:
		name = inflect.Camelize(cleaned)
	default:
		name = strings.ToLower(inflect.Underscore(cleaned))
	}

	name = strings.Trim(name, "_")
	if name == "" {
		// fallback matches the kind's convention so re-sanitizing is a no-op
		if kind == identType {
			name = "X"
		} else {
			name = "x"
		}
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	if rustReservedWords[name] {
		name += "_"
	}
	return name
}

// cleanIdentChars replaces characters invalid in Rust identifiers with
// underscores and collapses runs. Catalog identifiers may carry spaces,
// punctuation or non-ASCII when quoted at creation time.
func cleanIdentChars(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	lastUnderscore := false
	for _, r := range raw {
		valid := r == '_' ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if !valid {
			r = '_'
		}
		if r == '_' {
			if lastUnderscore {
				continue
			}
			lastUnderscore = true
		} else {
			lastUnderscore = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
