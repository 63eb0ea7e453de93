package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the full generation configuration. Values come from an
// optional TOML file with command-line flags layered on top.
type Config struct {
	Source   SourceConfig   `toml:"source"`
	Output   OutputConfig   `toml:"output"`
	Generate GenerateConfig `toml:"generate"`
}

// SourceConfig identifies the database engine and connection string.
type SourceConfig struct {
	Type   string `toml:"type"`   // "postgres", "mysql" or "sqlite"
	DSN    string `toml:"dsn"`
	Schema string `toml:"schema"` // database name for MySQL, ignored for SQLite
}

type OutputConfig struct {
	Directory string `toml:"directory"` // base path, original default "src"
	File      string `toml:"file"`      // aggregate/index file, original default "schema.rs"
}

type GenerateConfig struct {
	Tables       []string `toml:"tables"` // "table:key" pairs; empty means whole schema
	UUID         bool     `toml:"uuid"`
	IncludeViews bool     `toml:"include_views"`
	Rustfmt      bool     `toml:"rustfmt"`
}

func defaultConfig() Config {
	return Config{
		Source: SourceConfig{Type: "postgres", Schema: "public"},
		Output: OutputConfig{Directory: "src", File: "schema.rs"},
	}
}

// loadConfig reads a TOML config file over the defaults, rejecting unknown
// keys so typos fail instead of silently falling back.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if unknown := md.Undecoded(); len(unknown) > 0 {
		keys := make([]string, len(unknown))
		for i, k := range unknown {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// validate checks the assembled configuration after flag overlay.
func (c *Config) validate() error {
	switch c.Source.Type {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("source.type must be one of: postgres, mysql, sqlite")
	}

	if c.Source.DSN == "" && c.Source.Type == "postgres" {
		c.Source.DSN = postgresDSNFromEnv()
	}
	if c.Source.DSN == "" {
		return fmt.Errorf("source.dsn is required")
	}

	c.Source.Schema = strings.TrimSpace(c.Source.Schema)
	if c.Source.Schema == "" && c.Source.Type != "sqlite" {
		return fmt.Errorf("source.schema is required")
	}

	if c.Output.Directory == "" {
		return fmt.Errorf("output.directory is required")
	}
	if c.Output.File == "" {
		return fmt.Errorf("output.file is required")
	}

	if _, err := c.tableRequests(); err != nil {
		return err
	}
	return nil
}

// tableRequests parses the configured table list into ordered requests.
// Entries are "table" or "table:key"; keys become Rust module names, so
// they are validated rather than rewritten.
func (c *Config) tableRequests() ([]TableRequest, error) {
	var reqs []TableRequest
	seen := map[string]bool{}
	for _, entry := range c.Generate.Tables {
		for _, item := range strings.Split(entry, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			table, key := item, item
			if i := strings.IndexByte(item, ':'); i >= 0 {
				table, key = item[:i], item[i+1:]
				if table == "" || key == "" || strings.ContainsRune(key, ':') {
					return nil, fmt.Errorf("invalid table mapping %q (want 'table:key')", item)
				}
			}
			if err := validateModuleKey(key); err != nil {
				return nil, fmt.Errorf("table mapping %q: %w", item, err)
			}
			if seen[key] {
				return nil, fmt.Errorf("duplicate output key %q", key)
			}
			seen[key] = true
			reqs = append(reqs, TableRequest{Schema: c.Source.Schema, Table: table, OutputKey: key})
		}
	}
	return reqs, nil
}

// validateModuleKey checks that an output key is usable as a Rust module
// name and file stem.
func validateModuleKey(key string) error {
	for i, r := range key {
		switch {
		case r == '_', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return fmt.Errorf("output key must not start with a digit")
			}
		default:
			return fmt.Errorf("output key must match [a-z_][a-z0-9_]*")
		}
	}
	if key == "" || rustReservedWords[key] {
		return fmt.Errorf("output key must be a valid Rust module name")
	}
	return nil
}

// postgresDSNFromEnv assembles a connection string from the conventional
// POSTGRES_* environment variables when no DSN is given.
func postgresDSNFromEnv() string {
	user := os.Getenv("POSTGRES_USER")
	database := os.Getenv("POSTGRES_DATABASE")
	if user == "" || database == "" {
		return ""
	}
	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, os.Getenv("POSTGRES_PASSWORD")),
		Host:   host + ":" + port,
		Path:   "/" + database,
	}
	return u.String()
}
