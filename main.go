package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pgrust [config.toml]",
	Short: "Generate Rust struct definitions from a database schema",
	Long: `pgrust introspects a database's catalog and generates Rust structs
mirroring its tables, either as a single schema.rs or as per-table files
re-exported from a module index.`,
	Args:    cobra.MaximumNArgs(1),
	Version: versionString(),
	RunE:    runGenerate,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "path to TOML config file")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	f.String("source", "postgres", "source engine: postgres, mysql, sqlite")
	f.String("dsn", "", "database connection string (postgres falls back to POSTGRES_* env vars)")
	f.StringP("schema", "s", "public", "schema to introspect (database name for mysql)")
	f.StringSlice("tables", nil, "table list 'table:key,...' (default: every table in the schema)")
	f.StringP("output-directory", "d", "src", "output base directory")
	f.StringP("output", "o", "schema.rs", "aggregate/index output file")
	f.Bool("uuid", false, "map uuid columns to uuid::Uuid instead of String")
	f.BoolP("include-views", "i", false, "include views in whole-schema generation")
	f.Bool("rustfmt", false, "run rustfmt on generated files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func debugf(format string, args ...any) {
	if flagVerbose {
		log.Printf("DEBUG: "+format, args...)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Resolve config path: positional arg takes precedence over --config
	cfgPath := flagConfig
	if len(args) > 0 {
		cfgPath = args[0]
	}

	cfg, err := assembleConfig(cmd, cfgPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	start := time.Now()

	src, err := newCatalogSource(cfg.Source.Type)
	if err != nil {
		return err
	}

	log.Printf("connecting to %s...", src.Name())
	db, err := src.Open(cfg.Source.DSN)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", src.Name(), err)
	}

	requests, err := cfg.tableRequests()
	if err != nil {
		return err
	}
	tableList := len(requests) > 0
	if !tableList {
		// Whole-schema mode: one aggregate file, every table under its own name
		names, err := src.ListTables(ctx, db, cfg.Source.Schema, cfg.Generate.IncludeViews)
		if err != nil {
			return fmt.Errorf("list tables in %q: %w", cfg.Source.Schema, err)
		}
		if len(names) == 0 {
			return fmt.Errorf("no tables found in schema %q", cfg.Source.Schema)
		}
		for _, name := range names {
			requests = append(requests, TableRequest{Schema: cfg.Source.Schema, Table: name, OutputKey: name})
		}
	}

	log.Printf("introspecting %d table(s) in schema '%s'...", len(requests), cfg.Source.Schema)
	mapper := &TypeMapper{UseUUID: cfg.Generate.UUID}
	model, err := buildSchemaModel(ctx, db, src, requests, mapper)
	if err != nil {
		return err
	}
	for _, t := range model.Tables {
		debugf("%s.%s -> %s (%d columns)", t.SchemaName, t.TableName, t.StructName, len(t.Columns))
	}

	var plan OutputPlan
	if tableList {
		units := make([]OutputUnit, 0, len(model.Tables))
		for _, t := range model.Tables {
			units = append(units, renderTableUnit(t))
		}
		index := renderIndexUnit(model, cfg.Output.File)
		plan, err = planDirectory(cfg.Output.Directory, index, units)
		if err != nil {
			return err
		}
	} else {
		plan = planSingleFile(cfg.Output.Directory, renderAggregateUnit(model, cfg.Output.File))
	}

	written, err := writePlan(plan)
	if err != nil {
		return err
	}
	for _, p := range written {
		log.Printf("  wrote %s", p)
	}

	if cfg.Generate.Rustfmt {
		formatFiles(written)
	}

	log.Printf("generated %d file(s) for %d table(s) in %s",
		len(written), len(model.Tables), time.Since(start).Round(time.Millisecond))
	return nil
}

// assembleConfig loads the TOML config (when given) and overlays any
// explicitly set flags, then validates the result. Flags win over file
// values.
func assembleConfig(cmd *cobra.Command, cfgPath string) (*Config, error) {
	cfg := defaultConfig()
	if cfgPath != "" {
		loaded, err := loadConfig(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	f := cmd.Flags()
	if f.Changed("source") {
		cfg.Source.Type, _ = f.GetString("source")
	}
	if f.Changed("dsn") {
		cfg.Source.DSN, _ = f.GetString("dsn")
	}
	if f.Changed("schema") {
		cfg.Source.Schema, _ = f.GetString("schema")
	}
	if f.Changed("tables") {
		cfg.Generate.Tables, _ = f.GetStringSlice("tables")
	}
	if f.Changed("output-directory") {
		cfg.Output.Directory, _ = f.GetString("output-directory")
	}
	if f.Changed("output") {
		cfg.Output.File, _ = f.GetString("output")
	}
	if f.Changed("uuid") {
		cfg.Generate.UUID, _ = f.GetBool("uuid")
	}
	if f.Changed("include-views") {
		cfg.Generate.IncludeViews, _ = f.GetBool("include-views")
	}
	if f.Changed("rustfmt") {
		cfg.Generate.Rustfmt, _ = f.GetBool("rustfmt")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
