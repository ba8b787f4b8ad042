package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/fx"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/config"
)

func main() {
	params := parseFlags()

	cfg, err := loadConfig(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var s *scenario

	app := fx.New(
		Module(cfg),
		fx.Populate(&s),
		fx.NopLogger,
	)

	ctx := context.Background()

	if err = app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	runErr := s.run(ctx, os.Stdout, params.PrintAudit)

	if err = app.Stop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error stopping: %v\n", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		os.Exit(1)
	}
}

// Params are the command line flags of the checkout demo.
type Params struct {
	ConfigPath    string
	DSN           string
	Driver        string
	Observability bool
	PrintAudit    bool
}

func parseFlags() Params {
	var p Params

	flag.StringVar(&p.ConfigPath, "config", "", "path to a YAML config file (defaults are used when empty)")
	flag.StringVar(&p.DSN, "dsn", "", "database DSN (overrides config)")
	flag.StringVar(&p.Driver, "driver", "", "database driver: pgx, sqldb, sqlx or sqlite3 (overrides config)")
	flag.BoolVar(&p.Observability, "observability", false, "export traces and metrics via OTLP")
	flag.BoolVar(&p.PrintAudit, "audit", false, "print the JSON audit log after the scenario")
	flag.Parse()

	return p
}

// loadConfig reads the config file, if any, and applies the flag overrides.
func loadConfig(p Params) (config.AppConfig, error) {
	cfg := config.DefaultAppConfig()

	if p.ConfigPath != "" {
		loaded, err := config.LoadAppConfig(p.ConfigPath)
		if err != nil {
			return config.AppConfig{}, err
		}

		cfg = loaded
	}

	if p.Driver != "" {
		cfg.Database.Driver = p.Driver

		if p.DSN == "" && p.Driver != config.DriverSQLite3 {
			cfg.Database.DSN = config.PostgresDemoDSN()
		}
	}

	if p.DSN != "" {
		cfg.Database.DSN = p.DSN
	}

	if p.Observability {
		cfg.Observability.Enabled = true
	}

	return cfg, cfg.Validate()
}
