package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rickgao/etherex-fixtures/internal/config"
	"github.com/rickgao/etherex-fixtures/internal/database"
	"github.com/rickgao/etherex-fixtures/internal/export"
	"github.com/rickgao/etherex-fixtures/internal/fixtures"
	"github.com/rickgao/etherex-fixtures/internal/model"
	"github.com/rickgao/etherex-fixtures/internal/version"
)

// options are the command-line flags.
type options struct {
	configPath string
	format     string
	outPath    string
	seed       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to config file (optional)")
	flag.StringVar(&opts.format, "format", "", "output format: json or yaml (overrides config)")
	flag.StringVar(&opts.outPath, "out", "", "output file, stdout when empty (overrides config)")
	flag.BoolVar(&opts.seed, "seed", false, "load the table into postgres (overrides config)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Logs go to stderr so stdout carries only the table
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting fixtures", append(version.LogArgs(), "config", opts.configPath)...)

	if err := run(opts, logger); err != nil {
		logger.Error("fixtures failed", "error", err)
		os.Exit(1)
	}
}

// run writes the table and seeds it when enabled.
func run(opts options, logger *slog.Logger) error {
	cfg, err := loadConfig(opts.configPath, opts.format, opts.outPath, opts.seed)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	table := fixtures.Get()

	if err := writeTable(cfg.Output, table); err != nil {
		return fmt.Errorf("write fixtures: %w", err)
	}
	logger.Info("fixtures written",
		"format", cfg.Output.Format,
		"path", cfg.Output.Path,
		"functions", len(table.ContractDesc),
	)

	if !cfg.Seed.Enabled {
		return nil
	}

	if err := seedTable(ctx, cfg, table, logger); err != nil {
		return fmt.Errorf("seed fixtures: %w", err)
	}
	return nil
}

// loadConfig reads the config file when given and applies flag overrides.
func loadConfig(path, format, out string, seed bool) (*config.FixturesConfig, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadWithDefaults(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if format != "" {
		cfg.Output.Format = format
	}
	if out != "" {
		cfg.Output.Path = out
	}
	if seed {
		cfg.Seed.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func writeTable(out config.OutputConfig, table model.Table) (err error) {
	var w io.Writer = os.Stdout
	if out.Path != "" {
		f, cerr := os.Create(out.Path)
		if cerr != nil {
			return fmt.Errorf("create output file: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("close output file: %w", cerr)
			}
		}()
		w = f
	}
	return export.Encode(w, table, out.Format)
}

func seedTable(ctx context.Context, cfg *config.FixturesConfig, table model.Table, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Seed.Timeout)
	defer cancel()

	logger.Info("connecting to database",
		"host", cfg.Database.Postgres.Host,
		"port", cfg.Database.Postgres.Port,
		"database", cfg.Database.Postgres.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database.Postgres)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	_, err = database.NewSeeder(pool, logger).Seed(ctx, table)
	return err
}
