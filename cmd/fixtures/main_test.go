package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rickgao/etherex-fixtures/internal/config"
	"github.com/rickgao/etherex-fixtures/internal/fixtures"
	"github.com/rickgao/etherex-fixtures/internal/model"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := loadConfig("", "", "", false)
		if err != nil {
			t.Fatalf("loadConfig failed: %v", err)
		}
		if cfg.Output.Format != config.FormatJSON {
			t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, config.FormatJSON)
		}
		if cfg.Seed.Enabled {
			t.Error("Seed.Enabled = true, want false")
		}
	})

	t.Run("flags override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fixtures.yaml")
		if err := os.WriteFile(path, []byte("output:\n  format: json\n  path: a.json\n"), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := loadConfig(path, "yaml", "b.yaml", false)
		if err != nil {
			t.Fatalf("loadConfig failed: %v", err)
		}
		if cfg.Output.Format != config.FormatYAML {
			t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, config.FormatYAML)
		}
		if cfg.Output.Path != "b.yaml" {
			t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, "b.yaml")
		}
	})

	t.Run("seed flag requires database", func(t *testing.T) {
		_, err := loadConfig("", "", "", true)
		if err == nil {
			t.Fatal("loadConfig expected error, got nil")
		}
		want := "validate config: database.postgres.host is required"
		if err.Error() != want {
			t.Errorf("error = %q, want %q", err.Error(), want)
		}
	})

	t.Run("bad format flag", func(t *testing.T) {
		if _, err := loadConfig("", "csv", "", false); err == nil {
			t.Error("loadConfig expected error for csv, got nil")
		}
	})
}

func TestWriteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")

	out := config.OutputConfig{Format: config.FormatJSON, Path: path}
	if err := writeTable(out, fixtures.Get()); err != nil {
		t.Fatalf("writeTable failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var got model.Table
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got.MarketFields != 9 {
		t.Errorf("MarketFields = %d, want 9", got.MarketFields)
	}
	if len(got.ContractDesc) != 13 {
		t.Errorf("len(ContractDesc) = %d, want 13", len(got.ContractDesc))
	}
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("writes yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fixtures.yaml")
		if err := run(options{format: "yaml", outPath: path}, logger); err != nil {
			t.Fatalf("run failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		if !strings.Contains(string(data), "get_sub_balance") {
			t.Error("yaml output missing get_sub_balance descriptor")
		}
	})

	t.Run("config errors are returned", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fixtures.json")
		err := run(options{format: "csv", outPath: path}, logger)
		if err == nil {
			t.Fatal("run expected error, got nil")
		}
		if !strings.HasPrefix(err.Error(), "load config: ") {
			t.Errorf("error = %q, want load config prefix", err.Error())
		}
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Error("output file created despite config error")
		}
	})

	t.Run("unwritable output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "fixtures.json")
		err := run(options{outPath: path}, logger)
		if err == nil || !strings.Contains(err.Error(), "write fixtures: create output file") {
			t.Errorf("run() error = %v, want create output file error", err)
		}
	})
}
