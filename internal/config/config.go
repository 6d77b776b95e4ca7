package config

import "time"

// Output formats understood by the export encoder.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FixturesConfig is the root configuration for the fixtures tool.
type FixturesConfig struct {
	Output   OutputConfig   `yaml:"output"`
	Database DatabaseConfig `yaml:"database"`
	Seed     SeedConfig     `yaml:"seed"`
}

// OutputConfig controls where and how the table is written.
type OutputConfig struct {
	Format string `yaml:"format"` // json or yaml
	Path   string `yaml:"path"`   // Empty writes to stdout
}

// DatabaseConfig holds the PostgreSQL connection used for seeding.
type DatabaseConfig struct {
	Postgres DBConfig `yaml:"postgres"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// SeedConfig controls loading the table into PostgreSQL.
type SeedConfig struct {
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"`
}
