package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultFormat      = FormatJSON
	DefaultDBPort      = 5432
	DefaultDBSSLMode   = "prefer"
	DefaultMaxConns    = 4
	DefaultMinConns    = 1
	DefaultSeedTimeout = 30 * time.Second
)

// ApplyDefaults fills zero-valued optional fields.
func (c *FixturesConfig) ApplyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}

	applyDBDefaults(&c.Database.Postgres)

	if c.Seed.Timeout == 0 {
		c.Seed.Timeout = DefaultSeedTimeout
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
