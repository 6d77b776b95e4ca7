package database

import (
	"fmt"
	"net/url"

	"github.com/rickgao/etherex-fixtures/internal/config"
)

// ApplicationName tags seeding sessions in pg_stat_activity.
const ApplicationName = "etherex-fixtures"

// BuildConnString builds a PostgreSQL connection URL from config.
// User info is escaped by net/url, so passwords may contain any character.
func BuildConnString(cfg config.DBConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = config.DefaultDBSSLMode
	}

	q := url.Values{}
	q.Set("sslmode", sslMode)
	q.Set("application_name", ApplicationName)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/" + cfg.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}
