package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rickgao/etherex-fixtures/internal/model"
)

// Parameter directions stored in fixture_params.
const (
	DirectionInput  = "input"
	DirectionOutput = "output"
)

// Address categories stored in fixture_addresses.
const (
	CategoryNamereg = "nameregs"
	CategoryEtherex = "etherex"
)

// rowNamespace seeds the content-derived row IDs.
var rowNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:etherex-fixtures"))

// SeedStats reports the outcome of a Seed call.
type SeedStats struct {
	Inserts   int64 // Rows written
	Conflicts int64 // Rows already present
}

// Seeder writes a fixture table into PostgreSQL.
type Seeder struct {
	db     DB
	logger *slog.Logger
}

// NewSeeder creates a new Seeder.
func NewSeeder(db DB, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

// statement is a single queued insert.
type statement struct {
	sql  string
	args []any
}

// Seed inserts every row of t in one batch.
func (s *Seeder) Seed(ctx context.Context, t model.Table) (SeedStats, error) {
	start := time.Now()
	stmts, err := buildStatements(t)
	if err != nil {
		return SeedStats{}, err
	}

	batch := &pgx.Batch{}
	for _, st := range stmts {
		batch.Queue(st.sql, st.args...)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	var stats SeedStats
	for i := range stmts {
		ct, err := results.Exec()
		if err != nil {
			return stats, fmt.Errorf("exec seed statement %d: %w", i, err)
		}
		if ct.RowsAffected() == 0 {
			stats.Conflicts++
		} else {
			stats.Inserts += ct.RowsAffected()
		}
	}

	s.logger.Info("seeded fixtures",
		"statements", len(stmts),
		"inserts", stats.Inserts,
		"conflicts", stats.Conflicts,
		"duration", time.Since(start),
	)
	return stats, nil
}

// FunctionID returns the row ID of the descriptor at position.
func FunctionID(position int, name string) uuid.UUID {
	return uuid.NewSHA1(rowNamespace, []byte(fmt.Sprintf("function/%d/%s", position, name)))
}

// ParamID returns the row ID of a descriptor parameter.
func ParamID(function uuid.UUID, direction string, position int) uuid.UUID {
	return uuid.NewSHA1(function, []byte(fmt.Sprintf("%s/%d", direction, position)))
}

// buildStatements flattens t into insert statements, parents before children.
func buildStatements(t model.Table) ([]statement, error) {
	var stmts []statement

	for _, u := range []struct {
		name string
		unit model.Unit
	}{
		{"ether", t.Ether},
		{"tenEther", t.TenEther},
		{"precision", t.Precision},
	} {
		value, err := u.unit.Decimal()
		if err != nil {
			return nil, fmt.Errorf("unit %s: %w", u.name, err)
		}
		stmts = append(stmts, statement{
			sql: `INSERT INTO fixture_units (name, value)
				VALUES ($1, $2::numeric)
				ON CONFLICT (name) DO NOTHING`,
			args: []any{u.name, value},
		})
	}

	for i, addr := range t.Addresses.NameregAddresses() {
		stmts = append(stmts, addressStatement(CategoryNamereg, i, t.Addresses.Nameregs[i], addr.Hex()))
	}
	stmts = append(stmts, addressStatement(CategoryEtherex, 0, t.Addresses.Etherex, t.Addresses.EtherexAddress().Hex()))

	for _, c := range []struct {
		name  string
		value int
	}{
		{"trade_fields", t.TradeFields},
		{"market_fields", t.MarketFields},
	} {
		stmts = append(stmts, statement{
			sql: `INSERT INTO fixture_counts (name, value)
				VALUES ($1, $2)
				ON CONFLICT (name) DO NOTHING`,
			args: []any{c.name, c.value},
		})
	}

	for pos, f := range t.ContractDesc {
		fid := FunctionID(pos, f.Name)
		stmts = append(stmts, statement{
			sql: `INSERT INTO fixture_functions (function_id, position, name)
				VALUES ($1, $2, $3)
				ON CONFLICT (function_id) DO NOTHING`,
			args: []any{fid, pos, f.Name},
		})
		stmts = append(stmts, paramStatements(fid, DirectionInput, f.Inputs)...)
		stmts = append(stmts, paramStatements(fid, DirectionOutput, f.Outputs)...)
	}

	return stmts, nil
}

func addressStatement(category string, position int, address, checksum string) statement {
	return statement{
		sql: `INSERT INTO fixture_addresses (category, position, address, checksum)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (category, position) DO NOTHING`,
		args: []any{category, position, address, checksum},
	}
}

func paramStatements(fid uuid.UUID, direction string, params []model.Param) []statement {
	stmts := make([]statement, 0, len(params))
	for pos, p := range params {
		stmts = append(stmts, statement{
			sql: `INSERT INTO fixture_params (param_id, function_id, direction, position, name, type)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (param_id) DO NOTHING`,
			args: []any{ParamID(fid, direction, pos), fid, direction, pos, p.Name, p.Type},
		})
	}
	return stmts
}
