// Package database loads the fixture table into PostgreSQL for integration tests.
//
// Tables:
//   - fixture_units: denomination units as NUMERIC
//   - fixture_addresses: addresses by category and position, with EIP-55 checksum form
//   - fixture_counts: trade and market record widths
//   - fixture_functions, fixture_params: the contract description, in positional order
//
// Seeding is append-only and idempotent: row IDs are derived from content and
// inserts use ON CONFLICT DO NOTHING, so reseeding reports conflicts instead of
// duplicating rows.
package database
