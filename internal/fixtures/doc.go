// Package fixtures holds the literal fixture table for the exchange front end.
//
// The table carries the denomination units, the registry and exchange
// addresses, the trade and market record widths, and the exchange contract's
// function descriptors. Descriptor and parameter order mirror the contract's
// positional calling convention and must not be rearranged.
//
// The table is built once at package load and never mutated; Get returns a
// deep copy so callers may modify what they receive.
package fixtures
