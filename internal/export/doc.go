// Package export writes the fixture table in the shapes front-end tooling reads.
//
// JSON output keeps the key names of the hand-written front-end fixtures object so a
// generated file can be dropped in place of the hand-written one. YAML output
// uses the same keys.
package export
