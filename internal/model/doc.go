// Package model defines shared data types for the exchange front-end fixtures.
//
// Conventions:
//   - Units: decimal integers kept as text (wei values exceed int64)
//   - Addresses: lowercase 0x-prefixed hex, as the front end stores them
//   - Parameter types: "uint256" or "hash256", positional order is significant
package model
