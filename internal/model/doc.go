// Package model defines the data types shared across the analyzer.
//
// Conventions:
//   - Amounts: wei as decimal strings on the wire, *big.Int once parsed
//   - Timestamps: int64 seconds since Unix epoch
//   - Addresses: hex strings, compared case-insensitively
package model
