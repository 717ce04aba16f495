// Package export renders analysis results for people and for files.
//
// Outputs:
//   - Plain-text account summary with a transaction table
//   - CSV transaction history
//   - JSON transaction history
//
// File artifacts get a timestamp suffix in the name, so repeated runs
// never overwrite earlier output.
package export
