// Package summary aggregates fetched account data into display form.
//
// Wei amounts convert to ether through exact decimal arithmetic; malformed
// amounts count as zero so one bad record never aborts a report.
package summary
