// Package fetcher runs the concurrent collection of account data.
//
// A single bounded worker pool issues the balance, price, and transaction
// requests in parallel and joins before returning. A failed operation is
// logged and reported as absent; it never aborts the run.
package fetcher
