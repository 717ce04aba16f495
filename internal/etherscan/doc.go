// Package etherscan provides a client for Etherscan-compatible HTTP APIs.
//
// Endpoints used:
//   - module=account action=balance   (current balance in wei)
//   - module=account action=txlist    (normal transactions)
//   - module=stats   action=ethprice  (ETH/USD spot price)
//
// Every response carries a {status, message, result} envelope; status "1"
// means success regardless of the HTTP status code. The API key travels as
// the apikey query parameter and is stripped from errors and log output.
package etherscan
