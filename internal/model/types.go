package model

import (
	"sort"
	"strings"
	"time"
)

// Address is a hex-encoded Ethereum account address.
type Address string

// Normalized returns the address trimmed and lower-cased, the form used
// for comparisons and cache keys.
func (a Address) Normalized() string {
	return strings.ToLower(strings.TrimSpace(string(a)))
}

// Equal reports whether two addresses refer to the same account.
// An empty address never matches anything.
func (a Address) Equal(b Address) bool {
	n := a.Normalized()
	return n != "" && n == b.Normalized()
}

// Transaction is a single confirmed transaction touching an account.
// Value and GasPrice stay in their wire form (wei as decimal strings);
// conversion to display units happens at the edges.
type Transaction struct {
	Hash        string  `json:"hash"`        // Transaction hash
	BlockNumber string  `json:"blockNumber"` // Block number as decimal string
	Timestamp   int64   `json:"timeStamp"`   // Confirmation time (s since epoch)
	From        Address `json:"from"`        // Sender address
	To          Address `json:"to"`          // Recipient address (empty for contract creation)
	Value       string  `json:"value"`       // Transferred amount in wei
	Gas         int64   `json:"gas"`         // Gas limit
	GasPrice    string  `json:"gasPrice"`    // Gas price in wei
}

// Time returns the confirmation time in UTC.
func (t Transaction) Time() time.Time {
	return time.Unix(t.Timestamp, 0).UTC()
}

// SortByTimeDesc orders transactions newest first.
func SortByTimeDesc(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp > txs[j].Timestamp
	})
}

// PriceQuote is a spot exchange rate for ETH.
type PriceQuote struct {
	USD       float64   // Price of one ETH in US dollars
	FetchedAt time.Time // When the quote was obtained
}
