package cache

import (
	"context"

	"ethlens/internal/model"
)

// Store caches transaction lists keyed by account address.
type Store interface {
	// Get returns the cached transactions for an address when the entry
	// is fresh and holds at least limit entries, truncated to limit.
	// Anything else is a miss.
	Get(ctx context.Context, address model.Address, limit int) ([]model.Transaction, bool)

	// Put stores the transaction list for an address, replacing any
	// previous entry. Failures are logged, not returned.
	Put(ctx context.Context, address model.Address, txs []model.Transaction)
}

// fit truncates a cached list to the requested limit, reporting whether
// the entry satisfies it. A limit below 1 accepts the whole list.
func fit(txs []model.Transaction, limit int) ([]model.Transaction, bool) {
	if limit > 0 {
		if len(txs) < limit {
			return nil, false
		}
		txs = txs[:limit]
	}
	return txs, true
}
