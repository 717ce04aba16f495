package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/url"

	"ethlens/internal/model"
)

// GetBalance fetches the current balance of an address in wei.
func (c *Client) GetBalance(ctx context.Context, address model.Address) (*big.Int, error) {
	query := url.Values{}
	query.Set("module", "account")
	query.Set("action", "balance")
	query.Set("address", string(address))
	query.Set("tag", "latest")

	raw, err := c.call(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("get balance: %w", &ParseError{Field: "balance", Value: snippet(raw)})
	}

	wei, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("get balance: %w", &ParseError{Field: "balance", Value: s})
	}

	return wei, nil
}

// GetTransactions fetches the most recent normal transactions for an
// address, newest first, truncated to limit. A limit below 1 returns
// everything the API sends.
func (c *Client) GetTransactions(ctx context.Context, address model.Address, limit int) ([]model.Transaction, error) {
	query := url.Values{}
	query.Set("module", "account")
	query.Set("action", "txlist")
	query.Set("address", string(address))
	query.Set("startblock", "0")
	query.Set("endblock", "99999999")
	query.Set("sort", "desc")

	raw, err := c.call(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	var rows []txRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("get transactions: %w", &ParseError{Field: "result", Value: snippet(raw)})
	}

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	txs := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, row.toModel())
	}

	return txs, nil
}
