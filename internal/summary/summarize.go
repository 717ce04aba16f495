package summary

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"ethlens/internal/model"
)

// Totals holds the aggregate ether moved in and out of an account.
type Totals struct {
	Received decimal.Decimal // Sum of values of transactions into the account
	Sent     decimal.Decimal // Sum of values of transactions out of the account
}

// Summarize totals the ether moved in and out of address. A transaction
// whose recipient is the address counts as received, so a self-transfer
// counts once, as received. Transactions matching neither side and
// malformed values count as zero.
func Summarize(txs []model.Transaction, address model.Address, logger *slog.Logger) Totals {
	if logger == nil {
		logger = slog.Default()
	}

	var totals Totals

	for _, tx := range txs {
		wei, ok := parseWei(tx.Value)
		if !ok {
			logger.Warn("transaction value unparseable, counting as zero",
				"hash", tx.Hash,
				"value", tx.Value,
			)
		}
		eth := WeiToEther(wei)

		switch {
		case tx.To.Equal(address):
			totals.Received = totals.Received.Add(eth)
		case tx.From.Equal(address):
			totals.Sent = totals.Sent.Add(eth)
		}
	}

	return totals
}
