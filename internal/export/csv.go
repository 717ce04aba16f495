package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ethlens/internal/model"
	"ethlens/internal/summary"
)

// timeLayout names output files down to the second.
const timeLayout = "2006-01-02_15-04-05"

// csvHeader lists the upstream transaction fields plus the derived
// value_eth, value_usd, and gas_price_gwei columns.
var csvHeader = []string{
	"hash", "blockNumber", "timeStamp", "from", "to",
	"value_eth", "value_usd", "gas", "gas_price_gwei",
}

// TimestampedPath inserts now into the file name ahead of the extension:
// transactions.csv becomes transactions_2026-01-02_15-04-05.csv.
func TimestampedPath(path string, now time.Time) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_%s%s", stem, now.Format(timeLayout), ext)
}

// WriteCSV writes the transactions, newest first, to a timestamped CSV
// file derived from path and returns the name actually written. An empty
// transaction list writes nothing and returns an empty name. A nil quote
// renders the value_usd column as 0.00.
func WriteCSV(path string, txs []model.Transaction, quote *model.PriceQuote) (string, error) {
	if len(txs) == 0 {
		return "", nil
	}

	rows := make([]model.Transaction, len(txs))
	copy(rows, txs)
	model.SortByTimeDesc(rows)

	out := TimestampedPath(path, time.Now())
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, tx := range rows {
		eth := summary.WeiStringToEther(tx.Value)
		record := []string{
			tx.Hash,
			tx.BlockNumber,
			tx.Time().Format(time.RFC3339),
			string(tx.From),
			string(tx.To),
			eth.String(),
			summary.FiatValue(eth, quote).StringFixed(2),
			strconv.FormatInt(tx.Gas, 10),
			summary.WeiStringToGwei(tx.GasPrice).Round(2).String(),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return out, nil
}
