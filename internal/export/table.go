package export

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"text/tabwriter"
	"time"

	"ethlens/internal/model"
	"ethlens/internal/summary"
)

// maxTableRows bounds the transaction table in the rendered summary.
const maxTableRows = 10

// RenderSummary writes the human-readable account report to w. Data a
// failed fetch left missing renders as "unavailable" rather than dropping
// the line.
func RenderSummary(w io.Writer, address model.Address, balance *big.Int, quote *model.PriceQuote, totals summary.Totals, txs []model.Transaction) {
	fmt.Fprintln(w, "Account summary")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Address:        %s\n", address.Normalized())

	if balance != nil {
		eth := summary.WeiToEther(balance)
		fmt.Fprintf(w, "Balance:        %s ETH\n", eth.StringFixed(6))
		if quote != nil {
			fmt.Fprintf(w, "Balance (USD):  $%s\n", summary.FiatValue(eth, quote).StringFixed(2))
		}
	} else {
		fmt.Fprintf(w, "Balance:        unavailable\n")
	}

	if quote != nil {
		fmt.Fprintf(w, "ETH price:      $%.2f\n", quote.USD)
	} else {
		fmt.Fprintf(w, "ETH price:      unavailable\n")
	}

	fmt.Fprintf(w, "Total received: %s ETH\n", totals.Received.StringFixed(6))
	fmt.Fprintf(w, "Total sent:     %s ETH\n", totals.Sent.StringFixed(6))
	fmt.Fprintf(w, "Transactions:   %d\n", len(txs))

	if len(txs) == 0 {
		return
	}

	rows := make([]model.Transaction, len(txs))
	copy(rows, txs)
	model.SortByTimeDesc(rows)
	if len(rows) > maxTableRows {
		rows = rows[:maxTableRows]
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HASH\tTIME\tFROM\tTO\tVALUE (ETH)")
	for _, tx := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			shorten(tx.Hash, 12),
			tx.Time().Format(time.RFC3339),
			shorten(string(tx.From), 12),
			shorten(string(tx.To), 12),
			summary.WeiStringToEther(tx.Value).Round(6).String(),
		)
	}
	tw.Flush()
}

// shorten truncates s for table display.
func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
