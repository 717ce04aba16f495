package export

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"ethlens/internal/model"
	"ethlens/internal/summary"
)

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	balance, _ := new(big.Int).SetString("1500000000000000000", 10)
	quote := &model.PriceQuote{USD: 2000}
	totals := summary.Totals{
		Received: decimal.RequireFromString("4"),
		Sent:     decimal.RequireFromString("0.75"),
	}

	RenderSummary(&buf, "0xABCDEF0123456789abcdef0123456789ABCDEF01", balance, quote, totals, sampleTxs())

	out := buf.String()
	for _, want := range []string{
		"0xabcdef0123456789abcdef0123456789abcdef01",
		"1.500000 ETH", // balance
		"$3000.00",     // balance in USD
		"$2000.00",     // spot price
		"4.000000 ETH", // total received
		"0.750000 ETH", // total sent
		"Transactions:",
		"HASH",
		"VALUE (ETH)",
		"0xbbb",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryMissingData(t *testing.T) {
	var buf bytes.Buffer

	RenderSummary(&buf, "0xabc", nil, nil, summary.Totals{}, nil)

	out := buf.String()
	if !strings.Contains(out, "Balance:        unavailable") {
		t.Errorf("missing balance line:\n%s", out)
	}
	if !strings.Contains(out, "ETH price:      unavailable") {
		t.Errorf("missing price line:\n%s", out)
	}
	if strings.Contains(out, "Balance (USD)") {
		t.Errorf("USD balance rendered without a price:\n%s", out)
	}
	if !strings.Contains(out, "Transactions:   0") {
		t.Errorf("missing count line:\n%s", out)
	}
	if strings.Contains(out, "HASH") {
		t.Errorf("table rendered without transactions:\n%s", out)
	}
}

func TestRenderSummaryTableLimit(t *testing.T) {
	txs := make([]model.Transaction, 15)
	for i := range txs {
		txs[i] = model.Transaction{
			Hash:      fmt.Sprintf("0xhash%02d", i),
			Timestamp: int64(1700000000 + i),
			Value:     "1000000000000000000",
		}
	}

	var buf bytes.Buffer
	RenderSummary(&buf, "0xabc", nil, nil, summary.Totals{}, txs)

	out := buf.String()
	if !strings.Contains(out, "Transactions:   15") {
		t.Errorf("missing count line:\n%s", out)
	}
	if !strings.Contains(out, "0xhash14") {
		t.Errorf("newest transaction missing from table:\n%s", out)
	}
	if strings.Contains(out, "0xhash04") {
		t.Errorf("table shows more than %d rows:\n%s", maxTableRows, out)
	}
}

func TestShorten(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"0xabc", 12, "0xabc"},
		{"0x1234567890abcdef", 12, "0x1234567890..."},
		{"", 12, ""},
	}

	for _, tt := range tests {
		if got := shorten(tt.in, tt.n); got != tt.want {
			t.Errorf("shorten(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
