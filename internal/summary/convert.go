package summary

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"ethlens/internal/model"
)

// Decimal exponents for converting wei to display units.
const (
	etherExp = -18
	gweiExp  = -9
)

// WeiToEther converts a wei amount to ether. A nil amount converts to zero.
func WeiToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, etherExp)
}

// WeiStringToEther converts a wei amount in decimal string form to ether.
// Malformed input converts to zero.
func WeiStringToEther(value string) decimal.Decimal {
	wei, ok := parseWei(value)
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, etherExp)
}

// WeiStringToGwei converts a wei amount in decimal string form to gwei.
// Malformed input converts to zero.
func WeiStringToGwei(value string) decimal.Decimal {
	wei, ok := parseWei(value)
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, gweiExp)
}

// FiatValue converts an ether amount to fiat using the quote, rounded to
// cents. A nil quote values everything at zero.
func FiatValue(eth decimal.Decimal, quote *model.PriceQuote) decimal.Decimal {
	if quote == nil {
		return decimal.Zero
	}
	return eth.Mul(decimal.NewFromFloat(quote.USD)).Round(2)
}

func parseWei(value string) (*big.Int, bool) {
	return new(big.Int).SetString(strings.TrimSpace(value), 10)
}
