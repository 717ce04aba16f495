package etherscan

import (
	"strconv"

	"ethlens/internal/model"
)

// txRow is a single transaction as returned by module=account
// action=txlist. Every numeric field arrives as a decimal string.
type txRow struct {
	BlockNumber string `json:"blockNumber"`
	TimeStamp   string `json:"timeStamp"`
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	Gas         string `json:"gas"`
	GasPrice    string `json:"gasPrice"`
}

// toModel converts a wire row to the shared transaction type. Timestamp and
// gas fall back to zero when unparseable; value and gas price stay strings
// for exact conversion later.
func (r txRow) toModel() model.Transaction {
	ts, _ := strconv.ParseInt(r.TimeStamp, 10, 64)
	gas, _ := strconv.ParseInt(r.Gas, 10, 64)

	return model.Transaction{
		Hash:        r.Hash,
		BlockNumber: r.BlockNumber,
		Timestamp:   ts,
		From:        model.Address(r.From),
		To:          model.Address(r.To),
		Value:       r.Value,
		Gas:         gas,
		GasPrice:    r.GasPrice,
	}
}

// priceResult is the result payload of module=stats action=ethprice.
type priceResult struct {
	EthBTC          string `json:"ethbtc"`
	EthBTCTimestamp string `json:"ethbtc_timestamp"`
	EthUSD          string `json:"ethusd"`
	EthUSDTimestamp string `json:"ethusd_timestamp"`
}
