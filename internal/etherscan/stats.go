package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"ethlens/internal/model"
)

// GetPrice fetches the current ETH/USD spot price.
func (c *Client) GetPrice(ctx context.Context) (*model.PriceQuote, error) {
	query := url.Values{}
	query.Set("module", "stats")
	query.Set("action", "ethprice")

	raw, err := c.call(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get price: %w", err)
	}

	var res priceResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("get price: %w", &ParseError{Field: "result", Value: snippet(raw)})
	}

	usd, err := strconv.ParseFloat(res.EthUSD, 64)
	if err != nil {
		return nil, fmt.Errorf("get price: %w", &ParseError{Field: "ethusd", Value: res.EthUSD})
	}

	return &model.PriceQuote{USD: usd, FetchedAt: time.Now().UTC()}, nil
}
