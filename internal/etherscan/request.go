package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// statusOK is the envelope status Etherscan uses for successful calls.
const statusOK = "1"

// envelope is the wrapper Etherscan puts around every response.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// doRequest performs a single GET with the given query. The API key is
// attached here, after the query description used in errors and logs has
// been captured, so the key never leaks into either.
func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	desc := query.Encode()

	withKey := url.Values{}
	for k, vs := range query {
		withKey[k] = vs
	}
	if c.apiKey != "" {
		withKey.Set("apikey", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+withKey.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Query: desc, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Query: desc, Err: err}
	}

	if resp.StatusCode >= 400 {
		return nil, &TransportError{Query: desc, StatusCode: resp.StatusCode}
	}

	return body, nil
}

// doWithRetry performs a request with exponential backoff. The delay before
// retry n is retryBackoff * 2^(n-1).
func (c *Client) doWithRetry(ctx context.Context, query url.Values) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryBackoff << (attempt - 1)
			c.logger.Debug("retrying request",
				"attempt", attempt,
				"delay", delay,
				"query", query.Encode(),
			)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		body, err := c.doRequest(ctx, query)
		if err == nil {
			return body, nil
		}

		lastErr = err

		tErr, ok := err.(*TransportError)
		if !ok || !tErr.IsRetryable() {
			return nil, err
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call performs a GET with retries and unwraps the response envelope,
// returning the raw result payload.
func (c *Client) call(ctx context.Context, query url.Values) (json.RawMessage, error) {
	body, err := c.doWithRetry(ctx, query)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if env.Status != statusOK {
		msg := env.Message
		// Rate-limit and key errors put the detail in result as a string.
		var detail string
		if json.Unmarshal(env.Result, &detail) == nil && detail != "" && detail != msg {
			msg += ": " + detail
		}
		return nil, &ProviderError{Message: msg}
	}

	return env.Result, nil
}
