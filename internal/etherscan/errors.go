package etherscan

import (
	"fmt"
	"net/http"
)

// TransportError reports a request that failed at the HTTP layer: a network
// error or a non-2xx response. Query describes the request without the API
// key.
type TransportError struct {
	Query      string
	StatusCode int   // HTTP status, 0 when no response arrived
	Err        error // underlying network error, if any
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("etherscan request failed (%s): status %d %s",
			e.Query, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("etherscan request failed (%s): %v", e.Query, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsRetryable reports whether the failure may be transient.
func (e *TransportError) IsRetryable() bool {
	if e.StatusCode == 0 {
		return true
	}
	switch e.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// DecodeError reports a response body that could not be decoded into the
// expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode etherscan response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ProviderError reports a well-formed response whose envelope status
// signals failure (bad address, rate limit, no data).
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return "etherscan error: " + e.Message
}

// ParseError reports a successful envelope whose result had the wrong
// shape or an unparseable value.
type ParseError struct {
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse etherscan %s: invalid value %q", e.Field, e.Value)
}

// snippet trims a raw result for error text.
func snippet(raw []byte) string {
	const max = 64
	s := string(raw)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
