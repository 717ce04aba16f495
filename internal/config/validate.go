package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}
	if c.API.MaxRetries < 0 {
		return errors.New("api.max_retries must be >= 0")
	}
	if c.API.RetryBackoff <= 0 {
		return errors.New("api.retry_backoff must be positive")
	}

	if c.Cache.RedisAddr == "" && c.Cache.Dir == "" {
		return errors.New("cache.dir is required when cache.redis_addr is not set")
	}

	if c.Fetch.TxLimit < 1 {
		return fmt.Errorf("fetch.tx_limit must be >= 1, got %d", c.Fetch.TxLimit)
	}
	if c.Fetch.Workers < 0 {
		return fmt.Errorf("fetch.workers must be >= 0, got %d", c.Fetch.Workers)
	}

	if c.Output.CSV == "" {
		return errors.New("output.csv is required")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	return nil
}
