package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL      = "https://api.etherscan.io/api"
	DefaultAPITimeout   = 10 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 1 * time.Second
	DefaultCacheDir     = ".cache_etherscan"
	DefaultCacheTTL     = 5 * time.Minute
	DefaultTxLimit      = 10
	DefaultCSVPath      = "transactions.csv"
	DefaultLogLevel     = "info"
)

// Default returns a configuration with every default applied, for runs
// without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}
	if c.API.RetryBackoff == 0 {
		c.API.RetryBackoff = DefaultRetryBackoff
	}

	// Cache defaults
	if c.Cache.Dir == "" {
		c.Cache.Dir = DefaultCacheDir
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}

	// Fetch defaults. Workers stays 0 so the fetcher sizes the pool from
	// the CPU count.
	if c.Fetch.TxLimit == 0 {
		c.Fetch.TxLimit = DefaultTxLimit
	}

	// Output defaults
	if c.Output.CSV == "" {
		c.Output.CSV = DefaultCSVPath
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
