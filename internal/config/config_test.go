package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
api:
  base_url: https://api-sepolia.etherscan.io/api
  key: testkey
  timeout: 5s
cache:
  dir: /tmp/ethlens-cache
  ttl: 10m
fetch:
  tx_limit: 25
  workers: 4
output:
  csv: out/transactions.csv
  json: true
log:
  level: debug
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "https://api-sepolia.etherscan.io/api" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "https://api-sepolia.etherscan.io/api")
	}
	if cfg.API.Key != "testkey" {
		t.Errorf("API.Key = %q, want %q", cfg.API.Key, "testkey")
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("API.Timeout = %v, want %v", cfg.API.Timeout, 5*time.Second)
	}
	if cfg.Cache.Dir != "/tmp/ethlens-cache" {
		t.Errorf("Cache.Dir = %q, want %q", cfg.Cache.Dir, "/tmp/ethlens-cache")
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("Cache.TTL = %v, want %v", cfg.Cache.TTL, 10*time.Minute)
	}
	if cfg.Fetch.TxLimit != 25 {
		t.Errorf("Fetch.TxLimit = %d, want 25", cfg.Fetch.TxLimit)
	}
	if cfg.Fetch.Workers != 4 {
		t.Errorf("Fetch.Workers = %d, want 4", cfg.Fetch.Workers)
	}
	if cfg.Output.CSV != "out/transactions.csv" {
		t.Errorf("Output.CSV = %q, want %q", cfg.Output.CSV, "out/transactions.csv")
	}
	if !cfg.Output.JSON {
		t.Error("Output.JSON = false, want true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_ETHERSCAN_KEY", "secret123")

	yaml := `
api:
  key: ${TEST_ETHERSCAN_KEY}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.Key != "secret123" {
		t.Errorf("API.Key = %q, want %q", cfg.API.Key, "secret123")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
api:
  key: testkey
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("API.BaseURL = %q, want default %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.Timeout != DefaultAPITimeout {
		t.Errorf("API.Timeout = %v, want default %v", cfg.API.Timeout, DefaultAPITimeout)
	}
	if cfg.API.MaxRetries != DefaultMaxRetries {
		t.Errorf("API.MaxRetries = %d, want default %d", cfg.API.MaxRetries, DefaultMaxRetries)
	}
	if cfg.API.RetryBackoff != DefaultRetryBackoff {
		t.Errorf("API.RetryBackoff = %v, want default %v", cfg.API.RetryBackoff, DefaultRetryBackoff)
	}
	if cfg.Cache.Dir != DefaultCacheDir {
		t.Errorf("Cache.Dir = %q, want default %q", cfg.Cache.Dir, DefaultCacheDir)
	}
	if cfg.Cache.TTL != DefaultCacheTTL {
		t.Errorf("Cache.TTL = %v, want default %v", cfg.Cache.TTL, DefaultCacheTTL)
	}
	if cfg.Fetch.TxLimit != DefaultTxLimit {
		t.Errorf("Fetch.TxLimit = %d, want default %d", cfg.Fetch.TxLimit, DefaultTxLimit)
	}
	if cfg.Fetch.Workers != 0 {
		t.Errorf("Fetch.Workers = %d, want 0 so the fetcher picks the pool size", cfg.Fetch.Workers)
	}
	if cfg.Output.CSV != DefaultCSVPath {
		t.Errorf("Output.CSV = %q, want default %q", cfg.Output.CSV, DefaultCSVPath)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want default %q", cfg.Log.Level, DefaultLogLevel)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, DefaultBaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing base url",
			cfg:     Config{},
			wantErr: "api.base_url is required",
		},
		{
			name: "zero timeout",
			cfg: Config{
				API: APIConfig{BaseURL: "https://api.etherscan.io/api"},
			},
			wantErr: "api.timeout must be positive",
		},
		{
			name: "negative max retries",
			cfg: Config{
				API: APIConfig{BaseURL: "https://api.etherscan.io/api", Timeout: time.Second, MaxRetries: -1},
			},
			wantErr: "api.max_retries must be >= 0",
		},
		{
			name: "zero retry backoff",
			cfg: Config{
				API: APIConfig{BaseURL: "https://api.etherscan.io/api", Timeout: time.Second},
			},
			wantErr: "api.retry_backoff must be positive",
		},
		{
			name: "no cache backend",
			cfg: Config{
				API: APIConfig{BaseURL: "https://api.etherscan.io/api", Timeout: time.Second, RetryBackoff: time.Second},
			},
			wantErr: "cache.dir is required when cache.redis_addr is not set",
		},
		{
			name: "redis without dir",
			cfg: Config{
				API:   APIConfig{BaseURL: "https://api.etherscan.io/api", Timeout: time.Second, RetryBackoff: time.Second},
				Cache: CacheConfig{RedisAddr: "localhost:6379"},
			},
			wantErr: "fetch.tx_limit must be >= 1, got 0",
		},
		{
			name: "negative workers",
			cfg: Config{
				API:   APIConfig{BaseURL: "https://api.etherscan.io/api", Timeout: time.Second, RetryBackoff: time.Second},
				Cache: CacheConfig{Dir: ".cache"},
				Fetch: FetchConfig{TxLimit: 10, Workers: -1},
			},
			wantErr: "fetch.workers must be >= 0, got -1",
		},
		{
			name: "missing csv path",
			cfg: Config{
				API:   APIConfig{BaseURL: "https://api.etherscan.io/api", Timeout: time.Second, RetryBackoff: time.Second},
				Cache: CacheConfig{Dir: ".cache"},
				Fetch: FetchConfig{TxLimit: 10},
			},
			wantErr: "output.csv is required",
		},
		{
			name: "bad log level",
			cfg: Config{
				API:    APIConfig{BaseURL: "https://api.etherscan.io/api", Timeout: time.Second, RetryBackoff: time.Second},
				Cache:  CacheConfig{Dir: ".cache"},
				Fetch:  FetchConfig{TxLimit: 10},
				Output: OutputConfig{CSV: "transactions.csv"},
				Log:    LogConfig{Level: "verbose"},
			},
			wantErr: `log.level must be one of debug, info, warn, error, got "verbose"`,
		},
		{
			name: "valid config",
			cfg: Config{
				API:    APIConfig{BaseURL: "https://api.etherscan.io/api", Timeout: time.Second, MaxRetries: 3, RetryBackoff: time.Second},
				Cache:  CacheConfig{Dir: ".cache", TTL: time.Minute},
				Fetch:  FetchConfig{TxLimit: 10, Workers: 4},
				Output: OutputConfig{CSV: "transactions.csv"},
				Log:    LogConfig{Level: "info"},
			},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
