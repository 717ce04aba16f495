package config

import "time"

// Config is the root configuration for an analysis run.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Cache  CacheConfig  `yaml:"cache"`
	Fetch  FetchConfig  `yaml:"fetch"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig holds Etherscan API settings.
type APIConfig struct {
	BaseURL      string        `yaml:"base_url"`
	Key          string        `yaml:"key"` // lowest-precedence credential source, see the auth package
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   int           `yaml:"max_retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// CacheConfig holds transaction cache settings. Setting RedisAddr moves
// the cache from local files to Redis.
type CacheConfig struct {
	Dir           string        `yaml:"dir"`
	TTL           time.Duration `yaml:"ttl"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
}

// FetchConfig holds collection settings.
type FetchConfig struct {
	TxLimit int `yaml:"tx_limit"`
	Workers int `yaml:"workers"` // 0 sizes the pool from the CPU count
}

// OutputConfig holds artifact settings.
type OutputConfig struct {
	CSV  string `yaml:"csv"`
	JSON bool   `yaml:"json"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}
