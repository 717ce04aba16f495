package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"ethlens/internal/auth"
	"ethlens/internal/cache"
	"ethlens/internal/config"
	"ethlens/internal/etherscan"
	"ethlens/internal/export"
	"ethlens/internal/fetcher"
	"ethlens/internal/model"
	"ethlens/internal/summary"
	"ethlens/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	count := flag.Int("count", config.DefaultTxLimit, "number of recent transactions to fetch")
	csvPath := flag.String("csv", config.DefaultCSVPath, "CSV output path (a timestamp is added to the name)")
	jsonOut := flag.Bool("json", false, "also write a JSON transaction file")
	logLevel := flag.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println("ethlens", version.String())
		return
	}

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		usage()
		os.Exit(2)
	}
	address := model.Address(args[0])
	explicitKey := ""
	if len(args) == 2 {
		explicitKey = args[1]
	}

	// Set up structured logging. The report goes to stdout, logs to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadWithDefaults(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}

	// Flags passed explicitly override file settings.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			cfg.Fetch.TxLimit = *count
		case "csv":
			cfg.Output.CSV = *csvPath
		case "json":
			cfg.Output.JSON = *jsonOut
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Rebuild the logger at the configured level.
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	key, err := auth.ResolveKey(explicitKey, cfg.API.Key)
	if err != nil {
		logger.Error("missing credentials",
			"error", err,
			"hint", "pass the key as the second argument or set "+auth.EnvAPIKey,
		)
		os.Exit(1)
	}

	logger.Info("starting analysis",
		"version", version.Version,
		"address", address.Normalized(),
		"api_key", auth.MaskKey(key),
		"tx_limit", cfg.Fetch.TxLimit,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	client := etherscan.NewClient(
		cfg.API.BaseURL,
		key,
		etherscan.WithTimeout(cfg.API.Timeout),
		etherscan.WithRetries(cfg.API.MaxRetries, cfg.API.RetryBackoff),
		etherscan.WithLogger(logger),
	)

	store := newStore(ctx, cfg, logger)
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	res := fetcher.New(client, store, cfg.Fetch.Workers, logger).
		Fetch(ctx, address, cfg.Fetch.TxLimit)

	totals := summary.Summarize(res.Transactions, address, logger)
	export.RenderSummary(os.Stdout, address, res.Balance, res.Price, totals, res.Transactions)

	if len(res.Transactions) == 0 {
		logger.Warn("no transactions to export")
	}

	if out, err := export.WriteCSV(cfg.Output.CSV, res.Transactions, res.Price); err != nil {
		logger.Error("failed to write csv", "error", err)
	} else if out != "" {
		logger.Info("csv written", "path", out)
	}

	if cfg.Output.JSON {
		jsonPath := strings.TrimSuffix(cfg.Output.CSV, filepath.Ext(cfg.Output.CSV)) + ".json"
		if out, err := export.WriteJSON(jsonPath, res.Transactions); err != nil {
			logger.Error("failed to write json", "error", err)
		} else if out != "" {
			logger.Info("json written", "path", out)
		}
	}
}

// newStore builds the transaction cache, preferring Redis when configured
// and falling back to local files when it cannot be reached.
func newStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) cache.Store {
	if cfg.Cache.RedisAddr != "" {
		store, err := cache.NewRedisStore(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, cfg.Cache.TTL, logger)
		if err == nil {
			logger.Info("using redis cache", "addr", cfg.Cache.RedisAddr)
			return store
		}
		logger.Warn("redis unavailable, falling back to file cache", "error", err)
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		dir = config.DefaultCacheDir
	}
	return cache.NewFileStore(dir, cfg.Cache.TTL, logger)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: ethlens [flags] <address> [apikey]\n\n")
	fmt.Fprintf(out, "Analyzes an Ethereum account: balance, recent transactions, and totals.\n")
	fmt.Fprintf(out, "The API key may also come from the %s environment variable or the config file.\n\n", auth.EnvAPIKey)
	fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
}
