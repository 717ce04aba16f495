package fetcher

import (
	"context"
	"log/slog"
	"math/big"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"ethlens/internal/cache"
	"ethlens/internal/etherscan"
	"ethlens/internal/model"
)

// MaxWorkers caps the worker pool regardless of CPU count.
const MaxWorkers = 8

// DefaultWorkers returns the default pool size: twice the available CPUs,
// capped at MaxWorkers.
func DefaultWorkers() int {
	n := 2 * runtime.NumCPU()
	if n > MaxWorkers {
		n = MaxWorkers
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Result holds everything collected for one account. Fields of failed
// operations stay nil; the errors are recorded per operation in Errs.
type Result struct {
	RunID        uuid.UUID
	Address      model.Address
	Balance      *big.Int            // wei, nil if the balance fetch failed
	Price        *model.PriceQuote   // nil if the price fetch failed
	Transactions []model.Transaction // nil if the transaction fetch failed
	Errs         map[string]error    // failed operation name -> error
}

// Fetcher collects balance, price, and transactions for an account.
type Fetcher struct {
	client  *etherscan.Client
	store   cache.Store
	workers int
	logger  *slog.Logger
}

// New creates a Fetcher. workers bounds the number of concurrent requests;
// values below 1 fall back to DefaultWorkers. store may be nil to disable
// caching.
func New(client *etherscan.Client, store cache.Store, workers int, logger *slog.Logger) *Fetcher {
	if workers < 1 {
		workers = DefaultWorkers()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{client: client, store: store, workers: workers, logger: logger}
}

// Fetch collects the account data concurrently and waits for every
// operation to finish. limit caps the number of transactions fetched.
func (f *Fetcher) Fetch(ctx context.Context, address model.Address, limit int) Result {
	start := time.Now()

	res := Result{
		RunID:   uuid.New(),
		Address: address,
		Errs:    make(map[string]error),
	}

	logger := f.logger.With("run_id", res.RunID, "address", address.Normalized())

	tasks := []struct {
		name string
		run  func() error
	}{
		{"balance", func() error {
			balance, err := f.client.GetBalance(ctx, address)
			if err != nil {
				return err
			}
			res.Balance = balance
			return nil
		}},
		{"price", func() error {
			price, err := f.client.GetPrice(ctx)
			if err != nil {
				return err
			}
			res.Price = price
			return nil
		}},
		{"transactions", func() error {
			txs, err := f.transactions(ctx, logger, address, limit)
			if err != nil {
				return err
			}
			res.Transactions = txs
			return nil
		}},
	}

	// Semaphore for bounded concurrency.
	sem := make(chan struct{}, f.workers)
	var wg sync.WaitGroup
	var fetched, failed atomic.Int64
	errs := make([]error, len(tasks))

	for i, task := range tasks {
		wg.Add(1)
		go func(i int, name string, run func() error) {
			defer wg.Done()

			// Acquire semaphore slot.
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[i] = ctx.Err()
				failed.Add(1)
				return
			}

			if err := run(); err != nil {
				logger.Warn("fetch operation failed",
					"op", name,
					"err", err,
				)
				errs[i] = err
				failed.Add(1)
				return
			}

			fetched.Add(1)
		}(i, task.name, task.run)
	}

	wg.Wait()

	for i, task := range tasks {
		if errs[i] != nil {
			res.Errs[task.name] = errs[i]
		}
	}

	logger.Info("fetch complete",
		"fetched", fetched.Load(),
		"failed", failed.Load(),
		"duration", time.Since(start),
	)

	return res
}

// transactions serves the transaction list from cache when fresh, falling
// back to the API and repopulating the cache on a miss.
func (f *Fetcher) transactions(ctx context.Context, logger *slog.Logger, address model.Address, limit int) ([]model.Transaction, error) {
	if f.store != nil {
		if txs, ok := f.store.Get(ctx, address, limit); ok {
			logger.Debug("transaction cache hit", "count", len(txs))
			return txs, nil
		}
	}

	txs, err := f.client.GetTransactions(ctx, address, limit)
	if err != nil {
		return nil, err
	}

	if f.store != nil {
		f.store.Put(ctx, address, txs)
	}

	return txs, nil
}
