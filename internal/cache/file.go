package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ethlens/internal/model"
)

// FileStore caches transaction lists as one JSON file per address under a
// cache directory. Entry age is the file's modification time.
type FileStore struct {
	dir    string
	ttl    time.Duration // <= 0 means entries never expire
	logger *slog.Logger
}

// NewFileStore creates a file-backed store rooted at dir. The directory is
// created on first write.
func NewFileStore(dir string, ttl time.Duration, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{dir: dir, ttl: ttl, logger: logger}
}

// Get implements Store.
func (s *FileStore) Get(ctx context.Context, address model.Address, limit int) ([]model.Transaction, bool) {
	path := s.entryPath(address)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if s.ttl > 0 && time.Since(info.ModTime()) > s.ttl {
		s.logger.Debug("cache entry expired", "path", path, "age", time.Since(info.ModTime()))
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("failed to read cache entry", "path", path, "err", err)
		return nil, false
	}

	var txs []model.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		s.logger.Warn("discarding corrupt cache entry", "path", path, "err", err)
		return nil, false
	}

	return fit(txs, limit)
}

// Put implements Store. The entry goes to a temp file first and is renamed
// into place, so concurrent runs never observe a partial write.
func (s *FileStore) Put(ctx context.Context, address model.Address, txs []model.Transaction) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		s.logger.Warn("failed to create cache dir", "dir", s.dir, "err", err)
		return
	}

	data, err := json.Marshal(txs)
	if err != nil {
		s.logger.Warn("failed to encode cache entry", "err", err)
		return
	}

	tmp, err := os.CreateTemp(s.dir, "tx-*.tmp")
	if err != nil {
		s.logger.Warn("failed to create temp cache file", "dir", s.dir, "err", err)
		return
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		s.logger.Warn("failed to write cache entry", "err", err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		s.logger.Warn("failed to close temp cache file", "err", err)
		return
	}

	if err := os.Rename(tmp.Name(), s.entryPath(address)); err != nil {
		os.Remove(tmp.Name())
		s.logger.Warn("failed to replace cache entry", "err", err)
	}
}

func (s *FileStore) entryPath(address model.Address) string {
	return filepath.Join(s.dir, address.Normalized()+"_tx.json")
}
