package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"ethlens/internal/model"
)

// WriteJSON writes the transactions, newest first, as indented JSON to a
// timestamped file derived from path and returns the name actually
// written. An empty transaction list writes nothing and returns an empty
// name.
func WriteJSON(path string, txs []model.Transaction) (string, error) {
	if len(txs) == 0 {
		return "", nil
	}

	rows := make([]model.Transaction, len(txs))
	copy(rows, txs)
	model.SortByTimeDesc(rows)

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal transactions: %w", err)
	}

	out := TimestampedPath(path, time.Now())
	if err := os.WriteFile(out, data, 0644); err != nil {
		return "", fmt.Errorf("write json: %w", err)
	}
	return out, nil
}
