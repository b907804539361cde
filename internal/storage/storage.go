package storage

import (
	"errors"
	"fmt"
)

// Copy copies the given keys from src to dst, skipping keys src does not hold.
// It returns the number of keys copied.
func Copy(dst, src Provider, keys []string) (int, error) {
	copied := 0
	for _, key := range keys {
		value, err := src.Get(key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return copied, fmt.Errorf("failed to read %s from source: %w", key, err)
		}
		if err := dst.Set(key, value); err != nil {
			return copied, fmt.Errorf("failed to write %s to destination: %w", key, err)
		}
		copied++
	}
	return copied, nil
}
