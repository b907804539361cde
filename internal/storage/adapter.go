package storage

import (
	"encoding/json"
	"errors"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/logger"
)

// Adapter serializes typed values into a Provider. Store failures stop here: they are
// logged and reported as a false result, never returned to the caller. A failed read
// looks the same as a missing key.
type Adapter struct {
	store Provider
}

func NewAdapter(store Provider) *Adapter {
	return &Adapter{store: store}
}

// Get decodes the value stored under key into dst. It returns false when the key is
// absent or the value cannot be read or decoded; dst is left untouched in that case.
func (a *Adapter) Get(key string, dst any) bool {
	data, err := a.store.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Error("Failed to read from store", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		logger.Error("Failed to decode stored value", "key", key, "error", err)
		return false
	}
	return true
}

// Set encodes v and writes it under key.
func (a *Adapter) Set(key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to encode value", "key", key, "error", err)
		return false
	}
	if err := a.store.Set(key, data); err != nil {
		logger.Error("Failed to write to store", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes the value under key.
func (a *Adapter) Remove(key string) bool {
	if err := a.store.Remove(key); err != nil {
		logger.Error("Failed to remove from store", "key", key, "error", err)
		return false
	}
	return true
}

// ClearAll removes every application key. It keeps going after a failure and
// reports whether all removals succeeded.
func (a *Adapter) ClearAll() bool {
	ok := true
	for _, key := range constants.StorageKeys() {
		if !a.Remove(key) {
			ok = false
		}
	}
	return ok
}

// Load is the typed form of Adapter.Get.
func Load[T any](a *Adapter, key string) (T, bool) {
	var v T
	if !a.Get(key, &v) {
		var zero T
		return zero, false
	}
	return v, true
}
