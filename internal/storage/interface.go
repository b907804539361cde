package storage

import "errors"

var (
	// ErrNotFound is returned by Get when no value is stored under the key
	ErrNotFound = errors.New("key not found")
	// ErrNotInitialized is returned when a store is used before Init or Load
	ErrNotInitialized = errors.New("storage not initialized, run 'habitkit init' first")
)

// Provider is byte-level durable key/value storage for serialized records.
//
// Providers are not safe for concurrent use by multiple goroutines without external
// synchronization, and running multiple habitkit processes against the same store at
// the same time is not supported.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error

	// Utils
	GetConfigPath() string
}
