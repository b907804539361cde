package storage

import "errors"

// ErrUnavailable is what FailingStore returns for every operation
var ErrUnavailable = errors.New("store unavailable")

// FailingStore is a Provider whose reads and writes can be switched to fail. It wraps
// a MemoryStore and exists to exercise the degrade-on-failure paths.
type FailingStore struct {
	*MemoryStore
	FailReads  bool
	FailWrites bool
}

func NewFailingStore() *FailingStore {
	return &FailingStore{MemoryStore: NewMemoryStore()}
}

func (s *FailingStore) Get(key string) ([]byte, error) {
	if s.FailReads {
		return nil, ErrUnavailable
	}
	return s.MemoryStore.Get(key)
}

func (s *FailingStore) Set(key string, value []byte) error {
	if s.FailWrites {
		return ErrUnavailable
	}
	return s.MemoryStore.Set(key, value)
}

func (s *FailingStore) Remove(key string) error {
	if s.FailWrites {
		return ErrUnavailable
	}
	return s.MemoryStore.Remove(key)
}
