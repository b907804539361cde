package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// document is the on-disk layout of a JSONStore file
type document struct {
	Version int                        `json:"version"`
	Records map[string]json.RawMessage `json:"records"`
}

// JSONStore keeps every record in a single JSON file, rewritten on each change.
// Values must themselves be valid JSON.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Records: make(map[string]json.RawMessage),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.doc.Records == nil {
		s.doc.Records = make(map[string]json.RawMessage)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if s.doc == nil {
		return nil, ErrNotInitialized
	}
	value, ok := s.doc.Records[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(value), nil
}

func (s *JSONStore) Set(key string, value []byte) error {
	if s.doc == nil {
		return ErrNotInitialized
	}
	if !json.Valid(value) {
		return fmt.Errorf("value for %s is not valid JSON", key)
	}
	s.doc.Records[key] = json.RawMessage(append([]byte(nil), value...))
	return s.save()
}

func (s *JSONStore) Remove(key string) error {
	if s.doc == nil {
		return ErrNotInitialized
	}
	if _, ok := s.doc.Records[key]; !ok {
		return nil
	}
	delete(s.doc.Records, key)
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
