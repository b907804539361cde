// Package redis stores habitkit records in a Redis database. Every key is namespaced
// with the application prefix so the database can be shared.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/storage"
)

const opTimeout = 3 * time.Second

type Store struct {
	url    string
	client *goredis.Client
}

var _ storage.Provider = (*Store)(nil)

func New(url string) *Store {
	return &Store{url: url}
}

// IsURL reports whether config names a Redis server.
func IsURL(config string) bool {
	return strings.HasPrefix(config, "redis://") || strings.HasPrefix(config, "rediss://")
}

// Options parses the store URL into client options with habitkit's timeouts applied.
func Options(url string) (*goredis.Options, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = opTimeout
	opts.WriteTimeout = opTimeout
	opts.PoolSize = 2
	return opts, nil
}

func namespaced(key string) string {
	return constants.RedisKeyPrefix + key
}

func (s *Store) connect() error {
	if s.client != nil {
		return nil
	}
	opts, err := Options(s.url)
	if err != nil {
		return err
	}
	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}
	s.client = client
	return nil
}

// Init and Load only connect; Redis needs no schema.
func (s *Store) Init() error {
	return s.connect()
}

func (s *Store) Load() error {
	return s.connect()
}

func (s *Store) Close() error {
	if s.client != nil {
		err := s.client.Close()
		s.client = nil
		return err
	}
	return nil
}

func (s *Store) Get(key string) ([]byte, error) {
	if s.client == nil {
		return nil, storage.ErrNotInitialized
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	value, err := s.client.Get(ctx, namespaced(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, storage.ErrNotFound
	}
	return value, err
}

func (s *Store) Set(key string, value []byte) error {
	if s.client == nil {
		return storage.ErrNotInitialized
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.client.Set(ctx, namespaced(key), value, 0).Err()
}

func (s *Store) Remove(key string) error {
	if s.client == nil {
		return storage.ErrNotInitialized
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.client.Del(ctx, namespaced(key)).Err()
}

func (s *Store) GetConfigPath() string {
	return "redis"
}

// Ping checks that the server answers.
func (s *Store) Ping() error {
	if s.client == nil {
		return storage.ErrNotInitialized
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return s.client.Ping(ctx).Err()
}
