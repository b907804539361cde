package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/keyring"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/storage/postgres"
	"github.com/julianstephens/habitkit/internal/storage/redis"
	"github.com/julianstephens/habitkit/internal/storage/sqlite"
)

// OpenStore picks the provider named by config:
//   - "keyring": the connection string from HABITKIT_DB_CONNECTION or the OS keyring
//   - postgres:// or postgresql://: PostgreSQL, without an embedded password
//   - redis:// or rediss://: Redis
//   - a path ending in .json: a JSON document
//   - any other path: SQLite
//
// The store is returned unloaded.
func OpenStore(config string) (storage.Provider, error) {
	config = strings.TrimSpace(config)
	switch {
	case config == constants.KeyringConfigValue:
		connStr, err := secretConnString()
		if err != nil {
			return nil, err
		}
		return openRemote(connStr, true)
	case postgres.IsConnString(config), redis.IsURL(config):
		return openRemote(config, false)
	case config == "":
		return nil, errors.New("no store configured")
	}

	path, err := ExpandPath(config)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), constants.JSONConfigExtension) {
		return storage.NewJSONStore(path), nil
	}
	return sqlite.NewStore(path), nil
}

// openRemote builds a server-backed store. Passwords are only accepted when the
// connection string came from a secret source.
func openRemote(connStr string, trusted bool) (storage.Provider, error) {
	if redis.IsURL(connStr) {
		if _, err := redis.Options(connStr); err != nil {
			return nil, err
		}
		return redis.New(connStr), nil
	}

	if err := postgres.ValidateConnString(connStr); err != nil {
		if !trusted || !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w; store it with 'habitkit keyring set' or export %s and use --config %s",
					err, constants.EnvDBConnection, constants.KeyringConfigValue)
			}
			return nil, err
		}
	}
	return postgres.New(connStr), nil
}

func secretConnString() (string, error) {
	if v := strings.TrimSpace(os.Getenv(constants.EnvDBConnection)); v != "" {
		return v, nil
	}
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("no connection string in %s or the keyring; run 'habitkit keyring set' first", constants.EnvDBConnection)
		}
		return "", err
	}
	return connStr, nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// isFileStore reports whether store keeps its data in a local file that can be
// deleted or backed up.
func isFileStore(store storage.Provider) bool {
	switch store.(type) {
	case *sqlite.Store, *storage.JSONStore:
		return true
	}
	return false
}
