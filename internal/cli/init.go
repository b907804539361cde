package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Reset the store, deleting existing habits and history."`
	Source string `help:"Store path or connection string to copy habits from."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printf("Initialized habitkit storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Force && !isFileStore(ctx.Store) {
		if !storage.NewAdapter(ctx.Store).ClearAll() {
			return errors.New("failed to clear existing records, see the log for details")
		}
		ctx.println("Cleared existing records.")
	}

	if c.Source != "" {
		ctx.printf("Copying data from: %s\n", c.Source)
		n, err := c.copyFrom(ctx)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.printf("Copied %d records.\n", n)
	}
	return nil
}

// reset deletes a file-backed store. Server-backed stores are cleared after Init.
func (c *InitCmd) reset(ctx *Context) error {
	if !isFileStore(ctx.Store) {
		return nil
	}
	dbPath := ctx.Store.GetConfigPath()
	if c.Source != "" {
		if src, err := ExpandPath(c.Source); err == nil && samePath(src, dbPath) {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing database: %w", err)
	}
	if err := os.Remove(dbPath); err != nil {
		return fmt.Errorf("failed to delete existing database: %w", err)
	}
	ctx.printf("Deleted existing database at: %s\n", dbPath)
	return nil
}

func (c *InitCmd) copyFrom(ctx *Context) (int, error) {
	src, err := OpenStore(c.Source)
	if err != nil {
		return 0, err
	}
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("failed to load source store: %w", err)
	}
	defer src.Close()

	return storage.Copy(ctx.Store, src, constants.StorageKeys())
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
