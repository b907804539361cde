package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/julianstephens/habitkit/internal/backup"
	herrors "github.com/julianstephens/habitkit/internal/errors"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/storage/sqlite"
)

type LoginCmd struct {
	Email string `arg:"" help:"Email address."`
	Name  string `arg:"" help:"Display name."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	user, err := ctx.Session().SignIn(c.Email, c.Name)
	if err != nil {
		return err
	}
	ctx.printf("Signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

type LogoutCmd struct {
	NoBackup bool `help:"Skip the backup taken before local data is cleared."`
}

func (c *LogoutCmd) Run(ctx *Context) error {
	if _, ok := ctx.Session().Current(); !ok {
		return herrors.ErrNotSignedIn
	}

	if !c.NoBackup {
		ctx.PerformAutomaticBackup()
	}

	if !ctx.Session().SignOut() {
		return errors.New("failed to clear local data, see the log for details")
	}
	ctx.println("Signed out. Local habits and history were cleared.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	user, ok := ctx.Session().Current()
	if !ok {
		return herrors.ErrNotSignedIn
	}
	ctx.printf("%s <%s>\n", user.Name, user.Email)
	ctx.printf("User ID: %s\n", user.ID)
	return nil
}

// PerformAutomaticBackup snapshots a SQLite store and only logs on failure. Other
// providers are skipped.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	path, err := backup.NewManager(c.Store.GetConfigPath()).Create()
	if err != nil {
		logger.Warn("Automatic backup failed", "error", err)
		return
	}
	logger.Debug("Automatic backup created", "path", path)
	c.printf("Backup saved: %s\n", filepath.Base(path))
}

// backupManager returns the backup manager for a SQLite store.
func backupManager(ctx *Context) (*backup.Manager, error) {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil, fmt.Errorf("backups are only supported for SQLite stores (current: %s)", ctx.Store.GetConfigPath())
	}
	return backup.NewManager(ctx.Store.GetConfigPath()), nil
}
