// Package auth keeps the signed-in user and an opaque session token in the same
// store as the habits. Nothing is verified: signing in records who is using this
// store so new records can be stamped with their id.
package auth

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/utils"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrEmptyName    = errors.New("name cannot be empty")
	// ErrNotSaved is returned when the session could not be written to the store
	ErrNotSaved = errors.New("session could not be saved")
)

type Session struct {
	adapter *storage.Adapter
	clock   utils.Clock
}

func NewSession(store storage.Provider, clock utils.Clock) *Session {
	return &Session{adapter: storage.NewAdapter(store), clock: clock}
}

// SignIn records email and name as the current user and issues a new token. Signing
// in again with the current user's email keeps their id.
func (s *Session) SignIn(email, name string) (models.User, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, ErrEmptyName
	}

	user := models.User{
		ID:        uuid.New().String(),
		Email:     strings.ToLower(addr.Address),
		Name:      name,
		CreatedAt: s.clock(),
	}
	if prev, ok := storage.Load[models.User](s.adapter, constants.KeyUser); ok && prev.Email == user.Email {
		user.ID = prev.ID
		user.CreatedAt = prev.CreatedAt
		user.Avatar = prev.Avatar
	}

	if !s.adapter.Set(constants.KeyUser, user) || !s.adapter.Set(constants.KeyAuthToken, uuid.New().String()) {
		return models.User{}, ErrNotSaved
	}
	logger.Info("Signed in", "user", user.ID)
	return user, nil
}

// Current returns the signed-in user. A user record without a token, or a token
// without a user, is not a session.
func (s *Session) Current() (models.User, bool) {
	token, ok := storage.Load[string](s.adapter, constants.KeyAuthToken)
	if !ok || token == "" {
		return models.User{}, false
	}
	user, ok := storage.Load[models.User](s.adapter, constants.KeyUser)
	if !ok || user.ID == "" {
		return models.User{}, false
	}
	return user, true
}

// SignOut clears every application key, habits and completions included.
func (s *Session) SignOut() bool {
	ok := s.adapter.ClearAll()
	if ok {
		logger.Info("Signed out and cleared local data")
	}
	return ok
}
