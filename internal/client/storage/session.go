// Package storage is the persistence gateway for the session triple
// (user, authSession, authToken). It maps typed values onto independent
// entries of the local metadata table.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/billbreak/internal/client/models"
	"github.com/dmitrijs2005/billbreak/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/billbreak/internal/common"
	"github.com/dmitrijs2005/billbreak/internal/logging"
)

// Gateway is what the session store and the HTTP client need from
// persistence. Every call touches a single key.
type Gateway interface {
	SetUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context) (*models.User, error)
	ClearUser(ctx context.Context) error

	SetSession(ctx context.Context, s *models.Session) error
	GetSession(ctx context.Context) (*models.Session, error)
	ClearSession(ctx context.Context) error

	SetToken(ctx context.Context, token string) error
	GetToken(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}

type SessionStorage struct {
	repo metadata.Repository
	log  logging.Logger
}

func NewSessionStorage(repo metadata.Repository, log logging.Logger) *SessionStorage {
	return &SessionStorage{repo: repo, log: log.With("component", "storage")}
}

// SetUser is a no-op for nil.
func (s *SessionStorage) SetUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return nil
	}
	return s.setJSON(ctx, common.UserStorageKey, u)
}

// GetUser returns nil when the entry is absent or cannot be decoded into a
// user with an id.
func (s *SessionStorage) GetUser(ctx context.Context) (*models.User, error) {
	var u *models.User
	ok, err := s.getJSON(ctx, common.UserStorageKey, &u)
	if err != nil || !ok {
		return nil, err
	}
	if u == nil || u.ID == "" {
		s.log.Warn(ctx, "ignoring stored user without id", "key", common.UserStorageKey)
		return nil, nil
	}
	return u, nil
}

func (s *SessionStorage) ClearUser(ctx context.Context) error {
	return s.repo.Delete(ctx, common.UserStorageKey)
}

// SetSession is a no-op for nil.
func (s *SessionStorage) SetSession(ctx context.Context, sess *models.Session) error {
	if sess == nil {
		return nil
	}
	return s.setJSON(ctx, common.SessionStorageKey, sess)
}

func (s *SessionStorage) GetSession(ctx context.Context) (*models.Session, error) {
	var sess *models.Session
	ok, err := s.getJSON(ctx, common.SessionStorageKey, &sess)
	if err != nil || !ok {
		return nil, err
	}
	if !sess.Usable() {
		s.log.Warn(ctx, "ignoring stored session without token", "key", common.SessionStorageKey)
		return nil, nil
	}
	return sess, nil
}

func (s *SessionStorage) ClearSession(ctx context.Context) error {
	return s.repo.Delete(ctx, common.SessionStorageKey)
}

// SetToken stores the raw token string. An empty token is a no-op.
func (s *SessionStorage) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repo.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *SessionStorage) GetToken(ctx context.Context) (string, error) {
	b, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return string(b), nil
}

func (s *SessionStorage) ClearToken(ctx context.Context) error {
	return s.repo.Delete(ctx, common.TokenStorageKey)
}

// Token satisfies the HTTP client's token source.
func (s *SessionStorage) Token(ctx context.Context) (string, error) {
	return s.GetToken(ctx)
}

func (s *SessionStorage) setJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.repo.Set(ctx, key, b); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// getJSON reports false without error when the key is absent or the stored
// bytes are not valid JSON.
func (s *SessionStorage) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	b, err := s.repo.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if b == nil {
		return false, nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		s.log.Warn(ctx, "ignoring malformed stored value", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}
