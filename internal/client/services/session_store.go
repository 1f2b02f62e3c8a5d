// Package services contains application services for the BillBreak client.
// This file defines the session store: the authentication state machine
// behind the UI gate (login, signup, logout, auth check) and its
// persistence of the session triple.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/billbreak/internal/client/client"
	"github.com/dmitrijs2005/billbreak/internal/client/models"
	"github.com/dmitrijs2005/billbreak/internal/client/storage"
	"github.com/dmitrijs2005/billbreak/internal/common"
	"github.com/dmitrijs2005/billbreak/internal/logging"
)

// Fallback messages when the backend supplies none.
const (
	MsgLoginFailed  = "Login failed"
	MsgSignupFailed = "Signup failed"
	MsgSaveFailed   = "Failed to save session"
)

var ErrNilUser = errors.New("cannot clear user of an authenticated session")

// SessionStore owns the AuthState. It is built by the composition root and
// lives until Close.
//
// Contract:
//   - Login, Signup, Logout and CheckAuth never interleave; identical
//     concurrent calls share one execution and one result.
//   - The persisted triple is written before the in-memory state flips to
//     authenticated, and cleared before it flips back.
//   - After every completed operation IsAuthenticated == (User != nil &&
//     Session != nil).
type SessionStore struct {
	api     client.AuthAPI
	storage storage.Gateway
	log     logging.Logger

	opMu   sync.Mutex
	flight singleflight.Group

	mu      sync.Mutex
	state   models.AuthState
	checked bool
	closed  bool
	subs    map[int]func(models.AuthState)
	nextSub int
}

func NewSessionStore(api client.AuthAPI, st storage.Gateway, log logging.Logger) *SessionStore {
	return &SessionStore{
		api:     api,
		storage: st,
		log:     log.With("component", "session_store"),
		subs:    make(map[int]func(models.AuthState)),
	}
}

// State returns a deep copy of the current state.
func (s *SessionStore) State() models.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Status is Unknown until the first auth check (or a successful login,
// signup or logout) completes.
func (s *SessionStore) Status() models.AuthStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.state.IsAuthenticated:
		return models.StatusAuthenticated
	case !s.checked:
		return models.StatusUnknown
	default:
		return models.StatusUnauthenticated
	}
}

// Subscribe registers fn to run with a snapshot after every state change.
// Listeners run on the goroutine that made the change and must not call
// back into operations of the store.
func (s *SessionStore) Subscribe(fn func(models.AuthState)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Close drops all listeners. Later operations are logged and ignored.
func (s *SessionStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = make(map[int]func(models.AuthState))
}

func (s *SessionStore) isClosed(ctx context.Context, op string) bool {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		s.log.Warn(ctx, "operation ignored", "op", op, "error", common.ErrStoreClosed)
	}
	return closed
}

// update applies fn to the state and notifies listeners outside the lock.
func (s *SessionStore) update(fn func(st *models.AuthState)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state.Clone()
	listeners := make([]func(models.AuthState), 0, len(s.subs))
	for _, l := range s.subs {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot.Clone())
	}
}

func (s *SessionStore) markChecked() {
	s.mu.Lock()
	s.checked = true
	s.mu.Unlock()
}

// Login authenticates against the backend. On failure Error is set to the
// server message (or "Login failed") and the previous user, session and
// IsAuthenticated are kept.
func (s *SessionStore) Login(ctx context.Context, email, password string) bool {
	if s.isClosed(ctx, "login") {
		return false
	}
	v, _, _ := s.flight.Do(flightKey("login", email, password), func() (any, error) {
		return s.login(ctx, email, password), nil
	})
	return v.(bool)
}

func (s *SessionStore) login(ctx context.Context, email, password string) bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	prev := s.State()
	s.update(func(st *models.AuthState) {
		st.IsLoading = true
		st.Error = ""
	})

	resp, err := s.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.log.Error(ctx, "login error", "error", err)
		s.fail(failureMessage(err, MsgLoginFailed))
		return false
	}

	user, sess := resp.User(), resp.Session()
	if err := s.persist(ctx, user, sess); err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
		s.restore(ctx, prev)
		s.fail(MsgSaveFailed)
		return false
	}

	s.adopt(user, sess)
	s.log.Info(ctx, "logged in", "user_id", user.ID)
	return true
}

// Signup registers a new account. A response without a token is a
// non-authenticating success: the user is kept in memory only and true is
// returned with IsAuthenticated false.
func (s *SessionStore) Signup(ctx context.Context, name, email, password string) bool {
	if s.isClosed(ctx, "signup") {
		return false
	}
	v, _, _ := s.flight.Do(flightKey("signup", name, email, password), func() (any, error) {
		return s.signup(ctx, name, email, password), nil
	})
	return v.(bool)
}

func (s *SessionStore) signup(ctx context.Context, name, email, password string) bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	prev := s.State()
	s.update(func(st *models.AuthState) {
		st.IsLoading = true
		st.Error = ""
	})

	resp, err := s.api.Signup(ctx, models.SignupRequest{Email: email, Password: password, Name: name})
	if err != nil {
		s.log.Error(ctx, "signup error", "error", err)
		s.fail(failureMessage(err, MsgSignupFailed))
		return false
	}

	user, sess := resp.User(), resp.Session()
	if user.Name == "" {
		user.Name = name
	}

	if sess == nil {
		s.log.Info(ctx, "signed up without session", "user_id", user.ID)
		s.dropStaleTriple(ctx, prev)
		s.update(func(st *models.AuthState) {
			st.User = user
			st.Session = nil
			st.IsAuthenticated = false
			st.IsLoading = false
		})
		return true
	}

	if err := s.persist(ctx, user, sess); err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
		s.restore(ctx, prev)
		s.fail(MsgSaveFailed)
		return false
	}

	s.adopt(user, sess)
	s.log.Info(ctx, "signed up", "user_id", user.ID)
	return true
}

// Logout clears the persisted triple and resets the state. Clearing errors
// are logged and swallowed.
func (s *SessionStore) Logout(ctx context.Context) {
	if s.isClosed(ctx, "logout") {
		return
	}
	_, _, _ = s.flight.Do("logout", func() (any, error) {
		s.logout(ctx)
		return nil, nil
	})
}

func (s *SessionStore) logout(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.update(func(st *models.AuthState) {
		st.IsLoading = true
		st.Error = ""
	})

	s.clearPersisted(ctx)
	s.reset()
	s.log.Info(ctx, "logged out")
}

// CheckAuth decides the initial screen. A complete persisted triple is
// adopted without a network call. Anything less is discarded and the
// backend is asked for the current user; only an answer carrying both a
// user and a token authenticates.
func (s *SessionStore) CheckAuth(ctx context.Context) {
	if s.isClosed(ctx, "check_auth") {
		return
	}
	_, _, _ = s.flight.Do("check_auth", func() (any, error) {
		s.checkAuth(ctx)
		return nil, nil
	})
}

func (s *SessionStore) checkAuth(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	defer s.markChecked()

	s.update(func(st *models.AuthState) { st.IsLoading = true })

	user, sess, token, err := s.loadPersisted(ctx)
	if err != nil {
		s.log.Error(ctx, "auth check error", "error", err)
		s.reset()
		return
	}

	if user != nil && sess != nil && token != "" {
		s.adopt(user, sess)
		s.log.Debug(ctx, "session restored from storage", "user_id", user.ID)
		return
	}

	if user != nil || sess != nil || token != "" {
		s.log.Warn(ctx, "discarding partial session",
			"has_user", user != nil, "has_session", sess != nil, "has_token", token != "")
		s.clearPersisted(ctx)
	}

	resp, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.log.Debug(ctx, "no current user on backend", "error", err)
		s.reset()
		return
	}
	if resp.Token == "" {
		s.log.Warn(ctx, "backend returned user without session", "user_id", resp.ID)
		s.reset()
		return
	}

	user, sess = resp.User(), &models.Session{AccessToken: resp.Token}
	if err := s.persist(ctx, user, sess); err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
		s.clearPersisted(ctx)
		s.reset()
		return
	}
	s.adopt(user, sess)
}

// ClearError resets Error. Listeners are not notified when it is already
// empty.
func (s *SessionStore) ClearError() {
	s.mu.Lock()
	empty := s.state.Error == ""
	s.mu.Unlock()
	if empty {
		return
	}
	s.update(func(st *models.AuthState) { st.Error = "" })
}

// SetUser replaces the user after a profile edit. While authenticated the
// new profile is persisted too, and nil is rejected.
func (s *SessionStore) SetUser(ctx context.Context, u *models.User) error {
	if s.isClosed(ctx, "set_user") {
		return common.ErrStoreClosed
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	authenticated := s.State().IsAuthenticated
	if authenticated {
		if u == nil {
			return ErrNilUser
		}
		if err := s.storage.SetUser(ctx, u); err != nil {
			return err
		}
	}
	u = u.Clone()
	s.update(func(st *models.AuthState) { st.User = u })
	return nil
}

func (s *SessionStore) fail(msg string) {
	s.update(func(st *models.AuthState) {
		st.Error = msg
		st.IsLoading = false
	})
}

func (s *SessionStore) adopt(user *models.User, sess *models.Session) {
	s.mu.Lock()
	s.checked = true
	s.mu.Unlock()
	s.update(func(st *models.AuthState) {
		st.User = user
		st.Session = sess
		st.IsAuthenticated = true
		st.IsLoading = false
		st.Error = ""
	})
}

func (s *SessionStore) reset() {
	s.mu.Lock()
	s.checked = true
	s.mu.Unlock()
	s.update(func(st *models.AuthState) {
		st.User = nil
		st.Session = nil
		st.IsAuthenticated = false
		st.IsLoading = false
	})
}

// persist writes user, token and session in that order. A failed write
// removes whatever part of the triple already landed.
func (s *SessionStore) persist(ctx context.Context, user *models.User, sess *models.Session) error {
	err := s.storage.SetUser(ctx, user)
	if err == nil {
		err = s.storage.SetToken(ctx, sess.AccessToken)
	}
	if err == nil {
		err = s.storage.SetSession(ctx, sess)
	}
	if err != nil {
		s.clearPersisted(ctx)
	}
	return err
}

// restore puts the previous triple back after a failed persist wiped it.
// When that fails too the state is reset, so memory never reports a session
// that storage does not hold.
func (s *SessionStore) restore(ctx context.Context, prev models.AuthState) {
	if !prev.IsAuthenticated {
		return
	}
	if err := s.persist(ctx, prev.User, prev.Session); err != nil {
		s.log.Error(ctx, "failed to restore previous session", "error", err)
		s.reset()
	}
}

// dropStaleTriple clears a stored triple that the new state no longer
// backs, so the transport stops sending its token.
func (s *SessionStore) dropStaleTriple(ctx context.Context, prev models.AuthState) {
	if !prev.IsAuthenticated {
		user, sess, token, err := s.loadPersisted(ctx)
		if err == nil && user == nil && sess == nil && token == "" {
			return
		}
	}
	s.clearPersisted(ctx)
}

func (s *SessionStore) loadPersisted(ctx context.Context) (*models.User, *models.Session, string, error) {
	user, err := s.storage.GetUser(ctx)
	if err != nil {
		return nil, nil, "", err
	}
	sess, err := s.storage.GetSession(ctx)
	if err != nil {
		return nil, nil, "", err
	}
	token, err := s.storage.GetToken(ctx)
	if err != nil {
		return nil, nil, "", err
	}
	return user, sess, token, nil
}

// clearPersisted removes each key independently so one failure does not
// keep the others.
func (s *SessionStore) clearPersisted(ctx context.Context) {
	if err := s.storage.ClearUser(ctx); err != nil {
		s.log.Error(ctx, "failed to clear user", "error", err)
	}
	if err := s.storage.ClearSession(ctx); err != nil {
		s.log.Error(ctx, "failed to clear session", "error", err)
	}
	if err := s.storage.ClearToken(ctx); err != nil {
		s.log.Error(ctx, "failed to clear token", "error", err)
	}
}

// flightKey collapses identical calls without keeping credentials in the key.
func flightKey(op string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return op + ":" + hex.EncodeToString(h.Sum(nil))
}

func failureMessage(err error, fallback string) string {
	if msg := client.ServerMessage(err); msg != "" {
		return msg
	}
	return fallback
}
