// Package session owns the authenticated-user state of the client. The store
// persists the signed-in user in local key/value storage so a restart resumes
// the session, and notifies subscribers on every change so dependent surfaces
// (navigation, dashboards) stay in sync.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/truthlens/truthlens/internal/api"
	"github.com/truthlens/truthlens/internal/client/client"
	"github.com/truthlens/truthlens/internal/client/storage"
	"github.com/truthlens/truthlens/internal/logging"
)

// userKey is the storage record holding the serialized current user.
const userKey = "session_user"

// Store tracks the current user. All methods are safe for concurrent use.
type Store struct {
	kv     storage.KV
	client client.Client
	logger logging.Logger

	mu          sync.Mutex
	user        *api.User
	subscribers []func(*api.User)
}

func NewStore(kv storage.KV, cl client.Client, logger logging.Logger) *Store {
	return &Store{kv: kv, client: cl, logger: logger}
}

// Initialize restores a persisted session from storage. A missing record
// leaves the store signed out. A record that cannot be decoded is treated the
// same way and removed; stale local data must never block startup.
func (s *Store) Initialize(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, userKey)
	if err != nil {
		return fmt.Errorf("error reading persisted session: %w", err)
	}
	if raw == nil {
		return nil
	}

	var u api.User
	if err := json.Unmarshal(raw, &u); err != nil || u.Email == "" {
		s.logger.Warn(ctx, "discarding unreadable persisted session")
		if derr := s.kv.Delete(ctx, userKey); derr != nil {
			return fmt.Errorf("error removing corrupt session record: %w", derr)
		}
		return nil
	}

	s.setUser(&u)
	return nil
}

// Login authenticates against the backend and persists the resulting user.
// The record is written to storage before the in-memory state flips, so a
// storage failure leaves the session signed out rather than half-applied.
func (s *Store) Login(ctx context.Context, email, password string) error {
	u, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.persist(ctx, u); err != nil {
		return err
	}
	s.setUser(u)
	s.logger.Info(ctx, "signed in", "email", u.Email)
	return nil
}

// Signup registers a new account and signs it in.
func (s *Store) Signup(ctx context.Context, email, username, password string) error {
	u, err := s.client.Register(ctx, email, username, password)
	if err != nil {
		return err
	}
	if err := s.persist(ctx, u); err != nil {
		return err
	}
	s.setUser(u)
	s.logger.Info(ctx, "account created", "email", u.Email)
	return nil
}

// Logout clears the persisted record and the in-memory user. Calling it while
// already signed out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, userKey); err != nil {
		return fmt.Errorf("error removing persisted session: %w", err)
	}
	s.mu.Lock()
	wasSignedIn := s.user != nil
	s.mu.Unlock()
	if wasSignedIn {
		s.setUser(nil)
		s.logger.Info(ctx, "signed out")
	}
	return nil
}

// Current returns the signed-in user, or nil when signed out. The returned
// value is a copy; mutating it does not affect the store.
func (s *Store) Current() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// Subscribe registers fn to run after every session change with the new user
// (nil on sign-out). Subscribers are invoked synchronously, in registration
// order, on the goroutine performing the change.
func (s *Store) Subscribe(fn func(*api.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) persist(ctx context.Context, u *api.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}
	if err := s.kv.Set(ctx, userKey, raw); err != nil {
		return fmt.Errorf("error persisting session: %w", err)
	}
	return nil
}

func (s *Store) setUser(u *api.User) {
	s.mu.Lock()
	s.user = u
	subs := make([]func(*api.User), len(s.subscribers))
	copy(subs, s.subscribers)
	var snapshot *api.User
	if u != nil {
		c := *u
		snapshot = &c
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
