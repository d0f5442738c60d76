// Package session owns the client's authenticated session: the opaque token
// and the user profile. The in-memory copy is the source of truth for reads;
// every write goes to the durable sqlite store first, then replaces the
// in-memory session wholesale. Token and profile are always written and
// cleared together, never one without the other.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Zestathon/payorbit/internal/client/models"
	"github.com/Zestathon/payorbit/internal/client/repositories/credentials"
	"github.com/Zestathon/payorbit/internal/dbx"
)

// Storage keys for the two persisted values.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Store is the process-wide holder of the current session. Safe for
// concurrent use; reads never observe a half-written session because the
// session value is replaced as a whole under one lock.
type Store struct {
	mu  sync.RWMutex
	cur models.Session
	db  *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() credentials.Repository {
	return credentials.NewSQLiteRepository(s.db)
}

// Load restores a previously persisted session into memory. A missing or
// partial record (token without profile) loads as logged-out.
func (s *Store) Load(ctx context.Context) error {
	repo := s.repo()

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("loading session token: %w", err)
	}
	raw, err := repo.Get(ctx, keyUser)
	if err != nil {
		return fmt.Errorf("loading session profile: %w", err)
	}

	if len(token) == 0 || len(raw) == 0 {
		return nil
	}

	var user models.Profile
	if err := json.Unmarshal(raw, &user); err != nil {
		return fmt.Errorf("decoding session profile: %w", err)
	}

	s.mu.Lock()
	s.cur = models.Session{Token: string(token), User: &user}
	s.mu.Unlock()
	return nil
}

// Set commits a new session. Both rows are written in a single transaction:
// either the token and the profile are persisted together or neither is.
func (s *Store) Set(ctx context.Context, token string, user *models.Profile) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding session profile: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := credentials.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, raw)
	})
	if err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	s.mu.Lock()
	s.cur = models.Session{Token: token, User: user}
	s.mu.Unlock()
	return nil
}

// Clear wipes both the durable and the in-memory session. Idempotent:
// clearing an already empty store is a no-op and reports cleared=false.
func (s *Store) Clear(ctx context.Context) (cleared bool, err error) {
	s.mu.Lock()
	had := s.cur.Token != ""
	s.cur = models.Session{}
	s.mu.Unlock()

	if err := s.repo().Clear(ctx); err != nil {
		return had, fmt.Errorf("clearing session: %w", err)
	}
	return had, nil
}

// Token returns the current session token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Token
}

// CurrentUser returns the profile of the logged-in user, or nil.
func (s *Store) CurrentUser() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.User
}

// IsAuthenticated reports whether a session token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}
