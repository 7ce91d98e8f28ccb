// Package session is the single owner of the client-side session state: the
// bearer credential and the cached display profile. Components read through
// it instead of keeping their own copies.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bizzauto/gateway/internal/entity"
)

// UserSource fetches the profile behind a user ID, typically the backend
// client.
type UserSource interface {
	User(ctx context.Context, id uuid.UUID) (entity.User, error)
}

type Store struct {
	mu      sync.RWMutex
	token   string
	profile *entity.User
	users   UserSource
}

func New(token string) *Store {
	return &Store{
		token: token,
	}
}

// SetUserSource attaches the profile fetcher. The backend client needs the
// store as its token source, so this is wired after both exist.
func (s *Store) SetUserSource(users UserSource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = users
}

// Token returns the credential for an outgoing request. A token carried in
// the context (a relayed caller's credential) takes precedence over the
// stored one. An expired JWT is treated as no credential at all: the request
// goes out unauthenticated and the backend's 401 is the enforcement point.
func (s *Store) Token(ctx context.Context) (string, error) {
	if t := entity.TokenFromCtx(ctx); t != "" && !expired(t) {
		return t, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" || expired(s.token) {
		return "", nil
	}

	return s.token, nil
}

// SetToken installs a new credential and drops the cached profile.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.profile = nil
}

// Logout clears the credential and the cached profile.
func (s *Store) Logout() {
	s.SetToken("")
}

// Profile returns the current user's profile, fetched once and cached until
// the session changes.
func (s *Store) Profile(ctx context.Context) (entity.User, error) {
	s.mu.RLock()
	cached := s.profile
	token := s.token
	users := s.users
	s.mu.RUnlock()

	if cached != nil {
		return *cached, nil
	}

	if token == "" {
		return entity.User{}, entity.ErrUnauthenticated
	}

	if users == nil {
		return entity.User{}, fmt.Errorf("no user source attached: %w", entity.ErrUnauthenticated)
	}

	id, err := subject(token)
	if err != nil {
		return entity.User{}, fmt.Errorf("read token subject: %w", err)
	}

	user, err := users.User(ctx, id)
	if err != nil {
		return entity.User{}, fmt.Errorf("fetch profile: %w", err)
	}

	s.mu.Lock()
	if s.token == token {
		s.profile = &user
	}
	s.mu.Unlock()

	return user, nil
}

// expired reports whether the token is a JWT whose exp claim has passed.
// Signature verification is the backend's job; only the claims are read here.
func expired(token string) bool {
	var claims jwt.RegisteredClaims

	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil {
		// Opaque tokens pass through untouched.
		return false
	}

	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now())
}

func subject(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims

	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse subject %q: %w", claims.Subject, err)
	}

	return id, nil
}
