// Package session holds the authenticated user's bearer token. It is the
// only mutable state shared between pages: created at startup, written by
// login/logout and by the request client's 401 detection, read on every
// outbound request.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	mu    sync.RWMutex
	token string
}

func New(token string) *Session {
	return &Session{token: token}
}

// Token returns the held bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores a new bearer token (login).
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops the token (logout or 401). Safe to call repeatedly.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Subject returns the token's subject claim. The token is parsed without
// signature verification: the backend is the verifier, the client only
// reads claims for display.
func (s *Session) Subject() (string, bool) {
	claims, ok := s.claims()
	if !ok {
		return "", false
	}
	return claims.Subject, claims.Subject != ""
}

// ExpiresAt returns the token's expiry claim when present.
func (s *Session) ExpiresAt() (time.Time, bool) {
	claims, ok := s.claims()
	if !ok || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (s *Session) claims() (*jwt.RegisteredClaims, bool) {
	token := s.Token()
	if token == "" {
		return nil, false
	}
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}
