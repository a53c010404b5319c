package store

import (
	"sync"

	"karma/internal/core"
	"karma/internal/log"
)

// Session is the client-side auth container: the signed-in user and the
// bearer token, nothing more. Route guards read it; the login and
// logout flows are its only writers.
type Session struct {
	mu     sync.RWMutex
	user   *core.User
	token  string
	logger *log.Logger
}

// NewSession returns an empty, signed-out session.
func NewSession(logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Session{logger: logger.WithComponent(log.ComponentSession)}
}

// SignIn installs the authenticated user and token.
func (s *Session) SignIn(user core.User, token string) {
	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()

	s.logger.Info("Signed in", "email", user.Email)
}

// SignOut clears the session.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	s.logger.Info("Signed out")
}

// User returns the signed-in user, if any.
func (s *Session) User() (core.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return core.User{}, false
	}
	return *s.user, true
}

// Token returns the current bearer token; empty when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}
