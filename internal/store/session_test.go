package store

import (
	"testing"

	"karma/internal/core"
)

func TestSession(t *testing.T) {
	s := NewSession(nil)

	if s.IsAuthenticated() {
		t.Error("fresh session should be signed out")
	}
	if _, ok := s.User(); ok {
		t.Error("fresh session should have no user")
	}

	s.SignIn(core.User{ID: "u1", FullName: "Ada Lovelace", Email: "ada@example.com"}, "tok")

	if !s.IsAuthenticated() {
		t.Error("session should be authenticated after sign-in")
	}
	if s.Token() != "tok" {
		t.Errorf("token = %q, want tok", s.Token())
	}
	user, ok := s.User()
	if !ok || user.FullName != "Ada Lovelace" {
		t.Errorf("user = %+v, ok = %v", user, ok)
	}

	s.SignOut()
	if s.IsAuthenticated() || s.Token() != "" {
		t.Error("sign-out should clear the session")
	}
}
