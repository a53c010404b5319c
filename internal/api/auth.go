package api

import (
	"context"
	"net/http"
	"time"

	"karma/internal/cache"
	"karma/internal/core"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up payload.
type Registration struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is what the auth endpoints return: the user plus a bearer
// token for subsequent calls.
type AuthResult struct {
	User  core.User `json:"user"`
	Token string    `json:"token"`
}

// profileCache keeps the authenticated profile warm: route guards check
// the session on every navigation and should not refetch each time.
type profileCache struct {
	lru *cache.LRUCache[core.User]
}

const profileKey = "me"

func newProfileCache() profileCache {
	return profileCache{lru: cache.NewLRUCache[core.User](1, 30*time.Second)}
}

func (p profileCache) invalidate() { p.lru.Delete(profileKey) }

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResult, error) {
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, authLoginPath, nil, creds, &out); err != nil {
		return AuthResult{}, err
	}
	c.SetToken(out.Token)
	return out, nil
}

// Register creates an account and installs the returned token.
func (c *Client) Register(ctx context.Context, reg Registration) (AuthResult, error) {
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, authRegisterPath, nil, reg, &out); err != nil {
		return AuthResult{}, err
	}
	c.SetToken(out.Token)
	return out, nil
}

// Me returns the authenticated user's profile, served from a short-TTL
// cache between calls. SetToken invalidates the cache.
func (c *Client) Me(ctx context.Context) (core.User, error) {
	if user, ok := c.profile.lru.Get(profileKey); ok {
		return user, nil
	}
	var out core.User
	if err := c.do(ctx, http.MethodGet, authMePath, nil, nil, &out); err != nil {
		return core.User{}, err
	}
	c.profile.lru.Set(profileKey, out)
	return out, nil
}
