// Package models defines client-side data models of the BillBreak client:
// the authenticated identity, its session, and the typed payloads exchanged
// with the backend.
package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the identity record mirrored from the server. The client never
// edits it except by replacing it with a newer server copy.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	// UPIID is the payment-address identifier used for settlement links.
	UPIID  string `json:"upi_id,omitempty"`
}

// Clone returns a copy that shares no memory with u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// Session wraps the opaque bearer token handed out on login or signup.
type Session struct {
	AccessToken string `json:"access_token"`
}

// Usable reports whether the session carries a token that can be attached
// to requests.
func (s *Session) Usable() bool {
	return s != nil && s.AccessToken != ""
}

func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// ExpiresAt returns the exp claim when the token is a JWT, zero otherwise.
// The signature is not checked: the client cannot verify it and only uses
// the value for display and diagnostics.
func (s *Session) ExpiresAt() time.Time {
	if !s.Usable() {
		return time.Time{}
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
