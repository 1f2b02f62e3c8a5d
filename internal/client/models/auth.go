package models

import (
	"errors"
)

var (
	ErrMissingUserID = errors.New("response has no user id")
	ErrMissingToken  = errors.New("response has no token")
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse is returned by both login and signup.
type AuthResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Validate rejects responses that cannot describe a user. A missing token
// is reported separately by RequireToken because signup may legally omit it.
func (r AuthResponse) Validate() error {
	if r.ID == "" {
		return ErrMissingUserID
	}
	return nil
}

func (r AuthResponse) RequireToken() error {
	if r.Token == "" {
		return ErrMissingToken
	}
	return nil
}

func (r AuthResponse) User() *User {
	return &User{ID: r.ID, Email: r.Email, Name: r.Name}
}

// Session returns nil when the response carried no token.
func (r AuthResponse) Session() *Session {
	if r.Token == "" {
		return nil
	}
	return &Session{AccessToken: r.Token}
}

// CurrentUserResponse is returned by GET /users/me. Token is set only by
// backends that re-issue a session for the caller.
type CurrentUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

func (r CurrentUserResponse) Validate() error {
	if r.ID == "" {
		return ErrMissingUserID
	}
	return nil
}

func (r CurrentUserResponse) User() *User {
	return &User{ID: r.ID, Email: r.Email, Name: r.Name}
}

// UpdateUserRequest is the body of PUT /users/{id}.
type UpdateUserRequest struct {
	Name string `json:"name"`
}

// ErrorResponse is the error body produced by the backend.
type ErrorResponse struct {
	Error string `json:"error"`
}
