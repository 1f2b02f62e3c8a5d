package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/billbreak/internal/client/models"
)

// Login posts credentials and requires both a user id and a token back.
func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if err := resp.RequireToken(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return &resp, nil
}

// Signup creates an account. The response may lack a token when the
// backend wants the address confirmed first.
func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return &resp, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.CurrentUserResponse, error) {
	var resp models.CurrentUserResponse
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return &resp, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, userID string, req models.UpdateUserRequest) error {
	return c.doJSON(ctx, http.MethodPut, "/users/"+url.PathEscape(userID), req, nil)
}

// Health hits the backend's unauthenticated probe route.
func (c *HTTPClient) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/test", nil, nil)
}
