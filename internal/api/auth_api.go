package api

import (
	"context"
	"net/http"

	"locker-rental/internal/data/entity"
	"locker-rental/internal/dto/request"
	"locker-rental/internal/dto/response"
)

// Login handles POST /auth/login.
func (c *Client) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	var out response.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register handles POST /auth/register.
func (c *Client) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	var out response.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile handles GET /auth/profile.
func (c *Client) GetProfile(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
