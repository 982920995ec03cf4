package api

import (
	"context"
	"net/http"

	"locker-rental/internal/data/entity"
	"locker-rental/internal/dto/request"
)

// UpdateProfile handles PATCH /users/profile.
func (c *Client) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*entity.User, error) {
	var out entity.User
	if err := c.do(ctx, http.MethodPatch, "/users/profile", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
