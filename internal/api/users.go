package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/veritext/veritext/internal/model"
)

// Register creates a new account and returns the user record.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/users/", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and resolves the full user record. The login endpoint
// only returns the id; the record itself comes from a follow-up fetch.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	var resp struct {
		UserID int `json:"user_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/login/", req, &resp); err != nil {
		return nil, err
	}
	return c.GetUser(ctx, resp.UserID)
}

// GetUser fetches one user record.
func (c *Client) GetUser(ctx context.Context, userID int) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies profile changes and returns the refreshed record.
func (c *Client) UpdateUser(ctx context.Context, userID int, req model.UpdateUserRequest) (*model.User, error) {
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d/update/", userID), req, nil); err != nil {
		return nil, err
	}
	return c.GetUser(ctx, userID)
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, userID int, req model.ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/change-password/", userID), req, nil)
}

// DeleteAccount removes the account.
func (c *Client) DeleteAccount(ctx context.Context, userID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/delete/", userID), nil, nil)
}
