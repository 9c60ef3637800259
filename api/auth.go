package api

import (
	"context"
	"fmt"
	"net/http"

	"wolfcafe-telegram/models"
)

func (c *Client) Login(ctx context.Context, usernameOrEmail, password string) (*models.AuthResponse, error) {
	in := models.LoginRequest{UsernameOrEmail: usernameOrEmail, Password: password}
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, in models.RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", in, nil)
}

// RegisterStaff creates a staff account; the backend only accepts it
// from an admin token.
func (c *Client) RegisterStaff(ctx context.Context, in models.RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register/staff", in, nil)
}

func (c *Client) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/auth/%d", id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/all", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetAllStaff(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/staff", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, in models.EditUserInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/auth/user/update/%d", id), in, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/auth/user/delete/%d", id), nil, nil)
}
