package rentsdk

import (
	"context"
	"net/http"
)

// GetProfile returns the caller's own profile.
func (c *Client) GetProfile(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodGet, "/v1/profile", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveProfile creates or updates the caller's profile. The first save fixes
// the account's role.
func (c *Client) SaveProfile(ctx context.Context, req ProfileRequest) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodPost, "/v1/profile", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings flips the caller's notification flags.
func (c *Client) UpdateSettings(ctx context.Context, req SettingsRequest) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodPut, "/v1/profile/settings", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePhoto sets the caller's profile photo URL.
func (c *Client) UpdatePhoto(ctx context.Context, photoURL string) (*UserResponse, error) {
	var out UserResponse
	req := PhotoRequest{PhotoURL: photoURL}
	if err := c.do(ctx, http.MethodPut, "/v1/profile/photo", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser returns the public view of any user.
func (c *Client) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodGet, "/v1/users/"+id, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTenants returns the tenant directory. Owner-only.
func (c *Client) ListTenants(ctx context.Context) ([]UserResponse, error) {
	var out []UserResponse
	if err := c.do(ctx, http.MethodGet, "/v1/tenants", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAvailableTenants returns tenants not assigned to any unit. Owner-only.
func (c *Client) ListAvailableTenants(ctx context.Context) ([]UserResponse, error) {
	var out []UserResponse
	if err := c.do(ctx, http.MethodGet, "/v1/tenants/available", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
