package rentsdk

import (
	"context"
	"net/http"
)

// CreateInvitation issues an invitation to a prospective tenant. The
// response's Warning field is set when the invitation was created but the
// notification email failed.
func (c *Client) CreateInvitation(ctx context.Context, req InviteRequest) (*InvitationResponse, error) {
	var out InvitationResponse
	if err := c.do(ctx, http.MethodPost, "/v1/invitations", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvitations returns the caller's issued invitations, newest first.
func (c *Client) ListInvitations(ctx context.Context) ([]InvitationResponse, error) {
	var out []InvitationResponse
	if err := c.do(ctx, http.MethodGet, "/v1/invitations", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelInvitation cancels one of the caller's pending invitations.
func (c *Client) CancelInvitation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/v1/invitations/"+id+"/cancel", nil, nil, http.StatusNoContent)
}

// AcceptInvitation accepts an invitation addressed to the caller and
// returns the resulting tenant-unit binding.
func (c *Client) AcceptInvitation(ctx context.Context, id string) (*AcceptResponse, error) {
	var out AcceptResponse
	if err := c.do(ctx, http.MethodPost, "/v1/invitations/"+id+"/accept", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
