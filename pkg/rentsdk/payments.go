package rentsdk

import (
	"context"
	"net/http"
)

func (c *Client) CreatePayment(ctx context.Context, req PaymentRequest) (*PaymentResponse, error) {
	var out PaymentResponse
	if err := c.do(ctx, http.MethodPost, "/v1/payments", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPayments(ctx context.Context) ([]PaymentResponse, error) {
	var out []PaymentResponse
	if err := c.do(ctx, http.MethodGet, "/v1/payments", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkPaymentPaid records the payment as paid with an optional proof URL.
func (c *Client) MarkPaymentPaid(ctx context.Context, id, proofURL string) (*PaymentResponse, error) {
	var out PaymentResponse
	req := PaymentRequest{ProofURL: proofURL}
	if err := c.do(ctx, http.MethodPost, "/v1/payments/"+id+"/paid", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyPayment records the landlord's confirmation of a paid payment.
func (c *Client) VerifyPayment(ctx context.Context, id string) (*PaymentResponse, error) {
	var out PaymentResponse
	if err := c.do(ctx, http.MethodPost, "/v1/payments/"+id+"/verify", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMaintenanceRequest(ctx context.Context, req MaintenanceCreateRequest) (*MaintenanceResponse, error) {
	var out MaintenanceResponse
	if err := c.do(ctx, http.MethodPost, "/v1/maintenance", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMaintenanceRequests(ctx context.Context) ([]MaintenanceResponse, error) {
	var out []MaintenanceResponse
	if err := c.do(ctx, http.MethodGet, "/v1/maintenance", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateMaintenanceRequest(ctx context.Context, id string, req MaintenanceUpdateRequest) (*MaintenanceResponse, error) {
	var out MaintenanceResponse
	if err := c.do(ctx, http.MethodPut, "/v1/maintenance/"+id, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/v1/messages", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMessages returns the conversation with the given user, oldest first.
func (c *Client) ListMessages(ctx context.Context, withUserID string) ([]MessageResponse, error) {
	var out []MessageResponse
	if err := c.do(ctx, http.MethodGet, "/v1/messages?with="+withUserID, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkMessageRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/v1/messages/"+id+"/read", nil, nil, http.StatusNoContent)
}
