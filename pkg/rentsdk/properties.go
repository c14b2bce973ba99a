package rentsdk

import (
	"context"
	"net/http"
)

func (c *Client) CreateProperty(ctx context.Context, req PropertyRequest) (*PropertyResponse, error) {
	var out PropertyResponse
	if err := c.do(ctx, http.MethodPost, "/v1/properties", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProperties(ctx context.Context) ([]PropertyResponse, error) {
	var out []PropertyResponse
	if err := c.do(ctx, http.MethodGet, "/v1/properties", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (*PropertyResponse, error) {
	var out PropertyResponse
	if err := c.do(ctx, http.MethodGet, "/v1/properties/"+id, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id string, req PropertyRequest) (*PropertyResponse, error) {
	var out PropertyResponse
	if err := c.do(ctx, http.MethodPut, "/v1/properties/"+id, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/properties/"+id, nil, nil, http.StatusNoContent)
}

func (c *Client) CreateUnit(ctx context.Context, propertyID string, req UnitRequest) (*UnitResponse, error) {
	var out UnitResponse
	if err := c.do(ctx, http.MethodPost, "/v1/properties/"+propertyID+"/units", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListUnits(ctx context.Context, propertyID string) ([]UnitResponse, error) {
	var out []UnitResponse
	if err := c.do(ctx, http.MethodGet, "/v1/properties/"+propertyID+"/units", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUnit(ctx context.Context, id string, req UnitRequest) (*UnitResponse, error) {
	var out UnitResponse
	if err := c.do(ctx, http.MethodPut, "/v1/units/"+id, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUnit(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/units/"+id, nil, nil, http.StatusNoContent)
}

// AssignUnit attaches a tenant to an available unit.
func (c *Client) AssignUnit(ctx context.Context, id string, req AssignRequest) (*UnitResponse, error) {
	var out UnitResponse
	if err := c.do(ctx, http.MethodPost, "/v1/units/"+id+"/assign", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveUnitTenant detaches the current tenant from an occupied unit.
func (c *Client) RemoveUnitTenant(ctx context.Context, id string) (*UnitResponse, error) {
	var out UnitResponse
	if err := c.do(ctx, http.MethodPost, "/v1/units/"+id+"/remove-tenant", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetUnitMaintenance takes an occupied unit offline for maintenance.
func (c *Client) SetUnitMaintenance(ctx context.Context, id string) (*UnitResponse, error) {
	var out UnitResponse
	if err := c.do(ctx, http.MethodPost, "/v1/units/"+id+"/maintenance", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetUnitAvailable returns a unit from maintenance to the pool.
func (c *Client) SetUnitAvailable(ctx context.Context, id string) (*UnitResponse, error) {
	var out UnitResponse
	if err := c.do(ctx, http.MethodPost, "/v1/units/"+id+"/available", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
