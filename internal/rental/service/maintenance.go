package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/store"
	"github.com/rentlinkhq/rentlink/pkg/idx"
	"github.com/rentlinkhq/rentlink/pkg/slogx"
)

type MaintenanceService struct {
	Store store.Store
}

// Create files a maintenance request against the tenant's current unit.
func (s *MaintenanceService) Create(ctx context.Context, tenant domain.User, r domain.MaintenanceRequest) (domain.MaintenanceRequest, error) {
	log := slogx.FromContext(ctx)

	if tenant.Role != domain.RoleTenant {
		return domain.MaintenanceRequest{}, ErrForbidden
	}
	if strings.TrimSpace(r.Title) == "" || !r.Priority.Valid() || !r.Category.Valid() {
		return domain.MaintenanceRequest{}, ErrInvalidRequest
	}

	unit, err := s.Store.Units().GetUnitByTenant(ctx, tenant.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MaintenanceRequest{}, ErrInvalidState
		}
		return domain.MaintenanceRequest{}, err
	}
	prop, err := s.Store.Properties().GetPropertyByID(ctx, unit.PropertyID)
	if err != nil {
		return domain.MaintenanceRequest{}, err
	}

	r.ID = idx.New().String()
	r.UnitID = unit.ID
	r.PropertyID = prop.ID
	r.TenantID = tenant.ID
	r.LandlordID = prop.LandlordID
	r.Status = domain.MaintenancePending
	r.LandlordResponse = ""
	r.CompletedAt = nil

	if err := s.Store.Maintenance().CreateRequest(ctx, r); err != nil {
		log.Error("failed to create maintenance request", slog.Any("error", err))
		return domain.MaintenanceRequest{}, err
	}

	log.Info("maintenance request created",
		slog.String("request_id", r.ID),
		slog.String("priority", string(r.Priority)),
	)
	return s.Store.Maintenance().GetRequestByID(ctx, r.ID)
}

// List returns requests visible to the caller by role.
func (s *MaintenanceService) List(ctx context.Context, caller domain.User) ([]domain.MaintenanceRequest, error) {
	if caller.Role == domain.RoleOwner {
		return s.Store.Maintenance().ListRequestsByLandlord(ctx, caller.ID)
	}
	return s.Store.Maintenance().ListRequestsByTenant(ctx, caller.ID)
}

// Update lets the landlord move a request through its lifecycle and attach
// a response. Completion stamps completed_at.
func (s *MaintenanceService) Update(ctx context.Context, landlord domain.User, requestID string, status domain.MaintenanceStatus, response string) (domain.MaintenanceRequest, error) {
	log := slogx.FromContext(ctx)

	if landlord.Role != domain.RoleOwner {
		return domain.MaintenanceRequest{}, ErrForbidden
	}
	if !status.Valid() {
		return domain.MaintenanceRequest{}, ErrInvalidRequest
	}

	r, err := s.Store.Maintenance().GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MaintenanceRequest{}, ErrNotFound
		}
		return domain.MaintenanceRequest{}, err
	}
	if r.LandlordID != landlord.ID {
		return domain.MaintenanceRequest{}, ErrForbidden
	}
	if r.Status == domain.MaintenanceCompleted || r.Status == domain.MaintenanceCancelled {
		return domain.MaintenanceRequest{}, ErrInvalidState
	}

	r.Status = status
	if response != "" {
		r.LandlordResponse = response
	}
	if status == domain.MaintenanceCompleted && r.CompletedAt == nil {
		now := time.Now()
		r.CompletedAt = &now
	}

	if err := s.Store.Maintenance().UpdateRequest(ctx, r); err != nil {
		log.Error("failed to update maintenance request",
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		return domain.MaintenanceRequest{}, err
	}

	log.Info("maintenance request updated",
		slog.String("request_id", requestID),
		slog.String("status", string(status)),
	)
	return s.Store.Maintenance().GetRequestByID(ctx, requestID)
}
