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

// ErrUnitUnavailable is returned when a unit assignment loses against the
// unit's current status: it was occupied, under maintenance, or claimed by
// a concurrent assignment between read and write.
var ErrUnitUnavailable = errors.New("unit is not available for assignment")

type UnitService struct {
	Store store.Store
}

// ownedUnit fetches a unit and verifies the caller owns its property.
func (s *UnitService) ownedUnit(ctx context.Context, owner domain.User, unitID string) (domain.Unit, error) {
	if owner.Role != domain.RoleOwner {
		return domain.Unit{}, ErrForbidden
	}
	unit, err := s.Store.Units().GetUnitByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Unit{}, ErrNotFound
		}
		return domain.Unit{}, err
	}
	prop, err := s.Store.Properties().GetPropertyByID(ctx, unit.PropertyID)
	if err != nil {
		return domain.Unit{}, err
	}
	if prop.LandlordID != owner.ID {
		return domain.Unit{}, ErrForbidden
	}
	return unit, nil
}

// Create adds a unit to one of the owner's properties.
func (s *UnitService) Create(ctx context.Context, owner domain.User, unit domain.Unit) (domain.Unit, error) {
	log := slogx.FromContext(ctx)

	if owner.Role != domain.RoleOwner {
		return domain.Unit{}, ErrForbidden
	}
	if strings.TrimSpace(unit.UnitNumber) == "" || unit.RentAmount < 0 {
		return domain.Unit{}, ErrInvalidRequest
	}
	if !unit.PaymentFrequency.Valid() {
		unit.PaymentFrequency = domain.FrequencyMonthly
	}

	prop, err := s.Store.Properties().GetPropertyByID(ctx, unit.PropertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Unit{}, ErrNotFound
		}
		return domain.Unit{}, err
	}
	if prop.LandlordID != owner.ID {
		return domain.Unit{}, ErrForbidden
	}

	unit.ID = idx.New().String()
	unit.Status = domain.UnitAvailable
	unit.TenantID = ""

	if err := s.Store.Units().CreateUnit(ctx, unit); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Unit{}, ErrInvalidRequest
		}
		log.Error("failed to create unit", slog.Any("error", err))
		return domain.Unit{}, err
	}

	log.Info("unit created",
		slog.String("unit_id", unit.ID),
		slog.String("property_id", unit.PropertyID),
	)
	return s.Store.Units().GetUnitByID(ctx, unit.ID)
}

// ListByProperty returns all units of one of the owner's properties.
func (s *UnitService) ListByProperty(ctx context.Context, owner domain.User, propertyID string) ([]domain.Unit, error) {
	if owner.Role != domain.RoleOwner {
		return nil, ErrForbidden
	}
	prop, err := s.Store.Properties().GetPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if prop.LandlordID != owner.ID {
		return nil, ErrForbidden
	}
	return s.Store.Units().ListUnitsByProperty(ctx, propertyID)
}

// Update overwrites a unit's descriptive fields. Occupancy state is only
// changed through Assign/Remove/SetMaintenance/SetAvailable.
func (s *UnitService) Update(ctx context.Context, owner domain.User, unit domain.Unit) (domain.Unit, error) {
	existing, err := s.ownedUnit(ctx, owner, unit.ID)
	if err != nil {
		return domain.Unit{}, err
	}
	if strings.TrimSpace(unit.UnitNumber) == "" || unit.RentAmount < 0 {
		return domain.Unit{}, ErrInvalidRequest
	}
	if !unit.PaymentFrequency.Valid() {
		unit.PaymentFrequency = existing.PaymentFrequency
	}

	existing.UnitNumber = unit.UnitNumber
	existing.RentAmount = unit.RentAmount
	existing.PaymentFrequency = unit.PaymentFrequency
	existing.LeaseStart = unit.LeaseStart
	existing.LeaseEnd = unit.LeaseEnd
	existing.Amenities = unit.Amenities
	existing.Description = unit.Description

	if err := s.Store.Units().UpdateUnit(ctx, existing); err != nil {
		slogx.FromContext(ctx).Error("failed to update unit", slog.Any("error", err))
		return domain.Unit{}, err
	}
	return s.Store.Units().GetUnitByID(ctx, existing.ID)
}

// Delete removes an unoccupied unit.
func (s *UnitService) Delete(ctx context.Context, owner domain.User, unitID string) error {
	unit, err := s.ownedUnit(ctx, owner, unitID)
	if err != nil {
		return err
	}
	if unit.Status == domain.UnitOccupied {
		return ErrInvalidState
	}
	return s.Store.Units().DeleteUnit(ctx, unitID)
}

// Assign attaches a tenant to one of the owner's available units. The
// occupancy write is conditional on the stored status still being
// available, so two racing assignments resolve to exactly one winner.
func (s *UnitService) Assign(
	ctx context.Context,
	owner domain.User,
	unitID string,
	tenantID string,
	leaseStart, leaseEnd *time.Time,
) (domain.Unit, error) {
	log := slogx.FromContext(ctx)

	unit, err := s.ownedUnit(ctx, owner, unitID)
	if err != nil {
		return domain.Unit{}, err
	}

	// 1. The assignee must exist and be a tenant.
	tenant, err := s.Store.Users().GetUserByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Unit{}, ErrNotFound
		}
		return domain.Unit{}, err
	}
	if tenant.Role != domain.RoleTenant {
		return domain.Unit{}, ErrInvalidRequest
	}

	// 2. Conditional occupancy write. A non-available unit, whether it was
	// read that way or changed underneath us, reports the same conflict.
	if err := s.Store.Units().AssignTenant(ctx, unitID, tenantID, leaseStart, leaseEnd); err != nil {
		if errors.Is(err, store.ErrStaleStatus) {
			return domain.Unit{}, ErrUnitUnavailable
		}
		log.Error("failed to assign tenant",
			slog.String("unit_id", unitID),
			slog.Any("error", err),
		)
		return domain.Unit{}, err
	}

	log.Info("tenant assigned to unit",
		slog.String("unit_id", unitID),
		slog.String("tenant_id", tenantID),
	)
	return s.Store.Units().GetUnitByID(ctx, unit.ID)
}

// Remove detaches the current tenant from an occupied unit. Calling it on
// an already-available unit fails rather than silently succeeding.
func (s *UnitService) Remove(ctx context.Context, owner domain.User, unitID string) (domain.Unit, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.ownedUnit(ctx, owner, unitID); err != nil {
		return domain.Unit{}, err
	}

	if err := s.Store.Units().RemoveTenant(ctx, unitID); err != nil {
		if errors.Is(err, store.ErrStaleStatus) {
			return domain.Unit{}, ErrInvalidState
		}
		log.Error("failed to remove tenant",
			slog.String("unit_id", unitID),
			slog.Any("error", err),
		)
		return domain.Unit{}, err
	}

	log.Info("tenant removed from unit", slog.String("unit_id", unitID))
	return s.Store.Units().GetUnitByID(ctx, unitID)
}

// SetMaintenance takes an occupied unit offline for maintenance.
func (s *UnitService) SetMaintenance(ctx context.Context, owner domain.User, unitID string) (domain.Unit, error) {
	return s.transition(ctx, owner, unitID, domain.UnitOccupied, domain.UnitMaintenance)
}

// SetAvailable returns a unit from maintenance to the pool.
func (s *UnitService) SetAvailable(ctx context.Context, owner domain.User, unitID string) (domain.Unit, error) {
	return s.transition(ctx, owner, unitID, domain.UnitMaintenance, domain.UnitAvailable)
}

func (s *UnitService) transition(ctx context.Context, owner domain.User, unitID string, from, to domain.UnitStatus) (domain.Unit, error) {
	if _, err := s.ownedUnit(ctx, owner, unitID); err != nil {
		return domain.Unit{}, err
	}
	if err := s.Store.Units().SetStatus(ctx, unitID, from, to); err != nil {
		if errors.Is(err, store.ErrStaleStatus) {
			return domain.Unit{}, ErrInvalidState
		}
		slogx.FromContext(ctx).Error("failed to change unit status",
			slog.String("unit_id", unitID),
			slog.Any("error", err),
		)
		return domain.Unit{}, err
	}
	return s.Store.Units().GetUnitByID(ctx, unitID)
}
