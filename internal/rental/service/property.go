package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/store"
	"github.com/rentlinkhq/rentlink/pkg/idx"
	"github.com/rentlinkhq/rentlink/pkg/slogx"
)

type PropertyService struct {
	Store store.Store
}

func (s *PropertyService) owned(ctx context.Context, owner domain.User, propertyID string) (domain.Property, error) {
	if owner.Role != domain.RoleOwner {
		return domain.Property{}, ErrForbidden
	}
	prop, err := s.Store.Properties().GetPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Property{}, ErrNotFound
		}
		return domain.Property{}, err
	}
	if prop.LandlordID != owner.ID {
		return domain.Property{}, ErrForbidden
	}
	return prop, nil
}

// Create registers a new property for the owner.
func (s *PropertyService) Create(ctx context.Context, owner domain.User, p domain.Property) (domain.Property, error) {
	log := slogx.FromContext(ctx)

	if owner.Role != domain.RoleOwner {
		return domain.Property{}, ErrForbidden
	}
	if strings.TrimSpace(p.Address) == "" {
		return domain.Property{}, ErrInvalidRequest
	}
	if !p.PaymentFrequency.Valid() {
		p.PaymentFrequency = domain.FrequencyMonthly
	}

	p.ID = idx.New().String()
	p.LandlordID = owner.ID

	if err := s.Store.Properties().CreateProperty(ctx, p); err != nil {
		log.Error("failed to create property", slog.Any("error", err))
		return domain.Property{}, err
	}

	log.Info("property created",
		slog.String("property_id", p.ID),
		slog.String("landlord_id", owner.ID),
	)
	return s.Store.Properties().GetPropertyByID(ctx, p.ID)
}

// List returns the owner's properties, newest first.
func (s *PropertyService) List(ctx context.Context, owner domain.User) ([]domain.Property, error) {
	if owner.Role != domain.RoleOwner {
		return nil, ErrForbidden
	}
	return s.Store.Properties().ListPropertiesByLandlord(ctx, owner.ID)
}

// Get returns one of the owner's properties.
func (s *PropertyService) Get(ctx context.Context, owner domain.User, propertyID string) (domain.Property, error) {
	return s.owned(ctx, owner, propertyID)
}

// Update overwrites a property's editable fields.
func (s *PropertyService) Update(ctx context.Context, owner domain.User, p domain.Property) (domain.Property, error) {
	existing, err := s.owned(ctx, owner, p.ID)
	if err != nil {
		return domain.Property{}, err
	}
	if strings.TrimSpace(p.Address) == "" {
		return domain.Property{}, ErrInvalidRequest
	}
	if !p.PaymentFrequency.Valid() {
		p.PaymentFrequency = existing.PaymentFrequency
	}

	existing.Address = p.Address
	existing.City = p.City
	existing.State = p.State
	existing.ZipCode = p.ZipCode
	existing.TotalUnits = p.TotalUnits
	existing.TotalRentAmount = p.TotalRentAmount
	existing.PaymentFrequency = p.PaymentFrequency
	existing.ElectricIncluded = p.ElectricIncluded
	existing.WaterIncluded = p.WaterIncluded
	existing.InternetIncluded = p.InternetIncluded
	existing.GasIncluded = p.GasIncluded
	existing.Amenities = p.Amenities
	existing.Description = p.Description

	if err := s.Store.Properties().UpdateProperty(ctx, existing); err != nil {
		slogx.FromContext(ctx).Error("failed to update property", slog.Any("error", err))
		return domain.Property{}, err
	}
	return s.Store.Properties().GetPropertyByID(ctx, existing.ID)
}

// Delete removes a property. Units and invitations under it cascade away;
// an occupied unit blocks the delete.
func (s *PropertyService) Delete(ctx context.Context, owner domain.User, propertyID string) error {
	if _, err := s.owned(ctx, owner, propertyID); err != nil {
		return err
	}

	units, err := s.Store.Units().ListUnitsByProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	for _, u := range units {
		if u.Status == domain.UnitOccupied {
			return ErrInvalidState
		}
	}

	if err := s.Store.Properties().DeleteProperty(ctx, propertyID); err != nil {
		slogx.FromContext(ctx).Error("failed to delete property", slog.Any("error", err))
		return err
	}
	return nil
}
