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

type UserService struct {
	Store store.Store
}

// ProfileInput is the caller-editable slice of a user record.
type ProfileInput struct {
	Name    string
	Role    domain.Role
	Phone   string
	Bio     string
	Address string
	City    string
	State   string
	ZipCode string
	Country string
}

// GetByExternalID resolves an identity-provider subject to a user.
func (s *UserService) GetByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// GetByID returns the public view of any user.
func (s *UserService) GetByID(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// SaveProfile upserts the caller's profile. The first save creates the user
// record and fixes their role; later saves update the profile fields only.
func (s *UserService) SaveProfile(ctx context.Context, externalID, email string, in ProfileInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(in.Name) == "" {
		return domain.User{}, ErrInvalidRequest
	}

	existing, err := s.Store.Users().GetUserByExternalID(ctx, externalID)
	switch {
	case err == nil:
		// Role is chosen once at first save; the rest is overwritable.
		existing.Name = in.Name
		existing.Phone = in.Phone
		existing.Bio = in.Bio
		existing.Address = in.Address
		existing.City = in.City
		existing.State = in.State
		existing.ZipCode = in.ZipCode
		existing.Country = in.Country

		if err := s.Store.Users().UpdateUser(ctx, existing); err != nil {
			log.Error("failed to update profile", slog.Any("error", err))
			return domain.User{}, err
		}
		return s.Store.Users().GetUserByID(ctx, existing.ID)

	case errors.Is(err, store.ErrNotFound):
		if !in.Role.Valid() {
			return domain.User{}, ErrInvalidRequest
		}
		u := domain.User{
			ID:                 idx.New().String(),
			ExternalID:         externalID,
			Email:              email,
			Name:               in.Name,
			Role:               in.Role,
			Phone:              in.Phone,
			Bio:                in.Bio,
			Address:            in.Address,
			City:               in.City,
			State:              in.State,
			ZipCode:            in.ZipCode,
			Country:            in.Country,
			EmailNotifications: true,
		}
		if err := s.Store.Users().CreateUser(ctx, u); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.User{}, ErrInvalidRequest
			}
			log.Error("failed to create user", slog.Any("error", err))
			return domain.User{}, err
		}
		log.Info("user created",
			slog.String("user_id", u.ID),
			slog.String("role", string(u.Role)),
		)
		return s.Store.Users().GetUserByID(ctx, u.ID)

	default:
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}
}

// UpdateNotificationSettings flips the caller's notification flags.
func (s *UserService) UpdateNotificationSettings(ctx context.Context, user domain.User, email, sms bool) (domain.User, error) {
	if err := s.Store.Users().UpdateNotificationSettings(ctx, user.ID, email, sms); err != nil {
		slogx.FromContext(ctx).Error("failed to update notification settings", slog.Any("error", err))
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, user.ID)
}

// UpdateProfilePhoto stores the URL of the caller's profile photo.
func (s *UserService) UpdateProfilePhoto(ctx context.Context, user domain.User, photoURL string) (domain.User, error) {
	if strings.TrimSpace(photoURL) == "" {
		return domain.User{}, ErrInvalidRequest
	}
	if err := s.Store.Users().UpdateProfilePhoto(ctx, user.ID, photoURL); err != nil {
		slogx.FromContext(ctx).Error("failed to update profile photo", slog.Any("error", err))
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, user.ID)
}

// ListTenants returns the tenant directory. Owner-only.
func (s *UserService) ListTenants(ctx context.Context, caller domain.User) ([]domain.User, error) {
	if caller.Role != domain.RoleOwner {
		return nil, ErrForbidden
	}
	return s.Store.Users().ListTenants(ctx)
}

// ListAvailableTenants returns tenants not currently assigned to any unit.
// Owner-only.
func (s *UserService) ListAvailableTenants(ctx context.Context, caller domain.User) ([]domain.User, error) {
	if caller.Role != domain.RoleOwner {
		return nil, ErrForbidden
	}
	return s.Store.Users().ListAvailableTenants(ctx)
}
