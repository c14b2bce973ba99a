package service

import (
	"context"
	"testing"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/stretchr/testify/require"
)

func TestSaveProfile(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := &UserService{Store: st}

	t.Run("first save creates the user with the chosen role", func(t *testing.T) {
		u, err := svc.SaveProfile(ctx, "idp|abc123", "alice@example.com", ProfileInput{
			Name: "Alice",
			Role: domain.RoleOwner,
			City: "Brisbane",
		})
		require.NoError(t, err)
		require.Equal(t, domain.RoleOwner, u.Role)
		require.Equal(t, "alice@example.com", u.Email)
		require.True(t, u.EmailNotifications)

		got, err := svc.GetByExternalID(ctx, "idp|abc123")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("later saves keep the role fixed", func(t *testing.T) {
		u, err := svc.SaveProfile(ctx, "idp|abc123", "alice@example.com", ProfileInput{
			Name: "Alice Smith",
			Role: domain.RoleTenant,
		})
		require.NoError(t, err)
		require.Equal(t, "Alice Smith", u.Name)
		require.Equal(t, domain.RoleOwner, u.Role)
	})

	t.Run("first save requires a valid role", func(t *testing.T) {
		_, err := svc.SaveProfile(ctx, "idp|other", "bob@example.com", ProfileInput{
			Name: "Bob",
			Role: "superuser",
		})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := svc.SaveProfile(ctx, "idp|other", "bob@example.com", ProfileInput{Role: domain.RoleTenant})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestNotificationSettingsAndPhoto(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := &UserService{Store: st}
	user := seedUser(t, st, domain.RoleTenant)

	updated, err := svc.UpdateNotificationSettings(ctx, user, false, true)
	require.NoError(t, err)
	require.False(t, updated.EmailNotifications)
	require.True(t, updated.SMSNotifications)

	updated, err = svc.UpdateProfilePhoto(ctx, user, "https://cdn.example.com/p/1.jpg")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/p/1.jpg", updated.ProfilePhoto)

	_, err = svc.UpdateProfilePhoto(ctx, user, "  ")
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestTenantDirectory(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := &UserService{Store: st}

	landlord := seedUser(t, st, domain.RoleOwner)
	assigned := seedUser(t, st, domain.RoleTenant)
	free := seedUser(t, st, domain.RoleTenant)

	prop := seedProperty(t, st, landlord.ID)
	unit := seedUnit(t, st, prop.ID)
	require.NoError(t, st.Units().AssignTenant(ctx, unit.ID, assigned.ID, nil, nil))

	t.Run("all tenants", func(t *testing.T) {
		tenants, err := svc.ListTenants(ctx, landlord)
		require.NoError(t, err)
		require.Len(t, tenants, 2)
	})

	t.Run("available excludes assigned tenants", func(t *testing.T) {
		tenants, err := svc.ListAvailableTenants(ctx, landlord)
		require.NoError(t, err)
		require.Len(t, tenants, 1)
		require.Equal(t, free.ID, tenants[0].ID)
	})

	t.Run("tenant callers are rejected", func(t *testing.T) {
		_, err := svc.ListTenants(ctx, free)
		require.ErrorIs(t, err, ErrForbidden)
		_, err = svc.ListAvailableTenants(ctx, free)
		require.ErrorIs(t, err, ErrForbidden)
	})
}
