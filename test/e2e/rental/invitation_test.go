package rental_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

// TestInvitationFlow walks the primary onboarding path: a landlord sets up
// a property and unit, invites a prospective tenant by email, the tenant
// registers and accepts, and the unit ends up occupied by them.
func TestInvitationFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	landlord, _ := registerLandlord(t, env)
	property, unit := createPropertyWithUnit(t, landlord)

	_, inviteEmail := newIdentity("invitee")
	inv, err := landlord.CreateInvitation(ctx, rentsdk.InviteRequest{
		Email:      inviteEmail,
		Message:    "Welcome to Harbour St!",
		PropertyID: property.ID,
		UnitID:     unit.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "pending", inv.Status)
	require.Empty(t, inv.Warning)

	tenant, tenantUser := registerTenant(t, env, inviteEmail)

	accepted, err := tenant.AcceptInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, "accepted", accepted.Invitation.Status)
	require.Equal(t, tenantUser.ID, accepted.Invitation.TenantID)
	require.NotNil(t, accepted.Unit)
	require.Equal(t, "occupied", accepted.Unit.Status)
	require.Equal(t, tenantUser.ID, accepted.Unit.TenantID)

	// The landlord sees the accepted invitation and the occupied unit.
	invs, err := landlord.ListInvitations(ctx)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	require.Equal(t, "accepted", invs[0].Status)

	units, err := landlord.ListUnits(ctx, property.ID)
	require.NoError(t, err)
	require.Len(t, units, 1)
	require.Equal(t, "occupied", units[0].Status)
	require.Equal(t, tenantUser.ID, units[0].TenantID)
}

func TestInvitationRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	landlord, _ := registerLandlord(t, env)
	property, unit := createPropertyWithUnit(t, landlord)

	t.Run("cancelled invitation cannot be accepted", func(t *testing.T) {
		_, inviteEmail := newIdentity("invitee")
		inv, err := landlord.CreateInvitation(ctx, rentsdk.InviteRequest{
			Email:      inviteEmail,
			PropertyID: property.ID,
			UnitID:     unit.ID,
		})
		require.NoError(t, err)
		require.NoError(t, landlord.CancelInvitation(ctx, inv.ID))

		tenant, _ := registerTenant(t, env, inviteEmail)
		_, err = tenant.AcceptInvitation(ctx, inv.ID)
		requireAPIError(t, err, http.StatusConflict, rentsdk.ErrorCodeInvalidState)
	})

	t.Run("invitation is bound to the invited email", func(t *testing.T) {
		_, inviteEmail := newIdentity("invitee")
		inv, err := landlord.CreateInvitation(ctx, rentsdk.InviteRequest{Email: inviteEmail})
		require.NoError(t, err)

		_, otherEmail := newIdentity("bystander")
		other, _ := registerTenant(t, env, otherEmail)
		_, err = other.AcceptInvitation(ctx, inv.ID)
		requireAPIError(t, err, http.StatusForbidden, rentsdk.ErrorCodeForbidden)
	})

	t.Run("registered email cannot be invited", func(t *testing.T) {
		_, takenEmail := newIdentity("existing")
		registerTenant(t, env, takenEmail)

		_, err := landlord.CreateInvitation(ctx, rentsdk.InviteRequest{Email: takenEmail})
		requireAPIError(t, err, http.StatusConflict, rentsdk.ErrorCodeConflict)
	})

	t.Run("tenants cannot issue invitations", func(t *testing.T) {
		_, tenantEmail := newIdentity("tenant")
		tenant, _ := registerTenant(t, env, tenantEmail)

		_, otherEmail := newIdentity("invitee")
		_, err := tenant.CreateInvitation(ctx, rentsdk.InviteRequest{Email: otherEmail})
		requireAPIError(t, err, http.StatusForbidden, rentsdk.ErrorCodeForbidden)
	})

	t.Run("requests without a token are rejected", func(t *testing.T) {
		anon := rentsdk.NewClient(env.server.URL, "")
		_, err := anon.ListInvitations(ctx)
		var apiErr *rentsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})

	t.Run("unit taken before acceptance yields a conflict", func(t *testing.T) {
		prop2, unit2 := createPropertyWithUnit(t, landlord)

		_, inviteEmail := newIdentity("invitee")
		inv, err := landlord.CreateInvitation(ctx, rentsdk.InviteRequest{
			Email:      inviteEmail,
			PropertyID: prop2.ID,
			UnitID:     unit2.ID,
		})
		require.NoError(t, err)

		// A walk-in tenant takes the unit directly first.
		_, walkInEmail := newIdentity("walkin")
		_, walkIn := registerTenant(t, env, walkInEmail)
		_, err = landlord.AssignUnit(ctx, unit2.ID, rentsdk.AssignRequest{TenantID: walkIn.ID})
		require.NoError(t, err)

		tenant, _ := registerTenant(t, env, inviteEmail)
		_, err = tenant.AcceptInvitation(ctx, inv.ID)
		requireAPIError(t, err, http.StatusConflict, rentsdk.ErrorCodeUnitUnavailable)

		// The invitation survives the failed acceptance as pending.
		invs, err := landlord.ListInvitations(ctx)
		require.NoError(t, err)
		for _, i := range invs {
			if i.ID == inv.ID {
				require.Equal(t, "pending", i.Status)
			}
		}
	})
}
