package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestIssueInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending invitation and sends email", func(t *testing.T) {
		st := newTestStore(t)
		mail := &mailerStub{}
		svc := &InviteService{Store: st, Mailer: mail}

		landlord := seedUser(t, st, domain.RoleOwner)
		prop := seedProperty(t, st, landlord.ID)
		unit := seedUnit(t, st, prop.ID)

		before := time.Now()
		inv, err := svc.Issue(ctx, landlord, "new@example.com", "welcome aboard", prop.ID, unit.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, inv.Status)
		require.Equal(t, landlord.ID, inv.LandlordID)
		require.Equal(t, unit.ID, inv.UnitID)
		require.WithinDuration(t, before.Add(InviteTTL), inv.ExpiresAt, 5*time.Second)
		require.Equal(t, 1, mail.sentCount())

		stored, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, stored.Status)
	})

	t.Run("tenants cannot issue", func(t *testing.T) {
		st := newTestStore(t)
		svc := &InviteService{Store: st, Mailer: &mailerStub{}}

		tenant := seedUser(t, st, domain.RoleTenant)
		_, err := svc.Issue(ctx, tenant, "new@example.com", "", "", "")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("rejects already-registered email without creating a row", func(t *testing.T) {
		st := newTestStore(t)
		mail := &mailerStub{}
		svc := &InviteService{Store: st, Mailer: mail}

		landlord := seedUser(t, st, domain.RoleOwner)
		existing := seedUser(t, st, domain.RoleTenant)

		_, err := svc.Issue(ctx, landlord, existing.Email, "", "", "")
		require.ErrorIs(t, err, ErrEmailAlreadyRegistered)
		require.Equal(t, 0, mail.sentCount())

		invs, err := st.Invitations().ListInvitationsByLandlord(ctx, landlord.ID)
		require.NoError(t, err)
		require.Empty(t, invs)
	})

	t.Run("rejects units owned by someone else", func(t *testing.T) {
		st := newTestStore(t)
		svc := &InviteService{Store: st, Mailer: &mailerStub{}}

		landlord := seedUser(t, st, domain.RoleOwner)
		other := seedUser(t, st, domain.RoleOwner)
		prop := seedProperty(t, st, other.ID)
		unit := seedUnit(t, st, prop.ID)

		_, err := svc.Issue(ctx, landlord, "new@example.com", "", "", unit.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("mail failure returns the created invitation with a warning", func(t *testing.T) {
		st := newTestStore(t)
		mail := &mailerStub{failErr: errors.New("smtp unreachable")}
		svc := &InviteService{Store: st, Mailer: mail}

		landlord := seedUser(t, st, domain.RoleOwner)

		inv, err := svc.Issue(ctx, landlord, "new@example.com", "", "", "")
		require.ErrorIs(t, err, ErrNotificationFailed)
		require.NotEmpty(t, inv.ID)

		// The invitation must survive the failed send.
		stored, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, stored.Status)
	})
}

func TestListInvitations(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := &InviteService{Store: st, Mailer: &mailerStub{}}

	landlord := seedUser(t, st, domain.RoleOwner)

	first, err := svc.Issue(ctx, landlord, "first@example.com", "", "", "")
	require.NoError(t, err)
	second, err := svc.Issue(ctx, landlord, "second@example.com", "", "", "")
	require.NoError(t, err)

	// A pending invitation past its deadline, inserted directly.
	stale := domain.Invitation{
		ID:         idx.New().String(),
		LandlordID: landlord.ID,
		Email:      "stale@example.com",
		Status:     domain.InvitationPending,
		ExpiresAt:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, st.Invitations().CreateInvitation(ctx, stale))

	t.Run("newest first with computed expiry", func(t *testing.T) {
		invs, err := svc.ListInvitations(ctx, landlord)
		require.NoError(t, err)
		require.Len(t, invs, 3)
		require.Equal(t, stale.ID, invs[0].ID)
		require.Equal(t, second.ID, invs[1].ID)
		require.Equal(t, first.ID, invs[2].ID)

		// Presented as expired, stored as pending.
		require.Equal(t, domain.InvitationExpired, invs[0].Status)
		stored, err := st.Invitations().GetInvitationByID(ctx, stale.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, stored.Status)
	})

	t.Run("tenants cannot list", func(t *testing.T) {
		tenant := seedUser(t, st, domain.RoleTenant)
		_, err := svc.ListInvitations(ctx, tenant)
		require.ErrorIs(t, err, ErrForbidden)
	})
}

func TestCancelInvitation(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := &InviteService{Store: st, Mailer: &mailerStub{}}

	landlord := seedUser(t, st, domain.RoleOwner)

	t.Run("pending invitation cancels", func(t *testing.T) {
		inv, err := svc.Issue(ctx, landlord, "cancel-me@example.com", "", "", "")
		require.NoError(t, err)

		require.NoError(t, svc.Cancel(ctx, landlord, inv.ID))

		stored, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationCancelled, stored.Status)

		// Terminal: cancelling again is invalid.
		require.ErrorIs(t, svc.Cancel(ctx, landlord, inv.ID), ErrInvalidState)
	})

	t.Run("only the issuer may cancel", func(t *testing.T) {
		inv, err := svc.Issue(ctx, landlord, "keep-me@example.com", "", "", "")
		require.NoError(t, err)

		other := seedUser(t, st, domain.RoleOwner)
		require.ErrorIs(t, svc.Cancel(ctx, other, inv.ID), ErrForbidden)
	})

	t.Run("unknown invitation", func(t *testing.T) {
		require.ErrorIs(t, svc.Cancel(ctx, landlord, idx.New().String()), ErrNotFound)
	})
}

func TestAcceptInvitation(t *testing.T) {
	ctx := context.Background()

	// Invitations target emails that are unregistered at issue time; the
	// invitee signs up afterwards and then accepts.
	issueAndRegister := func(t *testing.T, svc *InviteService, landlord domain.User, unitID string) (domain.Invitation, domain.User) {
		t.Helper()

		email := fmt.Sprintf("invitee-%s@example.com", idx.New())
		inv, err := svc.Issue(ctx, landlord, email, "", "", unitID)
		require.NoError(t, err)

		id := idx.New().String()
		tenant := domain.User{
			ID:         id,
			ExternalID: "idp|" + id,
			Email:      email,
			Name:       "Invited Tenant",
			Role:       domain.RoleTenant,
		}
		require.NoError(t, svc.Store.Users().CreateUser(ctx, tenant))
		created, err := svc.Store.Users().GetUserByID(ctx, id)
		require.NoError(t, err)
		return inv, created
	}

	t.Run("accept assigns the referenced unit", func(t *testing.T) {
		st := newTestStore(t)
		svc := &InviteService{Store: st, Mailer: &mailerStub{}}

		landlord := seedUser(t, st, domain.RoleOwner)
		prop := seedProperty(t, st, landlord.ID)
		unit := seedUnit(t, st, prop.ID)

		inv, tenant := issueAndRegister(t, svc, landlord, unit.ID)

		result, err := svc.Accept(ctx, tenant, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, result.Invitation.Status)
		require.Equal(t, tenant.ID, result.Invitation.TenantID)
		require.NotNil(t, result.Invitation.AcceptedAt)
		require.NotNil(t, result.Unit)
		require.Equal(t, domain.UnitOccupied, result.Unit.Status)
		require.Equal(t, tenant.ID, result.Unit.TenantID)
	})

	t.Run("accept without a unit reference", func(t *testing.T) {
		st := newTestStore(t)
		svc := &InviteService{Store: st, Mailer: &mailerStub{}}

		landlord := seedUser(t, st, domain.RoleOwner)
		inv, tenant := issueAndRegister(t, svc, landlord, "")

		result, err := svc.Accept(ctx, tenant, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, result.Invitation.Status)
		require.Nil(t, result.Unit)
	})

	t.Run("wrong account is rejected", func(t *testing.T) {
		st := newTestStore(t)
		svc := &InviteService{Store: st, Mailer: &mailerStub{}}

		landlord := seedUser(t, st, domain.RoleOwner)
		other := seedUser(t, st, domain.RoleTenant)
		inv, _ := issueAndRegister(t, svc, landlord, "")

		_, err := svc.Accept(ctx, other, inv.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owners cannot accept", func(t *testing.T) {
		st := newTestStore(t)
		svc := &InviteService{Store: st, Mailer: &mailerStub{}}

		landlord := seedUser(t, st, domain.RoleOwner)
		inv, _ := issueAndRegister(t, svc, landlord, "")

		_, err := svc.Accept(ctx, landlord, inv.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("expired invitation flips lazily on accept", func(t *testing.T) {
		st := newTestStore(t)
		svc := &InviteService{Store: st, Mailer: &mailerStub{}}

		landlord := seedUser(t, st, domain.RoleOwner)
		tenant := seedUser(t, st, domain.RoleTenant)

		inv := domain.Invitation{
			ID:         idx.New().String(),
			LandlordID: landlord.ID,
			Email:      tenant.Email,
			Status:     domain.InvitationPending,
			ExpiresAt:  time.Now().Add(-time.Minute),
		}
		require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

		_, err := svc.Accept(ctx, tenant, inv.ID)
		require.ErrorIs(t, err, ErrInviteExpired)

		// The stored status was flipped by the accept attempt.
		stored, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationExpired, stored.Status)
	})

	t.Run("cancelled invitation cannot be accepted", func(t *testing.T) {
		st := newTestStore(t)
		svc := &InviteService{Store: st, Mailer: &mailerStub{}}

		landlord := seedUser(t, st, domain.RoleOwner)
		inv, tenant := issueAndRegister(t, svc, landlord, "")

		require.NoError(t, svc.Cancel(ctx, landlord, inv.ID))

		_, err := svc.Accept(ctx, tenant, inv.ID)
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("interim assignment fails the accept and keeps it pending", func(t *testing.T) {
		st := newTestStore(t)
		svc := &InviteService{Store: st, Mailer: &mailerStub{}}

		landlord := seedUser(t, st, domain.RoleOwner)
		squatter := seedUser(t, st, domain.RoleTenant)
		prop := seedProperty(t, st, landlord.ID)
		unit := seedUnit(t, st, prop.ID)

		inv, tenant := issueAndRegister(t, svc, landlord, unit.ID)

		// Someone else takes the unit between issue and accept.
		require.NoError(t, st.Units().AssignTenant(ctx, unit.ID, squatter.ID, nil, nil))

		_, err := svc.Accept(ctx, tenant, inv.ID)
		require.ErrorIs(t, err, ErrUnitUnavailable)

		// No partial state: the invitation is still pending and the unit
		// still belongs to the interim tenant.
		stored, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, stored.Status)
		require.Empty(t, stored.TenantID)

		u, err := st.Units().GetUnitByID(ctx, unit.ID)
		require.NoError(t, err)
		require.Equal(t, squatter.ID, u.TenantID)
	})
}
