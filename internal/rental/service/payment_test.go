package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/store"
	"github.com/stretchr/testify/require"
)

func seedOccupancy(t *testing.T, st store.Store) (domain.User, domain.User, domain.Unit) {
	t.Helper()

	landlord := seedUser(t, st, domain.RoleOwner)
	tenant := seedUser(t, st, domain.RoleTenant)
	prop := seedProperty(t, st, landlord.ID)
	unit := seedUnit(t, st, prop.ID)
	require.NoError(t, st.Units().AssignTenant(context.Background(), unit.ID, tenant.ID, nil, nil))
	return landlord, tenant, unit
}

func TestPaymentLifecycle(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := &PaymentService{Store: st}

	landlord, tenant, unit := seedOccupancy(t, st)

	p, err := svc.Create(ctx, tenant, domain.Payment{
		Type:    domain.PaymentRent,
		Amount:  450,
		DueDate: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	require.Equal(t, domain.PaymentPending, p.Status)
	require.Equal(t, unit.ID, p.UnitID)
	require.Equal(t, landlord.ID, p.LandlordID)

	t.Run("verify requires a paid payment", func(t *testing.T) {
		_, err := svc.Verify(ctx, landlord, p.ID)
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("tenant marks paid with proof", func(t *testing.T) {
		paid, err := svc.MarkPaid(ctx, tenant, p.ID, "https://cdn.example.com/proof/1.pdf")
		require.NoError(t, err)
		require.Equal(t, domain.PaymentPaid, paid.Status)
		require.NotNil(t, paid.PaidDate)
		require.Equal(t, "https://cdn.example.com/proof/1.pdf", paid.ProofOfPayment)
	})

	t.Run("landlord verifies", func(t *testing.T) {
		verified, err := svc.Verify(ctx, landlord, p.ID)
		require.NoError(t, err)
		require.Equal(t, domain.PaymentVerified, verified.Status)
		require.True(t, verified.LandlordVerified)
		require.NotNil(t, verified.VerificationDate)
	})

	t.Run("lists are scoped by role", func(t *testing.T) {
		byTenant, err := svc.List(ctx, tenant)
		require.NoError(t, err)
		require.Len(t, byTenant, 1)

		byLandlord, err := svc.List(ctx, landlord)
		require.NoError(t, err)
		require.Len(t, byLandlord, 1)

		stranger := seedUser(t, st, domain.RoleTenant)
		none, err := svc.List(ctx, stranger)
		require.NoError(t, err)
		require.Empty(t, none)
	})
}

func TestPaymentAuthorization(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := &PaymentService{Store: st}

	_, tenant, _ := seedOccupancy(t, st)

	p, err := svc.Create(ctx, tenant, domain.Payment{
		Type:    domain.PaymentElectric,
		Amount:  80,
		DueDate: time.Now().AddDate(0, 0, 3),
	})
	require.NoError(t, err)

	t.Run("unhoused tenant cannot create", func(t *testing.T) {
		stranger := seedUser(t, st, domain.RoleTenant)
		_, err := svc.Create(ctx, stranger, domain.Payment{
			Type:    domain.PaymentRent,
			Amount:  100,
			DueDate: time.Now(),
		})
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("another tenant cannot mark paid", func(t *testing.T) {
		stranger := seedUser(t, st, domain.RoleTenant)
		_, err := svc.MarkPaid(ctx, stranger, p.ID, "")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("another landlord cannot verify", func(t *testing.T) {
		_, err := svc.MarkPaid(ctx, tenant, p.ID, "")
		require.NoError(t, err)

		other := seedUser(t, st, domain.RoleOwner)
		_, err = svc.Verify(ctx, other, p.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})
}

func TestHousekeepingMarksOverdue(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := &PaymentService{Store: st}

	_, tenant, _ := seedOccupancy(t, st)

	overdue, err := svc.Create(ctx, tenant, domain.Payment{
		Type:    domain.PaymentRent,
		Amount:  450,
		DueDate: time.Now().AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	current, err := svc.Create(ctx, tenant, domain.Payment{
		Type:    domain.PaymentWater,
		Amount:  60,
		DueDate: time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	// Sweep as if two days from now: the first payment is past due.
	n, err := st.Payments().MarkOverduePayments(ctx, time.Now().AddDate(0, 0, 2))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	p, err := st.Payments().GetPaymentByID(ctx, overdue.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentOverdue, p.Status)

	p, err = st.Payments().GetPaymentByID(ctx, current.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentPending, p.Status)

	t.Run("worker start and stop", func(t *testing.T) {
		hk := NewHousekeepingService(st, slog.Default(), time.Hour)
		hk.Start()
		hk.Stop()
	})
}
