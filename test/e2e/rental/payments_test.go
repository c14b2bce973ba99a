package rental_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

// occupiedSetup registers a landlord and a tenant and assigns the tenant
// to a unit, the precondition for payments and maintenance.
func occupiedSetup(t *testing.T, env *testEnv) (landlord, tenant *rentsdk.Client) {
	t.Helper()
	ctx := context.Background()

	landlord, _ = registerLandlord(t, env)
	_, unit := createPropertyWithUnit(t, landlord)

	_, tenantEmail := newIdentity("tenant")
	tenant, tenantUser := registerTenant(t, env, tenantEmail)

	_, err := landlord.AssignUnit(ctx, unit.ID, rentsdk.AssignRequest{TenantID: tenantUser.ID})
	require.NoError(t, err)

	return landlord, tenant
}

func TestPaymentFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	landlord, tenant := occupiedSetup(t, env)

	payment, err := tenant.CreatePayment(ctx, rentsdk.PaymentRequest{
		Type:    "rent",
		Amount:  650,
		DueDate: time.Now().Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, "pending", payment.Status)

	// Verification requires the payment to be paid first.
	_, err = landlord.VerifyPayment(ctx, payment.ID)
	requireAPIError(t, err, http.StatusConflict, rentsdk.ErrorCodeInvalidState)

	paid, err := tenant.MarkPaymentPaid(ctx, payment.ID, "https://receipts.example.com/123")
	require.NoError(t, err)
	require.Equal(t, "paid", paid.Status)
	require.NotNil(t, paid.PaidDate)

	verified, err := landlord.VerifyPayment(ctx, payment.ID)
	require.NoError(t, err)
	require.True(t, verified.LandlordVerified)

	// Both sides see the payment in their list.
	forTenant, err := tenant.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, forTenant, 1)

	forLandlord, err := landlord.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, forLandlord, 1)
}

func TestMaintenanceFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	landlord, tenant := occupiedSetup(t, env)

	req, err := tenant.CreateMaintenanceRequest(ctx, rentsdk.MaintenanceCreateRequest{
		Title:    "Leaking tap in kitchen",
		Priority: "high",
		Category: "plumbing",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", req.Status)

	updated, err := landlord.UpdateMaintenanceRequest(ctx, req.ID, rentsdk.MaintenanceUpdateRequest{
		Status:   "in_progress",
		Response: "Plumber booked for Tuesday",
	})
	require.NoError(t, err)
	require.Equal(t, "in_progress", updated.Status)

	completed, err := landlord.UpdateMaintenanceRequest(ctx, req.ID, rentsdk.MaintenanceUpdateRequest{
		Status: "completed",
	})
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)

	// Tenants cannot progress requests themselves.
	_, err = tenant.UpdateMaintenanceRequest(ctx, req.ID, rentsdk.MaintenanceUpdateRequest{Status: "cancelled"})
	requireAPIError(t, err, http.StatusForbidden, rentsdk.ErrorCodeForbidden)
}

func TestMessagingFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	landlord, _ := registerLandlord(t, env)
	landlordProfile, err := landlord.GetProfile(ctx)
	require.NoError(t, err)

	_, tenantEmail := newIdentity("tenant")
	tenant, tenantUser := registerTenant(t, env, tenantEmail)

	sent, err := landlord.SendMessage(ctx, rentsdk.MessageRequest{
		ReceiverID: tenantUser.ID,
		Content:    "Inspection on Friday at 10am",
	})
	require.NoError(t, err)
	require.False(t, sent.IsRead)

	_, err = tenant.SendMessage(ctx, rentsdk.MessageRequest{
		ReceiverID: landlordProfile.ID,
		Content:    "Works for me",
	})
	require.NoError(t, err)

	// Both sides see the same conversation, oldest first.
	conversation, err := tenant.ListMessages(ctx, landlordProfile.ID)
	require.NoError(t, err)
	require.Len(t, conversation, 2)
	require.Equal(t, "Inspection on Friday at 10am", conversation[0].Content)

	require.NoError(t, tenant.MarkMessageRead(ctx, sent.ID))

	conversation, err = landlord.ListMessages(ctx, tenantUser.ID)
	require.NoError(t, err)
	require.True(t, conversation[0].IsRead)
}
