package rental_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"

	httpapi "github.com/rentlinkhq/rentlink/internal/rental/http"
	"github.com/rentlinkhq/rentlink/internal/rental/mailer"
	"github.com/rentlinkhq/rentlink/internal/rental/service"
	"github.com/rentlinkhq/rentlink/internal/rental/store/drivers/sqlite"
	"github.com/rentlinkhq/rentlink/pkg/jwtx"
	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

/*
 * Common helpers for rental service end-to-end tests. Each test gets a
 * fresh in-memory database and an httptest server running the full
 * router, and talks to it through the rentsdk client the way an external
 * caller would.
 */

const (
	testSecret = "e2e-shared-secret"
	testIssuer = "rentlink-e2e"
)

type testEnv struct {
	server *httptest.Server
}

// newTestEnv wires the full service stack against an in-memory database
// and returns a running HTTP server for it.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	verifier := jwtx.HS256Verifier{
		Secret: []byte(testSecret),
		Issuer: testIssuer,
	}

	router := httpapi.NewRouter(verifier, "test", st, logger)
	router.UserService = &service.UserService{Store: st}
	router.PropertyService = &service.PropertyService{Store: st}
	router.UnitService = &service.UnitService{Store: st}
	router.InviteService = &service.InviteService{Store: st, Mailer: mailer.NewDev()}
	router.PaymentService = &service.PaymentService{Store: st}
	router.MaintenanceService = &service.MaintenanceService{Store: st}
	router.MessageService = &service.MessageService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server}
}

// client returns an SDK client authenticated as the given subject.
func (e *testEnv) client(t *testing.T, subject, email string) *rentsdk.Client {
	t.Helper()

	token, err := jwtx.Sign([]byte(testSecret), testIssuer, subject, email, time.Hour)
	require.NoError(t, err)
	return rentsdk.NewClient(e.server.URL, token)
}

// newIdentity mints a unique subject and email pair.
func newIdentity(prefix string) (subject, email string) {
	id := ulid.Make().String()
	return prefix + "-" + id, fmt.Sprintf("%s-%s@example.com", prefix, id)
}

// registerLandlord creates a landlord account and returns its client.
func registerLandlord(t *testing.T, env *testEnv) (*rentsdk.Client, *rentsdk.UserResponse) {
	t.Helper()

	subject, email := newIdentity("landlord")
	client := env.client(t, subject, email)
	user, err := client.SaveProfile(context.Background(), rentsdk.ProfileRequest{
		Name: "Olivia Owner",
		Role: "owner",
	})
	require.NoError(t, err)
	return client, user
}

// registerTenant creates a tenant account with the given email.
func registerTenant(t *testing.T, env *testEnv, email string) (*rentsdk.Client, *rentsdk.UserResponse) {
	t.Helper()

	subject, _ := newIdentity("tenant")
	client := env.client(t, subject, email)
	user, err := client.SaveProfile(context.Background(), rentsdk.ProfileRequest{
		Name: "Taylor Tenant",
		Role: "tenant",
	})
	require.NoError(t, err)
	return client, user
}

// createPropertyWithUnit sets up a property with one available unit.
func createPropertyWithUnit(t *testing.T, landlord *rentsdk.Client) (*rentsdk.PropertyResponse, *rentsdk.UnitResponse) {
	t.Helper()
	ctx := context.Background()

	property, err := landlord.CreateProperty(ctx, rentsdk.PropertyRequest{
		Address: "12 Harbour St",
		City:    "Sydney",
		State:   "NSW",
		ZipCode: "2000",
	})
	require.NoError(t, err)

	unit, err := landlord.CreateUnit(ctx, property.ID, rentsdk.UnitRequest{
		UnitNumber: "1A",
		RentAmount: 650,
	})
	require.NoError(t, err)
	require.Equal(t, "available", unit.Status)

	return property, unit
}

// requireAPIError asserts err is an API error with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *rentsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
