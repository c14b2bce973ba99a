package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/store"
	"github.com/rentlinkhq/rentlink/internal/rental/store/drivers/sqlite"
	"github.com/rentlinkhq/rentlink/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// mailerStub records sent invitations and can be told to fail.
type mailerStub struct {
	mu      sync.Mutex
	sent    []string
	failErr error
}

func (m *mailerStub) SendInvitation(_ context.Context, _, _, _ string, invitationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.sent = append(m.sent, invitationID)
	return nil
}

func (m *mailerStub) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func seedUser(t *testing.T, st store.Store, role domain.Role) domain.User {
	t.Helper()

	id := idx.New().String()
	u := domain.User{
		ID:         id,
		ExternalID: "idp|" + id,
		Email:      fmt.Sprintf("%s-%s@example.com", role, id),
		Name:       fmt.Sprintf("Test %s", role),
		Role:       role,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))

	created, err := st.Users().GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	return created
}

func seedProperty(t *testing.T, st store.Store, landlordID string) domain.Property {
	t.Helper()

	p := domain.Property{
		ID:               idx.New().String(),
		LandlordID:       landlordID,
		Address:          "12 Example St",
		City:             "Brisbane",
		State:            "QLD",
		ZipCode:          "4000",
		TotalUnits:       4,
		PaymentFrequency: domain.FrequencyMonthly,
	}
	require.NoError(t, st.Properties().CreateProperty(context.Background(), p))

	created, err := st.Properties().GetPropertyByID(context.Background(), p.ID)
	require.NoError(t, err)
	return created
}

func seedUnit(t *testing.T, st store.Store, propertyID string) domain.Unit {
	t.Helper()

	id := idx.New().String()
	u := domain.Unit{
		ID:               id,
		PropertyID:       propertyID,
		UnitNumber:       "Apt " + id[len(id)-4:],
		RentAmount:       450,
		PaymentFrequency: domain.FrequencyMonthly,
		Status:           domain.UnitAvailable,
	}
	require.NoError(t, st.Units().CreateUnit(context.Background(), u))

	created, err := st.Units().GetUnitByID(context.Background(), u.ID)
	require.NoError(t, err)
	return created
}
