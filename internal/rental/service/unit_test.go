package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/stretchr/testify/require"
)

func TestAssignTenant(t *testing.T) {
	ctx := context.Background()

	t.Run("available unit becomes occupied", func(t *testing.T) {
		st := newTestStore(t)
		svc := &UnitService{Store: st}

		landlord := seedUser(t, st, domain.RoleOwner)
		tenant := seedUser(t, st, domain.RoleTenant)
		prop := seedProperty(t, st, landlord.ID)
		unit := seedUnit(t, st, prop.ID)

		updated, err := svc.Assign(ctx, landlord, unit.ID, tenant.ID, nil, nil)
		require.NoError(t, err)
		require.Equal(t, domain.UnitOccupied, updated.Status)
		require.Equal(t, tenant.ID, updated.TenantID)
	})

	t.Run("occupied unit rejects a second assignment", func(t *testing.T) {
		st := newTestStore(t)
		svc := &UnitService{Store: st}

		landlord := seedUser(t, st, domain.RoleOwner)
		first := seedUser(t, st, domain.RoleTenant)
		second := seedUser(t, st, domain.RoleTenant)
		prop := seedProperty(t, st, landlord.ID)
		unit := seedUnit(t, st, prop.ID)

		_, err := svc.Assign(ctx, landlord, unit.ID, first.ID, nil, nil)
		require.NoError(t, err)

		_, err = svc.Assign(ctx, landlord, unit.ID, second.ID, nil, nil)
		require.ErrorIs(t, err, ErrUnitUnavailable)

		u, err := st.Units().GetUnitByID(ctx, unit.ID)
		require.NoError(t, err)
		require.Equal(t, first.ID, u.TenantID)
	})

	t.Run("concurrent assignments resolve to exactly one winner", func(t *testing.T) {
		st := newTestStore(t)
		svc := &UnitService{Store: st}

		landlord := seedUser(t, st, domain.RoleOwner)
		prop := seedProperty(t, st, landlord.ID)
		unit := seedUnit(t, st, prop.ID)

		const racers = 8
		tenants := make([]domain.User, racers)
		for i := range tenants {
			tenants[i] = seedUser(t, st, domain.RoleTenant)
		}

		var wg sync.WaitGroup
		errs := make([]error, racers)
		for i := 0; i < racers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = svc.Assign(ctx, landlord, unit.ID, tenants[i].ID, nil, nil)
			}(i)
		}
		wg.Wait()

		var wins, losses int
		for _, err := range errs {
			if err == nil {
				wins++
				continue
			}
			require.ErrorIs(t, err, ErrUnitUnavailable)
			losses++
		}
		require.Equal(t, 1, wins)
		require.Equal(t, racers-1, losses)

		u, err := st.Units().GetUnitByID(ctx, unit.ID)
		require.NoError(t, err)
		require.Equal(t, domain.UnitOccupied, u.Status)
		require.NotEmpty(t, u.TenantID)
	})

	t.Run("only the property owner may assign", func(t *testing.T) {
		st := newTestStore(t)
		svc := &UnitService{Store: st}

		landlord := seedUser(t, st, domain.RoleOwner)
		other := seedUser(t, st, domain.RoleOwner)
		tenant := seedUser(t, st, domain.RoleTenant)
		prop := seedProperty(t, st, landlord.ID)
		unit := seedUnit(t, st, prop.ID)

		_, err := svc.Assign(ctx, other, unit.ID, tenant.ID, nil, nil)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("assignee must be a tenant", func(t *testing.T) {
		st := newTestStore(t)
		svc := &UnitService{Store: st}

		landlord := seedUser(t, st, domain.RoleOwner)
		otherOwner := seedUser(t, st, domain.RoleOwner)
		prop := seedProperty(t, st, landlord.ID)
		unit := seedUnit(t, st, prop.ID)

		_, err := svc.Assign(ctx, landlord, unit.ID, otherOwner.ID, nil, nil)
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestRemoveTenant(t *testing.T) {
	ctx := context.Background()

	t.Run("occupied unit returns to available", func(t *testing.T) {
		st := newTestStore(t)
		svc := &UnitService{Store: st}

		landlord := seedUser(t, st, domain.RoleOwner)
		tenant := seedUser(t, st, domain.RoleTenant)
		prop := seedProperty(t, st, landlord.ID)
		unit := seedUnit(t, st, prop.ID)

		_, err := svc.Assign(ctx, landlord, unit.ID, tenant.ID, nil, nil)
		require.NoError(t, err)

		updated, err := svc.Remove(ctx, landlord, unit.ID)
		require.NoError(t, err)
		require.Equal(t, domain.UnitAvailable, updated.Status)
		require.Empty(t, updated.TenantID)
	})

	t.Run("already-available unit fails unchanged", func(t *testing.T) {
		st := newTestStore(t)
		svc := &UnitService{Store: st}

		landlord := seedUser(t, st, domain.RoleOwner)
		prop := seedProperty(t, st, landlord.ID)
		unit := seedUnit(t, st, prop.ID)

		_, err := svc.Remove(ctx, landlord, unit.ID)
		require.ErrorIs(t, err, ErrInvalidState)

		u, err := st.Units().GetUnitByID(ctx, unit.ID)
		require.NoError(t, err)
		require.Equal(t, domain.UnitAvailable, u.Status)
	})
}

func TestUnitStatusTransitions(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := &UnitService{Store: st}

	landlord := seedUser(t, st, domain.RoleOwner)
	tenant := seedUser(t, st, domain.RoleTenant)
	prop := seedProperty(t, st, landlord.ID)
	unit := seedUnit(t, st, prop.ID)

	t.Run("available unit cannot enter maintenance", func(t *testing.T) {
		_, err := svc.SetMaintenance(ctx, landlord, unit.ID)
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("occupied to maintenance clears the tenant", func(t *testing.T) {
		_, err := svc.Assign(ctx, landlord, unit.ID, tenant.ID, nil, nil)
		require.NoError(t, err)

		updated, err := svc.SetMaintenance(ctx, landlord, unit.ID)
		require.NoError(t, err)
		require.Equal(t, domain.UnitMaintenance, updated.Status)
		require.Empty(t, updated.TenantID)
	})

	t.Run("maintenance back to available", func(t *testing.T) {
		updated, err := svc.SetAvailable(ctx, landlord, unit.ID)
		require.NoError(t, err)
		require.Equal(t, domain.UnitAvailable, updated.Status)
	})
}

func TestUnitCRUD(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := &UnitService{Store: st}

	landlord := seedUser(t, st, domain.RoleOwner)
	tenant := seedUser(t, st, domain.RoleTenant)
	prop := seedProperty(t, st, landlord.ID)

	t.Run("create and list", func(t *testing.T) {
		created, err := svc.Create(ctx, landlord, domain.Unit{
			PropertyID:       prop.ID,
			UnitNumber:       "Apt 1A",
			RentAmount:       520,
			PaymentFrequency: domain.FrequencyWeekly,
		})
		require.NoError(t, err)
		require.Equal(t, domain.UnitAvailable, created.Status)

		units, err := svc.ListByProperty(ctx, landlord, prop.ID)
		require.NoError(t, err)
		require.Len(t, units, 1)
	})

	t.Run("create rejects empty unit number", func(t *testing.T) {
		_, err := svc.Create(ctx, landlord, domain.Unit{PropertyID: prop.ID})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("delete blocks on occupancy", func(t *testing.T) {
		unit := seedUnit(t, st, prop.ID)
		_, err := svc.Assign(ctx, landlord, unit.ID, tenant.ID, nil, nil)
		require.NoError(t, err)

		require.ErrorIs(t, svc.Delete(ctx, landlord, unit.ID), ErrInvalidState)

		_, err = svc.Remove(ctx, landlord, unit.ID)
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, landlord, unit.ID))
	})
}
