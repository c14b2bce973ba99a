package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
)

type unitsRepo struct {
	q queryer
}

const unitColumns = `id, property_id, unit_number, rent_amount, payment_frequency,
	status, tenant_id, lease_start, lease_end, amenities, description,
	created_at, updated_at`

func scanUnit(row interface{ Scan(...any) error }) (domain.Unit, error) {
	var (
		u          domain.Unit
		tenantID   sql.NullString
		leaseStart sql.NullTime
		leaseEnd   sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.PropertyID, &u.UnitNumber, &u.RentAmount, &u.PaymentFrequency,
		&u.Status, &tenantID, &leaseStart, &leaseEnd, &u.Amenities, &u.Description,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.Unit{}, err
	}
	u.TenantID = mapNullString(tenantID)
	u.LeaseStart = mapNullTimePtr(leaseStart)
	u.LeaseEnd = mapNullTimePtr(leaseEnd)
	return u, nil
}

func (r *unitsRepo) GetUnitByID(ctx context.Context, id string) (domain.Unit, error) {
	u, err := scanUnit(r.q.QueryRowContext(ctx,
		`SELECT `+unitColumns+` FROM units WHERE id = ?`, id))
	if err != nil {
		return domain.Unit{}, mapNotFound(err)
	}
	return u, nil
}

func (r *unitsRepo) ListUnitsByProperty(ctx context.Context, propertyID string) ([]domain.Unit, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+unitColumns+` FROM units WHERE property_id = ? ORDER BY unit_number`,
		propertyID)
	if err != nil {
		return nil, err
	}
	return collectUnits(rows)
}

func (r *unitsRepo) GetUnitByTenant(ctx context.Context, tenantID string) (domain.Unit, error) {
	u, err := scanUnit(r.q.QueryRowContext(ctx,
		`SELECT `+unitColumns+` FROM units WHERE tenant_id = ?`, tenantID))
	if err != nil {
		return domain.Unit{}, mapNotFound(err)
	}
	return u, nil
}

func (r *unitsRepo) CreateUnit(ctx context.Context, u domain.Unit) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO units (
			id, property_id, unit_number, rent_amount, payment_frequency,
			status, tenant_id, lease_start, lease_end, amenities, description
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.PropertyID, u.UnitNumber, u.RentAmount, u.PaymentFrequency,
		u.Status, mapStringNull(u.TenantID), mapOptionalTime(u.LeaseStart),
		mapOptionalTime(u.LeaseEnd), u.Amenities, u.Description,
	)
	return err
}

func (r *unitsRepo) UpdateUnit(ctx context.Context, u domain.Unit) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE units SET
			unit_number = ?, rent_amount = ?, payment_frequency = ?,
			amenities = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		u.UnitNumber, u.RentAmount, u.PaymentFrequency,
		u.Amenities, u.Description, u.ID,
	)
	return ensureFound(res, err)
}

func (r *unitsRepo) DeleteUnit(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM units WHERE id = ?`, id)
	return ensureFound(res, err)
}

// AssignTenant is the compare-and-swap occupancy write. The WHERE clause
// re-checks status = 'available' so that two racing assignments resolve to
// exactly one winner; the loser touches zero rows and gets ErrStaleStatus.
func (r *unitsRepo) AssignTenant(ctx context.Context, unitID, tenantID string, leaseStart, leaseEnd *time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE units SET
			tenant_id = ?, status = 'occupied',
			lease_start = ?, lease_end = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = 'available'`,
		tenantID, mapOptionalTime(leaseStart), mapOptionalTime(leaseEnd), unitID,
	)
	return guarded(res, err)
}

func (r *unitsRepo) RemoveTenant(ctx context.Context, unitID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE units SET
			tenant_id = NULL, status = 'available',
			lease_start = NULL, lease_end = NULL,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = 'occupied'`,
		unitID,
	)
	return guarded(res, err)
}

// SetStatus moves between the non-occupied states. The schema ties
// tenant_id to the occupied status, so the tenant and lease are cleared on
// the way out.
func (r *unitsRepo) SetStatus(ctx context.Context, unitID string, from, to domain.UnitStatus) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE units SET
			status = ?, tenant_id = NULL,
			lease_start = NULL, lease_end = NULL,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = ?`,
		to, unitID, from,
	)
	return guarded(res, err)
}

func collectUnits(rows *sql.Rows) ([]domain.Unit, error) {
	defer rows.Close()

	var out []domain.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
