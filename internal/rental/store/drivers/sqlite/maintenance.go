package sqlite

import (
	"context"
	"database/sql"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
)

type maintenanceRepo struct {
	q queryer
}

const maintenanceColumns = `id, unit_id, property_id, tenant_id, landlord_id, title,
	description, priority, status, category, landlord_response, completed_at,
	created_at, updated_at`

func scanRequest(row interface{ Scan(...any) error }) (domain.MaintenanceRequest, error) {
	var (
		m           domain.MaintenanceRequest
		completedAt sql.NullTime
	)
	err := row.Scan(
		&m.ID, &m.UnitID, &m.PropertyID, &m.TenantID, &m.LandlordID, &m.Title,
		&m.Description, &m.Priority, &m.Status, &m.Category,
		&m.LandlordResponse, &completedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return domain.MaintenanceRequest{}, err
	}
	m.CompletedAt = mapNullTimePtr(completedAt)
	return m, nil
}

func (r *maintenanceRepo) GetRequestByID(ctx context.Context, id string) (domain.MaintenanceRequest, error) {
	m, err := scanRequest(r.q.QueryRowContext(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE id = ?`, id))
	if err != nil {
		return domain.MaintenanceRequest{}, mapNotFound(err)
	}
	return m, nil
}

func (r *maintenanceRepo) ListRequestsByTenant(ctx context.Context, tenantID string) ([]domain.MaintenanceRequest, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE tenant_id = ? ORDER BY id DESC`,
		tenantID)
	if err != nil {
		return nil, err
	}
	return collectRequests(rows)
}

func (r *maintenanceRepo) ListRequestsByLandlord(ctx context.Context, landlordID string) ([]domain.MaintenanceRequest, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE landlord_id = ? ORDER BY id DESC`,
		landlordID)
	if err != nil {
		return nil, err
	}
	return collectRequests(rows)
}

func (r *maintenanceRepo) CreateRequest(ctx context.Context, m domain.MaintenanceRequest) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO maintenance_requests (
			id, unit_id, property_id, tenant_id, landlord_id, title,
			description, priority, status, category
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.UnitID, m.PropertyID, m.TenantID, m.LandlordID, m.Title,
		m.Description, m.Priority, m.Status, m.Category,
	)
	return err
}

func (r *maintenanceRepo) UpdateRequest(ctx context.Context, m domain.MaintenanceRequest) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE maintenance_requests SET
			status = ?, priority = ?, landlord_response = ?, completed_at = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		m.Status, m.Priority, m.LandlordResponse, mapOptionalTime(m.CompletedAt), m.ID,
	)
	return ensureFound(res, err)
}

func collectRequests(rows *sql.Rows) ([]domain.MaintenanceRequest, error) {
	defer rows.Close()

	var out []domain.MaintenanceRequest
	for rows.Next() {
		m, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
