package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
)

type invitationsRepo struct {
	q queryer
}

const invitationColumns = `id, landlord_id, email, message, property_id, unit_id,
	tenant_id, status, expires_at, accepted_at, created_at, updated_at`

func scanInvitation(row interface{ Scan(...any) error }) (domain.Invitation, error) {
	var (
		inv        domain.Invitation
		propertyID sql.NullString
		unitID     sql.NullString
		tenantID   sql.NullString
		acceptedAt sql.NullTime
	)
	err := row.Scan(
		&inv.ID, &inv.LandlordID, &inv.Email, &inv.Message, &propertyID, &unitID,
		&tenantID, &inv.Status, &inv.ExpiresAt, &acceptedAt,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, err
	}
	inv.PropertyID = mapNullString(propertyID)
	inv.UnitID = mapNullString(unitID)
	inv.TenantID = mapNullString(tenantID)
	inv.AcceptedAt = mapNullTimePtr(acceptedAt)
	return inv, nil
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	inv, err := scanInvitation(r.q.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id))
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) ListInvitationsByLandlord(ctx context.Context, landlordID string) ([]domain.Invitation, error) {
	// id DESC gives most-recent-first via ULID time ordering.
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE landlord_id = ? ORDER BY id DESC`,
		landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO invitations (
			id, landlord_id, email, message, property_id, unit_id,
			status, expires_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.LandlordID, inv.Email, inv.Message,
		mapStringNull(inv.PropertyID), mapStringNull(inv.UnitID),
		inv.Status, inv.ExpiresAt,
	)
	return err
}

// UpdateInvitationStatus moves a pending invitation to a terminal status.
// The WHERE clause guards on status = 'pending' so a transition can never
// leave a terminal state; a lost race surfaces as ErrStaleStatus.
func (r *invitationsRepo) UpdateInvitationStatus(
	ctx context.Context,
	id string,
	to domain.InvitationStatus,
	tenantID string,
	acceptedAt *time.Time,
) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invitations SET
			status = ?, tenant_id = ?, accepted_at = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = 'pending'`,
		to, mapStringNull(tenantID), mapOptionalTime(acceptedAt), id,
	)
	return guarded(res, err)
}
