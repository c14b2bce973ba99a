package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
)

type paymentsRepo struct {
	q queryer
}

const paymentColumns = `id, unit_id, property_id, tenant_id, landlord_id, type, amount,
	due_date, paid_date, status, description, proof_of_payment,
	landlord_verified, verification_date, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (domain.Payment, error) {
	var (
		p            domain.Payment
		paidDate     sql.NullTime
		verification sql.NullTime
	)
	err := row.Scan(
		&p.ID, &p.UnitID, &p.PropertyID, &p.TenantID, &p.LandlordID,
		&p.Type, &p.Amount, &p.DueDate, &paidDate, &p.Status,
		&p.Description, &p.ProofOfPayment, &p.LandlordVerified, &verification,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Payment{}, err
	}
	p.PaidDate = mapNullTimePtr(paidDate)
	p.VerificationDate = mapNullTimePtr(verification)
	return p, nil
}

func (r *paymentsRepo) GetPaymentByID(ctx context.Context, id string) (domain.Payment, error) {
	p, err := scanPayment(r.q.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id))
	if err != nil {
		return domain.Payment{}, mapNotFound(err)
	}
	return p, nil
}

func (r *paymentsRepo) ListPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE tenant_id = ? ORDER BY due_date DESC`,
		tenantID)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

func (r *paymentsRepo) ListPaymentsByLandlord(ctx context.Context, landlordID string) ([]domain.Payment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE landlord_id = ? ORDER BY due_date DESC`,
		landlordID)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

func (r *paymentsRepo) CreatePayment(ctx context.Context, p domain.Payment) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO payments (
			id, unit_id, property_id, tenant_id, landlord_id, type, amount,
			due_date, status, description, proof_of_payment
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UnitID, p.PropertyID, p.TenantID, p.LandlordID, p.Type, p.Amount,
		p.DueDate, p.Status, p.Description, p.ProofOfPayment,
	)
	return err
}

func (r *paymentsRepo) MarkPaid(ctx context.Context, id string, paidDate time.Time, proofURL string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE payments SET
			status = 'paid', paid_date = ?, proof_of_payment = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status IN ('pending', 'overdue', 'extended')`,
		paidDate, proofURL, id,
	)
	return guarded(res, err)
}

func (r *paymentsRepo) Verify(ctx context.Context, id string, at time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE payments SET
			status = 'verified', landlord_verified = 1, verification_date = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = 'paid'`,
		at, id,
	)
	return guarded(res, err)
}

// MarkOverduePayments flips pending payments past their due date to overdue.
// Called by the housekeeping worker.
func (r *paymentsRepo) MarkOverduePayments(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE payments SET status = 'overdue', updated_at = CURRENT_TIMESTAMP
		WHERE status = 'pending' AND due_date < ?`,
		now,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func collectPayments(rows *sql.Rows) ([]domain.Payment, error) {
	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
