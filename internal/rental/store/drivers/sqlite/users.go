package sqlite

import (
	"context"
	"database/sql"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
)

type usersRepo struct {
	q queryer
}

const userColumns = `id, external_id, email, name, role, phone, bio, address, city, state,
	zip_code, country, profile_photo, email_notifications, sms_notifications,
	created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.Role, &u.Phone, &u.Bio,
		&u.Address, &u.City, &u.State, &u.ZipCode, &u.Country, &u.ProfilePhoto,
		&u.EmailNotifications, &u.SMSNotifications, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	u, err := scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE external_id = ?`, externalID))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (
			id, external_id, email, name, role, phone, bio, address, city, state,
			zip_code, country, profile_photo, email_notifications, sms_notifications
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.ExternalID, u.Email, u.Name, u.Role, u.Phone, u.Bio,
		u.Address, u.City, u.State, u.ZipCode, u.Country, u.ProfilePhoto,
		u.EmailNotifications, u.SMSNotifications,
	)
	return err
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET
			email = ?, name = ?, role = ?, phone = ?, bio = ?, address = ?,
			city = ?, state = ?, zip_code = ?, country = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		u.Email, u.Name, u.Role, u.Phone, u.Bio, u.Address,
		u.City, u.State, u.ZipCode, u.Country, u.ID,
	)
	return ensureFound(res, err)
}

func (r *usersRepo) UpdateNotificationSettings(ctx context.Context, userID string, email, sms bool) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET email_notifications = ?, sms_notifications = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		email, sms, userID,
	)
	return ensureFound(res, err)
}

func (r *usersRepo) UpdateProfilePhoto(ctx context.Context, userID, photoURL string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET profile_photo = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		photoURL, userID,
	)
	return ensureFound(res, err)
}

func (r *usersRepo) ListTenants(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = 'tenant' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func (r *usersRepo) ListAvailableTenants(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE role = 'tenant'
		  AND NOT EXISTS (SELECT 1 FROM units WHERE units.tenant_id = users.id)
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func collectUsers(rows *sql.Rows) ([]domain.User, error) {
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
