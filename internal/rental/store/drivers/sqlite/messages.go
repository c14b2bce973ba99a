package sqlite

import (
	"context"
	"database/sql"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
)

type messagesRepo struct {
	q queryer
}

const messageColumns = `id, sender_id, receiver_id, property_id, content, message_type,
	is_read, created_at, updated_at`

func scanMessage(row interface{ Scan(...any) error }) (domain.Message, error) {
	var (
		m          domain.Message
		propertyID sql.NullString
	)
	err := row.Scan(
		&m.ID, &m.SenderID, &m.ReceiverID, &propertyID, &m.Content, &m.Type,
		&m.IsRead, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return domain.Message{}, err
	}
	m.PropertyID = mapNullString(propertyID)
	return m, nil
}

func (r *messagesRepo) GetMessageByID(ctx context.Context, id string) (domain.Message, error) {
	m, err := scanMessage(r.q.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE id = ?`, id))
	if err != nil {
		return domain.Message{}, mapNotFound(err)
	}
	return m, nil
}

func (r *messagesRepo) ListConversation(ctx context.Context, userA, userB string) ([]domain.Message, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE (sender_id = ? AND receiver_id = ?)
		   OR (sender_id = ? AND receiver_id = ?)
		ORDER BY id`,
		userA, userB, userB, userA)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *messagesRepo) CreateMessage(ctx context.Context, m domain.Message) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO messages (
			id, sender_id, receiver_id, property_id, content, message_type, is_read
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.SenderID, m.ReceiverID, mapStringNull(m.PropertyID),
		m.Content, m.Type, m.IsRead,
	)
	return err
}

func (r *messagesRepo) MarkRead(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE messages SET is_read = 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		id,
	)
	return ensureFound(res, err)
}
