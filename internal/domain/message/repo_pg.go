package message

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Create(ctx context.Context, m *Message) error {
	m.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO messages (id, sender_id, receiver_id, body, message_type)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at`,
		m.ID, m.SenderID, m.ReceiverID, m.Body, m.Type,
	).Scan(&m.CreatedAt)
}

func (r *repoPG) Conversation(ctx context.Context, userA, userB uuid.UUID) ([]*Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.sender_id, m.receiver_id, m.body, m.message_type, m.created_at,
			s.full_name, rcv.full_name
		FROM messages m
		JOIN users s ON s.id = m.sender_id
		JOIN users rcv ON rcv.id = m.receiver_id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at ASC`, userA, userB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []*Message
	for rows.Next() {
		var m Message
		err := rows.Scan(
			&m.ID, &m.SenderID, &m.ReceiverID, &m.Body, &m.Type, &m.CreatedAt,
			&m.SenderName, &m.ReceiverName,
		)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, &m)
	}
	return msgs, rows.Err()
}
