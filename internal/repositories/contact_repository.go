package repositories

import (
	"context"

	"github.com/fleetcover/quote-service/internal/models"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, m *models.ContactMessage) error
	ListAll(ctx context.Context) ([]*models.ContactMessage, error)
}

type contactMessageRepo struct{ db DB }

func NewContactMessageRepository(db DB) ContactMessageRepository {
	return &contactMessageRepo{db: db}
}

func (r *contactMessageRepo) Create(ctx context.Context, m *models.ContactMessage) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, m.ID, m.Name, m.Email, m.Phone, m.Subject, m.Message, m.CreatedAt)
	return err
}

func (r *contactMessageRepo) ListAll(ctx context.Context) ([]*models.ContactMessage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone, subject, message, created_at
		FROM contact_messages ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]*models.ContactMessage, 0)
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
