package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"newsdesk/internal/domain"
)

type ApplicationStore struct {
	db *sqlx.DB
}

func NewApplicationStore(db *sqlx.DB) *ApplicationStore {
	return &ApplicationStore{db: db}
}

func (s *ApplicationStore) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (payload)
		VALUES ($1)
		RETURNING id, received_at`

	err := s.db.QueryRowxContext(ctx, query, app.Payload).Scan(&app.ID, &app.ReceivedAt)
	return wrapError("create application", err)
}
