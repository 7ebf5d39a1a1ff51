package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/domain"
)

type PostStore interface {
	Create(ctx context.Context, post *domain.Post) error
	ListRecent(ctx context.Context, limit int) ([]domain.Post, error)
	Publish(ctx context.Context, id uuid.UUID, publishedAt time.Time) (*domain.Post, error)
}

type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type Publisher interface {
	Publish(ctx context.Context, post *domain.Post, action domain.PostAction) error
	Close() error
}
