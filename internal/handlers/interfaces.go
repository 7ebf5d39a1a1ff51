package handlers

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"newsdesk/internal/domain"
	"newsdesk/internal/service"
)

type CommandRouter interface {
	Handle(ctx context.Context, msg domain.InboundMessage) service.Outcome
}

type NewsReader interface {
	ListPublished(ctx context.Context, language string, limit int) ([]domain.Post, error)
}

type ApplicationStore interface {
	Create(ctx context.Context, app *domain.Application) error
}

type Pinger interface {
	PingContext(ctx context.Context) error
}
