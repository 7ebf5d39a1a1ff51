package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"newsdesk/internal/domain"
)

const postColumns = `id, title, content, excerpt, image_url, status, language, created_at, published_at`

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

// Create inserts the post and fills in the generated ID and CreatedAt.
func (s *PostStore) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO news_posts (title, content, excerpt, image_url, status, language)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := s.db.QueryRowxContext(ctx, query,
		post.Title,
		post.Content,
		post.Excerpt,
		post.ImageURL,
		post.Status,
		post.Language,
	).Scan(&post.ID, &post.CreatedAt)
	return wrapError("create post", err)
}

func (s *PostStore) ListRecent(ctx context.Context, limit int) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM news_posts ORDER BY created_at DESC LIMIT $1`

	var posts []domain.Post
	if err := s.db.SelectContext(ctx, &posts, query, limit); err != nil {
		return nil, wrapError("list posts", err)
	}
	return posts, nil
}

func (s *PostStore) ListPublished(ctx context.Context, language string, limit int) ([]domain.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM news_posts
		WHERE status = $1 AND language = $2 AND published_at IS NOT NULL
		ORDER BY published_at DESC
		LIMIT $3`

	posts := []domain.Post{}
	if err := s.db.SelectContext(ctx, &posts, query, domain.PostStatusPublished, language, limit); err != nil {
		return nil, wrapError("list published posts", err)
	}
	return posts, nil
}

// Publish marks the post as published at the given time.
// It returns domain.ErrPostNotFound when no row has the ID.
func (s *PostStore) Publish(ctx context.Context, id uuid.UUID, publishedAt time.Time) (*domain.Post, error) {
	query := `
		UPDATE news_posts
		SET status = $2, published_at = $3
		WHERE id = $1
		RETURNING ` + postColumns

	var post domain.Post
	err := s.db.GetContext(ctx, &post, query, id, domain.PostStatusPublished, publishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, wrapError("publish post", err)
	}
	return &post, nil
}
