package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

var ErrPostNotFound = errors.New("post not found")

type Post struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Content     string     `db:"content" json:"content"`
	Excerpt     string     `db:"excerpt" json:"excerpt"`
	ImageURL    string     `db:"image_url" json:"image_url"`
	Status      PostStatus `db:"status" json:"status"`
	Language    string     `db:"language" json:"language"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	PublishedAt *time.Time `db:"published_at" json:"published_at"`
}

// PostAction names the lifecycle change carried by a post event.
type PostAction string

const (
	PostActionCreated   PostAction = "created"
	PostActionPublished PostAction = "published"
)
