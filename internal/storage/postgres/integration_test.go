//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"newsdesk/internal/domain"
	"newsdesk/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx            context.Context
	container      *postgres.PostgresContainer
	db             *sqlx.DB
	migrationsPath string
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)
	s.migrationsPath = migrationsPath

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_news_posts.up.sql"),
			filepath.Join(migrationsPath, "002_create_applications.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM news_posts")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM applications")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) newDraft(title string) *domain.Post {
	return &domain.Post{
		Title:    title,
		Content:  "Body of " + title,
		Excerpt:  domain.Excerpt("Body of " + title),
		ImageURL: "https://example.com/image.jpg",
		Status:   domain.PostStatusDraft,
		Language: "uz",
	}
}

func (s *PostgresIntegrationSuite) TestPostStore_Create() {
	store := NewPostStore(s.db)
	post := s.newDraft("Lab Opening")

	err := store.Create(s.ctx, post)
	s.NoError(err)
	s.NotEqual(uuid.Nil, post.ID)
	s.False(post.CreatedAt.IsZero())

	var stored domain.Post
	err = s.db.GetContext(s.ctx, &stored, "SELECT "+postColumns+" FROM news_posts WHERE id = $1", post.ID)
	s.NoError(err)
	s.Equal("Lab Opening", stored.Title)
	s.Equal(domain.PostStatusDraft, stored.Status)
	s.Nil(stored.PublishedAt)
}

func (s *PostgresIntegrationSuite) TestPostStore_ListRecent_NewestFirstAndCapped() {
	store := NewPostStore(s.db)
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 12; i++ {
		post := s.newDraft("Post")
		s.Require().NoError(store.Create(s.ctx, post))
		_, err := s.db.ExecContext(s.ctx,
			"UPDATE news_posts SET title = $2, created_at = $3 WHERE id = $1",
			post.ID, "Post "+string(rune('A'+i)), base.Add(time.Duration(i)*time.Minute),
		)
		s.Require().NoError(err)
	}

	posts, err := store.ListRecent(s.ctx, 10)
	s.NoError(err)
	s.Len(posts, 10)
	s.Equal("Post L", posts[0].Title)
	s.Equal("Post C", posts[9].Title)
}

func (s *PostgresIntegrationSuite) TestPostStore_ListRecent_Empty() {
	store := NewPostStore(s.db)

	posts, err := store.ListRecent(s.ctx, 10)
	s.NoError(err)
	s.Empty(posts)
}

func (s *PostgresIntegrationSuite) TestPostStore_Publish() {
	store := NewPostStore(s.db)
	post := s.newDraft("To Publish")
	s.Require().NoError(store.Create(s.ctx, post))

	now := time.Now().UTC().Truncate(time.Microsecond)
	published, err := store.Publish(s.ctx, post.ID, now)
	s.NoError(err)
	s.Require().NotNil(published)
	s.Equal(post.ID, published.ID)
	s.Equal("To Publish", published.Title)
	s.Equal(domain.PostStatusPublished, published.Status)
	s.Require().NotNil(published.PublishedAt)
	s.True(now.Equal(*published.PublishedAt))
}

func (s *PostgresIntegrationSuite) TestPostStore_Publish_NotFound() {
	store := NewPostStore(s.db)
	post := s.newDraft("Untouched")
	s.Require().NoError(store.Create(s.ctx, post))

	published, err := store.Publish(s.ctx, uuid.New(), time.Now())
	s.ErrorIs(err, domain.ErrPostNotFound)
	s.Nil(published)

	var status string
	err = s.db.GetContext(s.ctx, &status, "SELECT status FROM news_posts WHERE id = $1", post.ID)
	s.NoError(err)
	s.Equal("draft", status)
}

func (s *PostgresIntegrationSuite) TestPostStore_ListPublished_FiltersByStatusAndLanguage() {
	store := NewPostStore(s.db)

	draft := s.newDraft("Draft")
	s.Require().NoError(store.Create(s.ctx, draft))

	older := s.newDraft("Older")
	s.Require().NoError(store.Create(s.ctx, older))
	_, err := store.Publish(s.ctx, older.ID, time.Now().Add(-time.Hour))
	s.Require().NoError(err)

	newer := s.newDraft("Newer")
	s.Require().NoError(store.Create(s.ctx, newer))
	_, err = store.Publish(s.ctx, newer.ID, time.Now())
	s.Require().NoError(err)

	russian := s.newDraft("Russian")
	russian.Language = "ru"
	s.Require().NoError(store.Create(s.ctx, russian))
	_, err = store.Publish(s.ctx, russian.ID, time.Now())
	s.Require().NoError(err)

	posts, err := store.ListPublished(s.ctx, "uz", 10)
	s.NoError(err)
	s.Require().Len(posts, 2)
	s.Equal("Newer", posts[0].Title)
	s.Equal("Older", posts[1].Title)

	posts, err = store.ListPublished(s.ctx, "en", 10)
	s.NoError(err)
	s.NotNil(posts)
	s.Empty(posts)
}

func (s *PostgresIntegrationSuite) TestApplicationStore_Create() {
	store := NewApplicationStore(s.db)
	app := &domain.Application{Payload: types.JSONText(`{"name":"Ali","grade":9}`)}

	err := store.Create(s.ctx, app)
	s.NoError(err)
	s.Greater(app.ID, int64(0))
	s.False(app.ReceivedAt.IsZero())

	var name string
	err = s.db.GetContext(s.ctx, &name, "SELECT payload->>'name' FROM applications WHERE id = $1", app.ID)
	s.NoError(err)
	s.Equal("Ali", name)
}

func (s *PostgresIntegrationSuite) TestMigrate_IsIdempotent() {
	s.NoError(Migrate(s.db, s.migrationsPath))
	s.NoError(Migrate(s.db, s.migrationsPath))

	var version int
	err := s.db.GetContext(s.ctx, &version, "SELECT version FROM schema_migrations")
	s.NoError(err)
	s.Equal(2, version)
}

func (s *PostgresIntegrationSuite) TestPost_PublishedAtScansNull() {
	store := NewPostStore(s.db)
	post := s.newDraft("Nullable")
	post.PublishedAt = utils.Ptr(time.Now())
	s.Require().NoError(store.Create(s.ctx, post))

	posts, err := store.ListRecent(s.ctx, 1)
	s.NoError(err)
	s.Require().Len(posts, 1)
	s.Nil(posts[0].PublishedAt)
}
