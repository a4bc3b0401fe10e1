package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/domains/author/repository"
	"library-catalog-backend/internal/infrastructure/database"
)

func setupService(t *testing.T) (author.Service, *sql.DB) {
	t.Helper()

	db := database.NewSQLiteDB(&database.DBConfig{
		Path:        ":memory:",
		BusyTimeout: time.Second,
	})

	ctx := context.Background()
	require.NoError(t, db.Connect(ctx))
	require.NoError(t, db.Migrate(ctx))
	t.Cleanup(func() { db.Close() })

	return NewAuthorService(repository.NewSQLiteRepository(db.DB)), db.DB
}

func seedUser(t *testing.T, db *sql.DB) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		id.String(), "user-"+id.String()[:8], "hash", time.Now().UTC(),
	)
	require.NoError(t, err)
	return id
}

func seedBook(t *testing.T, db *sql.DB, authorID, creatorID uuid.UUID) {
	t.Helper()

	now := time.Now().UTC()
	_, err := db.Exec(
		`INSERT INTO books (id, author_id, title, pub_year, genre, creator_id, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), authorID.String(), "Some Book", "1999", "fantasy", creatorID.String(), now, now,
	)
	require.NoError(t, err)
}

func TestCreateAndGetAuthor(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	owner := seedUser(t, db)

	created, err := svc.Create(ctx, author.CreateAuthorRequest{Name: "  Ursula K. Le Guin  ", Bio: "SF writer"}, owner)
	require.NoError(t, err)
	assert.Equal(t, "Ursula K. Le Guin", created.Name)
	assert.Equal(t, owner, created.CreatorID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "SF writer", got.Bio)
}

func TestGetAuthorNotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestGetAllReturnsEmptySlice(t *testing.T) {
	svc, _ := setupService(t)

	authors, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, authors)
	assert.Len(t, authors, 0)
}

func TestDeleteAuthor(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	owner := seedUser(t, db)

	created, err := svc.Create(ctx, author.CreateAuthorRequest{Name: "Expendable", Bio: "bio"}, owner)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, owner))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestDeleteAuthorNotOwner(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	owner := seedUser(t, db)
	stranger := seedUser(t, db)

	created, err := svc.Create(ctx, author.CreateAuthorRequest{Name: "Guarded", Bio: "bio"}, owner)
	require.NoError(t, err)

	err = svc.Delete(ctx, created.ID, stranger)
	assert.ErrorIs(t, err, author.ErrNotOwner)

	// Still there.
	_, err = svc.GetByID(ctx, created.ID)
	assert.NoError(t, err)
}

func TestDeleteAuthorWithBooks(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	owner := seedUser(t, db)

	created, err := svc.Create(ctx, author.CreateAuthorRequest{Name: "Prolific", Bio: "bio"}, owner)
	require.NoError(t, err)
	seedBook(t, db, created.ID, owner)

	err = svc.Delete(ctx, created.ID, owner)
	assert.ErrorIs(t, err, author.ErrAuthorHasBooks)
}

func TestDeleteMissingAuthorBeatsOwnership(t *testing.T) {
	svc, db := setupService(t)
	stranger := seedUser(t, db)

	// A nonexistent author is reported as not found no matter who asks.
	err := svc.Delete(context.Background(), uuid.New(), stranger)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}
