package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companydocs/domain/apperrors"
	"companydocs/domain/models"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		ID:       uuid.New(),
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hashed",
	}
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byName, err := repo.GetByName(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
}

func TestUserRepositoryNotFound(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{
		ID: uuid.New(), Name: "Alice", Email: "alice@example.com", Password: "x",
	}))

	err := repo.Create(ctx, &models.User{
		ID: uuid.New(), Name: "Impostor", Email: "alice@example.com", Password: "y",
	})
	assert.True(t, apperrors.IsDuplicate(err))
}

func TestUserRepositoryPartialUpdate(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := testUser(t, db, "alice@example.com")

	ok, err := repo.Update(ctx, user.ID, map[string]any{
		"name":       "Alice Renamed",
		"updated_at": time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Renamed", got.Name)
	// columns outside the update set are untouched
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.Password, got.Password)
}

func TestUserRepositoryUpdateMissingReportsFalse(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	ok, err := repo.Update(context.Background(), uuid.New(), map[string]any{"name": "Ghost"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepositoryUpdateDuplicateEmail(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	testUser(t, db, "alice@example.com")
	bob := testUser(t, db, "bob@example.com")

	_, err := repo.Update(ctx, bob.ID, map[string]any{"email": "alice@example.com"})
	assert.True(t, apperrors.IsDuplicate(err))
}

func TestUserRepositoryDelete(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := testUser(t, db, "alice@example.com")

	ok, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// deleting again reports false, not an error
	ok, err = repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
