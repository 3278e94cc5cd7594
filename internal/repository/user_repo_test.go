package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/buildtrack-dev/buildtrack/internal/model"
	"github.com/buildtrack-dev/buildtrack/internal/repository"
)

func TestUserDeleteOrphansDependentActions(t *testing.T) {
	db := setupDB(t)
	userRepo := repository.NewUserRepository(db)
	actionRepo := repository.NewActionRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "asmith", "Alice Smith", "alice@example.com")
	first := createAction(t, db, &model.Action{Description: "first", AssigneeID: &alice.ID})
	second := createAction(t, db, &model.Action{Description: "second", AssigneeID: &alice.ID})

	require.NoError(t, userRepo.Delete(ctx, alice.ID))

	_, err := userRepo.FindByID(ctx, alice.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	for _, id := range []uint{first.ID, second.ID} {
		action, err := actionRepo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, action.AssigneeID)
		assert.Nil(t, action.Assignee)
	}
}

func TestUserDeleteMissing(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewUserRepository(db)

	assert.ErrorIs(t, repo.Delete(context.Background(), 9999), gorm.ErrRecordNotFound)
}

func TestUserUniqueEmailConstraint(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	createUser(t, db, "asmith", "Alice Smith", "alice@example.com")

	err := repo.Create(ctx, &model.User{
		Username: "asmith2",
		Password: "not-a-real-hash",
		Name:     "Another Alice",
		Email:    "alice@example.com",
	})
	assert.Error(t, err)
}

func TestUserFindByEmailAndUsername(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	createUser(t, db, "bjones", "Bob Jones", "bob@example.com")

	byEmail, err := repo.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bjones", byEmail.Username)

	byUsername, err := repo.FindByUsername(ctx, "bjones")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", byUsername.Email)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserCount(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	createUser(t, db, "asmith", "Alice Smith", "alice@example.com")
	createUser(t, db, "bjones", "Bob Jones", "bob@example.com")

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
