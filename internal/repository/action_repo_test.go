package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/buildtrack-dev/buildtrack/internal/model"
	"github.com/buildtrack-dev/buildtrack/internal/repository"
)

func TestActionCreateSetsBothTimestamps(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewActionRepository(db)

	action := &model.Action{Description: "Check scaffolding", Discipline: "safety", Phase: "construction", Status: "open", Priority: "medium"}
	require.NoError(t, repo.Create(context.Background(), action))

	assert.NotZero(t, action.ID)
	assert.False(t, action.CreatedAt.IsZero())
	assert.WithinDuration(t, action.CreatedAt, action.UpdatedAt, time.Millisecond)
}

func TestActionFindByIDPreloadsRelations(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewActionRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "asmith", "Alice Smith", "alice@example.com")
	project := createProject(t, db, "Riverside Depot", "construction")
	created := createAction(t, db, &model.Action{
		Description: "Inspect rebar",
		AssigneeID:  &user.ID,
		ProjectID:   &project.ID,
	})

	action, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, action.Assignee)
	require.NotNil(t, action.Project)
	assert.Equal(t, "Alice Smith", action.Assignee.Name)
	assert.Equal(t, "Riverside Depot", action.Project.Name)
}

func TestActionFindByIDMissing(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewActionRepository(db)

	_, err := repo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestActionFindAllFilters(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewActionRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "asmith", "Alice Smith", "alice@example.com")
	bob := createUser(t, db, "bjones", "Bob Jones", "bob@example.com")
	depot := createProject(t, db, "Riverside Depot", "construction")
	tower := createProject(t, db, "Harbour Tower", "precon")

	createAction(t, db, &model.Action{
		Description: "Inspect site drainage",
		Discipline:  "operations",
		Phase:       "construction",
		Status:      "open",
		AssigneeID:  &alice.ID,
		ProjectID:   &depot.ID,
	})
	createAction(t, db, &model.Action{
		Description: "Review tender submission",
		Discipline:  "commercial",
		Phase:       "tender",
		Status:      "closed",
		AssigneeID:  &bob.ID,
		ProjectID:   &tower.ID,
	})
	createAction(t, db, &model.Action{
		Description: "Chase design pack",
		Discipline:  "design",
		Phase:       "construction",
		Status:      "open",
		AssigneeID:  &alice.ID,
		ProjectID:   &tower.ID,
	})

	t.Run("no filters returns all", func(t *testing.T) {
		actions, err := repo.FindAll(ctx, repository.ActionFilter{})
		require.NoError(t, err)
		assert.Len(t, actions, 3)
	})

	t.Run("discipline exact match", func(t *testing.T) {
		actions, err := repo.FindAll(ctx, repository.ActionFilter{Discipline: "commercial"})
		require.NoError(t, err)
		require.Len(t, actions, 1)
		assert.Equal(t, "Review tender submission", actions[0].Description)
	})

	t.Run("phase exact match", func(t *testing.T) {
		actions, err := repo.FindAll(ctx, repository.ActionFilter{Phase: "tender"})
		require.NoError(t, err)
		require.Len(t, actions, 1)
		assert.Equal(t, "Review tender submission", actions[0].Description)
	})

	t.Run("phase combined with discipline", func(t *testing.T) {
		actions, err := repo.FindAll(ctx, repository.ActionFilter{
			Phase:      "construction",
			Discipline: "design",
		})
		require.NoError(t, err)
		require.Len(t, actions, 1)
		assert.Equal(t, "Chase design pack", actions[0].Description)
	})

	t.Run("status exact match", func(t *testing.T) {
		actions, err := repo.FindAll(ctx, repository.ActionFilter{Status: "open"})
		require.NoError(t, err)
		assert.Len(t, actions, 2)
	})

	t.Run("assignee id", func(t *testing.T) {
		actions, err := repo.FindAll(ctx, repository.ActionFilter{AssigneeID: &alice.ID})
		require.NoError(t, err)
		assert.Len(t, actions, 2)
	})

	t.Run("assignee name substring is case-insensitive", func(t *testing.T) {
		actions, err := repo.FindAll(ctx, repository.ActionFilter{Assignee: "ALICE"})
		require.NoError(t, err)
		assert.Len(t, actions, 2)
	})

	t.Run("description search is case-insensitive", func(t *testing.T) {
		actions, err := repo.FindAll(ctx, repository.ActionFilter{Search: "TENDER SUB"})
		require.NoError(t, err)
		require.Len(t, actions, 1)
		assert.Equal(t, "Review tender submission", actions[0].Description)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		actions, err := repo.FindAll(ctx, repository.ActionFilter{
			Status:    "open",
			ProjectID: &tower.ID,
			Assignee:  "smith",
		})
		require.NoError(t, err)
		require.Len(t, actions, 1)
		assert.Equal(t, "Chase design pack", actions[0].Description)
	})

	t.Run("AND with no survivors", func(t *testing.T) {
		actions, err := repo.FindAll(ctx, repository.ActionFilter{
			Status:     "closed",
			Discipline: "design",
		})
		require.NoError(t, err)
		assert.Empty(t, actions)
	})
}

func TestActionFindAllOrdersByCreationDesc(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewActionRepository(db)
	ctx := context.Background()

	createAction(t, db, &model.Action{Description: "oldest", CreatedAt: at(t, 3)})
	createAction(t, db, &model.Action{Description: "newest", CreatedAt: at(t, 1)})
	createAction(t, db, &model.Action{Description: "middle", CreatedAt: at(t, 2)})

	actions, err := repo.FindAll(ctx, repository.ActionFilter{})
	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, "newest", actions[0].Description)
	assert.Equal(t, "middle", actions[1].Description)
	assert.Equal(t, "oldest", actions[2].Description)
}

func TestActionUpdateMergesFields(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewActionRepository(db)
	ctx := context.Background()

	action := createAction(t, db, &model.Action{
		Description: "Close out snag list",
		Discipline:  "quality assurance",
		Priority:    "high",
	})
	createdAt := action.CreatedAt

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, repo.Update(ctx, action.ID, map[string]interface{}{
		"status":     "closed",
		"updated_at": time.Now(),
	}))

	updated, err := repo.FindByID(ctx, action.ID)
	require.NoError(t, err)
	assert.Equal(t, "closed", updated.Status)
	assert.Equal(t, "Close out snag list", updated.Description)
	assert.Equal(t, "quality assurance", updated.Discipline)
	assert.Equal(t, "high", updated.Priority)
	assert.True(t, updated.UpdatedAt.After(createdAt))
}

func TestActionUpdateMissing(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewActionRepository(db)

	err := repo.Update(context.Background(), 9999, map[string]interface{}{"status": "closed"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestActionDelete(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewActionRepository(db)
	ctx := context.Background()

	action := createAction(t, db, &model.Action{Description: "Temporary works check"})

	require.NoError(t, repo.Delete(ctx, action.ID))
	_, err := repo.FindByID(ctx, action.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, action.ID), gorm.ErrRecordNotFound)
}

func TestActionStatsCountsOtherStatusesInTotalOnly(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewActionRepository(db)

	createAction(t, db, &model.Action{Description: "a", Status: "open"})
	createAction(t, db, &model.Action{Description: "b", Status: "open"})
	createAction(t, db, &model.Action{Description: "c", Status: "closed"})
	createAction(t, db, &model.Action{Description: "d", Status: "blocked"})

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Open)
	assert.Equal(t, int64(1), stats.Closed)
	assert.Equal(t, int64(4), stats.Total)
}
