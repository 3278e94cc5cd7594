package repository_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/buildtrack-dev/buildtrack/internal/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a pooled :memory: database is per-connection; keep one connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Action{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, name, email string) *model.User {
	t.Helper()

	user := &model.User{
		Username: username,
		Password: "not-a-real-hash",
		Name:     name,
		Email:    email,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createProject(t *testing.T, db *gorm.DB, name, status string) *model.Project {
	t.Helper()

	project := &model.Project{Name: name, Status: status}
	require.NoError(t, db.Create(project).Error)
	return project
}

func createAction(t *testing.T, db *gorm.DB, action *model.Action) *model.Action {
	t.Helper()

	if action.Discipline == "" {
		action.Discipline = "general"
	}
	if action.Phase == "" {
		action.Phase = "construction"
	}
	if action.Status == "" {
		action.Status = "open"
	}
	if action.Priority == "" {
		action.Priority = "medium"
	}
	require.NoError(t, db.Create(action).Error)
	return action
}

func at(t *testing.T, daysAgo int) time.Time {
	t.Helper()
	return time.Now().Add(-time.Duration(daysAgo) * 24 * time.Hour).Truncate(time.Second)
}
