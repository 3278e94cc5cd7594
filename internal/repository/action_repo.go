package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/buildtrack-dev/buildtrack/internal/model"
)

// ActionFilter holds the optional predicates for listing actions.
// All supplied predicates are combined with AND; zero values are
// omitted from the query.
type ActionFilter struct {
	Discipline string
	Phase      string
	Status     string
	AssigneeID *uint
	Assignee   string
	ProjectID  *uint
	Search     string
}

// ActionStats are the raw status counts. Total counts every row, so
// open + closed can be less than total when other statuses exist.
type ActionStats struct {
	Open   int64
	Closed int64
	Total  int64
}

type ActionRepository interface {
	Create(ctx context.Context, action *model.Action) error
	FindByID(ctx context.Context, id uint) (*model.Action, error)
	FindAll(ctx context.Context, filter ActionFilter) ([]*model.Action, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*ActionStats, error)
}

type actionRepository struct {
	db *gorm.DB
}

func NewActionRepository(db *gorm.DB) ActionRepository {
	return &actionRepository{db: db}
}

func (r *actionRepository) Create(ctx context.Context, action *model.Action) error {
	return r.db.WithContext(ctx).Create(action).Error
}

func (r *actionRepository) FindByID(ctx context.Context, id uint) (*model.Action, error) {
	var action model.Action
	if err := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Project").
		First(&action, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &action, nil
}

func (r *actionRepository) FindAll(ctx context.Context, filter ActionFilter) ([]*model.Action, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Action{}).
		Select("actions.*").
		Preload("Assignee").
		Preload("Project")

	if filter.Discipline != "" {
		query = query.Where("actions.discipline = ?", filter.Discipline)
	}
	if filter.Phase != "" {
		query = query.Where("actions.phase = ?", filter.Phase)
	}
	if filter.Status != "" {
		query = query.Where("actions.status = ?", filter.Status)
	}
	if filter.AssigneeID != nil {
		query = query.Where("actions.assignee_id = ?", *filter.AssigneeID)
	}
	if filter.ProjectID != nil {
		query = query.Where("actions.project_id = ?", *filter.ProjectID)
	}
	if filter.Assignee != "" {
		// LOWER(...) LIKE keeps the match case-insensitive on both
		// postgres and sqlite
		query = query.
			Joins("LEFT JOIN users ON users.id = actions.assignee_id").
			Where("LOWER(users.name) LIKE ?", "%"+strings.ToLower(filter.Assignee)+"%")
	}
	if filter.Search != "" {
		query = query.Where("LOWER(actions.description) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var actions []*model.Action
	if err := query.
		Order("actions.created_at DESC").
		Order("actions.id DESC").
		Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}

func (r *actionRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var action model.Action
		if err := tx.First(&action, "id = ?", id).Error; err != nil {
			return err
		}
		// Updates touches updated_at even for an otherwise empty patch
		return tx.Model(&action).Updates(fields).Error
	})
}

func (r *actionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Action{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *actionRepository) Stats(ctx context.Context) (*ActionStats, error) {
	var stats ActionStats

	if err := r.db.WithContext(ctx).Model(&model.Action{}).
		Where("status = ?", "open").Count(&stats.Open).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Action{}).
		Where("status = ?", "closed").Count(&stats.Closed).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Action{}).
		Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
