package service

import (
	"context"
	"errors"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"github.com/buildtrack-dev/buildtrack/internal/dto"
	"github.com/buildtrack-dev/buildtrack/internal/model"
	"github.com/buildtrack-dev/buildtrack/internal/repository"
	"github.com/buildtrack-dev/buildtrack/pkg/apperror"
)

// Defaults applied when a new action omits the field.
const (
	defaultActionPhase    = "construction"
	defaultActionStatus   = "open"
	defaultActionPriority = "medium"
)

type ActionService interface {
	Create(ctx context.Context, req dto.CreateActionRequest) (*model.Action, error)
	Get(ctx context.Context, id uint) (*model.Action, error)
	List(ctx context.Context, filter dto.ActionFilter) ([]*model.Action, error)
	Update(ctx context.Context, id uint, req dto.UpdateActionRequest) (*model.Action, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*repository.ActionStats, error)
}

type actionService struct {
	repo      repository.ActionRepository
	sanitizer *bluemonday.Policy
}

func NewActionService(repo repository.ActionRepository) ActionService {
	return &actionService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *actionService) Create(ctx context.Context, req dto.CreateActionRequest) (*model.Action, error) {
	action := &model.Action{
		// descriptions are rendered verbatim by the browser client
		Description: s.sanitizer.Sanitize(req.Description),
		Discipline:  req.Discipline,
		Phase:       valueOrDefault(req.Phase, defaultActionPhase),
		Status:      valueOrDefault(req.Status, defaultActionStatus),
		Priority:    valueOrDefault(req.Priority, defaultActionPriority),
		AssigneeID:  req.AssigneeID,
		ProjectID:   req.ProjectID,
	}
	if req.DueDate != nil {
		due := req.DueDate.Time
		action.DueDate = &due
	}

	if err := s.repo.Create(ctx, action); err != nil {
		return nil, err
	}
	return action, nil
}

func (s *actionService) Get(ctx context.Context, id uint) (*model.Action, error) {
	action, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return action, nil
}

func (s *actionService) List(ctx context.Context, filter dto.ActionFilter) ([]*model.Action, error) {
	return s.repo.FindAll(ctx, repository.ActionFilter{
		Discipline: filter.Discipline,
		Phase:      filter.Phase,
		Status:     filter.Status,
		AssigneeID: filter.AssigneeID,
		Assignee:   filter.Assignee,
		ProjectID:  filter.ProjectID,
		Search:     filter.Search,
	})
}

func (s *actionService) Update(ctx context.Context, id uint, req dto.UpdateActionRequest) (*model.Action, error) {
	fields := map[string]interface{}{
		// touched on every mutation, including an empty patch
		"updated_at": time.Now(),
	}
	if req.Description != nil {
		fields["description"] = s.sanitizer.Sanitize(*req.Description)
	}
	if req.Discipline != nil {
		fields["discipline"] = *req.Discipline
	}
	if req.Phase != nil {
		fields["phase"] = *req.Phase
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.AssigneeID != nil {
		fields["assignee_id"] = *req.AssigneeID
	}
	if req.ProjectID != nil {
		fields["project_id"] = *req.ProjectID
	}
	if req.DueDate != nil {
		fields["due_date"] = req.DueDate.Time
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *actionService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *actionService) Stats(ctx context.Context) (*repository.ActionStats, error) {
	return s.repo.Stats(ctx)
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
