package service

import (
	"context"

	"github.com/buildtrack-dev/buildtrack/internal/dto"
	"github.com/buildtrack-dev/buildtrack/internal/repository"
)

type StatService interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

type statService struct {
	actionRepo  repository.ActionRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

func NewStatService(actionRepo repository.ActionRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) StatService {
	return &statService{
		actionRepo:  actionRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

func (s *statService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	actionStats, err := s.actionRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	teamMembers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		Open:        actionStats.Open,
		Closed:      actionStats.Closed,
		Total:       actionStats.Total,
		Projects:    projects,
		TeamMembers: teamMembers,
	}, nil
}
