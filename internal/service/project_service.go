package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"github.com/buildtrack-dev/buildtrack/internal/dto"
	"github.com/buildtrack-dev/buildtrack/internal/model"
	"github.com/buildtrack-dev/buildtrack/internal/repository"
	"github.com/buildtrack-dev/buildtrack/pkg/apperror"
)

type ProjectService interface {
	Create(ctx context.Context, req dto.CreateProjectRequest) (*model.Project, error)
	Get(ctx context.Context, id uint) (*model.Project, error)
	List(ctx context.Context) ([]*model.Project, error)
	Update(ctx context.Context, id uint, req dto.UpdateProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, id uint) error
}

type projectService struct {
	repo      repository.ProjectRepository
	sanitizer *bluemonday.Policy
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *projectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*model.Project, error) {
	project := &model.Project{
		Number:      req.Number,
		Name:        s.sanitizer.Sanitize(req.Name),
		Status:      valueOrDefault(req.Status, model.ProjectStatusTender),
		Description: s.sanitizeOptional(req.Description),
		Value:       req.Value,
		Retention:   req.Retention,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Postcode:    req.Postcode,

		StartOnSite:            dateValue(req.StartOnSite),
		ContractCompletion:     dateValue(req.ContractCompletion),
		ConstructionCompletion: dateValue(req.ConstructionCompletion),

		Foundations: workPackage(req.Foundations),
		Frame:       workPackage(req.Frame),
		Envelope:    workPackage(req.Envelope),
		Internals:   workPackage(req.Internals),
		MEP:         workPackage(req.MEP),
	}

	if err := s.repo.Create(ctx, project); err != nil {
		if errors.Is(err, gorm.ErrCheckConstraintViolated) {
			return nil, apperror.New(http.StatusBadRequest, "Invalid project status", err)
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) Get(ctx context.Context, id uint) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.FindAll(ctx)
}

func (s *projectService) Update(ctx context.Context, id uint, req dto.UpdateProjectRequest) (*model.Project, error) {
	fields := map[string]interface{}{}
	if req.Number != nil {
		fields["number"] = *req.Number
	}
	if req.Name != nil {
		fields["name"] = s.sanitizer.Sanitize(*req.Name)
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Description != nil {
		fields["description"] = s.sanitizer.Sanitize(*req.Description)
	}
	if req.Value != nil {
		fields["value"] = *req.Value
	}
	if req.Retention != nil {
		fields["retention"] = *req.Retention
	}
	if req.Latitude != nil {
		fields["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		fields["longitude"] = *req.Longitude
	}
	if req.Postcode != nil {
		fields["postcode"] = *req.Postcode
	}
	if req.StartOnSite != nil {
		fields["start_on_site"] = req.StartOnSite.Time
	}
	if req.ContractCompletion != nil {
		fields["contract_completion"] = req.ContractCompletion.Time
	}
	if req.ConstructionCompletion != nil {
		fields["construction_completion"] = req.ConstructionCompletion.Time
	}
	applyWorkPackage(fields, "foundations_", req.Foundations)
	applyWorkPackage(fields, "frame_", req.Frame)
	applyWorkPackage(fields, "envelope_", req.Envelope)
	applyWorkPackage(fields, "internals_", req.Internals)
	applyWorkPackage(fields, "mep_", req.MEP)

	if len(fields) == 0 {
		return s.Get(ctx, id)
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		if errors.Is(err, gorm.ErrCheckConstraintViolated) {
			return nil, apperror.New(http.StatusBadRequest, "Invalid project status", err)
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *projectService) sanitizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	clean := s.sanitizer.Sanitize(*value)
	return &clean
}

func dateValue(d *dto.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func workPackage(in *dto.WorkPackageInput) model.WorkPackage {
	if in == nil {
		return model.WorkPackage{}
	}
	return model.WorkPackage{
		Status:     in.Status,
		Start:      dateValue(in.Start),
		Finish:     dateValue(in.Finish),
		Contractor: in.Contractor,
	}
}

func applyWorkPackage(fields map[string]interface{}, prefix string, in *dto.WorkPackageInput) {
	if in == nil {
		return
	}
	if in.Status != nil {
		fields[prefix+"status"] = *in.Status
	}
	if in.Start != nil {
		fields[prefix+"start"] = in.Start.Time
	}
	if in.Finish != nil {
		fields[prefix+"finish"] = in.Finish.Time
	}
	if in.Contractor != nil {
		fields[prefix+"contractor"] = *in.Contractor
	}
}
