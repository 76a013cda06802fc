package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/naphattraa1/irrigation-planner/internal/engine"
	"github.com/naphattraa1/irrigation-planner/internal/model/entity"
	"github.com/naphattraa1/irrigation-planner/internal/repository"
)

// ProjectService manages saved design projects.
type ProjectService struct {
	projectRepo *repository.ProjectRepository
	designSvc   *DesignService
}

// NewProjectService creates a project service.
func NewProjectService(projectRepo *repository.ProjectRepository, designSvc *DesignService) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, designSvc: designSvc}
}

// CreateProjectRequest is the create payload.
type CreateProjectRequest struct {
	Name      string  `json:"name" binding:"required"`
	Location  string  `json:"location"`
	Crop      string  `json:"crop"`
	AreaValue float64 `json:"area_value"`
	AreaUnit  string  `json:"area_unit"`
}

// UpdateProjectRequest is the update payload; empty fields are left alone.
type UpdateProjectRequest struct {
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Crop      string  `json:"crop"`
	AreaValue float64 `json:"area_value"`
	AreaUnit  string  `json:"area_unit"`
}

// ListResult is one page of projects.
type ListResult struct {
	Items      []entity.Project `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// Create saves a new project.
func (s *ProjectService) Create(ctx context.Context, userID string, req *CreateProjectRequest) (*entity.Project, error) {
	areaUnit := req.AreaUnit
	if areaUnit != string(engine.AreaUnitHectare) && areaUnit != string(engine.AreaUnitRai) {
		areaUnit = string(engine.AreaUnitRai)
	}

	project := &entity.Project{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Location:  req.Location,
		Crop:      req.Crop,
		AreaValue: req.AreaValue,
		AreaUnit:  areaUnit,
		CreatedBy: userID,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// Get loads one project.
func (s *ProjectService) Get(ctx context.Context, id string) (*entity.Project, error) {
	return s.projectRepo.FindByID(ctx, id)
}

// List pages over projects.
func (s *ProjectService) List(ctx context.Context, page, pageSize int, filters map[string]interface{}) (*ListResult, error) {
	items, total, err := s.projectRepo.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &ListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Update edits the project's descriptive fields.
func (s *ProjectService) Update(ctx context.Context, id string, req *UpdateProjectRequest) (*entity.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		project.Name = req.Name
	}
	if req.Location != "" {
		project.Location = req.Location
	}
	if req.Crop != "" {
		project.Crop = req.Crop
	}
	if req.AreaValue > 0 {
		project.AreaValue = req.AreaValue
	}
	if req.AreaUnit == string(engine.AreaUnitHectare) || req.AreaUnit == string(engine.AreaUnitRai) {
		project.AreaUnit = req.AreaUnit
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// Delete soft-deletes a project.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.projectRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, id)
}

// SaveDesign recomputes the design for a request and stores the resulting
// metrics snapshot on the project.
func (s *ProjectService) SaveDesign(ctx context.Context, id string, req engine.DesignRequest) (*entity.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := s.designSvc.Summarize(req)
	in := summary.Input

	now := time.Now()
	project.AreaValue = in.AreaValue
	project.AreaUnit = string(in.AreaUnit)
	project.DemandLday = summary.WaterBalance.WaterDemandLPerDay
	project.TotalPipeLengthM = summary.Layout.TotalPipeLengthM
	project.HeadLossPct = summary.Hydraulics.HeadLossPercent
	project.MaxLateralM = summary.MaxLateralLengthM
	project.TotalCost = summary.BOM.TotalCost
	project.ValidationOk = summary.Validation.IsValid
	project.Kc = in.Kc
	project.ETo = in.ET0
	project.Rainfall = in.RainfallMm
	project.MainDiameterMm = in.MainDiameterMm
	project.LastUpdated = &now

	if req.General.CropType != "" {
		project.Crop = req.General.CropType
	}
	if req.General.Location != "" {
		project.Location = req.General.Location
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to save design snapshot: %w", err)
	}
	return project, nil
}
