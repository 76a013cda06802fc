package repository

import (
	"context"
	"errors"
	"time"

	"github.com/naphattraa1/irrigation-planner/internal/model/entity"
	"gorm.io/gorm"
)

// ProjectRepository persists saved design projects.
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a project repository.
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindByID looks up a project by ID.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Create inserts a project.
func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update saves the full project row.
func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete soft-deletes a project.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Project{}).
		Where("id = ?", id).
		Update("deleted_at", time.Now()).Error
}

// List pages over projects, newest first.
func (r *ProjectRepository) List(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.Project, int64, error) {
	var projects []entity.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Project{}).Where("deleted_at IS NULL")

	if keyword, ok := filters["keyword"].(string); ok && keyword != "" {
		query = query.Where("name ILIKE ? OR location ILIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	if crop, ok := filters["crop"].(string); ok && crop != "" {
		query = query.Where("crop = ?", crop)
	}
	if createdBy, ok := filters["created_by"].(string); ok && createdBy != "" {
		query = query.Where("created_by = ?", createdBy)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("updated_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}
