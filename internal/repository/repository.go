package repository

import (
	"errors"

	"github.com/naphattraa1/irrigation-planner/internal/model/entity"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist or is soft-deleted.
var ErrNotFound = errors.New("record not found")

// Repositories bundles all data access.
type Repositories struct {
	Project *ProjectRepository
}

// NewRepositories creates the repository set.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Project: NewProjectRepository(db),
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Project{})
}
