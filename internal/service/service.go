package service

import (
	"github.com/naphattraa1/irrigation-planner/internal/config"
	"github.com/naphattraa1/irrigation-planner/internal/engine"
	"github.com/naphattraa1/irrigation-planner/internal/repository"
	"github.com/naphattraa1/irrigation-planner/internal/satellite"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Services is the service collection.
type Services struct {
	Design  *DesignService
	Project *ProjectService
	Export  *ExportService
}

// NewServices wires the engine, the satellite provider, and the repositories.
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	eng := engine.New(cfg.Engine.ToEngineConfig())

	var provider satellite.Provider
	switch cfg.Satellite.Mode {
	case "static":
		provider = satellite.NewStatic()
	case "mock":
		provider = satellite.NewMock(cfg.Satellite.Seed)
	}

	designSvc := NewDesignService(eng, rdb, provider, logger)

	return &Services{
		Design:  designSvc,
		Project: NewProjectService(repos.Project, designSvc),
		Export:  NewExportService(),
	}
}
