package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/naphattraa1/irrigation-planner/internal/engine"
	"github.com/naphattraa1/irrigation-planner/internal/repository"
	"github.com/naphattraa1/irrigation-planner/internal/service"
)

// ProjectHandler serves saved-project CRUD.
type ProjectHandler struct {
	svc *service.ProjectService
}

// NewProjectHandler creates a project handler.
func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List pages over projects.
func (h *ProjectHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filters := map[string]interface{}{
		"keyword":    c.Query("keyword"),
		"crop":       c.Query("crop"),
		"created_by": c.Query("created_by"),
	}

	result, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, result)
}

// Create saves a new project.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.svc.Create(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Created(c, project)
}

// Get loads one project.
func (h *ProjectHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Project ID is required")
		return
	}

	project, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Project not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, project)
}

// Update edits a project's descriptive fields.
func (h *ProjectHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Project not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, project)
}

// Delete soft-deletes a project.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Project not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"id": id})
}

// SaveDesign recomputes a design and stores its metrics on the project.
func (h *ProjectHandler) SaveDesign(c *gin.Context) {
	id := c.Param("id")

	var req engine.DesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.svc.SaveDesign(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Project not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, project)
}
