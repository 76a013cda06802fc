package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/naphattraa1/irrigation-planner/internal/engine"
	"github.com/naphattraa1/irrigation-planner/internal/service"
)

// DesignHandler serves the calculation endpoints.
type DesignHandler struct {
	designSvc *service.DesignService
	exportSvc *service.ExportService
}

// NewDesignHandler creates a design handler.
func NewDesignHandler(designSvc *service.DesignService, exportSvc *service.ExportService) *DesignHandler {
	return &DesignHandler{designSvc: designSvc, exportSvc: exportSvc}
}

// Compute runs the full design pipeline for one request.
func (h *DesignHandler) Compute(c *gin.Context) {
	var req engine.DesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.designSvc.Compute(c.Request.Context(), req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, resp)
}

// Seasonal runs the 12-month demand simulation.
func (h *DesignHandler) Seasonal(c *gin.Context) {
	var req service.SeasonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	Success(c, h.designSvc.Seasonal(req))
}

// ExportBOM computes a design and streams its bill of materials as .xlsx.
func (h *DesignHandler) ExportBOM(c *gin.Context) {
	var req engine.DesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	summary := h.designSvc.Summarize(req)
	resp := engine.BuildResponse(summary, time.Now())

	filename := fmt.Sprintf("bom-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := h.exportSvc.WriteBOM(c.Writer, resp); err != nil {
		// Headers are already out; all we can do is abort the stream.
		c.Abort()
	}
}
