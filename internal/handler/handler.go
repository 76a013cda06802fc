package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/naphattraa1/irrigation-planner/internal/service"
)

// Handlers is the handler collection.
type Handlers struct {
	Design  *DesignHandler
	Project *ProjectHandler
}

// NewHandlers creates the handler collection.
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Design:  NewDesignHandler(svc.Design, svc.Export),
		Project: NewProjectHandler(svc.Project),
	}
}

// Response is the common response envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error writes an error envelope; the HTTP status is the leading three digits
// of the code.
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest writes a 400 envelope.
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// NotFound writes a 404 envelope.
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError writes a 500 envelope.
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// GetUserID returns the authenticated user ID, if any.
func GetUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
