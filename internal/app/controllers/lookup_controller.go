package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniadmin/internal/app/models/dto"
	"github.com/yigit/uniadmin/internal/app/services"
	"github.com/yigit/uniadmin/internal/middleware"
)

// LookupController serves reference data and the dashboard
type LookupController struct {
	lookupService    *services.LookupService
	dashboardService *services.DashboardService
}

// NewLookupController creates a new LookupController
func NewLookupController(lookupService *services.LookupService, dashboardService *services.DashboardService) *LookupController {
	return &LookupController{
		lookupService:    lookupService,
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the headline counters and recent activity
// @Summary Dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.Dashboard}
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /dashboard [get]
func (c *LookupController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.dashboardService.GetDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard, ""))
}

// GetDepartments lists departments
// @Summary List departments
// @Tags lookups
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Router /departments [get]
func (c *LookupController) GetDepartments(ctx *gin.Context) {
	departments, err := c.lookupService.GetDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments, ""))
}

// GetInstructors lists instructors
// @Summary List instructors
// @Tags lookups
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Instructor}
// @Router /instructors [get]
func (c *LookupController) GetInstructors(ctx *gin.Context) {
	instructors, err := c.lookupService.GetInstructors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructors, ""))
}

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
	Driver() string
}

// HealthController reports liveness
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Health reports whether the database answers
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse}
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if err := c.db.Ping(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status:   "ok",
		Database: "up",
		Driver:   c.db.Driver(),
	}, ""))
}
