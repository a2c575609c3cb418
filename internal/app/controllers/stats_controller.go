package controllers

import (
	"github.com/gin-gonic/gin"

	"siwarga-http-service/internal/domain/services"
	"siwarga-http-service/internal/domain/services/container"
	"siwarga-http-service/internal/error/code"
	"siwarga-http-service/internal/error/response"
)

// InterfaceStatsController defines the statistics controller interface
type InterfaceStatsController interface {
	GetDashboard()
	GetDistributions()
}

// StatsController handles dashboard aggregate requests
type StatsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStatsController creates a new statistics controller
func NewStatsController(ctx *gin.Context, container *container.ServiceContainer) *StatsController {
	return &StatsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleStatsFunc returns a gin handler for statistics requests
func HandleStatsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStatsController(ctx, container)

		switch method {
		case "getDashboard":
			controller.GetDashboard()
		case "getDistributions":
			controller.GetDistributions()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetDashboard returns the headline registry counters
// @Summary Dashboard counters
// @Description Resident, household and vital report counters
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /stats/dashboard [get]
func (c *StatsController) GetDashboard() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.GetDashboard(c.Ctx.Request.Context())
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, stats)
}

// 2. GetDistributions returns demographic breakdowns of living residents
// @Summary Demographic distributions
// @Description Living residents grouped by RT, religion, age group and marital status
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /stats/distributions [get]
func (c *StatsController) GetDistributions() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.GetDistributions(c.Ctx.Request.Context())
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, stats)
}
