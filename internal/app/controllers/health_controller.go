package controllers

import (
	"github.com/gin-gonic/gin"

	"siwarga-http-service/internal/domain/services/container"
	"siwarga-http-service/internal/error/code"
	"siwarga-http-service/internal/error/response"
	"siwarga-http-service/internal/infrastructure/database"
)

// InterfaceHealthController defines the health controller interface
type InterfaceHealthController interface {
	Ping()
	Health()
}

// HealthController handles liveness and readiness requests
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
	Pool      *database.ConnectionPool
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer, pool *database.ConnectionPool) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
		Pool:      pool,
	}
}

// HandleHealthFunc returns a gin handler for health requests
func HandleHealthFunc(container *container.ServiceContainer, pool *database.ConnectionPool, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container, pool)

		switch method {
		case "ping":
			controller.Ping()
		case "health":
			controller.Health()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. Ping answers liveness probes
// @Summary Liveness probe
// @Description Answer with pong
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"message": "pong"})
}

// 2. Health reports database connectivity and pool statistics
// @Summary Readiness probe
// @Description Check database connectivity and report pool statistics
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /health [get]
func (c *HealthController) Health() {
	if err := c.Pool.HealthCheck(); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "database unreachable: "+err.Error(), nil)
		return
	}
	stats, err := c.Pool.Stats()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to read pool statistics: "+err.Error(), nil)
		return
	}
	response.Success(c.Ctx, gin.H{
		"status": "ok",
		"pool":   stats,
	})
}
