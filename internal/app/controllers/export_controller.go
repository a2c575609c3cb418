package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"siwarga-http-service/internal/domain/services"
	"siwarga-http-service/internal/domain/services/container"
	"siwarga-http-service/internal/error/code"
	"siwarga-http-service/internal/error/response"
	"siwarga-http-service/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InterfaceExportController defines the export controller interface
type InterfaceExportController interface {
	ExportResidents()
	ExportHouseholds()
}

// ExportController handles register export requests
type ExportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewExportController creates a new export controller
func NewExportController(ctx *gin.Context, container *container.ServiceContainer) *ExportController {
	return &ExportController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleExportFunc returns a gin handler for export requests
func HandleExportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewExportController(ctx, container)

		switch method {
		case "exportResidents":
			controller.ExportResidents()
		case "exportHouseholds":
			controller.ExportHouseholds()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. ExportResidents streams the resident register workbook
// @Summary Export residents
// @Description Download the resident register as an xlsx workbook
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse
// @Router /export/residents.xlsx [get]
func (c *ExportController) ExportResidents() {
	exportService := c.Container.GetService("export").(services.InterfaceExportService)
	f, err := exportService.ExportResidents()
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	c.stream(f, fmt.Sprintf("data-warga-%s.xlsx", time.Now().Format("2006-01-02")))
}

// 2. ExportHouseholds streams the household register workbook
// @Summary Export households
// @Description Download the household register as an xlsx workbook
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse
// @Router /export/households.xlsx [get]
func (c *ExportController) ExportHouseholds() {
	exportService := c.Container.GetService("export").(services.InterfaceExportService)
	f, err := exportService.ExportHouseholds()
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	c.stream(f, fmt.Sprintf("data-kk-%s.xlsx", time.Now().Format("2006-01-02")))
}

func (c *ExportController) stream(f *excelize.File, filename string) {
	c.Ctx.Header("Content-Type", xlsxContentType)
	c.Ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Ctx.Status(http.StatusOK)
	if err := f.Write(c.Ctx.Writer); err != nil {
		logger.Error("Failed to stream workbook", filename, ":", err)
	}
}
