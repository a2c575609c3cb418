package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"siwarga-http-service/internal/domain/services"
	"siwarga-http-service/internal/domain/services/container"
	"siwarga-http-service/internal/domain/validation"
	"siwarga-http-service/internal/error/code"
	"siwarga-http-service/internal/error/response"
)

// InterfaceDeathReportController defines the death report controller interface
type InterfaceDeathReportController interface {
	GetDeathReports()
	GetDeathReport()
	CreateDeathReport()
	UpdateDeathReport()
	DeleteDeathReport()
}

// DeathReportController handles death registration requests
type DeathReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDeathReportController creates a new death report controller
func NewDeathReportController(ctx *gin.Context, container *container.ServiceContainer) *DeathReportController {
	return &DeathReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDeathReportFunc returns a gin handler for death report requests
func HandleDeathReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeathReportController(ctx, container)

		switch method {
		case "getDeathReports":
			controller.GetDeathReports()
		case "getDeathReport":
			controller.GetDeathReport()
		case "createDeathReport":
			controller.CreateDeathReport()
		case "updateDeathReport":
			controller.UpdateDeathReport()
		case "deleteDeathReport":
			controller.DeleteDeathReport()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetDeathReports lists death registrations
// @Summary List death reports
// @Description List death reports, newest first
// @Tags DeathReport
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, defaults to 1"
// @Param page_size query int false "Page size, defaults to 10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /death-reports [get]
func (c *DeathReportController) GetDeathReports() {
	pq := paginationFromQuery(c.Ctx)
	vitalService := c.Container.GetService("vital_event").(services.InterfaceVitalEventService)
	reports, result, err := vitalService.GetDeathReports(pq)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, listEnvelope(reports, result))
}

// 2. GetDeathReport returns one death registration
// @Summary Get death report
// @Description Get a death report by id
// @Tags DeathReport
// @Produce json
// @Security BearerAuth
// @Param id path string true "Death report ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /death-reports/{id} [get]
func (c *DeathReportController) GetDeathReport() {
	vitalService := c.Container.GetService("vital_event").(services.InterfaceVitalEventService)
	report, err := vitalService.GetDeathReportByID(c.Ctx.Param("id"))
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, report)
}

// 3. CreateDeathReport registers a death
// @Summary Register death
// @Description Register a death, marking the linked resident as deceased
// @Tags DeathReport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.DeathReportForm true "Death report fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /death-reports [post]
func (c *DeathReportController) CreateDeathReport() {
	var form validation.DeathReportForm
	if err := c.Ctx.ShouldBindJSON(&form); err != nil {
		response.ParamError(c.Ctx, "invalid request body: "+err.Error())
		return
	}

	vitalService := c.Container.GetService("vital_event").(services.InterfaceVitalEventService)
	result, violations, err := vitalService.RegisterDeath(form)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	if !violations.Ok() {
		response.ValidationError(c.Ctx, violations)
		return
	}

	invalidateStats(c.Ctx.Request.Context(), c.Container)
	if len(result.Warnings) > 0 {
		response.FailWithMessage(c.Ctx, code.ErrPartialFailure,
			"the report was saved; "+strings.Join(result.Warnings, "; "), result)
		return
	}
	response.Created(c.Ctx, result)
}

// 4. UpdateDeathReport updates a death registration
// @Summary Update death report
// @Description Update the civil record fields of a death report
// @Tags DeathReport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Death report ID"
// @Param request body validation.DeathReportForm true "Death report fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /death-reports/{id} [put]
func (c *DeathReportController) UpdateDeathReport() {
	var form validation.DeathReportForm
	if err := c.Ctx.ShouldBindJSON(&form); err != nil {
		response.ParamError(c.Ctx, "invalid request body: "+err.Error())
		return
	}

	vitalService := c.Container.GetService("vital_event").(services.InterfaceVitalEventService)
	report, violations, err := vitalService.UpdateDeathReport(c.Ctx.Param("id"), form)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	if !violations.Ok() {
		response.ValidationError(c.Ctx, violations)
		return
	}

	invalidateStats(c.Ctx.Request.Context(), c.Container)
	response.Success(c.Ctx, report)
}

// 5. DeleteDeathReport removes a death registration
// @Summary Delete death report
// @Description Delete a death report, leaving the resident's life status unchanged
// @Tags DeathReport
// @Produce json
// @Security BearerAuth
// @Param id path string true "Death report ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /death-reports/{id} [delete]
func (c *DeathReportController) DeleteDeathReport() {
	vitalService := c.Container.GetService("vital_event").(services.InterfaceVitalEventService)
	if err := vitalService.DeleteDeathReport(c.Ctx.Param("id")); err != nil {
		failFromError(c.Ctx, err)
		return
	}

	invalidateStats(c.Ctx.Request.Context(), c.Container)
	response.Success(c.Ctx, gin.H{"message": "death report deleted"})
}
