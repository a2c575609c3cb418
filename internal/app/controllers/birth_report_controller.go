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

// InterfaceBirthReportController defines the birth report controller interface
type InterfaceBirthReportController interface {
	GetBirthReports()
	GetBirthReport()
	CreateBirthReport()
	UpdateBirthReport()
	DeleteBirthReport()
}

// BirthReportController handles birth registration requests
type BirthReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBirthReportController creates a new birth report controller
func NewBirthReportController(ctx *gin.Context, container *container.ServiceContainer) *BirthReportController {
	return &BirthReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleBirthReportFunc returns a gin handler for birth report requests
func HandleBirthReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBirthReportController(ctx, container)

		switch method {
		case "getBirthReports":
			controller.GetBirthReports()
		case "getBirthReport":
			controller.GetBirthReport()
		case "createBirthReport":
			controller.CreateBirthReport()
		case "updateBirthReport":
			controller.UpdateBirthReport()
		case "deleteBirthReport":
			controller.DeleteBirthReport()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetBirthReports lists birth registrations
// @Summary List birth reports
// @Description List birth reports, newest first
// @Tags BirthReport
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, defaults to 1"
// @Param page_size query int false "Page size, defaults to 10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /birth-reports [get]
func (c *BirthReportController) GetBirthReports() {
	pq := paginationFromQuery(c.Ctx)
	vitalService := c.Container.GetService("vital_event").(services.InterfaceVitalEventService)
	reports, result, err := vitalService.GetBirthReports(pq)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, listEnvelope(reports, result))
}

// 2. GetBirthReport returns one birth registration
// @Summary Get birth report
// @Description Get a birth report by id
// @Tags BirthReport
// @Produce json
// @Security BearerAuth
// @Param id path string true "Birth report ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /birth-reports/{id} [get]
func (c *BirthReportController) GetBirthReport() {
	vitalService := c.Container.GetService("vital_event").(services.InterfaceVitalEventService)
	report, err := vitalService.GetBirthReportByID(c.Ctx.Param("id"))
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, report)
}

// 3. CreateBirthReport registers a birth
// @Summary Register birth
// @Description Register a birth, optionally enrolling the baby as a resident and household member
// @Tags BirthReport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.BirthReportForm true "Birth report fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /birth-reports [post]
func (c *BirthReportController) CreateBirthReport() {
	var form validation.BirthReportForm
	if err := c.Ctx.ShouldBindJSON(&form); err != nil {
		response.ParamError(c.Ctx, "invalid request body: "+err.Error())
		return
	}

	vitalService := c.Container.GetService("vital_event").(services.InterfaceVitalEventService)
	result, violations, err := vitalService.RegisterBirth(form)
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

// 4. UpdateBirthReport updates a birth registration
// @Summary Update birth report
// @Description Update the civil record fields of a birth report
// @Tags BirthReport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Birth report ID"
// @Param request body validation.BirthReportForm true "Birth report fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /birth-reports/{id} [put]
func (c *BirthReportController) UpdateBirthReport() {
	var form validation.BirthReportForm
	if err := c.Ctx.ShouldBindJSON(&form); err != nil {
		response.ParamError(c.Ctx, "invalid request body: "+err.Error())
		return
	}

	vitalService := c.Container.GetService("vital_event").(services.InterfaceVitalEventService)
	report, violations, err := vitalService.UpdateBirthReport(c.Ctx.Param("id"), form)
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

// 5. DeleteBirthReport removes a birth registration
// @Summary Delete birth report
// @Description Delete a birth report, leaving any registered resident intact
// @Tags BirthReport
// @Produce json
// @Security BearerAuth
// @Param id path string true "Birth report ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /birth-reports/{id} [delete]
func (c *BirthReportController) DeleteBirthReport() {
	vitalService := c.Container.GetService("vital_event").(services.InterfaceVitalEventService)
	if err := vitalService.DeleteBirthReport(c.Ctx.Param("id")); err != nil {
		failFromError(c.Ctx, err)
		return
	}

	invalidateStats(c.Ctx.Request.Context(), c.Container)
	response.Success(c.Ctx, gin.H{"message": "birth report deleted"})
}
