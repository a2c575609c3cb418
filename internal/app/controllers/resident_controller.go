package controllers

import (
	"github.com/gin-gonic/gin"

	"siwarga-http-service/internal/domain/services"
	"siwarga-http-service/internal/domain/services/container"
	"siwarga-http-service/internal/domain/validation"
	"siwarga-http-service/internal/error/code"
	"siwarga-http-service/internal/error/response"
)

// InterfaceResidentController defines the resident controller interface
type InterfaceResidentController interface {
	GetResidents()
	GetResident()
	CreateResident()
	UpdateResident()
	DeleteResident()
}

// ResidentController handles resident register requests
type ResidentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResidentController creates a new resident controller
func NewResidentController(ctx *gin.Context, container *container.ServiceContainer) *ResidentController {
	return &ResidentController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleResidentFunc returns a gin handler for resident requests
func HandleResidentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResidentController(ctx, container)

		switch method {
		case "getResidents":
			controller.GetResidents()
		case "getResident":
			controller.GetResident()
		case "createResident":
			controller.CreateResident()
		case "updateResident":
			controller.UpdateResident()
		case "deleteResident":
			controller.DeleteResident()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetResidents lists residents with filters
// @Summary List residents
// @Description List residents with optional RT, gender, life status and search filters
// @Tags Resident
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, defaults to 1"
// @Param page_size query int false "Page size, defaults to 10"
// @Param rt query string false "Filter by RT code"
// @Param gender query string false "Filter by gender"
// @Param life_status query string false "Filter by life status"
// @Param search query string false "Match against name or NIK"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /residents [get]
func (c *ResidentController) GetResidents() {
	pq := paginationFromQuery(c.Ctx)
	filter := services.ResidentFilter{
		RT:         c.Ctx.Query("rt"),
		Gender:     c.Ctx.Query("gender"),
		LifeStatus: c.Ctx.Query("life_status"),
		Search:     c.Ctx.Query("search"),
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	residents, result, err := residentService.GetResidents(filter, pq)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, listEnvelope(residents, result))
}

// 2. GetResident returns one resident with memberships
// @Summary Get resident
// @Description Get a resident by id, including household memberships
// @Tags Resident
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resident ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /residents/{id} [get]
func (c *ResidentController) GetResident() {
	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.GetResidentByID(c.Ctx.Param("id"))
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, resident)
}

// 3. CreateResident registers a new resident
// @Summary Create resident
// @Description Validate and register a new resident
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.ResidentForm true "Resident fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /residents [post]
func (c *ResidentController) CreateResident() {
	var form validation.ResidentForm
	if err := c.Ctx.ShouldBindJSON(&form); err != nil {
		response.ParamError(c.Ctx, "invalid request body: "+err.Error())
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, violations, err := residentService.CreateResident(form)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	if !violations.Ok() {
		response.ValidationError(c.Ctx, violations)
		return
	}

	invalidateStats(c.Ctx.Request.Context(), c.Container)
	response.Created(c.Ctx, resident)
}

// 4. UpdateResident updates a resident's civil record
// @Summary Update resident
// @Description Validate and update a resident's civil record fields
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resident ID"
// @Param request body validation.ResidentForm true "Resident fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /residents/{id} [put]
func (c *ResidentController) UpdateResident() {
	var form validation.ResidentForm
	if err := c.Ctx.ShouldBindJSON(&form); err != nil {
		response.ParamError(c.Ctx, "invalid request body: "+err.Error())
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, violations, err := residentService.UpdateResident(c.Ctx.Param("id"), form)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	if !violations.Ok() {
		response.ValidationError(c.Ctx, violations)
		return
	}

	invalidateStats(c.Ctx.Request.Context(), c.Container)
	response.Success(c.Ctx, resident)
}

// 5. DeleteResident removes a resident from the register
// @Summary Delete resident
// @Description Delete a resident unless they head a household
// @Tags Resident
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resident ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /residents/{id} [delete]
func (c *ResidentController) DeleteResident() {
	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	if err := residentService.DeleteResident(c.Ctx.Param("id")); err != nil {
		failFromError(c.Ctx, err)
		return
	}

	invalidateStats(c.Ctx.Request.Context(), c.Container)
	response.Success(c.Ctx, gin.H{"message": "resident deleted"})
}
