package controllers

import (
	"github.com/gin-gonic/gin"

	"siwarga-http-service/internal/domain/services"
	"siwarga-http-service/internal/domain/services/container"
	"siwarga-http-service/internal/domain/validation"
	"siwarga-http-service/internal/error/code"
	"siwarga-http-service/internal/error/response"
)

// InterfaceHouseholdController defines the household controller interface
type InterfaceHouseholdController interface {
	GetHouseholds()
	GetHousehold()
	CreateHousehold()
	UpdateHousehold()
	DeleteHousehold()
	GetMembers()
	GetAvailableResidents()
	AddMember()
	RemoveMember()
}

// HouseholdController handles family card requests
type HouseholdController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHouseholdController creates a new household controller
func NewHouseholdController(ctx *gin.Context, container *container.ServiceContainer) *HouseholdController {
	return &HouseholdController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHouseholdFunc returns a gin handler for household requests
func HandleHouseholdFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHouseholdController(ctx, container)

		switch method {
		case "getHouseholds":
			controller.GetHouseholds()
		case "getHousehold":
			controller.GetHousehold()
		case "createHousehold":
			controller.CreateHousehold()
		case "updateHousehold":
			controller.UpdateHousehold()
		case "deleteHousehold":
			controller.DeleteHousehold()
		case "getMembers":
			controller.GetMembers()
		case "getAvailableResidents":
			controller.GetAvailableResidents()
		case "addMember":
			controller.AddMember()
		case "removeMember":
			controller.RemoveMember()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetHouseholds lists family cards
// @Summary List households
// @Description List households with optional RT and search filters
// @Tags Household
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, defaults to 1"
// @Param page_size query int false "Page size, defaults to 10"
// @Param rt query string false "Filter by RT code"
// @Param search query string false "Match against KK number or address"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /households [get]
func (c *HouseholdController) GetHouseholds() {
	pq := paginationFromQuery(c.Ctx)
	filter := services.HouseholdFilter{
		RT:     c.Ctx.Query("rt"),
		Search: c.Ctx.Query("search"),
	}

	householdService := c.Container.GetService("household").(services.InterfaceHouseholdService)
	households, result, err := householdService.GetHouseholds(filter, pq)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, listEnvelope(households, result))
}

// 2. GetHousehold returns one family card with head and members
// @Summary Get household
// @Description Get a household by id, including head and member list
// @Tags Household
// @Produce json
// @Security BearerAuth
// @Param id path string true "Household ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /households/{id} [get]
func (c *HouseholdController) GetHousehold() {
	householdService := c.Container.GetService("household").(services.InterfaceHouseholdService)
	household, err := householdService.GetHouseholdByID(c.Ctx.Param("id"))
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, household)
}

// 3. CreateHousehold registers a family card with its member list
// @Summary Create household
// @Description Register a household and its initial member list in one request
// @Tags Household
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.HouseholdForm true "Household fields and member list"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /households [post]
func (c *HouseholdController) CreateHousehold() {
	var form validation.HouseholdForm
	if err := c.Ctx.ShouldBindJSON(&form); err != nil {
		response.ParamError(c.Ctx, "invalid request body: "+err.Error())
		return
	}

	householdService := c.Container.GetService("household").(services.InterfaceHouseholdService)
	household, violations, err := householdService.CreateHousehold(form)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	if !violations.Ok() {
		response.ValidationError(c.Ctx, violations)
		return
	}

	invalidateStats(c.Ctx.Request.Context(), c.Container)
	response.Created(c.Ctx, household)
}

// 4. UpdateHousehold updates a family card and reconciles its member list
// @Summary Update household
// @Description Update household fields and replace the member list with the submitted one
// @Tags Household
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Household ID"
// @Param request body validation.HouseholdForm true "Household fields and member list"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /households/{id} [put]
func (c *HouseholdController) UpdateHousehold() {
	var form validation.HouseholdForm
	if err := c.Ctx.ShouldBindJSON(&form); err != nil {
		response.ParamError(c.Ctx, "invalid request body: "+err.Error())
		return
	}

	householdService := c.Container.GetService("household").(services.InterfaceHouseholdService)
	household, violations, err := householdService.UpdateHousehold(c.Ctx.Param("id"), form)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	if !violations.Ok() {
		response.ValidationError(c.Ctx, violations)
		return
	}

	invalidateStats(c.Ctx.Request.Context(), c.Container)
	response.Success(c.Ctx, household)
}

// 5. DeleteHousehold removes a family card and its membership rows
// @Summary Delete household
// @Description Delete a household and its member list, keeping residents intact
// @Tags Household
// @Produce json
// @Security BearerAuth
// @Param id path string true "Household ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /households/{id} [delete]
func (c *HouseholdController) DeleteHousehold() {
	householdService := c.Container.GetService("household").(services.InterfaceHouseholdService)
	if err := householdService.DeleteHousehold(c.Ctx.Param("id")); err != nil {
		failFromError(c.Ctx, err)
		return
	}

	invalidateStats(c.Ctx.Request.Context(), c.Container)
	response.Success(c.Ctx, gin.H{"message": "household deleted"})
}

// 6. GetMembers lists a household's members
// @Summary List household members
// @Description List the members of a household with their resident records
// @Tags Household
// @Produce json
// @Security BearerAuth
// @Param id path string true "Household ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /households/{id}/members [get]
func (c *HouseholdController) GetMembers() {
	householdService := c.Container.GetService("household").(services.InterfaceHouseholdService)
	members, err := householdService.GetMembers(c.Ctx.Param("id"))
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, members)
}

// 7. GetAvailableResidents lists residents that can join the household
// @Summary List available residents
// @Description List living residents not yet attached to any household
// @Tags Household
// @Produce json
// @Security BearerAuth
// @Param id path string true "Household ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /households/{id}/members/available [get]
func (c *HouseholdController) GetAvailableResidents() {
	householdService := c.Container.GetService("household").(services.InterfaceHouseholdService)
	residents, err := householdService.GetAvailableResidents(c.Ctx.Param("id"))
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, residents)
}

// 8. AddMember attaches one resident to the household
// @Summary Add household member
// @Description Add a single member to an existing household
// @Tags Household
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Household ID"
// @Param request body validation.MemberEntry true "Resident id and relation"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /households/{id}/members [post]
func (c *HouseholdController) AddMember() {
	var entry validation.MemberEntry
	if err := c.Ctx.ShouldBindJSON(&entry); err != nil {
		response.ParamError(c.Ctx, "invalid request body: "+err.Error())
		return
	}

	householdService := c.Container.GetService("household").(services.InterfaceHouseholdService)
	member, err := householdService.AddMember(c.Ctx.Param("id"), entry)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}

	invalidateStats(c.Ctx.Request.Context(), c.Container)
	response.Created(c.Ctx, member)
}

// 9. RemoveMember detaches one resident from the household
// @Summary Remove household member
// @Description Remove a non-head member from a household
// @Tags Household
// @Produce json
// @Security BearerAuth
// @Param id path string true "Household ID"
// @Param resident_id path string true "Resident ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /households/{id}/members/{resident_id} [delete]
func (c *HouseholdController) RemoveMember() {
	householdService := c.Container.GetService("household").(services.InterfaceHouseholdService)
	if err := householdService.RemoveMember(c.Ctx.Param("id"), c.Ctx.Param("resident_id")); err != nil {
		failFromError(c.Ctx, err)
		return
	}

	invalidateStats(c.Ctx.Request.Context(), c.Container)
	response.Success(c.Ctx, gin.H{"message": "member removed"})
}
