package controllers

import (
	"github.com/gin-gonic/gin"

	"siwarga-http-service/internal/domain/services"
	"siwarga-http-service/internal/domain/services/container"
	"siwarga-http-service/internal/error/code"
	"siwarga-http-service/internal/error/response"
)

// InterfaceAdminController defines the registrar account controller interface
type InterfaceAdminController interface {
	GetAdmins()
	GetAdmin()
	CreateAdmin()
	UpdateAdmin()
	DeleteAdmin()
}

// AdminController handles registrar account requests
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new registrar account controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAdminFunc returns a gin handler for registrar account requests
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getAdmins":
			controller.GetAdmins()
		case "getAdmin":
			controller.GetAdmin()
		case "createAdmin":
			controller.CreateAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		case "deleteAdmin":
			controller.DeleteAdmin()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetAdmins lists registrar accounts
// @Summary List registrar accounts
// @Description List registrar accounts with pagination
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, defaults to 1"
// @Param page_size query int false "Page size, defaults to 10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admins [get]
func (c *AdminController) GetAdmins() {
	pq := paginationFromQuery(c.Ctx)
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admins, result, err := adminService.GetAdmins(pq)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, listEnvelope(admins, result))
}

// 2. GetAdmin returns one registrar account
// @Summary Get registrar account
// @Description Get a registrar account by id
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /admins/{id} [get]
func (c *AdminController) GetAdmin() {
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(c.Ctx.Param("id"))
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, admin)
}

// 3. CreateAdmin creates a registrar account
// @Summary Create registrar account
// @Description Create a registrar account with a hashed password
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.AdminForm true "Account fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /admins [post]
func (c *AdminController) CreateAdmin() {
	var form services.AdminForm
	if err := c.Ctx.ShouldBindJSON(&form); err != nil {
		response.ParamError(c.Ctx, "invalid request body: "+err.Error())
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.CreateAdmin(form)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, admin)
}

// 4. UpdateAdmin updates a registrar account
// @Summary Update registrar account
// @Description Update the fields of a registrar account
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body services.AdminForm true "Account fields"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /admins/{id} [put]
func (c *AdminController) UpdateAdmin() {
	var form services.AdminForm
	if err := c.Ctx.ShouldBindJSON(&form); err != nil {
		response.ParamError(c.Ctx, "invalid request body: "+err.Error())
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.UpdateAdmin(c.Ctx.Param("id"), form)
	if err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, admin)
}

// 5. DeleteAdmin removes a registrar account
// @Summary Delete registrar account
// @Description Delete a registrar account by id
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /admins/{id} [delete]
func (c *AdminController) DeleteAdmin() {
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.DeleteAdmin(c.Ctx.Param("id")); err != nil {
		failFromError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"message": "account deleted"})
}
