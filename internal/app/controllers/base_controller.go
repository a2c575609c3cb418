package controllers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"siwarga-http-service/internal/domain/models"
	"siwarga-http-service/internal/domain/services"
	"siwarga-http-service/internal/domain/services/container"
	"siwarga-http-service/internal/error/code"
	"siwarga-http-service/internal/error/response"
)

// ErrorResponse documents the failure envelope in the API docs
type ErrorResponse struct {
	Code    int    `json:"code" example:"100001"`
	Message string `json:"message" example:"internal server error"`
}

// paginationFromQuery reads page and page_size query parameters
func paginationFromQuery(ctx *gin.Context) *models.PaginationQuery {
	pageNum, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	desc := ctx.Query("desc") == "true"
	pq := &models.PaginationQuery{PageNum: pageNum, PageSize: pageSize, Desc: desc}
	pq.Normalize()
	return pq
}

// listEnvelope builds the uniform list payload
func listEnvelope(data interface{}, result models.PaginationResult) gin.H {
	totalPages := 0
	if result.PageSize > 0 {
		totalPages = (result.Total + result.PageSize - 1) / result.PageSize
	}
	return gin.H{
		"total":       result.Total,
		"page":        result.PageNum,
		"page_size":   result.PageSize,
		"total_pages": totalPages,
		"data":        data,
	}
}

// failFromError maps service errors to their error codes
func failFromError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrResidentNotFound):
		response.Fail(ctx, code.ErrResidentNotFound, nil)
	case errors.Is(err, services.ErrResidentDeceased):
		response.Fail(ctx, code.ErrResidentDeceased, nil)
	case errors.Is(err, services.ErrResidentIsHead):
		response.Fail(ctx, code.ErrResidentIsHead, nil)
	case errors.Is(err, services.ErrHouseholdNotFound):
		response.Fail(ctx, code.ErrHouseholdNotFound, nil)
	case errors.Is(err, services.ErrHeadConflict):
		response.Fail(ctx, code.ErrHeadRequired, nil)
	case errors.Is(err, services.ErrMemberExists):
		response.Fail(ctx, code.ErrMemberExists, nil)
	case errors.Is(err, services.ErrMemberNotFound):
		response.Fail(ctx, code.ErrMemberNotFound, nil)
	case errors.Is(err, services.ErrHeadRemoval):
		response.Fail(ctx, code.ErrHeadRemoval, nil)
	case errors.Is(err, services.ErrReportNotFound):
		response.Fail(ctx, code.ErrReportNotFound, nil)
	case errors.Is(err, services.ErrAdminNotFound):
		response.Fail(ctx, code.ErrUserNotFound, nil)
	case errors.Is(err, services.ErrAdminExists):
		response.Fail(ctx, code.ErrUserAlreadyExist, nil)
	case errors.Is(err, services.ErrPasswordIncorrect):
		response.Fail(ctx, code.ErrUserPasswordIncorrect, nil)
	default:
		response.FailWithMessage(ctx, code.ErrDatabase, err.Error(), nil)
	}
}

// invalidateStats drops the cached aggregates after a successful write
func invalidateStats(ctx context.Context, c *container.ServiceContainer) {
	if stats, ok := c.GetService("stats").(services.InterfaceStatsService); ok {
		stats.InvalidateCache(ctx)
	}
}
