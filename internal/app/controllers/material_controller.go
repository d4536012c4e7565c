package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/shs-edu/campus-portal/internal/app/models/dto"
	"github.com/shs-edu/campus-portal/internal/app/services"
	"github.com/shs-edu/campus-portal/internal/middleware"
)

// MaterialController handles study material related operations
type MaterialController struct {
	materialService services.MaterialService
	logger          zerolog.Logger
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService services.MaterialService, logger zerolog.Logger) *MaterialController {
	return &MaterialController{
		materialService: materialService,
		logger:          logger,
	}
}

// List handles GET /materials with optional branch/semester/subject/type
// filters. Only approved materials are ever returned.
func (c *MaterialController) List(ctx *gin.Context) {
	var filter dto.MaterialFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		bindError(ctx, err)
		return
	}

	materials, err := c.materialService.List(ctx.Request.Context(), filter)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list materials")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: materials})
}

// Create handles POST /materials (any authenticated user)
func (c *MaterialController) Create(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	material, err := c.materialService.Create(ctx.Request.Context(), actor, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", actor.ID).Msg("Failed to create material")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: material})
}

// Download handles POST /materials/:id/download (public)
func (c *MaterialController) Download(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	material, err := c.materialService.Download(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: material})
}
