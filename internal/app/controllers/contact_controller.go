package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/shs-edu/campus-portal/internal/app/models/dto"
	"github.com/shs-edu/campus-portal/internal/app/services"
	"github.com/shs-edu/campus-portal/internal/middleware"
)

// ContactController handles contact form operations
type ContactController struct {
	contactService services.ContactService
	logger         zerolog.Logger
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService, logger zerolog.Logger) *ContactController {
	return &ContactController{
		contactService: contactService,
		logger:         logger,
	}
}

// Create handles POST /contacts (public)
func (c *ContactController) Create(ctx *gin.Context) {
	var req dto.CreateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	if _, err := c.contactService.Create(ctx.Request.Context(), &req); err != nil {
		c.logger.Error().Err(err).Msg("Failed to store contact message")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Message sent successfully! We will get back to you soon."},
	})
}

// List handles GET /contacts (admin only)
func (c *ContactController) List(ctx *gin.Context) {
	contacts, err := c.contactService.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list contact messages")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: contacts})
}

// UpdateStatus handles PATCH /contacts/:id (admin only)
func (c *ContactController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateContactStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	contact, err := c.contactService.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: contact})
}
