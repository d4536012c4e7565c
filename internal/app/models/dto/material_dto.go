package dto

import (
	"github.com/shs-edu/campus-portal/internal/app/models"
)

// MaterialFilter holds the optional query parameters for listing materials.
// is_approved is always applied and cannot be overridden by callers.
type MaterialFilter struct {
	Branch   models.Branch       `form:"branch"`
	Semester int                 `form:"semester" binding:"omitempty,min=1,max=8"`
	Subject  string              `form:"subject"`
	Type     models.MaterialType `form:"type"`
}

// CreateMaterialRequest represents the material upload payload.
// The uploader and approval state are derived server-side.
type CreateMaterialRequest struct {
	Title       string              `json:"title" binding:"required,min=2,max=200"`
	Description string              `json:"description" binding:"required"`
	Subject     string              `json:"subject" binding:"required"`
	Branch      models.Branch       `json:"branch" binding:"required,branch"`
	Semester    int                 `json:"semester" binding:"required,min=1,max=8"`
	Type        models.MaterialType `json:"type" binding:"required,materialtype"`
	FileURL     string              `json:"fileUrl" binding:"required,url"`
}
