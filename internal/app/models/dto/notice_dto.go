package dto

import (
	"time"

	"github.com/shs-edu/campus-portal/internal/app/models"
)

// NoticeFilter holds the optional query parameters for listing notices.
// Provided filters are combined by conjunction; is_active is always applied.
type NoticeFilter struct {
	Branch   models.Branch         `form:"branch"`
	Category models.NoticeCategory `form:"category"`
}

// CreateNoticeRequest represents the notice creation payload.
// The poster is stamped from the authenticated user, never from the body.
type CreateNoticeRequest struct {
	Title       string                `json:"title" binding:"required,min=2,max=200"`
	Description string                `json:"description" binding:"required"`
	Category    models.NoticeCategory `json:"category" binding:"required,noticecategory"`
	Branch      models.Branch         `json:"branch" binding:"omitempty,noticebranch"`
	Attachments []models.Attachment   `json:"attachments" binding:"omitempty,dive"`
	Priority    models.NoticePriority `json:"priority" binding:"omitempty,noticepriority"`
	ExpiryDate  *time.Time            `json:"expiryDate"`
}

// UpdateNoticeRequest represents the notice update payload
type UpdateNoticeRequest struct {
	Title       string                `json:"title" binding:"required,min=2,max=200"`
	Description string                `json:"description" binding:"required"`
	Category    models.NoticeCategory `json:"category" binding:"required,noticecategory"`
	Branch      models.Branch         `json:"branch" binding:"omitempty,noticebranch"`
	Attachments []models.Attachment   `json:"attachments" binding:"omitempty,dive"`
	Priority    models.NoticePriority `json:"priority" binding:"omitempty,noticepriority"`
	ExpiryDate  *time.Time            `json:"expiryDate"`
	IsActive    *bool                 `json:"isActive"`
}
