package dto

import (
	"github.com/shs-edu/campus-portal/internal/app/models"
)

// CreateContactRequest represents an inbound contact message.
// UserID is an optional weak reference supplied by the client.
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required"`
	UserID  *int64 `json:"userId" binding:"omitempty,min=1"`
}

// UpdateContactStatusRequest represents an admin status change
type UpdateContactStatusRequest struct {
	Status models.ContactStatus `json:"status" binding:"required,contactstatus"`
}
