package dto

import (
	"github.com/shs-edu/campus-portal/internal/app/models"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name       string        `json:"name" binding:"required,min=2,max=100"`
	Email      string        `json:"email" binding:"required,email"`
	Password   string        `json:"password" binding:"required,min=6"`
	RollNumber string        `json:"rollNumber" binding:"required"`
	Branch     models.Branch `json:"branch" binding:"required,branch"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user. It never carries the
// password hash.
type UserResponse struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	RollNumber string        `json:"rollNumber"`
	Branch     models.Branch `json:"branch"`
	Role       models.Role   `json:"role"`
	IsVerified bool          `json:"isVerified"`
}

// AuthResponse represents a successful registration or login
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// NewUserResponse builds the public projection of a user record.
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		RollNumber: user.RollNumber,
		Branch:     user.Branch,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	}
}
