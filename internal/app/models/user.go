package models

import (
	"time"
)

// Role defines the user role
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// Branch is an academic department
type Branch string

const (
	BranchCSE Branch = "CSE"
	BranchECE Branch = "ECE"
	BranchME  Branch = "ME"
	BranchCE  Branch = "CE"
	BranchEE  Branch = "EE"
	// BranchAll is a sentinel used by notices to target every branch.
	// It is not a valid user or material branch.
	BranchAll Branch = "All"
)

// IsValid reports whether the branch is a real department.
func (b Branch) IsValid() bool {
	switch b {
	case BranchCSE, BranchECE, BranchME, BranchCE, BranchEE:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Password   string    `json:"-" db:"password"` // bcrypt hash, never serialized
	RollNumber string    `json:"rollNumber" db:"roll_number"`
	Branch     Branch    `json:"branch" db:"branch"`
	Role       Role      `json:"role" db:"role"`
	IsVerified bool      `json:"isVerified" db:"is_verified"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
