package models

import (
	"time"
)

// MaterialType classifies a study material
type MaterialType string

const (
	MaterialNotes      MaterialType = "Notes"
	MaterialAssignment MaterialType = "Assignment"
	MaterialPYQ        MaterialType = "PYQ"
	MaterialReference  MaterialType = "Reference"
	MaterialBook       MaterialType = "Book"
	MaterialOther      MaterialType = "Other"
)

// IsValid reports whether the type is a known material type.
func (t MaterialType) IsValid() bool {
	switch t {
	case MaterialNotes, MaterialAssignment, MaterialPYQ, MaterialReference, MaterialBook, MaterialOther:
		return true
	}
	return false
}

// Semester bounds for materials.
const (
	MinSemester = 1
	MaxSemester = 8
)

// ApprovalForRole derives a material's approval state from its uploader's
// role at creation time. Faculty and admin uploads are published
// immediately; student uploads stay hidden until reviewed.
func ApprovalForRole(role Role) bool {
	return role == RoleFaculty || role == RoleAdmin
}

// Material defines the material model based on the 'materials' table
type Material struct {
	ID          int64        `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Subject     string       `json:"subject" db:"subject"`
	Branch      Branch       `json:"branch" db:"branch"`
	Semester    int          `json:"semester" db:"semester"`
	Type        MaterialType `json:"type" db:"type"`
	FileURL     string       `json:"fileUrl" db:"file_url"`
	UploadedBy  int64        `json:"uploadedBy" db:"uploaded_by"`
	Downloads   int64        `json:"downloads" db:"downloads"`
	IsApproved  bool         `json:"isApproved" db:"is_approved"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`

	// UploaderName is a read-time projection, not stored.
	UploaderName string `json:"uploaderName,omitempty"`
}
