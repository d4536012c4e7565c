package models

import (
	"time"
)

// ContactStatus tracks handling of an inbound contact message
type ContactStatus string

const (
	ContactPending  ContactStatus = "Pending"
	ContactRead     ContactStatus = "Read"
	ContactResolved ContactStatus = "Resolved"
)

// IsValid reports whether the status is a known status.
func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactPending, ContactRead, ContactResolved:
		return true
	}
	return false
}

// Contact defines the contact model based on the 'contacts' table.
// UserID is a weak reference to the submitting user, nullable and
// client-supplied; it does not imply ownership.
type Contact struct {
	ID        int64         `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Subject   string        `json:"subject" db:"subject"`
	Message   string        `json:"message" db:"message"`
	UserID    *int64        `json:"userId,omitempty" db:"user_id"`
	Status    ContactStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`

	// Submitter is a read-time projection, populated only when user_id is set.
	Submitter *ContactSubmitter `json:"submitter,omitempty"`
}

// ContactSubmitter is the minimal projection of the submitting user.
type ContactSubmitter struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
