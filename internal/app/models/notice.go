package models

import (
	"time"
)

// NoticeCategory classifies a notice
type NoticeCategory string

const (
	CategoryGeneral  NoticeCategory = "General"
	CategoryAcademic NoticeCategory = "Academic"
	CategoryEvent    NoticeCategory = "Event"
	CategoryExam     NoticeCategory = "Exam"
	CategoryHoliday  NoticeCategory = "Holiday"
	CategoryUrgent   NoticeCategory = "Urgent"
)

// IsValid reports whether the category is a known category.
func (c NoticeCategory) IsValid() bool {
	switch c {
	case CategoryGeneral, CategoryAcademic, CategoryEvent, CategoryExam, CategoryHoliday, CategoryUrgent:
		return true
	}
	return false
}

// NoticePriority indicates how prominently a notice should be shown
type NoticePriority string

const (
	PriorityLow    NoticePriority = "Low"
	PriorityMedium NoticePriority = "Medium"
	PriorityHigh   NoticePriority = "High"
)

// IsValid reports whether the priority is a known priority.
func (p NoticePriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Attachment is a filename+URL pair attached to a notice.
// The list is stored in order as jsonb.
type Attachment struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Notice defines the notice model based on the 'notices' table.
// Branch may be BranchAll, which targets every branch.
type Notice struct {
	ID          int64          `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Category    NoticeCategory `json:"category" db:"category"`
	Branch      Branch         `json:"branch" db:"branch"`
	PostedBy    int64          `json:"postedBy" db:"posted_by"`
	Attachments []Attachment   `json:"attachments" db:"attachments"`
	Priority    NoticePriority `json:"priority" db:"priority"`
	ExpiryDate  *time.Time     `json:"expiryDate,omitempty" db:"expiry_date"`
	IsActive    bool           `json:"isActive" db:"is_active"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`

	// Poster is a read-time projection of the posting user, not stored.
	Poster *NoticePoster `json:"poster,omitempty"`
}

// NoticePoster is the minimal projection of the user who posted a notice.
type NoticePoster struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
