package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shs-edu/campus-portal/internal/app/models"
	"github.com/shs-edu/campus-portal/internal/app/models/dto"
	"github.com/shs-edu/campus-portal/internal/pkg/apperrors"
)

type fakeContactRepo struct {
	stored map[int64]*models.Contact
	lastID int64
}

func (f *fakeContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	f.lastID++
	contact.ID = f.lastID
	if f.stored == nil {
		f.stored = map[int64]*models.Contact{}
	}
	f.stored[contact.ID] = contact
	return nil
}

func (f *fakeContactRepo) GetAll(ctx context.Context) ([]models.Contact, error) {
	out := make([]models.Contact, 0, len(f.stored))
	for _, c := range f.stored {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeContactRepo) UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) (*models.Contact, error) {
	c, ok := f.stored[id]
	if !ok {
		return nil, apperrors.ErrContactNotFound
	}
	c.Status = status
	return c, nil
}

func TestContactCreateStartsPending(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{})

	contact, err := svc.Create(context.Background(), &dto.CreateContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Admission query",
		Message: "When does the next intake open?",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if contact.Status != models.ContactPending {
		t.Errorf("Status = %q, want Pending", contact.Status)
	}
	if contact.UserID != nil {
		t.Errorf("UserID = %v, want nil for anonymous sender", contact.UserID)
	}
}

func TestContactCreateKeepsUserReference(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{})
	userID := int64(17)

	contact, err := svc.Create(context.Background(), &dto.CreateContactRequest{
		Name:    "Logged-in user",
		Email:   "stud@shs.edu.in",
		Subject: "Hostel",
		Message: "Wifi down in block C",
		UserID:  &userID,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if contact.UserID == nil || *contact.UserID != 17 {
		t.Errorf("UserID = %v, want 17", contact.UserID)
	}
}

func TestContactUpdateStatus(t *testing.T) {
	repo := &fakeContactRepo{stored: map[int64]*models.Contact{
		1: {ID: 1, Status: models.ContactPending},
	}}
	svc := NewContactService(repo)

	contact, err := svc.UpdateStatus(context.Background(), 1, models.ContactResolved)
	if err != nil {
		t.Fatalf("UpdateStatus() error: %v", err)
	}
	if contact.Status != models.ContactResolved {
		t.Errorf("Status = %q, want Resolved", contact.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), 99, models.ContactRead); !errors.Is(err, apperrors.ErrContactNotFound) {
		t.Errorf("UpdateStatus(99) error = %v, want ErrContactNotFound", err)
	}
}
