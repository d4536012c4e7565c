package services

import (
	"context"
	"fmt"

	"github.com/shs-edu/campus-portal/internal/app/models"
	"github.com/shs-edu/campus-portal/internal/app/models/dto"
	"github.com/shs-edu/campus-portal/internal/app/repositories"
)

// ContactService defines the interface for contact message operations
type ContactService interface {
	Create(ctx context.Context, req *dto.CreateContactRequest) (*models.Contact, error)
	List(ctx context.Context) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) (*models.Contact, error)
}

// contactServiceImpl implements ContactService
type contactServiceImpl struct {
	contactRepo repositories.IContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repositories.IContactRepository) ContactService {
	return &contactServiceImpl{contactRepo: contactRepo}
}

// Create stores an inbound contact message. The user reference, when
// supplied, is a weak link and is not verified against the users table.
func (s *contactServiceImpl) Create(ctx context.Context, req *dto.CreateContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		UserID:  req.UserID,
		Status:  models.ContactPending,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("error creating contact message: %w", err)
	}
	return contact, nil
}

// List retrieves all contact messages, newest first
func (s *contactServiceImpl) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing contact messages: %w", err)
	}
	return contacts, nil
}

// UpdateStatus changes the handling status of a contact message
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) (*models.Contact, error) {
	return s.contactRepo.UpdateStatus(ctx, id, status)
}
