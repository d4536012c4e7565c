package services

import (
	"context"
	"fmt"

	"github.com/shs-edu/campus-portal/internal/app/models"
	"github.com/shs-edu/campus-portal/internal/app/models/dto"
	"github.com/shs-edu/campus-portal/internal/app/repositories"
)

// NoticeService defines the interface for notice operations
type NoticeService interface {
	List(ctx context.Context, filter dto.NoticeFilter) ([]models.Notice, error)
	Create(ctx context.Context, actor *models.User, req *dto.CreateNoticeRequest) (*models.Notice, error)
	Update(ctx context.Context, id int64, req *dto.UpdateNoticeRequest) (*models.Notice, error)
	Delete(ctx context.Context, id int64) error
}

// noticeServiceImpl implements NoticeService
type noticeServiceImpl struct {
	noticeRepo repositories.INoticeRepository
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(noticeRepo repositories.INoticeRepository) NoticeService {
	return &noticeServiceImpl{noticeRepo: noticeRepo}
}

// List retrieves visible notices matching the filter
func (s *noticeServiceImpl) List(ctx context.Context, filter dto.NoticeFilter) ([]models.Notice, error) {
	notices, err := s.noticeRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing notices: %w", err)
	}
	return notices, nil
}

// Create posts a new notice on behalf of the actor. The poster reference
// comes from the authenticated user, never from the payload.
func (s *noticeServiceImpl) Create(ctx context.Context, actor *models.User, req *dto.CreateNoticeRequest) (*models.Notice, error) {
	notice := &models.Notice{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Branch:      req.Branch,
		PostedBy:    actor.ID,
		Attachments: req.Attachments,
		Priority:    req.Priority,
		ExpiryDate:  req.ExpiryDate,
		IsActive:    true,
	}
	if notice.Branch == "" {
		notice.Branch = models.BranchAll
	}
	if notice.Priority == "" {
		notice.Priority = models.PriorityMedium
	}
	if notice.Attachments == nil {
		notice.Attachments = []models.Attachment{}
	}

	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, fmt.Errorf("error creating notice: %w", err)
	}

	notice.Poster = &models.NoticePoster{ID: actor.ID, Name: actor.Name, Role: actor.Role}
	return notice, nil
}

// Update rewrites an existing notice by primary key
func (s *noticeServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateNoticeRequest) (*models.Notice, error) {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	notice.Title = req.Title
	notice.Description = req.Description
	notice.Category = req.Category
	if req.Branch != "" {
		notice.Branch = req.Branch
	}
	if req.Attachments != nil {
		notice.Attachments = req.Attachments
	}
	if req.Priority != "" {
		notice.Priority = req.Priority
	}
	notice.ExpiryDate = req.ExpiryDate
	if req.IsActive != nil {
		notice.IsActive = *req.IsActive
	}

	if err := s.noticeRepo.Update(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// Delete removes a notice by primary key
func (s *noticeServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.noticeRepo.Delete(ctx, id)
}
