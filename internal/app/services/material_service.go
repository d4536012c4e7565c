package services

import (
	"context"
	"fmt"

	"github.com/shs-edu/campus-portal/internal/app/models"
	"github.com/shs-edu/campus-portal/internal/app/models/dto"
	"github.com/shs-edu/campus-portal/internal/app/repositories"
)

// MaterialService defines the interface for material operations
type MaterialService interface {
	List(ctx context.Context, filter dto.MaterialFilter) ([]models.Material, error)
	Create(ctx context.Context, actor *models.User, req *dto.CreateMaterialRequest) (*models.Material, error)
	Download(ctx context.Context, id int64) (*models.Material, error)
}

// materialServiceImpl implements MaterialService
type materialServiceImpl struct {
	materialRepo repositories.IMaterialRepository
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(materialRepo repositories.IMaterialRepository) MaterialService {
	return &materialServiceImpl{materialRepo: materialRepo}
}

// List retrieves approved materials matching the filter
func (s *materialServiceImpl) List(ctx context.Context, filter dto.MaterialFilter) ([]models.Material, error) {
	materials, err := s.materialRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing materials: %w", err)
	}
	return materials, nil
}

// Create uploads a material on behalf of the actor. The uploader reference
// is stamped from the authenticated user and the approval state is derived
// from the actor's role; neither is taken from the payload.
func (s *materialServiceImpl) Create(ctx context.Context, actor *models.User, req *dto.CreateMaterialRequest) (*models.Material, error) {
	material := &models.Material{
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		Branch:      req.Branch,
		Semester:    req.Semester,
		Type:        req.Type,
		FileURL:     req.FileURL,
		UploadedBy:  actor.ID,
		IsApproved:  models.ApprovalForRole(actor.Role),
	}

	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, fmt.Errorf("error creating material: %w", err)
	}

	material.UploaderName = actor.Name
	return material, nil
}

// Download bumps the download counter atomically and returns the updated
// record. The operation is public and carries no idempotency guarantee.
func (s *materialServiceImpl) Download(ctx context.Context, id int64) (*models.Material, error) {
	return s.materialRepo.IncrementDownloads(ctx, id)
}
