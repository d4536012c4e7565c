package services

import (
	"context"
	"testing"

	"github.com/shs-edu/campus-portal/internal/app/models"
	"github.com/shs-edu/campus-portal/internal/app/models/dto"
	"github.com/shs-edu/campus-portal/internal/pkg/apperrors"
)

type fakeMaterialRepo struct {
	created   *models.Material
	stored    map[int64]*models.Material
	lastID    int64
	getAllErr error
}

func (f *fakeMaterialRepo) GetAll(ctx context.Context, filter dto.MaterialFilter) ([]models.Material, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return []models.Material{}, nil
}

func (f *fakeMaterialRepo) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	m, ok := f.stored[id]
	if !ok {
		return nil, apperrors.ErrMaterialNotFound
	}
	return m, nil
}

func (f *fakeMaterialRepo) Create(ctx context.Context, material *models.Material) error {
	f.lastID++
	material.ID = f.lastID
	f.created = material
	return nil
}

func (f *fakeMaterialRepo) IncrementDownloads(ctx context.Context, id int64) (*models.Material, error) {
	m, ok := f.stored[id]
	if !ok {
		return nil, apperrors.ErrMaterialNotFound
	}
	m.Downloads++
	return m, nil
}

func sampleMaterialRequest() *dto.CreateMaterialRequest {
	return &dto.CreateMaterialRequest{
		Title:       "Data Structures Notes",
		Description: "Unit 1 through 5",
		Subject:     "Data Structures",
		Branch:      models.BranchCSE,
		Semester:    3,
		Type:        models.MaterialNotes,
		FileURL:     "https://files.example.edu/ds-notes.pdf",
	}
}

func TestMaterialCreateStudentUnapproved(t *testing.T) {
	repo := &fakeMaterialRepo{}
	svc := NewMaterialService(repo)
	actor := &models.User{ID: 12, Name: "Ravi Kumar", Role: models.RoleStudent}

	material, err := svc.Create(context.Background(), actor, sampleMaterialRequest())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if material.IsApproved {
		t.Error("student upload was approved, want pending")
	}
	if material.UploadedBy != 12 {
		t.Errorf("UploadedBy = %d, want the actor's id 12", material.UploadedBy)
	}
	if material.UploaderName != "Ravi Kumar" {
		t.Errorf("UploaderName = %q, want the actor's name", material.UploaderName)
	}
}

func TestMaterialCreateFacultyApproved(t *testing.T) {
	for _, role := range []models.Role{models.RoleFaculty, models.RoleAdmin} {
		repo := &fakeMaterialRepo{}
		svc := NewMaterialService(repo)
		actor := &models.User{ID: 3, Name: "Dr. Mehta", Role: role}

		material, err := svc.Create(context.Background(), actor, sampleMaterialRequest())
		if err != nil {
			t.Fatalf("Create() error for %s: %v", role, err)
		}
		if !material.IsApproved {
			t.Errorf("%s upload not approved, want auto-approved", role)
		}
	}
}

func TestMaterialCreateIgnoresPayloadUploader(t *testing.T) {
	repo := &fakeMaterialRepo{}
	svc := NewMaterialService(repo)
	actor := &models.User{ID: 8, Name: "Priya", Role: models.RoleStudent}

	if _, err := svc.Create(context.Background(), actor, sampleMaterialRequest()); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if repo.created.UploadedBy != actor.ID {
		t.Errorf("stored UploadedBy = %d, want %d", repo.created.UploadedBy, actor.ID)
	}
}

func TestMaterialDownloadIncrements(t *testing.T) {
	repo := &fakeMaterialRepo{stored: map[int64]*models.Material{
		7: {ID: 7, Downloads: 41, IsApproved: true},
	}}
	svc := NewMaterialService(repo)

	material, err := svc.Download(context.Background(), 7)
	if err != nil {
		t.Fatalf("Download() error: %v", err)
	}
	if material.Downloads != 42 {
		t.Errorf("Downloads = %d, want 42", material.Downloads)
	}
}

func TestMaterialDownloadMissing(t *testing.T) {
	svc := NewMaterialService(&fakeMaterialRepo{stored: map[int64]*models.Material{}})

	if _, err := svc.Download(context.Background(), 404); err != apperrors.ErrMaterialNotFound {
		t.Errorf("Download() error = %v, want ErrMaterialNotFound", err)
	}
}
