package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shs-edu/campus-portal/internal/app/models"
	"github.com/shs-edu/campus-portal/internal/app/models/dto"
	"github.com/shs-edu/campus-portal/internal/pkg/apperrors"
	"github.com/shs-edu/campus-portal/internal/pkg/logger"
)

// IMaterialRepository defines the interface for material database operations
type IMaterialRepository interface {
	GetAll(ctx context.Context, filter dto.MaterialFilter) ([]models.Material, error)
	GetByID(ctx context.Context, id int64) (*models.Material, error)
	Create(ctx context.Context, material *models.Material) error
	IncrementDownloads(ctx context.Context, id int64) (*models.Material, error)
}

// MaterialRepository handles material database operations
type MaterialRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// materialListConditions builds the WHERE predicate for the material
// listing. Unapproved materials are always excluded; query parameters
// cannot override that.
func materialListConditions(filter dto.MaterialFilter) squirrel.And {
	conditions := squirrel.And{squirrel.Eq{"m.is_approved": true}}

	if filter.Branch != "" {
		conditions = append(conditions, squirrel.Eq{"m.branch": filter.Branch})
	}
	if filter.Semester != 0 {
		conditions = append(conditions, squirrel.Eq{"m.semester": filter.Semester})
	}
	if filter.Subject != "" {
		conditions = append(conditions, squirrel.Eq{"m.subject": filter.Subject})
	}
	if filter.Type != "" {
		conditions = append(conditions, squirrel.Eq{"m.type": filter.Type})
	}

	return conditions
}

func materialSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(
		"m.id", "m.title", "m.description", "m.subject", "m.branch",
		"m.semester", "m.type", "m.file_url", "m.uploaded_by", "m.downloads",
		"m.is_approved", "m.created_at", "m.updated_at",
		"u.name",
	).
		From("materials m").
		Join("users u ON m.uploaded_by = u.id")
}

func scanMaterial(row pgx.Row) (*models.Material, error) {
	material := &models.Material{}
	err := row.Scan(
		&material.ID, &material.Title, &material.Description, &material.Subject,
		&material.Branch, &material.Semester, &material.Type, &material.FileURL,
		&material.UploadedBy, &material.Downloads, &material.IsApproved,
		&material.CreatedAt, &material.UpdatedAt,
		&material.UploaderName,
	)
	if err != nil {
		return nil, err
	}
	return material, nil
}

// GetAll retrieves approved materials matching the filter, newest first,
// with the uploader name resolved.
func (r *MaterialRepository) GetAll(ctx context.Context, filter dto.MaterialFilter) ([]models.Material, error) {
	query := materialSelect(r.sb).
		Where(materialListConditions(filter)).
		OrderBy("m.created_at DESC")

	querySql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list materials SQL")
		return nil, fmt.Errorf("failed to build list materials query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}
	defer rows.Close()

	materials := []models.Material{}
	for rows.Next() {
		material, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material row: %w", err)
		}
		materials = append(materials, *material)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating material rows: %w", err)
	}

	return materials, nil
}

// GetByID retrieves a single material with its uploader resolved
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	querySql, args, err := materialSelect(r.sb).Where(squirrel.Eq{"m.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get material query: %w", err)
	}

	material, err := scanMaterial(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("failed to get material: %w", err)
	}
	return material, nil
}

// Create inserts a new material and fills in the generated fields
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO materials (title, description, subject, branch, semester, type, file_url, uploaded_by, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, downloads, created_at, updated_at`,
		material.Title, material.Description, material.Subject, material.Branch,
		material.Semester, material.Type, material.FileURL, material.UploadedBy,
		material.IsApproved).Scan(
		&material.ID, &material.Downloads, &material.CreatedAt, &material.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating material: %w", err)
	}
	return nil
}

// IncrementDownloads bumps the download counter in a single statement so
// concurrent callers never lose updates, and returns the updated record.
func (r *MaterialRepository) IncrementDownloads(ctx context.Context, id int64) (*models.Material, error) {
	material := &models.Material{}
	err := r.db.QueryRow(ctx, `
		UPDATE materials m
		SET downloads = downloads + 1, updated_at = NOW()
		FROM users u
		WHERE m.id = $1 AND u.id = m.uploaded_by
		RETURNING m.id, m.title, m.description, m.subject, m.branch, m.semester,
		          m.type, m.file_url, m.uploaded_by, m.downloads, m.is_approved,
		          m.created_at, m.updated_at, u.name`,
		id).Scan(
		&material.ID, &material.Title, &material.Description, &material.Subject,
		&material.Branch, &material.Semester, &material.Type, &material.FileURL,
		&material.UploadedBy, &material.Downloads, &material.IsApproved,
		&material.CreatedAt, &material.UpdatedAt,
		&material.UploaderName)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("error incrementing downloads: %w", err)
	}
	return material, nil
}
