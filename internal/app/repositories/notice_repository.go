package repositories

import (
	"context"
	"encoding/json"
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

// INoticeRepository defines the interface for notice database operations
type INoticeRepository interface {
	GetAll(ctx context.Context, filter dto.NoticeFilter) ([]models.Notice, error)
	GetByID(ctx context.Context, id int64) (*models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) error
	Update(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id int64) error
}

// NoticeRepository handles notice database operations
type NoticeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// noticeListConditions builds the WHERE predicate for the notice listing.
// Inactive notices are always excluded. A branch-scoped request matches the
// requested branch or the "All" sentinel; filtering by "All" itself is a
// no-op.
func noticeListConditions(filter dto.NoticeFilter) squirrel.And {
	conditions := squirrel.And{squirrel.Eq{"n.is_active": true}}

	if filter.Branch != "" && filter.Branch != models.BranchAll {
		conditions = append(conditions, squirrel.Or{
			squirrel.Eq{"n.branch": models.BranchAll},
			squirrel.Eq{"n.branch": filter.Branch},
		})
	}
	if filter.Category != "" {
		conditions = append(conditions, squirrel.Eq{"n.category": filter.Category})
	}

	return conditions
}

func noticeSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(
		"n.id", "n.title", "n.description", "n.category", "n.branch",
		"n.posted_by", "n.attachments", "n.priority", "n.expiry_date",
		"n.is_active", "n.created_at", "n.updated_at",
		"u.name", "u.role",
	).
		From("notices n").
		Join("users u ON n.posted_by = u.id")
}

func scanNotice(row pgx.Row) (*models.Notice, error) {
	notice := &models.Notice{}
	poster := &models.NoticePoster{}
	var attachments []byte

	err := row.Scan(
		&notice.ID, &notice.Title, &notice.Description, &notice.Category,
		&notice.Branch, &notice.PostedBy, &attachments, &notice.Priority,
		&notice.ExpiryDate, &notice.IsActive, &notice.CreatedAt, &notice.UpdatedAt,
		&poster.Name, &poster.Role,
	)
	if err != nil {
		return nil, err
	}

	notice.Attachments = []models.Attachment{}
	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &notice.Attachments); err != nil {
			return nil, fmt.Errorf("error decoding attachments: %w", err)
		}
	}
	poster.ID = notice.PostedBy
	notice.Poster = poster

	return notice, nil
}

// GetAll retrieves notices matching the filter, newest first, with the
// poster resolved to a minimal projection.
func (r *NoticeRepository) GetAll(ctx context.Context, filter dto.NoticeFilter) ([]models.Notice, error) {
	query := noticeSelect(r.sb).
		Where(noticeListConditions(filter)).
		OrderBy("n.created_at DESC")

	querySql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list notices SQL")
		return nil, fmt.Errorf("failed to build list notices query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notices: %w", err)
	}
	defer rows.Close()

	notices := []models.Notice{}
	for rows.Next() {
		notice, err := scanNotice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notice row: %w", err)
		}
		notices = append(notices, *notice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notice rows: %w", err)
	}

	return notices, nil
}

// GetByID retrieves a single notice with its poster resolved
func (r *NoticeRepository) GetByID(ctx context.Context, id int64) (*models.Notice, error) {
	querySql, args, err := noticeSelect(r.sb).Where(squirrel.Eq{"n.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get notice query: %w", err)
	}

	notice, err := scanNotice(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("failed to get notice: %w", err)
	}
	return notice, nil
}

// Create inserts a new notice and fills in the generated fields
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	attachments, err := json.Marshal(notice.Attachments)
	if err != nil {
		return fmt.Errorf("error encoding attachments: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO notices (title, description, category, branch, posted_by, attachments, priority, expiry_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		notice.Title, notice.Description, notice.Category, notice.Branch,
		notice.PostedBy, attachments, notice.Priority, notice.ExpiryDate,
		notice.IsActive).Scan(&notice.ID, &notice.CreatedAt, &notice.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating notice: %w", err)
	}
	return nil
}

// Update rewrites a notice by primary key. A miss surfaces as
// apperrors.ErrNoticeNotFound.
func (r *NoticeRepository) Update(ctx context.Context, notice *models.Notice) error {
	attachments, err := json.Marshal(notice.Attachments)
	if err != nil {
		return fmt.Errorf("error encoding attachments: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		UPDATE notices
		SET title = $1, description = $2, category = $3, branch = $4,
		    attachments = $5, priority = $6, expiry_date = $7, is_active = $8,
		    updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`,
		notice.Title, notice.Description, notice.Category, notice.Branch,
		attachments, notice.Priority, notice.ExpiryDate, notice.IsActive,
		notice.ID).Scan(&notice.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNoticeNotFound
		}
		return fmt.Errorf("error updating notice: %w", err)
	}
	return nil
}

// Delete removes a notice by primary key
func (r *NoticeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting notice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}
	return nil
}
