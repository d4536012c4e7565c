package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shs-edu/campus-portal/internal/app/models"
	"github.com/shs-edu/campus-portal/internal/pkg/apperrors"
)

// IContactRepository defines the interface for contact database operations
type IContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetAll(ctx context.Context) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) (*models.Contact, error)
}

// ContactRepository handles contact database operations
type ContactRepository struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact message
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO contacts (name, email, subject, message, user_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		contact.Name, contact.Email, contact.Subject, contact.Message,
		contact.UserID, contact.Status).Scan(
		&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating contact message: %w", err)
	}
	return nil
}

// GetAll retrieves all contact messages, newest first, with the submitting
// user resolved when the weak reference is set.
func (r *ContactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, c.email, c.subject, c.message, c.user_id, c.status,
		       c.created_at, c.updated_at, u.id, u.name, u.email
		FROM contacts c
		LEFT JOIN users u ON c.user_id = u.id
		ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		contact := models.Contact{}
		var submitterID sql.NullInt64
		var submitterName, submitterEmail sql.NullString

		err := rows.Scan(
			&contact.ID, &contact.Name, &contact.Email, &contact.Subject,
			&contact.Message, &contact.UserID, &contact.Status,
			&contact.CreatedAt, &contact.UpdatedAt,
			&submitterID, &submitterName, &submitterEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}

		if submitterID.Valid {
			contact.Submitter = &models.ContactSubmitter{
				ID:    submitterID.Int64,
				Name:  submitterName.String,
				Email: submitterEmail.String,
			}
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}

	return contacts, nil
}

// UpdateStatus changes the handling status of a contact message by primary
// key. A miss surfaces as apperrors.ErrContactNotFound.
func (r *ContactRepository) UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) (*models.Contact, error) {
	contact := &models.Contact{}
	err := r.db.QueryRow(ctx, `
		UPDATE contacts
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, email, subject, message, user_id, status, created_at, updated_at`,
		status, id).Scan(
		&contact.ID, &contact.Name, &contact.Email, &contact.Subject,
		&contact.Message, &contact.UserID, &contact.Status,
		&contact.CreatedAt, &contact.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("error updating contact status: %w", err)
	}
	return contact, nil
}
