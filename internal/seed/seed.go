// Package seed creates the default admin account and a couple of sample
// notices on first boot.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/shs-edu/campus-portal/internal/app/models"
	"github.com/shs-edu/campus-portal/internal/config"
	"github.com/shs-edu/campus-portal/internal/db"
	"github.com/shs-edu/campus-portal/internal/pkg/auth"
)

// CreateDefaultData seeds the default admin and two sample notices.
// Idempotent: it does nothing when an admin user already exists.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, cfg *config.Config, lgr zerolog.Logger) error {
	if !cfg.Seed.Enabled {
		return nil
	}
	if cfg.Seed.AdminPassword == "" {
		lgr.Warn().Msg("Seed enabled but no admin password configured, skipping")
		return nil
	}

	var hasAdmin bool
	err := database.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`, models.RoleAdmin).Scan(&hasAdmin)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if hasAdmin {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var adminID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO users (name, email, password, roll_number, branch, role, is_verified)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			RETURNING id`,
			"Admin User", cfg.Seed.AdminEmail, hashed, "ADMIN001",
			models.BranchCSE, models.RoleAdmin).Scan(&adminID)
		if err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		samples := []struct {
			title       string
			description string
			category    models.NoticeCategory
			branch      models.Branch
			priority    models.NoticePriority
		}{
			{
				title:       "Mid-Semester Exam Schedule",
				description: "Mid-semester examinations will be conducted from 15th to 20th December.",
				category:    models.CategoryExam,
				branch:      models.BranchAll,
				priority:    models.PriorityHigh,
			},
			{
				title:       "Workshop on AI and Machine Learning",
				description: "A workshop on AI/ML will be organized by the CSE department on 10th December.",
				category:    models.CategoryEvent,
				branch:      models.BranchCSE,
				priority:    models.PriorityMedium,
			},
		}

		for _, sample := range samples {
			_, err := tx.Exec(ctx, `
				INSERT INTO notices (title, description, category, branch, posted_by, priority)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				sample.title, sample.description, sample.category, sample.branch,
				adminID, sample.priority)
			if err != nil {
				return fmt.Errorf("failed to create sample notice: %w", err)
			}
		}

		lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Seeded default admin and sample notices")
		return nil
	})
}
