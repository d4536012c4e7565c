package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	NoticeRepository   *NoticeRepository
	MaterialRepository *MaterialRepository
	ContactRepository  *ContactRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		NoticeRepository:   NewNoticeRepository(db),
		MaterialRepository: NewMaterialRepository(db),
		ContactRepository:  NewContactRepository(db),
	}
}
