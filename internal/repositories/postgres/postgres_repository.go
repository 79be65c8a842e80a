package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mentorlink/mentorship-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface.
type PostgreSQLRepository struct {
	db *gorm.DB

	user         repositories.UserRepository
	session      repositories.SessionRepository
	availability repositories.AvailabilityRepository
}

// NewPostgreSQLRepository creates a repository manager with all
// sub-repositories.
func NewPostgreSQLRepository(db *gorm.DB) repositories.Repository {
	return &PostgreSQLRepository{
		db:           db,
		user:         NewUserRepository(db),
		session:      NewSessionRepository(db),
		availability: NewAvailabilityRepository(db),
	}
}

func (r *PostgreSQLRepository) User() repositories.UserRepository {
	return r.user
}

func (r *PostgreSQLRepository) Session() repositories.SessionRepository {
	return r.session
}

func (r *PostgreSQLRepository) Availability() repositories.AvailabilityRepository {
	return r.availability
}

// WithTransaction runs fn inside a database transaction, handing it a
// repository view bound to that transaction.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewPostgreSQLRepository(tx))
	})
}

func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
