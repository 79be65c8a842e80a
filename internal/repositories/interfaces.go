package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/mentorlink/mentorship-service/internal/models"
)

// UserRepository provides persistence for users and the mentor directory.
// The tx parameter joins an outer transaction when non-nil.
type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, user *models.User) error
	UpdateRole(ctx context.Context, tx *gorm.DB, id string, role models.UserRole) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error
	List(ctx context.Context, tx *gorm.DB) ([]*models.User, error)
	ListByRole(ctx context.Context, tx *gorm.DB, role models.UserRole) ([]*models.User, error)
	FilterMentors(ctx context.Context, tx *gorm.DB, filter models.MentorFilter) ([]*models.User, error)
}

// SessionRepository provides persistence for session requests.
type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *models.SessionRequest) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.SessionRequest, error)
	Update(ctx context.Context, tx *gorm.DB, session *models.SessionRequest) error
	ListByMentor(ctx context.Context, tx *gorm.DB, mentorID string) ([]*models.SessionRequest, error)
	ListByMentee(ctx context.Context, tx *gorm.DB, menteeID string) ([]*models.SessionRequest, error)
	ListAcceptedByMentor(ctx context.Context, tx *gorm.DB, mentorID string) ([]*models.SessionRequest, error)
	ListAcceptedByMentee(ctx context.Context, tx *gorm.DB, menteeID string) ([]*models.SessionRequest, error)
	ListAccepted(ctx context.Context, tx *gorm.DB) ([]*models.SessionRequest, error)
	StatusCounts(ctx context.Context, tx *gorm.DB) (*models.SessionStats, error)
}

// AvailabilityRepository provides persistence for mentor time slots.
type AvailabilityRepository interface {
	Create(ctx context.Context, tx *gorm.DB, slot *models.Availability) error
	ListByMentor(ctx context.Context, tx *gorm.DB, mentorID string) ([]*models.Availability, error)
}

// Repository aggregates all sub-repositories.
type Repository interface {
	User() UserRepository
	Session() SessionRepository
	Availability() AvailabilityRepository

	WithTransaction(ctx context.Context, fn func(Repository) error) error
	Ping(ctx context.Context) error
}
