package postgres

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/repositories"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// ===== BASIC CRUD OPERATIONS =====

func (r *userRepository) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return repositories.HandleDBError(err, "create user")
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error) {
	db := r.getDB(tx)
	var user models.User

	if err := db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, repositories.HandleDBError(err, "get user by id")
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error) {
	db := r.getDB(tx)
	var user models.User

	if err := db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, repositories.HandleDBError(err, "get user by email")
	}

	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, repositories.HandleDBError(err, "check email exists")
	}

	return count > 0, nil
}

func (r *userRepository) Update(ctx context.Context, tx *gorm.DB, user *models.User) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Save(user).Error; err != nil {
		return repositories.HandleDBError(err, "update user")
	}
	return nil
}

func (r *userRepository) UpdateRole(ctx context.Context, tx *gorm.DB, id string, role models.UserRole) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role)
	if result.Error != nil {
		return repositories.HandleDBError(result.Error, "update user role")
	}
	if result.RowsAffected == 0 {
		return repositories.HandleDBError(gorm.ErrRecordNotFound, "update user role")
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return repositories.HandleDBError(result.Error, "delete user")
	}
	if result.RowsAffected == 0 {
		return repositories.HandleDBError(gorm.ErrRecordNotFound, "delete user")
	}
	return nil
}

// ===== QUERY OPERATIONS =====

func (r *userRepository) List(ctx context.Context, tx *gorm.DB) ([]*models.User, error) {
	db := r.getDB(tx)
	var users []*models.User

	if err := db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, repositories.HandleDBError(err, "list users")
	}

	return users, nil
}

func (r *userRepository) ListByRole(ctx context.Context, tx *gorm.DB, role models.UserRole) ([]*models.User, error) {
	db := r.getDB(tx)
	var users []*models.User

	if err := db.WithContext(ctx).
		Where("role = ?", role).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, repositories.HandleDBError(err, "list users by role")
	}

	return users, nil
}

func (r *userRepository) FilterMentors(ctx context.Context, tx *gorm.DB, filter models.MentorFilter) ([]*models.User, error) {
	db := r.getDB(tx)
	var users []*models.User

	query := db.WithContext(ctx).Where("role = ?", models.RoleMentor)

	// Exact, case-sensitive membership test against the JSON skill set.
	if filter.Skill != "" {
		query = query.Where(datatypes.JSONArrayQuery("skills").Contains(filter.Skill))
	}
	if filter.Industry != "" {
		query = query.Where("LOWER(industry) = LOWER(?)", filter.Industry)
	}

	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, repositories.HandleDBError(err, "filter mentors")
	}

	return users, nil
}
