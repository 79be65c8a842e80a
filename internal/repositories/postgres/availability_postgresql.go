package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/repositories"
)

type availabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) repositories.AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *availabilityRepository) Create(ctx context.Context, tx *gorm.DB, slot *models.Availability) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(slot).Error; err != nil {
		return repositories.HandleDBError(err, "create availability slot")
	}
	return nil
}

func (r *availabilityRepository) ListByMentor(ctx context.Context, tx *gorm.DB, mentorID string) ([]*models.Availability, error) {
	db := r.getDB(tx)
	var slots []*models.Availability

	if err := db.WithContext(ctx).
		Where("mentor_id = ?", mentorID).
		Order("created_at ASC").
		Find(&slots).Error; err != nil {
		return nil, repositories.HandleDBError(err, "list availability by mentor")
	}

	return slots, nil
}
