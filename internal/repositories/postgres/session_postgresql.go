package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/repositories"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) repositories.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// ===== BASIC CRUD OPERATIONS =====

func (r *sessionRepository) Create(ctx context.Context, tx *gorm.DB, session *models.SessionRequest) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(session).Error; err != nil {
		return repositories.HandleDBError(err, "create session request")
	}
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.SessionRequest, error) {
	db := r.getDB(tx)
	var session models.SessionRequest

	if err := db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, repositories.HandleDBError(err, "get session request by id")
	}

	return &session, nil
}

func (r *sessionRepository) Update(ctx context.Context, tx *gorm.DB, session *models.SessionRequest) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Save(session).Error; err != nil {
		return repositories.HandleDBError(err, "update session request")
	}
	return nil
}

// ===== QUERY OPERATIONS =====

func (r *sessionRepository) ListByMentor(ctx context.Context, tx *gorm.DB, mentorID string) ([]*models.SessionRequest, error) {
	return r.list(ctx, tx, "list requests by mentor", "mentor_id = ?", mentorID)
}

func (r *sessionRepository) ListByMentee(ctx context.Context, tx *gorm.DB, menteeID string) ([]*models.SessionRequest, error) {
	return r.list(ctx, tx, "list requests by mentee", "mentee_id = ?", menteeID)
}

func (r *sessionRepository) ListAcceptedByMentor(ctx context.Context, tx *gorm.DB, mentorID string) ([]*models.SessionRequest, error) {
	return r.list(ctx, tx, "list accepted sessions by mentor",
		"mentor_id = ? AND status = ?", mentorID, models.SessionAccepted)
}

func (r *sessionRepository) ListAcceptedByMentee(ctx context.Context, tx *gorm.DB, menteeID string) ([]*models.SessionRequest, error) {
	return r.list(ctx, tx, "list accepted sessions by mentee",
		"mentee_id = ? AND status = ?", menteeID, models.SessionAccepted)
}

func (r *sessionRepository) ListAccepted(ctx context.Context, tx *gorm.DB) ([]*models.SessionRequest, error) {
	return r.list(ctx, tx, "list accepted sessions", "status = ?", models.SessionAccepted)
}

func (r *sessionRepository) list(ctx context.Context, tx *gorm.DB, op string, conds ...interface{}) ([]*models.SessionRequest, error) {
	db := r.getDB(tx)
	var sessions []*models.SessionRequest

	query := db.WithContext(ctx).
		Preload("Mentor").
		Preload("Mentee").
		Order("created_at DESC")
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}

	if err := query.Find(&sessions).Error; err != nil {
		return nil, repositories.HandleDBError(err, op)
	}

	return sessions, nil
}

// ===== STATISTICS =====

// StatusCounts aggregates counts in a single grouped query so the four
// numbers are one consistent snapshot.
func (r *sessionRepository) StatusCounts(ctx context.Context, tx *gorm.DB) (*models.SessionStats, error) {
	db := r.getDB(tx)

	var rows []struct {
		Status models.SessionStatus
		Count  int64
	}

	if err := db.WithContext(ctx).
		Model(&models.SessionRequest{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, repositories.HandleDBError(err, "count sessions by status")
	}

	stats := &models.SessionStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case models.SessionAccepted:
			stats.Accepted = row.Count
		case models.SessionRejected:
			stats.Rejected = row.Count
		case models.SessionPending:
			stats.Pending = row.Count
		}
	}

	return stats, nil
}
