package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/mentorlink/mentorship-service/internal/cache"
	"github.com/mentorlink/mentorship-service/internal/events"
	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/repositories"
	"github.com/mentorlink/mentorship-service/internal/validator"
)

type adminService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	cache     *cache.CacheHelper
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAdminService(repo repositories.Repository, publisher events.EventPublisher, cacheHelper *cache.CacheHelper, logger *slog.Logger, validator *validator.Validator) AdminService {
	return &adminService{
		repo:      repo,
		publisher: publisher,
		cache:     cacheHelper,
		logger:    logger,
		validator: validator,
	}
}

func (s *adminService) ListMatches(ctx context.Context) ([]*MatchResponse, error) {
	sessions, err := s.repo.Session().ListAccepted(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	matches := make([]*MatchResponse, len(sessions))
	for i, session := range sessions {
		matches[i] = toMatchResponse(session)
	}
	return matches, nil
}

// SessionStats returns the grouped status aggregate, briefly cached.
func (s *adminService) SessionStats(ctx context.Context) (*models.SessionStats, error) {
	cacheKey := cache.StatsCacheConfig.Prefix + "sessions"

	var cached models.SessionStats
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheNotFound) && !errors.Is(err, cache.ErrCacheNotAvailable) {
		s.logger.Warn("stats cache read failed", "error", err)
	}

	stats, err := s.repo.Session().StatusCounts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey, stats, cache.StatsCacheConfig.TTL); err != nil {
		s.logger.Warn("stats cache write failed", "error", err)
	}

	return stats, nil
}

// AssignMentor force-creates an accepted session, bypassing the normal
// request/respond flow.
func (s *adminService) AssignMentor(ctx context.Context, req *models.AssignMatchRequest) (*models.SessionRequest, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	session := &models.SessionRequest{
		MentorID: req.MentorID,
		MenteeID: req.MenteeID,
		Topic:    req.Topic,
		Status:   models.SessionAccepted,
	}

	if err := s.repo.Session().Create(ctx, nil, session); err != nil {
		return nil, fmt.Errorf("failed to assign mentor: %w", err)
	}

	s.logger.Info("mentor assigned", "session_id", session.ID, "mentor_id", req.MentorID, "mentee_id", req.MenteeID)

	event := events.NewEvent(events.SessionAssigned, &events.SessionEventData{
		SessionID: session.ID,
		MentorID:  session.MentorID,
		MenteeID:  session.MenteeID,
		Topic:     session.Topic,
		Status:    string(session.Status),
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish assignment event", "error", err)
	}

	return session, nil
}

// ExportMatches renders the accepted matches as an XLSX workbook.
func (s *adminService) ExportMatches(ctx context.Context) (*excelize.File, error) {
	matches, err := s.ListMatches(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Matches"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Mentor", "Mentor Email", "Mentee", "Mentee Email", "Topic", "Rating", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, m := range matches {
		values := []interface{}{
			m.ID,
			summaryName(m.MentorSummary),
			summaryEmail(m.MentorSummary),
			summaryName(m.MenteeSummary),
			summaryEmail(m.MenteeSummary),
			m.Topic,
			ratingValue(m.Rating),
			m.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write match row: %w", err)
			}
		}
	}

	return f, nil
}

// ===== HELPERS =====

func toMatchResponse(session *models.SessionRequest) *MatchResponse {
	match := &MatchResponse{SessionRequest: session}
	if session.Mentor != nil {
		match.MentorSummary = session.Mentor.Summary()
	}
	if session.Mentee != nil {
		match.MenteeSummary = session.Mentee.Summary()
	}
	return match
}

func summaryName(s *models.UserSummary) string {
	if s == nil {
		return ""
	}
	return s.Name
}

func summaryEmail(s *models.UserSummary) string {
	if s == nil {
		return ""
	}
	return s.Email
}

func ratingValue(r *int) interface{} {
	if r == nil {
		return ""
	}
	return *r
}
