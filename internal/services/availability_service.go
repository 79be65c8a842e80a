package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/repositories"
	"github.com/mentorlink/mentorship-service/internal/validator"
)

type availabilityService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAvailabilityService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) AvailabilityService {
	return &availabilityService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// SetAvailability records a new slot. Slots are free-form: overlapping
// entries and inverted start/end are accepted as-is.
func (s *availabilityService) SetAvailability(ctx context.Context, mentorID string, req *models.AvailabilityRequest) (*models.Availability, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	slot := &models.Availability{
		MentorID:  mentorID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := s.repo.Availability().Create(ctx, nil, slot); err != nil {
		return nil, fmt.Errorf("failed to create availability slot: %w", err)
	}

	s.logger.Info("availability set", "mentor_id", mentorID, "day", req.Day)

	return slot, nil
}

func (s *availabilityService) ListForMentor(ctx context.Context, mentorID string) ([]*models.Availability, error) {
	slots, err := s.repo.Availability().ListByMentor(ctx, nil, mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	return slots, nil
}
