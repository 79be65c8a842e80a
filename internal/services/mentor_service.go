package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mentorlink/mentorship-service/internal/cache"
	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/repositories"
)

type mentorService struct {
	repo   repositories.Repository
	cache  *cache.CacheHelper
	logger *slog.Logger
}

func NewMentorService(repo repositories.Repository, cacheHelper *cache.CacheHelper, logger *slog.Logger) MentorService {
	return &mentorService{
		repo:   repo,
		cache:  cacheHelper,
		logger: logger,
	}
}

func (s *mentorService) ListMentors(ctx context.Context) ([]*models.PublicUser, error) {
	cacheKey := cache.MentorCacheConfig.Prefix + "all"

	var cached []*models.PublicUser
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheNotFound) && !errors.Is(err, cache.ErrCacheNotAvailable) {
		s.logger.Warn("mentor cache read failed", "error", err)
	}

	mentors, err := s.repo.User().ListByRole(ctx, nil, models.RoleMentor)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}

	result := publicUsers(mentors)
	if err := s.cache.Set(ctx, cacheKey, result, cache.MentorCacheConfig.TTL); err != nil {
		s.logger.Warn("mentor cache write failed", "error", err)
	}

	return result, nil
}

func (s *mentorService) FilterMentors(ctx context.Context, filter models.MentorFilter) ([]*models.PublicUser, error) {
	if filter.Skill == "" && filter.Industry == "" {
		return s.ListMentors(ctx)
	}

	cacheKey := fmt.Sprintf("%sfilter:%s:%s",
		cache.MentorCacheConfig.Prefix, filter.Skill, strings.ToLower(filter.Industry))

	var cached []*models.PublicUser
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	mentors, err := s.repo.User().FilterMentors(ctx, nil, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter mentors: %w", err)
	}

	result := publicUsers(mentors)
	if err := s.cache.Set(ctx, cacheKey, result, cache.MentorCacheConfig.TTL); err != nil {
		s.logger.Warn("mentor cache write failed", "error", err)
	}

	return result, nil
}

func (s *mentorService) GetMentorByID(ctx context.Context, id string) (*models.PublicUser, error) {
	user, err := s.repo.User().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrMentorNotFound
		}
		return nil, fmt.Errorf("failed to get mentor: %w", err)
	}

	// A user that exists but is not a mentor is indistinguishable from a
	// missing one to directory callers.
	if user.Role != models.RoleMentor {
		return nil, ErrMentorNotFound
	}

	return user.Public(), nil
}
