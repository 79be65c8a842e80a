package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/mentorlink/mentorship-service/internal/auth"
	"github.com/mentorlink/mentorship-service/internal/cache"
	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/repositories"
	"github.com/mentorlink/mentorship-service/internal/validator"
)

type accountService struct {
	repo      repositories.Repository
	tokens    *auth.TokenManager
	cache     *cache.CacheHelper
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAccountService(repo repositories.Repository, tokens *auth.TokenManager, cacheHelper *cache.CacheHelper, logger *slog.Logger, validator *validator.Validator) AccountService {
	return &accountService{
		repo:      repo,
		tokens:    tokens,
		cache:     cacheHelper,
		logger:    logger,
		validator: validator,
	}
}

// ===== AUTHENTICATION =====

func (s *accountService) Register(ctx context.Context, req *models.RegisterRequest) (*models.PublicUser, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.User().ExistsByEmail(ctx, nil, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
		Bio:      req.Bio,
		Skills:   datatypes.NewJSONSlice(req.Skills),
		Goals:    req.Goals,
		Industry: req.Industry,
	}

	if err := s.repo.User().Create(ctx, nil, user); err != nil {
		// The unique index can still fire under concurrent registration.
		if repositories.IsDuplicateError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	s.invalidateMentorCache(ctx)

	return user.Public(), nil
}

func (s *accountService) Login(ctx context.Context, req *models.LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User().GetByEmail(ctx, nil, req.Email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return &LoginResponse{Token: token, User: user.Public()}, nil
}

// ===== PROFILE =====

func (s *accountService) GetProfile(ctx context.Context, userID string) (*models.PublicUser, error) {
	return s.GetUserByID(ctx, userID)
}

func (s *accountService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.PublicUser, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User().GetByID(ctx, nil, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	user.Bio = req.Bio
	user.Skills = datatypes.NewJSONSlice(req.Skills)
	user.Goals = req.Goals
	user.Industry = req.Industry

	if err := s.repo.User().Update(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.invalidateMentorCache(ctx)

	return user.Public(), nil
}

func (s *accountService) GetUserByID(ctx context.Context, id string) (*models.PublicUser, error) {
	user, err := s.repo.User().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user.Public(), nil
}

// ===== ADMIN USER MANAGEMENT =====

func (s *accountService) ListUsers(ctx context.Context) ([]*models.PublicUser, error) {
	users, err := s.repo.User().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return publicUsers(users), nil
}

func (s *accountService) UpdateRole(ctx context.Context, id string, req *models.UpdateRoleRequest) (*models.PublicUser, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if err := s.repo.User().UpdateRole(ctx, nil, id, req.Role); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	s.logger.Info("user role updated", "user_id", id, "role", req.Role)
	s.invalidateMentorCache(ctx)

	return s.GetUserByID(ctx, id)
}

func (s *accountService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.User().Delete(ctx, nil, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", "user_id", id)
	s.invalidateMentorCache(ctx)

	return nil
}

// ===== HELPERS =====

func (s *accountService) invalidateMentorCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, cache.MentorCacheConfig.Prefix+"*"); err != nil {
		s.logger.Warn("failed to invalidate mentor cache", "error", err)
	}
}

func publicUsers(users []*models.User) []*models.PublicUser {
	out := make([]*models.PublicUser, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out
}
