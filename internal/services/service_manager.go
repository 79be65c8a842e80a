package services

import (
	"context"
	"log/slog"

	"github.com/mentorlink/mentorship-service/internal/auth"
	"github.com/mentorlink/mentorship-service/internal/cache"
	"github.com/mentorlink/mentorship-service/internal/events"
	"github.com/mentorlink/mentorship-service/internal/repositories"
	"github.com/mentorlink/mentorship-service/internal/validator"
)

// ServiceManagerConfig bundles the dependencies shared by every service.
type ServiceManagerConfig struct {
	Repo      repositories.Repository
	Tokens    *auth.TokenManager
	Publisher events.EventPublisher
	Cache     *cache.CacheHelper
	Logger    *slog.Logger
	Validator *validator.Validator
	Policy    SessionPolicy
}

type serviceManager struct {
	config ServiceManagerConfig

	account      AccountService
	mentor       MentorService
	session      SessionService
	availability AvailabilityService
	admin        AdminService
}

func NewServiceManager(cfg ServiceManagerConfig) ServiceManager {
	return &serviceManager{
		config:       cfg,
		account:      NewAccountService(cfg.Repo, cfg.Tokens, cfg.Cache, cfg.Logger, cfg.Validator),
		mentor:       NewMentorService(cfg.Repo, cfg.Cache, cfg.Logger),
		session:      NewSessionService(cfg.Repo, cfg.Publisher, cfg.Policy, cfg.Logger, cfg.Validator),
		availability: NewAvailabilityService(cfg.Repo, cfg.Logger, cfg.Validator),
		admin:        NewAdminService(cfg.Repo, cfg.Publisher, cfg.Cache, cfg.Logger, cfg.Validator),
	}
}

func (m *serviceManager) Account() AccountService           { return m.account }
func (m *serviceManager) Mentor() MentorService             { return m.mentor }
func (m *serviceManager) Session() SessionService           { return m.session }
func (m *serviceManager) Availability() AvailabilityService { return m.availability }
func (m *serviceManager) Admin() AdminService               { return m.admin }

func (m *serviceManager) Shutdown(_ context.Context) error {
	return m.config.Publisher.Close()
}
