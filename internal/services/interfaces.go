package services

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/mentorlink/mentorship-service/internal/models"
)

// ===== RESPONSE DTOs =====

// LoginResponse carries the signed token together with the public view of
// the authenticated user.
type LoginResponse struct {
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}

// MatchResponse is an accepted session joined with short mentor/mentee
// summaries, as shown to admins.
type MatchResponse struct {
	*models.SessionRequest
	MentorSummary *models.UserSummary `json:"mentor_summary,omitempty"`
	MenteeSummary *models.UserSummary `json:"mentee_summary,omitempty"`
}

// ===== SERVICE INTERFACES =====

// AccountService covers registration, login, profiles and admin user
// management. Role gating happens in the HTTP layer; these methods trust
// their caller.
type AccountService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.PublicUser, error)
	Login(ctx context.Context, req *models.LoginRequest) (*LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (*models.PublicUser, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.PublicUser, error)
	GetUserByID(ctx context.Context, id string) (*models.PublicUser, error)

	ListUsers(ctx context.Context) ([]*models.PublicUser, error)
	UpdateRole(ctx context.Context, id string, req *models.UpdateRoleRequest) (*models.PublicUser, error)
	DeleteUser(ctx context.Context, id string) error
}

// MentorService is the public mentor directory.
type MentorService interface {
	ListMentors(ctx context.Context) ([]*models.PublicUser, error)
	FilterMentors(ctx context.Context, filter models.MentorFilter) ([]*models.PublicUser, error)
	GetMentorByID(ctx context.Context, id string) (*models.PublicUser, error)
}

// SessionService drives the request/respond/feedback lifecycle.
type SessionService interface {
	Request(ctx context.Context, menteeID string, req *models.RequestSessionRequest) (*models.SessionRequest, error)
	ListReceived(ctx context.Context, mentorID string) ([]*models.SessionRequest, error)
	ListSent(ctx context.Context, menteeID string) ([]*models.SessionRequest, error)
	Respond(ctx context.Context, id uint, mentorID string, req *models.RespondRequest) (*models.SessionRequest, error)
	SubmitFeedback(ctx context.Context, id uint, menteeID string, req *models.FeedbackRequest) (*models.SessionRequest, error)
	AddComment(ctx context.Context, id uint, mentorID string, req *models.MentorCommentRequest) (*models.SessionRequest, error)
	ListAcceptedForMentor(ctx context.Context, mentorID string) ([]*models.SessionRequest, error)
	ListAcceptedForMentee(ctx context.Context, menteeID string) ([]*models.SessionRequest, error)
}

// AvailabilityService manages mentor time slots.
type AvailabilityService interface {
	SetAvailability(ctx context.Context, mentorID string, req *models.AvailabilityRequest) (*models.Availability, error)
	ListForMentor(ctx context.Context, mentorID string) ([]*models.Availability, error)
}

// AdminService is the oversight surface: matches, stats, manual assignment
// and export.
type AdminService interface {
	ListMatches(ctx context.Context) ([]*MatchResponse, error)
	SessionStats(ctx context.Context) (*models.SessionStats, error)
	AssignMentor(ctx context.Context, req *models.AssignMatchRequest) (*models.SessionRequest, error)
	ExportMatches(ctx context.Context) (*excelize.File, error)
}

// ServiceManager aggregates all services for handler wiring.
type ServiceManager interface {
	Account() AccountService
	Mentor() MentorService
	Session() SessionService
	Availability() AvailabilityService
	Admin() AdminService

	Shutdown(ctx context.Context) error
}
