package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mentorlink/mentorship-service/internal/events"
	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/repositories"
	"github.com/mentorlink/mentorship-service/internal/validator"
)

// SessionPolicy tunes optional lifecycle rules. The zero value matches the
// permissive behavior of the original workflow: feedback and comments are
// accepted regardless of session status.
type SessionPolicy struct {
	FeedbackRequiresAccepted bool
}

type sessionService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	policy    SessionPolicy
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSessionService(repo repositories.Repository, publisher events.EventPublisher, policy SessionPolicy, logger *slog.Logger, validator *validator.Validator) SessionService {
	return &sessionService{
		repo:      repo,
		publisher: publisher,
		policy:    policy,
		logger:    logger,
		validator: validator,
	}
}

// ===== LIFECYCLE =====

func (s *sessionService) Request(ctx context.Context, menteeID string, req *models.RequestSessionRequest) (*models.SessionRequest, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	session := &models.SessionRequest{
		MentorID: req.MentorID,
		MenteeID: menteeID,
		Topic:    req.Topic,
		Status:   models.SessionPending,
	}

	if err := s.repo.Session().Create(ctx, nil, session); err != nil {
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}

	s.logger.Info("session requested", "session_id", session.ID, "mentor_id", session.MentorID, "mentee_id", menteeID)
	s.publish(ctx, events.SessionRequested, session)

	return session, nil
}

func (s *sessionService) ListReceived(ctx context.Context, mentorID string) ([]*models.SessionRequest, error) {
	sessions, err := s.repo.Session().ListByMentor(ctx, nil, mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list received requests: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListSent(ctx context.Context, menteeID string) ([]*models.SessionRequest, error) {
	sessions, err := s.repo.Session().ListByMentee(ctx, nil, menteeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent requests: %w", err)
	}
	return sessions, nil
}

// Respond sets the status of a request owned by the calling mentor. There
// is no terminal-state guard: responding twice overwrites the previous
// status (last write wins).
func (s *sessionService) Respond(ctx context.Context, id uint, mentorID string, req *models.RespondRequest) (*models.SessionRequest, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	session, err := s.loadOwnedByMentor(ctx, id, mentorID)
	if err != nil {
		return nil, err
	}

	session.Status = req.Status
	if err := s.repo.Session().Update(ctx, nil, session); err != nil {
		return nil, fmt.Errorf("failed to update session status: %w", err)
	}

	s.logger.Info("session responded", "session_id", id, "status", req.Status)
	if req.Status == models.SessionAccepted {
		s.publish(ctx, events.SessionAccepted, session)
	} else {
		s.publish(ctx, events.SessionRejected, session)
	}

	return session, nil
}

func (s *sessionService) SubmitFeedback(ctx context.Context, id uint, menteeID string, req *models.FeedbackRequest) (*models.SessionRequest, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	session, err := s.loadOwnedByMentee(ctx, id, menteeID)
	if err != nil {
		return nil, err
	}

	if s.policy.FeedbackRequiresAccepted && session.Status != models.SessionAccepted {
		return nil, ErrFeedbackNotAllowed
	}

	session.Feedback = &req.Feedback
	rating := req.Rating
	session.Rating = &rating

	if err := s.repo.Session().Update(ctx, nil, session); err != nil {
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}

	s.logger.Info("feedback submitted", "session_id", id, "rating", rating)
	s.publish(ctx, events.SessionFeedback, session)

	return session, nil
}

func (s *sessionService) AddComment(ctx context.Context, id uint, mentorID string, req *models.MentorCommentRequest) (*models.SessionRequest, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	session, err := s.loadOwnedByMentor(ctx, id, mentorID)
	if err != nil {
		return nil, err
	}

	if s.policy.FeedbackRequiresAccepted && session.Status != models.SessionAccepted {
		return nil, ErrFeedbackNotAllowed
	}

	session.MentorComment = &req.MentorComment
	if err := s.repo.Session().Update(ctx, nil, session); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	s.logger.Info("mentor comment added", "session_id", id)

	return session, nil
}

func (s *sessionService) ListAcceptedForMentor(ctx context.Context, mentorID string) ([]*models.SessionRequest, error) {
	sessions, err := s.repo.Session().ListAcceptedByMentor(ctx, nil, mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accepted sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListAcceptedForMentee(ctx context.Context, menteeID string) ([]*models.SessionRequest, error) {
	sessions, err := s.repo.Session().ListAcceptedByMentee(ctx, nil, menteeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accepted sessions: %w", err)
	}
	return sessions, nil
}

// ===== HELPERS =====

func (s *sessionService) loadOwnedByMentor(ctx context.Context, id uint, mentorID string) (*models.SessionRequest, error) {
	session, err := s.repo.Session().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.MentorID != mentorID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionService) loadOwnedByMentee(ctx context.Context, id uint, menteeID string) (*models.SessionRequest, error) {
	session, err := s.repo.Session().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.MenteeID != menteeID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// publish sends a lifecycle event; delivery failures are logged, never
// surfaced to the request.
func (s *sessionService) publish(ctx context.Context, eventType string, session *models.SessionRequest) {
	event := events.NewEvent(eventType, &events.SessionEventData{
		SessionID: session.ID,
		MentorID:  session.MentorID,
		MenteeID:  session.MenteeID,
		Topic:     session.Topic,
		Status:    string(session.Status),
		Rating:    session.Rating,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish session event", "event_type", eventType, "error", err)
	}
}
