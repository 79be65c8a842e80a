package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Ownership
// mismatches on sessions deliberately surface as ErrSessionNotFound so a
// caller cannot probe which requests exist.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMentorNotFound     = errors.New("mentor not found")
	ErrSessionNotFound    = errors.New("session not found or unauthorized")
	ErrFeedbackNotAllowed = errors.New("session must be accepted first")
)
