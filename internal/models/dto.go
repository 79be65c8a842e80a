package models

type RegisterRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=100"`
	Email    string   `json:"email" validate:"required,email,max=255"`
	Password string   `json:"password" validate:"required,min=6,max=72"`
	Role     UserRole `json:"role" validate:"required,oneof=ADMIN MENTOR MENTEE"`
	Bio      *string  `json:"bio" validate:"omitempty,max=2000"`
	Skills   []string `json:"skills"`
	Goals    *string  `json:"goals" validate:"omitempty,max=2000"`
	Industry *string  `json:"industry" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Bio      *string  `json:"bio" validate:"omitempty,max=2000"`
	Skills   []string `json:"skills"`
	Goals    *string  `json:"goals" validate:"omitempty,max=2000"`
	Industry *string  `json:"industry" validate:"omitempty,max=100"`
}

type UpdateRoleRequest struct {
	Role UserRole `json:"role" validate:"required,oneof=ADMIN MENTOR MENTEE"`
}

type RequestSessionRequest struct {
	MentorID string `json:"mentorId" validate:"required"`
	Topic    string `json:"topic" validate:"required,min=1,max=200"`
}

type RespondRequest struct {
	Status SessionStatus `json:"status" validate:"required,oneof=accepted rejected"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,min=1,max=2000"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
}

type MentorCommentRequest struct {
	MentorComment string `json:"mentorComment" validate:"required,min=1,max=2000"`
}

type AvailabilityRequest struct {
	Day       string `json:"day" validate:"required,min=1,max=20"`
	StartTime string `json:"startTime" validate:"required,min=1,max=20"`
	EndTime   string `json:"endTime" validate:"required,min=1,max=20"`
}

type AssignMatchRequest struct {
	MentorID string `json:"mentorId" validate:"required"`
	MenteeID string `json:"menteeId" validate:"required"`
	Topic    string `json:"topic" validate:"required,min=1,max=200"`
}

// MentorFilter carries the optional query filters of the mentor directory.
// Skill is an exact, case-sensitive membership test against the mentor's
// skill set; Industry matches case-insensitively.
type MentorFilter struct {
	Skill    string `json:"skill"`
	Industry string `json:"industry"`
}

// SessionStats is the grouped status aggregate the admin dashboard shows.
// A single GROUP BY query fills it so the counts are one snapshot.
type SessionStats struct {
	Total    int64 `json:"total"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
	Pending  int64 `json:"pending"`
}
