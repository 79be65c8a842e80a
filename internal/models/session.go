package models

import "time"

type SessionStatus string

const (
	SessionPending  SessionStatus = "pending"
	SessionAccepted SessionStatus = "accepted"
	SessionRejected SessionStatus = "rejected"
)

// TerminalStatus reports whether s is a valid response to a pending request.
func TerminalStatus(s SessionStatus) bool {
	return s == SessionAccepted || s == SessionRejected
}

// SessionRequest is a mentorship session between one mentor and one mentee.
// Status moves pending -> accepted|rejected. Re-applying a terminal status
// is not guarded; last write wins.
type SessionRequest struct {
	ID       uint          `json:"id" gorm:"primaryKey"`
	MentorID string        `json:"mentor_id" gorm:"not null;index;size:255"`
	MenteeID string        `json:"mentee_id" gorm:"not null;index;size:255"`
	Topic    string        `json:"topic" gorm:"not null;size:200"`
	Status   SessionStatus `json:"status" gorm:"not null;default:pending;index;size:20"`

	// Filled in after the session takes place.
	Feedback      *string `json:"feedback" gorm:"type:text"`
	Rating        *int    `json:"rating"`
	MentorComment *string `json:"mentor_comment" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Mentor *User `json:"mentor,omitempty" gorm:"foreignKey:MentorID"`
	Mentee *User `json:"mentee,omitempty" gorm:"foreignKey:MenteeID"`
}

func (SessionRequest) TableName() string {
	return "session_requests"
}
