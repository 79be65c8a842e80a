package models

import "time"

// Availability is a weekly time slot a mentor offers. Slots are free-form:
// overlap and start<end are not validated.
type Availability struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	MentorID  string `json:"mentor_id" gorm:"not null;index;size:255"`
	Day       string `json:"day" gorm:"not null;size:20"`
	StartTime string `json:"start_time" gorm:"not null;size:20"`
	EndTime   string `json:"end_time" gorm:"not null;size:20"`

	CreatedAt time.Time `json:"created_at"`

	Mentor *User `json:"mentor,omitempty" gorm:"foreignKey:MentorID"`
}

func (Availability) TableName() string {
	return "availabilities"
}
