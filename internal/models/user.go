package models

import (
	"time"

	"gorm.io/datatypes"
)

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleMentor UserRole = "MENTOR"
	RoleMentee UserRole = "MENTEE"
)

// ValidRole reports whether r is one of the three supported roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleMentor, RoleMentee:
		return true
	}
	return false
}

type User struct {
	ID    string   `json:"id" gorm:"primaryKey;size:255"`
	Name  string   `json:"name" gorm:"not null;size:100"`
	Email string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Role  UserRole `json:"role" gorm:"not null;size:20;index"`

	// Password holds the bcrypt hash. It is never serialized.
	Password string `json:"-" gorm:"not null;size:255"`

	// Profile info
	Bio      *string                     `json:"bio" gorm:"type:text"`
	Skills   datatypes.JSONSlice[string] `json:"skills"`
	Goals    *string                     `json:"goals" gorm:"type:text"`
	Industry *string                     `json:"industry" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is the credential-free projection returned by the mentor
// directory and by admin listings.
type PublicUser struct {
	ID       string                      `json:"id"`
	Name     string                      `json:"name"`
	Email    string                      `json:"email"`
	Role     UserRole                    `json:"role"`
	Bio      *string                     `json:"bio"`
	Skills   datatypes.JSONSlice[string] `json:"skills"`
	Goals    *string                     `json:"goals"`
	Industry *string                     `json:"industry"`

	CreatedAt time.Time `json:"created_at"`
}

// Public strips the credential from a User.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Bio:       u.Bio,
		Skills:    u.Skills,
		Goals:     u.Goals,
		Industry:  u.Industry,
		CreatedAt: u.CreatedAt,
	}
}

// UserSummary is the short mentor/mentee projection embedded in session
// listings and admin match views.
type UserSummary struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
