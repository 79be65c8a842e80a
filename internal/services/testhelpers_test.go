package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ===== IN-MEMORY REPOSITORY =====

type fakeRepository struct {
	users        *fakeUserRepo
	sessions     *fakeSessionRepo
	availability *fakeAvailabilityRepo
}

func newFakeRepository() *fakeRepository {
	users := &fakeUserRepo{byID: make(map[string]*models.User)}
	return &fakeRepository{
		users:        users,
		sessions:     &fakeSessionRepo{users: users},
		availability: &fakeAvailabilityRepo{},
	}
}

func (r *fakeRepository) User() repositories.UserRepository                 { return r.users }
func (r *fakeRepository) Session() repositories.SessionRepository           { return r.sessions }
func (r *fakeRepository) Availability() repositories.AvailabilityRepository { return r.availability }

func (r *fakeRepository) WithTransaction(_ context.Context, fn func(repositories.Repository) error) error {
	return fn(r)
}

func (r *fakeRepository) Ping(_ context.Context) error { return nil }

// ===== USERS =====

type fakeUserRepo struct {
	byID map[string]*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, _ *gorm.DB, user *models.User) error {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, _ *gorm.DB, id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, _ *gorm.DB, email string) (bool, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(_ context.Context, _ *gorm.DB, user *models.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, _ *gorm.DB, id string, role models.UserRole) error {
	u, ok := r.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, _ *gorm.DB, id string) error {
	if _, ok := r.byID[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _ *gorm.DB) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, _ *gorm.DB, role models.UserRole) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.byID {
		if u.Role == role {
			clone := *u
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) FilterMentors(_ context.Context, _ *gorm.DB, filter models.MentorFilter) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.byID {
		if u.Role != models.RoleMentor {
			continue
		}
		if filter.Skill != "" && !hasSkill(u, filter.Skill) {
			continue
		}
		if filter.Industry != "" && !industryMatches(u, filter.Industry) {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func hasSkill(u *models.User, skill string) bool {
	for _, s := range u.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

func industryMatches(u *models.User, industry string) bool {
	return u.Industry != nil && strings.EqualFold(*u.Industry, industry)
}

// ===== SESSIONS =====

type fakeSessionRepo struct {
	users  *fakeUserRepo
	byID   map[uint]*models.SessionRequest
	nextID uint
}

func (r *fakeSessionRepo) Create(_ context.Context, _ *gorm.DB, session *models.SessionRequest) error {
	if r.byID == nil {
		r.byID = make(map[uint]*models.SessionRequest)
	}
	r.nextID++
	session.ID = r.nextID
	clone := *session
	r.byID[session.ID] = &clone
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, _ *gorm.DB, id uint) (*models.SessionRequest, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *fakeSessionRepo) Update(_ context.Context, _ *gorm.DB, session *models.SessionRequest) error {
	if _, ok := r.byID[session.ID]; !ok {
		return repositories.ErrNotFound
	}
	clone := *session
	r.byID[session.ID] = &clone
	return nil
}

func (r *fakeSessionRepo) list(match func(*models.SessionRequest) bool) []*models.SessionRequest {
	var out []*models.SessionRequest
	for _, s := range r.byID {
		if match(s) {
			clone := *s
			r.attachUsers(&clone)
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeSessionRepo) attachUsers(s *models.SessionRequest) {
	if u, ok := r.users.byID[s.MentorID]; ok {
		clone := *u
		s.Mentor = &clone
	}
	if u, ok := r.users.byID[s.MenteeID]; ok {
		clone := *u
		s.Mentee = &clone
	}
}

func (r *fakeSessionRepo) ListByMentor(_ context.Context, _ *gorm.DB, mentorID string) ([]*models.SessionRequest, error) {
	return r.list(func(s *models.SessionRequest) bool { return s.MentorID == mentorID }), nil
}

func (r *fakeSessionRepo) ListByMentee(_ context.Context, _ *gorm.DB, menteeID string) ([]*models.SessionRequest, error) {
	return r.list(func(s *models.SessionRequest) bool { return s.MenteeID == menteeID }), nil
}

func (r *fakeSessionRepo) ListAcceptedByMentor(_ context.Context, _ *gorm.DB, mentorID string) ([]*models.SessionRequest, error) {
	return r.list(func(s *models.SessionRequest) bool {
		return s.MentorID == mentorID && s.Status == models.SessionAccepted
	}), nil
}

func (r *fakeSessionRepo) ListAcceptedByMentee(_ context.Context, _ *gorm.DB, menteeID string) ([]*models.SessionRequest, error) {
	return r.list(func(s *models.SessionRequest) bool {
		return s.MenteeID == menteeID && s.Status == models.SessionAccepted
	}), nil
}

func (r *fakeSessionRepo) ListAccepted(_ context.Context, _ *gorm.DB) ([]*models.SessionRequest, error) {
	return r.list(func(s *models.SessionRequest) bool { return s.Status == models.SessionAccepted }), nil
}

func (r *fakeSessionRepo) StatusCounts(_ context.Context, _ *gorm.DB) (*models.SessionStats, error) {
	stats := &models.SessionStats{}
	for _, s := range r.byID {
		stats.Total++
		switch s.Status {
		case models.SessionAccepted:
			stats.Accepted++
		case models.SessionRejected:
			stats.Rejected++
		case models.SessionPending:
			stats.Pending++
		}
	}
	return stats, nil
}

// ===== AVAILABILITY =====

type fakeAvailabilityRepo struct {
	slots  []*models.Availability
	nextID uint
}

func (r *fakeAvailabilityRepo) Create(_ context.Context, _ *gorm.DB, slot *models.Availability) error {
	r.nextID++
	slot.ID = r.nextID
	clone := *slot
	r.slots = append(r.slots, &clone)
	return nil
}

func (r *fakeAvailabilityRepo) ListByMentor(_ context.Context, _ *gorm.DB, mentorID string) ([]*models.Availability, error) {
	var out []*models.Availability
	for _, s := range r.slots {
		if s.MentorID == mentorID {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}
