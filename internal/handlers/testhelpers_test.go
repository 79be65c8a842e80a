package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mentorlink/mentorship-service/internal/auth"
	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/services"
	"github.com/mentorlink/mentorship-service/internal/utils"
)

var errNotStubbed = errors.New("not stubbed")

func testLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ===== FAKE SERVICES =====

type fakeAccountService struct {
	registerFn      func(*models.RegisterRequest) (*models.PublicUser, error)
	loginFn         func(*models.LoginRequest) (*services.LoginResponse, error)
	getProfileFn    func(string) (*models.PublicUser, error)
	updateProfileFn func(string, *models.UpdateProfileRequest) (*models.PublicUser, error)
	getUserFn       func(string) (*models.PublicUser, error)
	listUsersFn     func() ([]*models.PublicUser, error)
	updateRoleFn    func(string, *models.UpdateRoleRequest) (*models.PublicUser, error)
	deleteUserFn    func(string) error
}

func (f *fakeAccountService) Register(_ context.Context, req *models.RegisterRequest) (*models.PublicUser, error) {
	if f.registerFn == nil {
		return nil, errNotStubbed
	}
	return f.registerFn(req)
}

func (f *fakeAccountService) Login(_ context.Context, req *models.LoginRequest) (*services.LoginResponse, error) {
	if f.loginFn == nil {
		return nil, errNotStubbed
	}
	return f.loginFn(req)
}

func (f *fakeAccountService) GetProfile(_ context.Context, userID string) (*models.PublicUser, error) {
	if f.getProfileFn == nil {
		return nil, errNotStubbed
	}
	return f.getProfileFn(userID)
}

func (f *fakeAccountService) UpdateProfile(_ context.Context, userID string, req *models.UpdateProfileRequest) (*models.PublicUser, error) {
	if f.updateProfileFn == nil {
		return nil, errNotStubbed
	}
	return f.updateProfileFn(userID, req)
}

func (f *fakeAccountService) GetUserByID(_ context.Context, id string) (*models.PublicUser, error) {
	if f.getUserFn == nil {
		return nil, errNotStubbed
	}
	return f.getUserFn(id)
}

func (f *fakeAccountService) ListUsers(_ context.Context) ([]*models.PublicUser, error) {
	if f.listUsersFn == nil {
		return nil, errNotStubbed
	}
	return f.listUsersFn()
}

func (f *fakeAccountService) UpdateRole(_ context.Context, id string, req *models.UpdateRoleRequest) (*models.PublicUser, error) {
	if f.updateRoleFn == nil {
		return nil, errNotStubbed
	}
	return f.updateRoleFn(id, req)
}

func (f *fakeAccountService) DeleteUser(_ context.Context, id string) error {
	if f.deleteUserFn == nil {
		return errNotStubbed
	}
	return f.deleteUserFn(id)
}

type fakeMentorService struct {
	listFn   func() ([]*models.PublicUser, error)
	filterFn func(models.MentorFilter) ([]*models.PublicUser, error)
	getFn    func(string) (*models.PublicUser, error)
}

func (f *fakeMentorService) ListMentors(_ context.Context) ([]*models.PublicUser, error) {
	if f.listFn == nil {
		return nil, errNotStubbed
	}
	return f.listFn()
}

func (f *fakeMentorService) FilterMentors(_ context.Context, filter models.MentorFilter) ([]*models.PublicUser, error) {
	if f.filterFn == nil {
		return nil, errNotStubbed
	}
	return f.filterFn(filter)
}

func (f *fakeMentorService) GetMentorByID(_ context.Context, id string) (*models.PublicUser, error) {
	if f.getFn == nil {
		return nil, errNotStubbed
	}
	return f.getFn(id)
}

type fakeSessionService struct {
	requestFn        func(string, *models.RequestSessionRequest) (*models.SessionRequest, error)
	listReceivedFn   func(string) ([]*models.SessionRequest, error)
	listSentFn       func(string) ([]*models.SessionRequest, error)
	respondFn        func(uint, string, *models.RespondRequest) (*models.SessionRequest, error)
	feedbackFn       func(uint, string, *models.FeedbackRequest) (*models.SessionRequest, error)
	commentFn        func(uint, string, *models.MentorCommentRequest) (*models.SessionRequest, error)
	acceptedMentorFn func(string) ([]*models.SessionRequest, error)
	acceptedMenteeFn func(string) ([]*models.SessionRequest, error)
}

func (f *fakeSessionService) Request(_ context.Context, menteeID string, req *models.RequestSessionRequest) (*models.SessionRequest, error) {
	if f.requestFn == nil {
		return nil, errNotStubbed
	}
	return f.requestFn(menteeID, req)
}

func (f *fakeSessionService) ListReceived(_ context.Context, mentorID string) ([]*models.SessionRequest, error) {
	if f.listReceivedFn == nil {
		return nil, errNotStubbed
	}
	return f.listReceivedFn(mentorID)
}

func (f *fakeSessionService) ListSent(_ context.Context, menteeID string) ([]*models.SessionRequest, error) {
	if f.listSentFn == nil {
		return nil, errNotStubbed
	}
	return f.listSentFn(menteeID)
}

func (f *fakeSessionService) Respond(_ context.Context, id uint, mentorID string, req *models.RespondRequest) (*models.SessionRequest, error) {
	if f.respondFn == nil {
		return nil, errNotStubbed
	}
	return f.respondFn(id, mentorID, req)
}

func (f *fakeSessionService) SubmitFeedback(_ context.Context, id uint, menteeID string, req *models.FeedbackRequest) (*models.SessionRequest, error) {
	if f.feedbackFn == nil {
		return nil, errNotStubbed
	}
	return f.feedbackFn(id, menteeID, req)
}

func (f *fakeSessionService) AddComment(_ context.Context, id uint, mentorID string, req *models.MentorCommentRequest) (*models.SessionRequest, error) {
	if f.commentFn == nil {
		return nil, errNotStubbed
	}
	return f.commentFn(id, mentorID, req)
}

func (f *fakeSessionService) ListAcceptedForMentor(_ context.Context, mentorID string) ([]*models.SessionRequest, error) {
	if f.acceptedMentorFn == nil {
		return nil, errNotStubbed
	}
	return f.acceptedMentorFn(mentorID)
}

func (f *fakeSessionService) ListAcceptedForMentee(_ context.Context, menteeID string) ([]*models.SessionRequest, error) {
	if f.acceptedMenteeFn == nil {
		return nil, errNotStubbed
	}
	return f.acceptedMenteeFn(menteeID)
}

type fakeAvailabilityService struct {
	setFn  func(string, *models.AvailabilityRequest) (*models.Availability, error)
	listFn func(string) ([]*models.Availability, error)
}

func (f *fakeAvailabilityService) SetAvailability(_ context.Context, mentorID string, req *models.AvailabilityRequest) (*models.Availability, error) {
	if f.setFn == nil {
		return nil, errNotStubbed
	}
	return f.setFn(mentorID, req)
}

func (f *fakeAvailabilityService) ListForMentor(_ context.Context, mentorID string) ([]*models.Availability, error) {
	if f.listFn == nil {
		return nil, errNotStubbed
	}
	return f.listFn(mentorID)
}

type fakeAdminService struct {
	listMatchesFn func() ([]*services.MatchResponse, error)
	statsFn       func() (*models.SessionStats, error)
	assignFn      func(*models.AssignMatchRequest) (*models.SessionRequest, error)
	exportFn      func() (*excelize.File, error)
}

func (f *fakeAdminService) ListMatches(_ context.Context) ([]*services.MatchResponse, error) {
	if f.listMatchesFn == nil {
		return nil, errNotStubbed
	}
	return f.listMatchesFn()
}

func (f *fakeAdminService) SessionStats(_ context.Context) (*models.SessionStats, error) {
	if f.statsFn == nil {
		return nil, errNotStubbed
	}
	return f.statsFn()
}

func (f *fakeAdminService) AssignMentor(_ context.Context, req *models.AssignMatchRequest) (*models.SessionRequest, error) {
	if f.assignFn == nil {
		return nil, errNotStubbed
	}
	return f.assignFn(req)
}

func (f *fakeAdminService) ExportMatches(_ context.Context) (*excelize.File, error) {
	if f.exportFn == nil {
		return nil, errNotStubbed
	}
	return f.exportFn()
}

// ===== FAKE SERVICE MANAGER =====

type fakeServiceManager struct {
	account      *fakeAccountService
	mentor       *fakeMentorService
	session      *fakeSessionService
	availability *fakeAvailabilityService
	admin        *fakeAdminService
}

func newFakeServiceManager() *fakeServiceManager {
	return &fakeServiceManager{
		account:      &fakeAccountService{},
		mentor:       &fakeMentorService{},
		session:      &fakeSessionService{},
		availability: &fakeAvailabilityService{},
		admin:        &fakeAdminService{},
	}
}

func (m *fakeServiceManager) Account() services.AccountService           { return m.account }
func (m *fakeServiceManager) Mentor() services.MentorService             { return m.mentor }
func (m *fakeServiceManager) Session() services.SessionService           { return m.session }
func (m *fakeServiceManager) Availability() services.AvailabilityService { return m.availability }
func (m *fakeServiceManager) Admin() services.AdminService               { return m.admin }
func (m *fakeServiceManager) Shutdown(_ context.Context) error           { return nil }

// ===== ROUTER HARNESS =====

type routerFixture struct {
	router   *gin.Engine
	services *fakeServiceManager
	tokens   *auth.TokenManager
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sm := newFakeServiceManager()
	tokens := auth.NewTokenManager("test-secret", 1)

	router := gin.New()
	SetupMiddleware(router, testLogger())
	NewHandlerManager(sm, tokens, testLogger()).SetupRoutes(router)

	return &routerFixture{router: router, services: sm, tokens: tokens}
}

func (f *routerFixture) token(t *testing.T, userID string, role models.UserRole) string {
	t.Helper()
	token, err := f.tokens.Generate(userID, role)
	require.NoError(t, err)
	return token
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), "body: %s", w.Body.String())
}
