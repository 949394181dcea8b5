package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/SscSPs/fieldflow_pm/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
func (m *MockAuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) ListProjects(ctx context.Context, actor *domain.User) ([]domain.Project, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectService) GetProject(ctx context.Context, actor *domain.User, projectID int64) (*domain.Project, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) CreateProject(ctx context.Context, actor *domain.User, req dto.CreateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) UpdateProject(ctx context.Context, actor *domain.User, projectID int64, req dto.UpdateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, actor, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) DeleteProject(ctx context.Context, actor *domain.User, projectID int64) error {
	return m.Called(ctx, actor, projectID).Error(0)
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Test Suite Definition ---
type ProjectHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockAuth    *MockAuthService
	mockProject *MockProjectService
	user        *domain.User
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}

func (s *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockAuth = new(MockAuthService)
	s.mockProject = new(MockProjectService)

	companyID := int64(1)
	s.user = &domain.User{ID: 7, Username: "admin", Role: domain.RoleAdmin, CompanyID: &companyID, IsActive: true}
	s.mockAuth.On("CurrentUser", mock.Anything, "valid-token").Return(s.user, nil)

	container := &portssvc.ServiceContainer{
		Auth:    s.mockAuth,
		Project: s.mockProject,
	}
	r, err := handlers.NewRouter(quietLogger(), testConfig(), container, handlers.Infrastructure{})
	s.Require().NoError(err)
	s.router = r
}

func (s *ProjectHandlerTestSuite) TearDownTest() {
	s.mockProject.AssertExpectations(s.T())
}

func (s *ProjectHandlerTestSuite) request(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: "sessionId", Value: "valid-token"})
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ProjectHandlerTestSuite) TestGetProject_Success() {
	project := &domain.Project{ID: 42, Name: "Kitchen", CompanyID: 1, ClientID: 3, Status: domain.ProjectActive}
	s.mockProject.On("GetProject", mock.Anything, s.user, int64(42)).Return(project, nil).Once()

	rec := s.request(http.MethodGet, "/api/projects/42", "")

	s.Equal(http.StatusOK, rec.Code)
	var got domain.Project
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal(int64(42), got.ID)
	s.Equal("Kitchen", got.Name)
}

func (s *ProjectHandlerTestSuite) TestGetProject_ErrorMapping() {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", apperrors.NotFound("Project"), http.StatusNotFound, "Project not found"},
		{"forbidden", apperrors.Forbidden("Access denied"), http.StatusForbidden, "Access denied"},
		{"conflict", apperrors.New(apperrors.ErrConflict, "busy"), http.StatusConflict, "busy"},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}
	for i, tc := range cases {
		s.Run(tc.name, func() {
			id := int64(100 + i)
			s.mockProject.On("GetProject", mock.Anything, s.user, id).Return(nil, tc.err).Once()

			rec := s.request(http.MethodGet, "/api/projects/"+jsonNumber(id), "")

			s.Equal(tc.status, rec.Code)
			var body dto.ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
			s.Equal(tc.message, body.Message)
		})
	}
}

func (s *ProjectHandlerTestSuite) TestGetProject_InternalDetailHiddenInRelease() {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)
	s.mockProject.On("GetProject", mock.Anything, s.user, int64(5)).Return(nil, errors.New("pq: secret table")).Once()

	rec := s.request(http.MethodGet, "/api/projects/5", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "secret")
}

func (s *ProjectHandlerTestSuite) TestCreateProject_ValidationNeverReachesService() {
	rec := s.request(http.MethodPost, "/api/projects", `{"name":"Garage","clientId":0}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	var body dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	fields := map[string]bool{}
	for _, f := range body.Errors {
		fields[f.Field] = true
	}
	s.True(fields["address"])
	s.True(fields["clientId"])
	s.mockProject.AssertNotCalled(s.T(), "CreateProject", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ProjectHandlerTestSuite) TestCreateProject_Success() {
	req := dto.CreateProjectRequest{Name: "Garage", Address: "1 Side St", ClientID: 3}
	created := &domain.Project{ID: 9, Name: "Garage", Address: "1 Side St", CompanyID: 1, ClientID: 3, Status: domain.ProjectPlanning}
	s.mockProject.On("CreateProject", mock.Anything, s.user, req).Return(created, nil).Once()

	rec := s.request(http.MethodPost, "/api/projects", `{"name":"Garage","address":"1 Side St","clientId":3}`)

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *ProjectHandlerTestSuite) TestPanicRecoversAsJSON500() {
	s.mockProject.On("ListProjects", mock.Anything, s.user).Run(func(mock.Arguments) {
		panic("boom")
	}).Return(nil, nil).Once()

	rec := s.request(http.MethodGet, "/api/projects", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"message":"Internal server error"}`, rec.Body.String())
}

func jsonNumber(id int64) string {
	raw, _ := json.Marshal(id)
	return string(raw)
}
