package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fieldflow_pm/internal/adapters/database/memory"
	"github.com/SscSPs/fieldflow_pm/internal/adapters/sessions"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/SscSPs/fieldflow_pm/internal/core/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/SscSPs/fieldflow_pm/internal/handlers"
	"github.com/SscSPs/fieldflow_pm/internal/middleware"
	"github.com/SscSPs/fieldflow_pm/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:               "8080",
		StorageDriver:      config.StorageMemory,
		SessionBackend:     config.SessionMemory,
		SessionTTL:         sessions.DefaultTTL,
		SessionCookieName:  "sessionId",
		LoginRateLimit:     "100-M",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type RouterTestSuite struct {
	suite.Suite
	ctx     context.Context
	cfg     *config.Config
	store   *memory.Store
	router  *gin.Engine
	kitchen domain.Project
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *RouterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cfg = testConfig()
	s.store = memory.NewStore()
	s.Require().NoError(services.SeedDemoData(s.ctx, s.store))

	client, err := s.store.FindUserByUsername(s.ctx, services.DemoClientUsername)
	s.Require().NoError(err)
	projects, err := s.store.ListProjectsByClient(s.ctx, client.ID)
	s.Require().NoError(err)
	s.Require().NotEmpty(projects)
	s.kitchen = projects[0]

	s.router = s.buildRouter(nil)
}

func (s *RouterTestSuite) buildRouter(loginLimiter *limiter.Limiter) *gin.Engine {
	container := services.NewServiceContainer(s.store, sessions.NewMemoryRegistry(s.cfg.SessionTTL))
	r, err := handlers.NewRouter(quietLogger(), s.cfg, container, handlers.Infrastructure{
		Storage:      s.store,
		LoginLimiter: loginLimiter,
	})
	s.Require().NoError(err)
	return r
}

func (s *RouterTestSuite) do(r *gin.Engine, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "192.0.2.10:4321"
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) login(username, password string) *http.Cookie {
	rec := s.do(s.router, http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: username, Password: password}, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == s.cfg.SessionCookieName {
			return c
		}
	}
	s.FailNow("session cookie not set")
	return nil
}

func (s *RouterTestSuite) decode(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func (s *RouterTestSuite) TestLogin_SetsHTTPOnlyCookieAndHidesPassword() {
	rec := s.do(s.router, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: services.DemoAdminUsername, Password: services.DemoAdminPassword}, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sessionId" {
			cookie = c
		}
	}
	s.Require().NotNil(cookie)
	s.True(cookie.HttpOnly)
	s.NotEmpty(cookie.Value)
	s.Equal(int(sessions.DefaultTTL/time.Second), cookie.MaxAge)

	var body map[string]map[string]any
	s.decode(rec, &body)
	s.Require().Contains(body, "user")
	s.Len(body, 1)
	s.Equal(services.DemoAdminUsername, body["user"]["username"])
	s.NotContains(body["user"], "password")
	s.NotContains(body["user"], "passwordHash")
	s.NotContains(rec.Body.String(), cookie.Value)
	s.NotEmpty(rec.Header().Get(middleware.RequestIDHeader))
}

func (s *RouterTestSuite) TestLogin_BadCredentials() {
	rec := s.do(s.router, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: services.DemoAdminUsername, Password: "nope"}, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	var body dto.ErrorResponse
	s.decode(rec, &body)
	s.Equal("Invalid credentials", body.Message)

	rec = s.do(s.router, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: "ghost", Password: "nope"}, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.decode(rec, &body)
	s.Equal("Invalid credentials", body.Message)
}

func (s *RouterTestSuite) TestLogin_MalformedBody() {
	rec := s.do(s.router, http.MethodPost, "/api/auth/login", `{"username": ""}`, nil)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var body dto.ErrorResponse
	s.decode(rec, &body)
	s.Equal("Validation failed", body.Message)
	fields := map[string]string{}
	for _, f := range body.Errors {
		fields[f.Field] = f.Message
	}
	s.Equal("is required", fields["username"])
	s.Equal("is required", fields["password"])

	rec = s.do(s.router, http.MethodPost, "/api/auth/login", `{not json`, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.decode(rec, &body)
	s.Equal("Invalid request body", body.Message)
}

func (s *RouterTestSuite) TestProtectedRoute_WithoutCookie() {
	rec := s.do(s.router, http.MethodGet, "/api/projects", nil, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.JSONEq(`{"message":"Authentication required"}`, rec.Body.String())

	rec = s.do(s.router, http.MethodGet, "/api/projects", nil, &http.Cookie{Name: "sessionId", Value: "forged"})
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestLogoutInvalidatesSession() {
	cookie := s.login(services.DemoAdminUsername, services.DemoAdminPassword)

	rec := s.do(s.router, http.MethodGet, "/api/auth/me", nil, cookie)
	s.Require().Equal(http.StatusOK, rec.Code)
	var me dto.UserResponse
	s.decode(rec, &me)
	s.Equal(services.DemoAdminUsername, me.Username)

	rec = s.do(s.router, http.MethodPost, "/api/auth/logout", nil, cookie)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Logged out successfully"}`, rec.Body.String())

	rec = s.do(s.router, http.MethodGet, "/api/auth/me", nil, cookie)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestClientSeesOnlyOwnProjects() {
	admin, err := s.store.FindUserByUsername(s.ctx, services.DemoAdminUsername)
	s.Require().NoError(err)
	other, err := s.store.CreateUser(s.ctx, domain.User{
		Username: "bob.smith", Email: "bob@example.com", FirstName: "Bob", LastName: "Smith",
		Role: domain.RoleClient, IsActive: true,
	})
	s.Require().NoError(err)
	foreign, err := s.store.CreateProject(s.ctx, domain.Project{
		Name: "Deck", Address: "9 Elm", CompanyID: *admin.CompanyID, ClientID: other.ID, Status: domain.ProjectPlanning,
	})
	s.Require().NoError(err)

	cookie := s.login(services.DemoClientUsername, services.DemoClientPassword)

	rec := s.do(s.router, http.MethodGet, "/api/projects", nil, cookie)
	s.Require().Equal(http.StatusOK, rec.Code)
	var projects []domain.Project
	s.decode(rec, &projects)
	s.NotEmpty(projects)
	for _, p := range projects {
		s.NotEqual(foreign.ID, p.ID)
	}

	rec = s.do(s.router, http.MethodGet, fmt.Sprintf("/api/projects/%d", foreign.ID), nil, cookie)
	s.Equal(http.StatusForbidden, rec.Code)
	var body dto.ErrorResponse
	s.decode(rec, &body)
	s.Equal("Access denied", body.Message)

	rec = s.do(s.router, http.MethodGet, "/api/projects/999999", nil, cookie)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(s.router, http.MethodGet, "/api/projects/abc", nil, cookie)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestCostSummaryVariance() {
	cookie := s.login(services.DemoAdminUsername, services.DemoAdminPassword)

	rec := s.do(s.router, http.MethodGet, fmt.Sprintf("/api/projects/%d/costs/summary", s.kitchen.ID), nil, cookie)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var summary struct {
		Categories []struct {
			Name       string `json:"name"`
			Variance   string `json:"variance"`
			OverBudget bool   `json:"overBudget"`
		} `json:"categories"`
		TotalVariance string `json:"totalVariance"`
	}
	s.decode(rec, &summary)
	s.Require().NotEmpty(summary.Categories)
	s.Equal("Materials", summary.Categories[0].Name)
	s.Equal("550.00", summary.Categories[0].Variance)
	s.False(summary.Categories[0].OverBudget)
	s.Equal("-650.00", summary.TotalVariance)
}

func (s *RouterTestSuite) TestChangeOrderApproval() {
	orders, err := s.store.ListChangeOrdersByProject(s.ctx, s.kitchen.ID)
	s.Require().NoError(err)
	s.Require().NotEmpty(orders)
	path := fmt.Sprintf("/api/change-orders/%d/approve", orders[0].ID)

	clientCookie := s.login(services.DemoClientUsername, services.DemoClientPassword)

	rec := s.do(s.router, http.MethodPut, path, nil, clientCookie)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var approved domain.ChangeOrder
	s.decode(rec, &approved)
	s.Equal(domain.ChangeOrderApproved, approved.Status)
	s.Require().NotNil(approved.ApprovedAt)
	s.False(approved.ApprovedAt.Before(approved.CreatedAt))

	rec = s.do(s.router, http.MethodPut, path, nil, clientCookie)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *RouterTestSuite) TestCreateProject() {
	cookie := s.login(services.DemoAdminUsername, services.DemoAdminPassword)

	rec := s.do(s.router, http.MethodPost, "/api/projects", map[string]any{
		"name":        "Garage",
		"address":     "1 Side St",
		"clientId":    s.kitchen.ClientID,
		"budgetTotal": "12000.00",
	}, cookie)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created domain.Project
	s.decode(rec, &created)
	s.Equal("Garage", created.Name)
	s.Equal(s.kitchen.CompanyID, created.CompanyID)

	rec = s.do(s.router, http.MethodPost, "/api/projects", map[string]any{"name": "x"}, cookie)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(s.router, http.MethodDelete, fmt.Sprintf("/api/projects/%d", created.ID), nil, cookie)
	s.Equal(http.StatusNoContent, rec.Code)
	rec = s.do(s.router, http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), nil, cookie)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestNotificationsReadAll() {
	clientCookie := s.login(services.DemoClientUsername, services.DemoClientPassword)
	adminCookie := s.login(services.DemoAdminUsername, services.DemoAdminPassword)

	rec := s.do(s.router, http.MethodPost, fmt.Sprintf("/api/projects/%d/change-orders", s.kitchen.ID), map[string]any{
		"title":       "Extra outlet",
		"description": "One more outlet by the island",
		"amount":      "150.00",
	}, adminCookie)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(s.router, http.MethodGet, "/api/notifications/unread", nil, clientCookie)
	s.Require().Equal(http.StatusOK, rec.Code)
	var unread []domain.Notification
	s.decode(rec, &unread)
	s.NotEmpty(unread)

	rec = s.do(s.router, http.MethodPut, "/api/notifications/read-all", nil, clientCookie)
	s.Require().Equal(http.StatusOK, rec.Code)
	var marked dto.MarkAllReadResponse
	s.decode(rec, &marked)
	s.Equal(len(unread), marked.Updated)

	rec = s.do(s.router, http.MethodGet, "/api/notifications/unread", nil, clientCookie)
	s.decode(rec, &unread)
	s.Empty(unread)
}

func (s *RouterTestSuite) TestUsersNeverExposePasswords() {
	cookie := s.login(services.DemoAdminUsername, services.DemoAdminPassword)

	rec := s.do(s.router, http.MethodPost, "/api/users", map[string]any{
		"username":  "emma.site",
		"email":     "emma@example.com",
		"password":  "secret99",
		"firstName": "Emma",
		"lastName":  "Site",
		"role":      "employee",
	}, cookie)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.NotContains(rec.Body.String(), "secret99")
	s.NotContains(rec.Body.String(), "password")

	rec = s.do(s.router, http.MethodGet, "/api/users", nil, cookie)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "password")

	rec = s.do(s.router, http.MethodPost, "/api/users", map[string]any{
		"username":  "emma.site",
		"email":     "emma2@example.com",
		"password":  "secret99",
		"firstName": "Emma",
		"lastName":  "Site",
		"role":      "employee",
	}, cookie)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *RouterTestSuite) TestContactsTypeFilter() {
	cookie := s.login(services.DemoAdminUsername, services.DemoAdminPassword)

	rec := s.do(s.router, http.MethodPost, "/api/contacts", map[string]any{
		"type": "subcontractor", "firstName": "Sam", "lastName": "Spark",
		"company": "Sparky Electric", "email": "ops@sparky.example",
	}, cookie)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(s.router, http.MethodGet, "/api/contacts?type=subcontractor", nil, cookie)
	s.Require().Equal(http.StatusOK, rec.Code)
	var contacts []domain.Contact
	s.decode(rec, &contacts)
	s.Len(contacts, 1)

	rec = s.do(s.router, http.MethodGet, "/api/contacts?type=vendor", nil, cookie)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &contacts)
	s.Empty(contacts)

	rec = s.do(s.router, http.MethodGet, "/api/contacts?type=alien", nil, cookie)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestLoginRateLimit() {
	lim, err := middleware.NewLimiter("2-M", nil)
	s.Require().NoError(err)
	r := s.buildRouter(lim)

	bad := dto.LoginRequest{Username: services.DemoAdminUsername, Password: "wrong"}
	s.Equal(http.StatusUnauthorized, s.do(r, http.MethodPost, "/api/auth/login", bad, nil).Code)
	s.Equal(http.StatusUnauthorized, s.do(r, http.MethodPost, "/api/auth/login", bad, nil).Code)

	rec := s.do(r, http.MethodPost, "/api/auth/login", bad, nil)
	s.Equal(http.StatusTooManyRequests, rec.Code)
	var body dto.ErrorResponse
	s.decode(rec, &body)
	s.Equal("Too many requests. Please try again later.", body.Message)
}

func (s *RouterTestSuite) TestHealthAndUnknownRoute() {
	rec := s.do(s.router, http.MethodGet, "/health", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var health handlers.HealthResponse
	s.decode(rec, &health)
	s.Equal("healthy", health.Status)
	s.Equal("healthy", health.Services["storage"])

	rec = s.do(s.router, http.MethodGet, "/api/nowhere", nil, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Equal("true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
