package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/SscSPs/fieldflow_pm/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackedEvent struct {
	distinctID string
	name       string
	props      map[string]any
}

type recordingTracker struct {
	disabled bool
	events   []trackedEvent
}

func (r *recordingTracker) Enabled() bool { return !r.disabled }

func (r *recordingTracker) Track(distinctID, event string, properties map[string]any) {
	r.events = append(r.events, trackedEvent{distinctID: distinctID, name: event, props: properties})
}

func newTrackedRouter(tracker middleware.EventTracker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := &stubAuth{users: map[string]*domain.User{"good": {ID: 11, Role: domain.RoleClient}}}
	r := gin.New()
	r.Use(middleware.EventTracking(tracker))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	api := r.Group("/api", middleware.SessionAuth(auth, "sessionId"))
	api.GET("/projects/:id", func(c *gin.Context) {
		if c.Param("id") == "0" {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusOK)
	})
	return r
}

func serveWithCookie(r *gin.Engine, path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "sessionId", Value: token})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestEventTracking_SuccessfulAuthenticatedCall(t *testing.T) {
	tracker := &recordingTracker{}
	r := newTrackedRouter(tracker)

	require.Equal(t, http.StatusOK, serveWithCookie(r, "/api/projects/42", "good"))

	require.Len(t, tracker.events, 1)
	ev := tracker.events[0]
	assert.Equal(t, "11", ev.distinctID)
	assert.Equal(t, "api_projects_id", ev.name)
	assert.Equal(t, http.MethodGet, ev.props["method"])
	assert.Equal(t, "/api/projects/42", ev.props["path"])
	assert.Equal(t, "client", ev.props["role"])
	assert.Equal(t, map[string]string{"id": "42"}, ev.props["params"])
}

func TestEventTracking_SkipsFailuresAnonymousAndHealth(t *testing.T) {
	tracker := &recordingTracker{}
	r := newTrackedRouter(tracker)

	assert.Equal(t, http.StatusNotFound, serveWithCookie(r, "/api/projects/0", "good"))
	assert.Equal(t, http.StatusUnauthorized, serveWithCookie(r, "/api/projects/42", ""))
	assert.Equal(t, http.StatusOK, serveWithCookie(r, "/health", "good"))
	assert.Equal(t, http.StatusNotFound, serveWithCookie(r, "/nowhere", "good"))

	assert.Empty(t, tracker.events)
}

func TestEventTracking_DisabledTracker(t *testing.T) {
	tracker := &recordingTracker{disabled: true}
	r := newTrackedRouter(tracker)

	assert.Equal(t, http.StatusOK, serveWithCookie(r, "/api/projects/42", "good"))
	assert.Empty(t, tracker.events)

	assert.Equal(t, http.StatusOK, serveWithCookie(newTrackedRouter(nil), "/api/projects/42", "good"))
}

func TestEventName(t *testing.T) {
	assert.Equal(t, "api_projects_id_costs_summary", middleware.EventName("/api/projects/:id/costs/summary"))
	assert.Equal(t, "api_notifications_read-all", middleware.EventName("/api/notifications/read-all"))
	assert.Equal(t, "", middleware.EventName(""))
}
