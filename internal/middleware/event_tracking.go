package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventTracker receives one event per successful authenticated API call.
type EventTracker interface {
	Enabled() bool
	Track(distinctID, event string, properties map[string]any)
}

// untrackedPaths are never reported.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// EventTracking reports successful requests made with a session, keyed by user id.
// The event name is the route pattern, so "/api/projects/:id/costs" becomes "api_projects_id_costs".
func EventTracking(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || !tracker.Enabled() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		user, ok := GetUserFromContext(c)
		if !ok {
			return
		}
		event := EventName(c.FullPath())
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"role":        string(user.Role),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}
		if requestID := c.Writer.Header().Get(RequestIDHeader); requestID != "" {
			props["request_id"] = requestID
		}
		tracker.Track(strconv.FormatInt(user.ID, 10), event, props)
	}
}

// EventName turns a route pattern into an event name. Unmatched routes yield "".
func EventName(fullPath string) string {
	name := strings.Trim(fullPath, "/")
	name = strings.ReplaceAll(name, ":", "")
	return strings.ReplaceAll(name, "/", "_")
}
