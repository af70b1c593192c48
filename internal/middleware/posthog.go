package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventSink receives product analytics events.
type EventSink interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

// untrackedPaths are never reported.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// AnalyticsMiddleware reports each successful authenticated request as an
// event named after its route, e.g. "POST /api/v1/employees/:employeeID/withdrawals"
// becomes "post_employees_withdrawals".
func AnalyticsMiddleware(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || !sink.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		event := RouteEventName(c.Request.Method, c.FullPath())
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		for _, p := range c.Params {
			props[p.Key] = p.Value
		}
		sink.Enqueue(userID, event, props)
	}
}

// RouteEventName turns a gin route template into an event name, dropping the
// API prefix and path parameters.
func RouteEventName(method, fullPath string) string {
	if fullPath == "" {
		return ""
	}
	parts := []string{strings.ToLower(method)}
	for _, seg := range strings.Split(strings.TrimPrefix(fullPath, "/api/v1"), "/") {
		if seg == "" || strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			continue
		}
		seg = strings.NewReplacer(".", "_", "-", "_").Replace(seg)
		parts = append(parts, seg)
	}
	if len(parts) == 1 {
		return ""
	}
	return strings.Join(parts, "_")
}
