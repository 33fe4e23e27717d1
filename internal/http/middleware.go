package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the request id in both directions.
	HeaderRequestID = "X-Request-ID"

	contextKeyRequestID = "request_id"
)

// RequestIDMiddleware echoes an incoming X-Request-ID or assigns a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestID returns the id assigned by RequestIDMiddleware, or "-".
func RequestID(c *gin.Context) string {
	if id := c.GetString(contextKeyRequestID); id != "" {
		return id
	}
	return "-"
}

// ReadOnlyMiddleware blocks write operations under prefix.
// GET, HEAD and OPTIONS are always allowed.
func ReadOnlyMiddleware(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if !strings.HasPrefix(c.Request.URL.Path, prefix) {
			c.Next()
			return
		}
		respondError(c, http.StatusForbidden, CodeReadOnly, "the catalog is read-only")
	}
}
