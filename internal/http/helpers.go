package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes carried in ErrorResponse.Code.
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeNoBooks          = "NO_BOOKS"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeReadOnly         = "READ_ONLY"
	CodeInternal         = "INTERNAL_ERROR"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
}

// MessageResponse is a static acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: CodeBadRequest})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: message, Code: CodeNotFound})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("[%s] Internal error (%s): %v", RequestID(c), context, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: CodeInternal})
}

// respondError sends an error response with the given status code.
// Use the specific helpers (respondBadRequest, respondNotFound, etc.) when possible.
func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message, Code: code})
}

// --- Parameter Parsing ---

// parseIDParam extracts an integer ID from URL parameters.
// Text that is not a number gets a 400. A number no stored record can carry
// (zero, negative or beyond the key range) gets a 404 without touching the
// store.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	if err != nil || id < 1 || uint64(id) > uint64(^uint(0)) {
		respondNotFound(c, "book "+idStr+" not found")
		return 0, false
	}
	return uint(id), true
}
