package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseIDParam_Valid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "123"}}

	id, ok := parseIDParam(c, "id")

	assert.True(t, ok)
	assert.Equal(t, uint(123), id)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseIDParam_Invalid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	id, ok := parseIDParam(c, "id")

	assert.False(t, ok)
	assert.Equal(t, uint(0), id)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
	assert.True(t, c.IsAborted())
}

func TestParseIDParam_NoSuchRecord(t *testing.T) {
	for _, value := range []string{"-1", "0", "99999999999999999999"} {
		t.Run(value, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "id", Value: value}}

			id, ok := parseIDParam(c, "id")

			assert.False(t, ok)
			assert.Equal(t, uint(0), id)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), CodeNotFound)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestParseIDParam_BeyondUint32(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "4294967296"}}

	id, ok := parseIDParam(c, "id")

	assert.True(t, ok)
	assert.Equal(t, uint64(4294967296), uint64(id))
	assert.False(t, c.IsAborted())
}

func TestRespondHelpers(t *testing.T) {
	tests := []struct {
		name    string
		respond func(c *gin.Context)
		status  int
		code    string
		message string
	}{
		{
			name:    "bad request",
			respond: func(c *gin.Context) { respondBadRequest(c, "title is required") },
			status:  http.StatusBadRequest,
			code:    CodeBadRequest,
			message: "title is required",
		},
		{
			name:    "not found",
			respond: func(c *gin.Context) { respondNotFound(c, "book 1 not found") },
			status:  http.StatusNotFound,
			code:    CodeNotFound,
			message: "book 1 not found",
		},
		{
			name:    "internal error hides details",
			respond: func(c *gin.Context) { respondInternalError(c, errors.New("disk I/O error"), "test") },
			status:  http.StatusInternalServerError,
			code:    CodeInternal,
			message: "internal server error",
		},
		{
			name:    "custom status",
			respond: func(c *gin.Context) { respondError(c, http.StatusForbidden, CodeReadOnly, "read-only") },
			status:  http.StatusForbidden,
			code:    CodeReadOnly,
			message: "read-only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.respond(c)

			assert.Equal(t, tt.status, w.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.code, response.Code)
			assert.Equal(t, tt.message, response.Error)
			assert.NotContains(t, w.Body.String(), "disk I/O")
		})
	}
}
