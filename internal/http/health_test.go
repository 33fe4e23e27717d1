package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns ok without a store", func(t *testing.T) {
		router := NewRouter(RouterConfig{Version: "1.0.0"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		assert.Equal(t, "ok", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		// Should be in RFC3339 format
		assert.Contains(t, response.Time, "T")
	})

	t.Run("omits empty version", func(t *testing.T) {
		controller := NewHealthController("")

		router := gin.New()
		router.GET("/health", controller.Status)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "version")
	})
}

func TestHealthController_Home(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(RouterConfig{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Message)
}
