package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAvailability bool

func (s staticAvailability) Available() bool { return bool(s) }

func TestHealth_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHealth("1.2.3", "test", staticAvailability(true), staticAvailability(false), staticAvailability(false))

	e := gin.New()
	e.GET("/health", h.Check)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	e.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "1.2.3", resp["version"])

	services := resp["services"].(map[string]any)
	assert.Equal(t, true, services["completion_backend"])
	assert.Equal(t, false, services["vision_backend"])
	assert.Equal(t, false, services["object_storage"])
}

func TestHealth_Root(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHealth("1.2.3", "test", staticAvailability(false), staticAvailability(false), staticAvailability(false))

	e := gin.New()
	e.GET("/", h.Root)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	e.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AI API Service")
	assert.Contains(t, w.Body.String(), "test")
}
