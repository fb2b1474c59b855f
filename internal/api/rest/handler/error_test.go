package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/aigate/internal/model"
	"github.com/dtroode/aigate/internal/testutil"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantInBody string
	}{
		{"validation", fmt.Errorf("%w: text too long", model.ErrValidation), http.StatusBadRequest, "text too long"},
		{"username taken", model.ErrUsernameTaken, http.StatusBadRequest, model.ErrUsernameTaken.Error()},
		{"email taken", model.ErrEmailTaken, http.StatusBadRequest, model.ErrEmailTaken.Error()},
		{"invalid credentials", model.ErrInvalidCredentials, http.StatusUnauthorized, model.ErrInvalidCredentials.Error()},
		{"inactive account", model.ErrInactiveAccount, http.StatusBadRequest, model.ErrInactiveAccount.Error()},
		{"invalid token", model.ErrInvalidToken, http.StatusUnauthorized, model.ErrInvalidToken.Error()},
		{"not found", fmt.Errorf("wrapped: %w", model.ErrNotFound), http.StatusNotFound, "user not found"},
		{"unexpected", errors.New("database exploded"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := translateError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Contains(t, message, tt.wantInBody)
		})
	}
}

func TestRespondError_HidesDetailWithoutDebug(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	respondError(c, testutil.MakeNoopLogger(), false, "req-1", errors.New("secret detail"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret detail")
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.Contains(t, w.Body.String(), "req-1")
}

func TestRespondError_ExposesDetailWithDebug(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	respondError(c, testutil.MakeNoopLogger(), true, "req-1", errors.New("secret detail"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "secret detail")
}

func TestRespondError_SetsChallengeOn401(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	respondError(c, testutil.MakeNoopLogger(), false, "", model.ErrInvalidCredentials)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}
