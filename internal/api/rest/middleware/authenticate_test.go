package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/aigate/internal/mocks"
	"github.com/dtroode/aigate/internal/model"
	"github.com/dtroode/aigate/internal/testutil"
)

func setupAuthRouter(parser TokenParser) *gin.Engine {
	gin.SetMode(gin.TestMode)

	m := NewAuthenticate(parser, testutil.MakeNoopLogger())

	e := gin.New()
	e.GET("/protected", m.Handle, func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": claims.Subject})
	})
	return e
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := setupAuthRouter(&mocks.TokenManager{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	e.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.Contains(t, w.Body.String(), model.ErrInvalidToken.Error())
}

func TestAuthenticate_NotBearer(t *testing.T) {
	e := setupAuthRouter(&mocks.TokenManager{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	e.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	parser := &mocks.TokenManager{}
	parser.On("Parse", "bad-token").Return(model.Claims{}, model.ErrInvalidToken)
	e := setupAuthRouter(parser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	e.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	parser.AssertExpectations(t)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	parser := &mocks.TokenManager{}
	parser.On("Parse", "good-token").Return(model.Claims{
		Subject: "alice",
		UserID:  uuid.New(),
	}, nil)
	e := setupAuthRouter(parser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	e.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	parser.AssertExpectations(t)
}
