package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/aigate/internal/api/rest/middleware"
	"github.com/dtroode/aigate/internal/logger"
	"github.com/dtroode/aigate/internal/model"
)

// AuthService is the slice of the auth service the HTTP layer needs.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.User, error)
	Login(ctx context.Context, username, password string) (model.AccessToken, error)
	Identify(ctx context.Context, token string) (model.User, error)
}

// Auth serves registration, login and the current-user endpoint.
type Auth struct {
	auth   AuthService
	debug  bool
	logger *logger.Logger
}

// NewAuth creates the auth handler.
func NewAuth(auth AuthService, debug bool, logger *logger.Logger) *Auth {
	return &Auth{auth: auth, debug: debug, logger: logger}
}

// Register creates a new user account.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), model.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		respondError(c, h.logger, h.debug, "", err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Login verifies credentials and returns an access token.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, h.debug, "", err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token.Token,
		TokenType:   token.TokenType,
		ExpiresIn:   token.ExpiresIn,
	})
}

// Me returns the user behind the bearer token. Token validity does not imply
// existence: a user removed after issuance gets 404.
func (h *Auth) Me(c *gin.Context) {
	token, ok := middleware.TokenFromContext(c)
	if !ok {
		respondError(c, h.logger, h.debug, "", model.ErrInvalidToken)
		return
	}

	user, err := h.auth.Identify(c.Request.Context(), token)
	if err != nil {
		respondError(c, h.logger, h.debug, "", err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
