package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dtroode/aigate/internal/logger"
	"github.com/dtroode/aigate/internal/model"
)

// translateError maps domain sentinels to HTTP status and public message.
// Anything unrecognized is an internal error; its detail never leaves the
// server unless debug is on.
func translateError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrUsernameTaken):
		return http.StatusBadRequest, model.ErrUsernameTaken.Error()
	case errors.Is(err, model.ErrEmailTaken):
		return http.StatusBadRequest, model.ErrEmailTaken.Error()
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, model.ErrInvalidCredentials.Error()
	case errors.Is(err, model.ErrInactiveAccount):
		return http.StatusBadRequest, model.ErrInactiveAccount.Error()
	case errors.Is(err, model.ErrInvalidToken):
		return http.StatusUnauthorized, model.ErrInvalidToken.Error()
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "user not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func respondError(c *gin.Context, log *logger.Logger, debug bool, requestID string, err error) {
	status, message := translateError(err)

	if status == http.StatusInternalServerError {
		log.Error("request failed",
			"path", c.Request.URL.Path,
			"request_id", requestID,
			"error", err.Error())
		if debug {
			message = err.Error()
		}
	}

	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}

	c.AbortWithStatusJSON(status, errorResponse{Error: message, RequestID: requestID})
}

// respondBindingError surfaces request validation failures. Field names and
// failed rules are public; raw values are not echoed.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, strings.ToLower(fe.Field())+" failed "+fe.Tag()+" validation")
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: strings.Join(parts, "; ")})
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
}
