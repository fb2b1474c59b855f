package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/aigate/internal/logger"
	"github.com/dtroode/aigate/internal/model"
)

const (
	claimsKey = "aigate.claims"
	tokenKey  = "aigate.token"
)

// TokenParser validates bearer tokens and extracts claims.
type TokenParser interface {
	Parse(token string) (model.Claims, error)
}

// Authenticate validates bearer tokens and injects claims into the request
// context. Every rejection carries the same opaque message; the specific
// reason goes to the server log only.
type Authenticate struct {
	parser TokenParser
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(parser TokenParser, logger *logger.Logger) *Authenticate {
	return &Authenticate{parser: parser, logger: logger}
}

// Handle parses the Authorization header and validates the bearer token.
func (m *Authenticate) Handle(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header {
		m.reject(c, "missing bearer token")
		return
	}

	claims, err := m.parser.Parse(token)
	if err != nil {
		m.reject(c, err.Error())
		return
	}

	c.Set(claimsKey, claims)
	c.Set(tokenKey, token)
	c.Next()
}

func (m *Authenticate) reject(c *gin.Context, reason string) {
	m.logger.Info("Authenticate middleware: rejected request",
		"path", c.Request.URL.Path,
		"reason", reason)

	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": model.ErrInvalidToken.Error()})
}

// ClaimsFromContext returns the validated claims set by Handle.
func ClaimsFromContext(c *gin.Context) (model.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return model.Claims{}, false
	}
	claims, ok := v.(model.Claims)
	return claims, ok
}

// TokenFromContext returns the raw bearer token set by Handle.
func TokenFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(tokenKey)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
