package router

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/aigate/internal/api/rest/handler"
	"github.com/dtroode/aigate/internal/api/rest/middleware"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	health         *handler.Health
	auth           *handler.Auth
	ai             *handler.AI
	image          *handler.Image
	authenticate   *middleware.Authenticate
	logging        *middleware.Logging
	allowedOrigins []string
}

// New creates a new Router.
func New(
	health *handler.Health,
	auth *handler.Auth,
	ai *handler.AI,
	image *handler.Image,
	authenticate *middleware.Authenticate,
	logging *middleware.Logging,
	allowedOrigins []string,
) *Router {
	return &Router{
		health:         health,
		auth:           auth,
		ai:             ai,
		image:          image,
		authenticate:   authenticate,
		logging:        logging,
		allowedOrigins: allowedOrigins,
	}
}

// Engine builds the gin engine with all routes registered.
func (r *Router) Engine() *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(r.logging.Handle)
	e.Use(corsMiddleware(r.allowedOrigins))

	e.GET("/", r.health.Root)
	e.GET("/health", r.health.Check)

	auth := e.Group("/auth")
	{
		auth.POST("/register", r.auth.Register)
		auth.POST("/login", r.auth.Login)
		auth.GET("/me", r.authenticate.Handle, r.auth.Me)
	}

	api := e.Group("/api/v1", r.authenticate.Handle)
	{
		api.POST("/sentiment", r.ai.Sentiment)
		api.POST("/classify", r.ai.Classify)
		api.POST("/chat", r.ai.Chat)
		api.GET("/stats", r.ai.Stats)
		api.POST("/classify-pose", r.image.ClassifyPose)
		api.GET("/model-info", r.image.ModelInfo)
	}

	return e
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := slices.Contains(allowedOrigins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || slices.Contains(allowedOrigins, origin)) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
