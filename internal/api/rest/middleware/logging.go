package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/aigate/internal/logger"
)

// RequestTracker receives per-request telemetry. Implementations must never
// fail the request.
type RequestTracker interface {
	TrackRequest(method, path string, status int, duration time.Duration)
}

// Logging logs every HTTP request, stamps X-Process-Time on the response and
// forwards request telemetry to the sink.
type Logging struct {
	tracker RequestTracker
	logger  *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(tracker RequestTracker, logger *logger.Logger) *Logging {
	return &Logging{tracker: tracker, logger: logger}
}

// Handle measures wall-clock duration and logs method, path and status.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()
	tw := &timingWriter{ResponseWriter: c.Writer, start: start}
	c.Writer = tw

	c.Next()

	duration := time.Since(start)
	status := c.Writer.Status()

	l.logger.Info("HTTP request completed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"duration_ms", duration.Milliseconds())

	l.tracker.TrackRequest(c.Request.Method, c.Request.URL.Path, status, duration)
}

// timingWriter injects the X-Process-Time header just before the first byte
// of the response is written; headers cannot change after that point.
type timingWriter struct {
	gin.ResponseWriter
	start time.Time
	wrote bool
}

func (w *timingWriter) WriteHeader(code int) {
	if !w.wrote {
		w.wrote = true
		w.Header().Set("X-Process-Time", strconv.FormatFloat(time.Since(w.start).Seconds(), 'f', -1, 64))
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *timingWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(w.Status())
	}
	return w.ResponseWriter.Write(b)
}
