package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/dtroode/aigate/internal/logger"
)

// Telemetry is the fire-and-forget facade over the telemetry sink. Events are
// posted in the background; every failure is logged and swallowed, nothing
// ever propagates to a caller.
type Telemetry struct {
	endpoint string
	key      string
	enabled  bool
	client   *http.Client
	logger   *logger.Logger
	wg       sync.WaitGroup
}

type telemetryEnvelope struct {
	Name       string         `json:"name"`
	Time       time.Time      `json:"time"`
	Properties map[string]any `json:"properties,omitempty"`
}

// NewTelemetry creates the telemetry facade. An empty endpoint or key
// disables it for the process lifetime.
func NewTelemetry(endpoint, key string, logger *logger.Logger) *Telemetry {
	t := &Telemetry{
		endpoint: endpoint,
		key:      key,
		enabled:  endpoint != "" && key != "",
		client:   &http.Client{Timeout: 5 * time.Second},
		logger:   logger,
	}
	if !t.enabled {
		logger.Warn("Telemetry service: sink not configured, events will be dropped")
	}
	return t
}

// Enabled reports whether events are actually delivered.
func (t *Telemetry) Enabled() bool {
	return t.enabled
}

// TrackEvent records a custom event. Properties must describe call shape
// only (lengths, flags), never raw payloads.
func (t *Telemetry) TrackEvent(name string, properties map[string]any) {
	t.send(telemetryEnvelope{Name: name, Time: time.Now().UTC(), Properties: properties})
}

// TrackRequest records one handled HTTP request.
func (t *Telemetry) TrackRequest(method, path string, status int, duration time.Duration) {
	t.send(telemetryEnvelope{
		Name: "request",
		Time: time.Now().UTC(),
		Properties: map[string]any{
			"method":      method,
			"path":        path,
			"status_code": status,
			"duration_ms": duration.Milliseconds(),
		},
	})
}

// Flush waits for in-flight sends. Called on shutdown and from tests.
func (t *Telemetry) Flush() {
	t.wg.Wait()
}

func (t *Telemetry) send(env telemetryEnvelope) {
	if !t.enabled {
		return
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		body, err := json.Marshal(env)
		if err != nil {
			t.logger.Debug("Telemetry service: failed to marshal event", "event", env.Name, "error", err.Error())
			return
		}

		req, err := http.NewRequest(http.MethodPost, t.endpoint, bytes.NewReader(body))
		if err != nil {
			t.logger.Debug("Telemetry service: failed to build request", "event", env.Name, "error", err.Error())
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Instrumentation-Key", t.key)

		resp, err := t.client.Do(req)
		if err != nil {
			t.logger.Debug("Telemetry service: failed to deliver event", "event", env.Name, "error", err.Error())
			return
		}
		resp.Body.Close()
	}()
}
