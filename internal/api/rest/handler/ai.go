package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/aigate/internal/logger"
	"github.com/dtroode/aigate/internal/model"
)

const (
	defaultMaxTokens   = 150
	defaultTemperature = 0.7
	defaultLanguage    = "en"
)

// EventTracker receives best-effort usage events. Properties carry call shape
// only, never payloads.
type EventTracker interface {
	TrackEvent(name string, properties map[string]any)
}

// Auditor schedules non-blocking durable writes of transactions and inputs.
type Auditor interface {
	RecordTransaction(requestID, endpoint string, request, response any)
	StoreInput(filename string, data []byte, contentType string)
}

// AI serves the text inference endpoints. Each request gets a fresh
// correlation id that appears in the response, the transaction record and
// every related log line.
type AI struct {
	completion    model.CompletionService
	telemetry     EventTracker
	audit         Auditor
	maxTextLength int
	debug         bool
	logger        *logger.Logger
}

// NewAI creates the text inference handler.
func NewAI(completion model.CompletionService, telemetry EventTracker, audit Auditor, maxTextLength int, debug bool, logger *logger.Logger) *AI {
	return &AI{
		completion:    completion,
		telemetry:     telemetry,
		audit:         audit,
		maxTextLength: maxTextLength,
		debug:         debug,
		logger:        logger,
	}
}

func (h *AI) checkTextLength(text string) error {
	if len(text) > h.maxTextLength {
		return fmt.Errorf("%w: text exceeds maximum length of %d", model.ErrValidation, h.maxTextLength)
	}
	return nil
}

// Sentiment analyzes text sentiment.
func (h *AI) Sentiment(c *gin.Context) {
	requestID := uuid.NewString()

	var req sentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if err := h.checkTextLength(req.Text); err != nil {
		respondError(c, h.logger, h.debug, requestID, err)
		return
	}
	if req.Language == "" {
		req.Language = defaultLanguage
	}

	h.telemetry.TrackEvent("sentiment_analysis_request", map[string]any{
		"request_id":  requestID,
		"text_length": len(req.Text),
		"language":    req.Language,
	})

	start := time.Now()
	result, err := h.completion.AnalyzeSentiment(c.Request.Context(), req.Text, req.Language)
	if err != nil {
		respondError(c, h.logger, h.debug, requestID, err)
		return
	}

	resp := sentimentResponse{
		Text:           req.Text,
		Sentiment:      result.Sentiment,
		Confidence:     result.Confidence,
		Scores:         result.Scores,
		Source:         string(result.Source),
		ProcessingTime: time.Since(start).Seconds(),
		RequestID:      requestID,
	}

	c.JSON(http.StatusOK, resp)

	h.audit.RecordTransaction(requestID, "sentiment_analysis", req, resp)
}

// Classify classifies text into categories.
func (h *AI) Classify(c *gin.Context) {
	requestID := uuid.NewString()

	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if err := h.checkTextLength(req.Text); err != nil {
		respondError(c, h.logger, h.debug, requestID, err)
		return
	}

	h.telemetry.TrackEvent("text_classification_request", map[string]any{
		"request_id":       requestID,
		"text_length":      len(req.Text),
		"categories_count": len(req.Categories),
	})

	start := time.Now()
	result, err := h.completion.ClassifyText(c.Request.Context(), req.Text, req.Categories)
	if err != nil {
		respondError(c, h.logger, h.debug, requestID, err)
		return
	}

	resp := classifyResponse{
		Text:           req.Text,
		Category:       result.Category,
		Confidence:     result.Confidence,
		AllScores:      result.Scores,
		Source:         string(result.Source),
		ProcessingTime: time.Since(start).Seconds(),
		RequestID:      requestID,
	}

	c.JSON(http.StatusOK, resp)

	h.audit.RecordTransaction(requestID, "text_classification", req, resp)
}

// Chat generates a free-form completion.
func (h *AI) Chat(c *gin.Context) {
	requestID := uuid.NewString()

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if err := h.checkTextLength(req.Prompt); err != nil {
		respondError(c, h.logger, h.debug, requestID, err)
		return
	}

	maxTokens := defaultMaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}
	temperature := defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	h.telemetry.TrackEvent("chat_completion_request", map[string]any{
		"request_id":    requestID,
		"prompt_length": len(req.Prompt),
		"max_tokens":    maxTokens,
	})

	start := time.Now()
	result, err := h.completion.ChatCompletion(c.Request.Context(), req.Prompt, maxTokens, temperature)
	if err != nil {
		respondError(c, h.logger, h.debug, requestID, err)
		return
	}

	resp := chatResponse{
		Prompt:         req.Prompt,
		Response:       result.Response,
		Model:          result.Model,
		TokensUsed:     result.TokensUsed,
		Source:         string(result.Source),
		ProcessingTime: time.Since(start).Seconds(),
		RequestID:      requestID,
	}

	c.JSON(http.StatusOK, resp)

	h.audit.RecordTransaction(requestID, "chat_completion", req, resp)
}

// Stats returns coarse service information. Per-user counters need a real
// database, which this service does not carry.
func (h *AI) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":            "Statistics endpoint",
		"completion_backend": h.completion.Available(),
		"timestamp":          time.Now().UTC(),
	})
}
