package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/aigate/internal/logger"
	"github.com/dtroode/aigate/internal/model"
)

// Image serves the image inference endpoints.
type Image struct {
	classifier model.VisionService
	classes    []string
	telemetry  EventTracker
	audit      Auditor
	debug      bool
	logger     *logger.Logger
}

// NewImage creates the image inference handler.
func NewImage(classifier model.VisionService, classes []string, telemetry EventTracker, audit Auditor, debug bool, logger *logger.Logger) *Image {
	return &Image{
		classifier: classifier,
		classes:    classes,
		telemetry:  telemetry,
		audit:      audit,
		debug:      debug,
		logger:     logger,
	}
}

// ClassifyPose classifies human pose from an uploaded image.
func (h *Image) ClassifyPose(c *gin.Context) {
	requestID := uuid.NewString()

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respondError(c, h.logger, h.debug, requestID,
			fmt.Errorf("%w: image file is required", model.ErrValidation))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, h.logger, h.debug, requestID,
			fmt.Errorf("%w: file must be an image", model.ErrValidation))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, h.logger, h.debug, requestID, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	h.telemetry.TrackEvent("pose_classification_request", map[string]any{
		"request_id":   requestID,
		"filename":     header.Filename,
		"content_type": contentType,
		"size_bytes":   len(data),
	})

	start := time.Now()
	result, err := h.classifier.ClassifyPose(c.Request.Context(), data)
	if err != nil {
		respondError(c, h.logger, h.debug, requestID, err)
		return
	}

	resp := poseResponse{
		Filename:        header.Filename,
		Pose:            result.Pose,
		Confidence:      result.Confidence,
		AllScores:       result.Scores,
		DetectionsCount: result.Detections,
		Source:          string(result.Source),
		ProcessingTime:  time.Since(start).Seconds(),
		RequestID:       requestID,
		Message:         result.Note,
	}

	c.JSON(http.StatusOK, resp)

	h.audit.StoreInput(header.Filename, data, contentType)
	h.audit.RecordTransaction(requestID, "pose_classification", map[string]any{
		"filename":     header.Filename,
		"content_type": contentType,
		"size_bytes":   len(data),
	}, resp)
}

// ModelInfo describes the vision backend and its classes.
func (h *Image) ModelInfo(c *gin.Context) {
	status := "mock"
	if h.classifier.Available() {
		status = "loaded"
	}

	c.JSON(http.StatusOK, gin.H{
		"model_type": "pose-classification",
		"status":     status,
		"classes":    h.classes,
	})
}
