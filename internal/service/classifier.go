package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/dtroode/aigate/internal/logger"
	"github.com/dtroode/aigate/internal/model"
)

var _ model.VisionService = (*Classifier)(nil)

var poseClasses = []string{"lying", "standing", "sitting"}

// Classifier is the resilient facade over the remote pose-detection backend.
// Its fallback is the one documented exception to fallback determinism: a
// uniformly random class with confidence in [0.7, 0.95], marked with a note.
type Classifier struct {
	backend   model.PoseDetector
	available bool
	logger    *logger.Logger
}

// NewClassifier creates the vision facade. A nil backend marks the facade
// unavailable for the process lifetime; construction never fails.
func NewClassifier(backend model.PoseDetector, logger *logger.Logger) *Classifier {
	c := &Classifier{
		backend:   backend,
		available: backend != nil,
		logger:    logger,
	}
	if !c.available {
		logger.Warn("Classifier service: vision backend not configured, using mock predictions")
	}
	return c
}

// Available reports whether the real backend is in use.
func (c *Classifier) Available() bool {
	return c.available
}

// Classes returns the pose classes the service recognizes.
func (c *Classifier) Classes() []string {
	return poseClasses
}

// ClassifyPose classifies human pose from image bytes. An empty image is a
// caller error and propagates; backend failures degrade to the mock.
func (c *Classifier) ClassifyPose(ctx context.Context, image []byte) (model.PoseResult, error) {
	if len(image) == 0 {
		return model.PoseResult{}, fmt.Errorf("%w: image must not be empty", model.ErrValidation)
	}

	if !c.available {
		return c.mockPose(), nil
	}

	detections, err := c.backend.Detect(ctx, image)
	if err != nil {
		c.logger.Error("Classifier service: detection failed, degrading to fallback", "error", err.Error())
		return c.mockPose(), nil
	}

	if len(detections) == 0 {
		scores := make(map[string]float64, len(poseClasses))
		for _, cls := range poseClasses {
			scores[cls] = 0.0
		}
		return model.PoseResult{
			Pose:       "unknown",
			Confidence: 0.0,
			Scores:     scores,
			Detections: 0,
			Note:       "No human detected in image",
			Source:     model.SourceBackend,
		}, nil
	}

	best := detections[0]
	scores := make(map[string]float64, len(poseClasses))
	for _, cls := range poseClasses {
		scores[cls] = 0.0
	}
	for _, d := range detections {
		if d.Confidence > best.Confidence {
			best = d
		}
		if d.Confidence > scores[d.Class] {
			scores[d.Class] = d.Confidence
		}
	}

	c.logger.Info("Classifier service: classified pose", "pose", best.Class, "confidence", best.Confidence)

	return model.PoseResult{
		Pose:       best.Class,
		Confidence: best.Confidence,
		Scores:     scores,
		Detections: len(detections),
		Source:     model.SourceBackend,
	}, nil
}

func (c *Classifier) mockPose() model.PoseResult {
	pose := poseClasses[rand.IntN(len(poseClasses))]
	confidence := 0.7 + rand.Float64()*0.25

	scores := make(map[string]float64, len(poseClasses))
	for _, cls := range poseClasses {
		if cls == pose {
			scores[cls] = confidence
		} else {
			scores[cls] = 0.05 + rand.Float64()*0.25
		}
	}

	return model.PoseResult{
		Pose:       pose,
		Confidence: confidence,
		Scores:     scores,
		Detections: 1,
		Note:       "Using mock classification (model not loaded)",
		Source:     model.SourceFallback,
	}
}
