package model

import "context"

// ResultSource tags every facade result with how it was produced, making the
// "never propagate dependency failure" contract explicit in the type.
type ResultSource string

const (
	// SourceBackend marks a result delegated to the real collaborator.
	SourceBackend ResultSource = "backend"
	// SourceFallback marks a locally computed substitute result.
	SourceFallback ResultSource = "fallback"
)

// CompletionService analyzes and generates text.
type CompletionService interface {
	AnalyzeSentiment(ctx context.Context, text, language string) (SentimentResult, error)
	ClassifyText(ctx context.Context, text string, categories []string) (ClassificationResult, error)
	ChatCompletion(ctx context.Context, prompt string, maxTokens int, temperature float64) (CompletionResult, error)
	Available() bool
}

// VisionService classifies human pose from image bytes.
type VisionService interface {
	ClassifyPose(ctx context.Context, image []byte) (PoseResult, error)
	Available() bool
}

// ChatMessage is one turn of a chat-completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResult is the raw result of a chat-completion call.
type ChatResult struct {
	Content     string
	Model       string
	TotalTokens int
}

// CompletionBackend is the remote text-completion collaborator.
type CompletionBackend interface {
	ChatCompletion(ctx context.Context, messages []ChatMessage, maxTokens int, temperature float64) (ChatResult, error)
}

// Detection is one (class, confidence) pair from the image backend.
type Detection struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

// PoseDetector is the remote image-inference collaborator.
type PoseDetector interface {
	Detect(ctx context.Context, image []byte) ([]Detection, error)
}

// SentimentResult is the outcome of sentiment analysis.
type SentimentResult struct {
	Sentiment  string
	Confidence float64
	Scores     map[string]float64
	Source     ResultSource
}

// ClassificationResult is the outcome of text classification.
type ClassificationResult struct {
	Category   string
	Confidence float64
	Scores     map[string]float64
	Source     ResultSource
}

// CompletionResult is the outcome of a chat completion.
type CompletionResult struct {
	Response   string
	Model      string
	TokensUsed int
	Source     ResultSource
}

// PoseResult is the outcome of pose classification. Note is set only for
// fallback or empty results; real and mocked text results are deliberately
// indistinguishable in shape, the image path is the documented exception.
type PoseResult struct {
	Pose       string
	Confidence float64
	Scores     map[string]float64
	Detections int
	Note       string
	Source     ResultSource
}
