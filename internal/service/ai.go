package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dtroode/aigate/internal/logger"
	"github.com/dtroode/aigate/internal/model"
)

var _ model.CompletionService = (*AI)(nil)

var defaultCategories = []string{"Technology", "Business", "Sports", "Entertainment", "Politics", "Health"}

var positiveWords = []string{"good", "great", "excellent", "amazing", "wonderful", "fantastic", "love", "happy"}

var negativeWords = []string{"bad", "terrible", "awful", "horrible", "hate", "sad", "angry", "poor"}

// Ordered so fallback tie-breaks are deterministic.
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{"Technology", []string{"tech", "software", "computer", "ai", "data", "cloud", "app"}},
	{"Business", []string{"business", "company", "market", "revenue", "profit", "investment"}},
	{"Sports", []string{"sports", "game", "team", "player", "match", "championship"}},
	{"Entertainment", []string{"movie", "music", "film", "show", "celebrity", "entertainment"}},
	{"Politics", []string{"politics", "government", "election", "president", "policy"}},
	{"Health", []string{"health", "medical", "doctor", "hospital", "disease", "treatment"}},
}

// AI is the resilient facade over the remote completion backend. When the
// backend is absent or fails, text analysis degrades to deterministic
// keyword-weighted scoring so results are reproducible for the same input.
type AI struct {
	backend    model.CompletionBackend
	available  bool
	deployment string
	logger     *logger.Logger
}

// NewAI creates the completion facade. A nil backend marks the facade
// unavailable for the process lifetime; construction never fails.
func NewAI(backend model.CompletionBackend, deployment string, logger *logger.Logger) *AI {
	a := &AI{
		backend:    backend,
		available:  backend != nil,
		deployment: deployment,
		logger:     logger,
	}
	if !a.available {
		logger.Warn("AI service: completion backend not configured, using mock responses")
	}
	return a
}

// Available reports whether the real backend is in use.
func (a *AI) Available() bool {
	return a.available
}

// AnalyzeSentiment classifies text as positive, negative or neutral.
func (a *AI) AnalyzeSentiment(ctx context.Context, text, language string) (model.SentimentResult, error) {
	if !a.available {
		return a.mockSentiment(text), nil
	}

	prompt := fmt.Sprintf(`Analyze the sentiment of the following text and respond with a JSON object containing:
- sentiment: one of "positive", "negative", or "neutral"
- confidence: a float between 0 and 1
- scores: an object with scores for positive, negative, and neutral

Text: %s

Respond only with the JSON object, no additional text.`, text)

	result, err := a.backend.ChatCompletion(ctx, []model.ChatMessage{
		{Role: "system", Content: "You are a sentiment analysis AI. Respond only with JSON."},
		{Role: "user", Content: prompt},
	}, 200, 0.3)
	if err != nil {
		a.logger.Error("AI service: sentiment analysis failed, degrading to fallback", "error", err.Error())
		return a.mockSentiment(text), nil
	}

	var parsed struct {
		Sentiment  string             `json:"sentiment"`
		Confidence float64            `json:"confidence"`
		Scores     map[string]float64 `json:"scores"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(result.Content)), &parsed); err != nil {
		a.logger.Error("AI service: malformed sentiment response, degrading to fallback", "error", err.Error())
		return a.mockSentiment(text), nil
	}

	return model.SentimentResult{
		Sentiment:  parsed.Sentiment,
		Confidence: parsed.Confidence,
		Scores:     parsed.Scores,
		Source:     model.SourceBackend,
	}, nil
}

// ClassifyText classifies text into one of the given categories, or the
// default set when none are supplied.
func (a *AI) ClassifyText(ctx context.Context, text string, categories []string) (model.ClassificationResult, error) {
	if !a.available {
		return a.mockClassification(text), nil
	}

	cats := categories
	if len(cats) == 0 {
		cats = defaultCategories
	}

	prompt := fmt.Sprintf(`Classify the following text into one of these categories: %s

Text: %s

Respond with a JSON object containing:
- category: the best matching category
- confidence: a float between 0 and 1
- all_scores: an object with confidence scores for each category

Respond only with the JSON object.`, strings.Join(cats, ", "), text)

	result, err := a.backend.ChatCompletion(ctx, []model.ChatMessage{
		{Role: "system", Content: "You are a text classification AI. Respond only with JSON."},
		{Role: "user", Content: prompt},
	}, 300, 0.3)
	if err != nil {
		a.logger.Error("AI service: text classification failed, degrading to fallback", "error", err.Error())
		return a.mockClassification(text), nil
	}

	var parsed struct {
		Category   string             `json:"category"`
		Confidence float64            `json:"confidence"`
		AllScores  map[string]float64 `json:"all_scores"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(result.Content)), &parsed); err != nil {
		a.logger.Error("AI service: malformed classification response, degrading to fallback", "error", err.Error())
		return a.mockClassification(text), nil
	}

	return model.ClassificationResult{
		Category:   parsed.Category,
		Confidence: parsed.Confidence,
		Scores:     parsed.AllScores,
		Source:     model.SourceBackend,
	}, nil
}

// ChatCompletion generates a free-form completion for the prompt.
func (a *AI) ChatCompletion(ctx context.Context, prompt string, maxTokens int, temperature float64) (model.CompletionResult, error) {
	if !a.available {
		return a.mockCompletion(), nil
	}

	result, err := a.backend.ChatCompletion(ctx, []model.ChatMessage{
		{Role: "system", Content: "You are a helpful AI assistant."},
		{Role: "user", Content: prompt},
	}, maxTokens, temperature)
	if err != nil {
		a.logger.Error("AI service: chat completion failed, degrading to fallback", "error", err.Error())
		return a.mockCompletion(), nil
	}

	return model.CompletionResult{
		Response:   result.Content,
		Model:      a.deployment,
		TokensUsed: result.TotalTokens,
		Source:     model.SourceBackend,
	}, nil
}

// mockSentiment scores text with fixed keyword weights. Same input text
// always yields the same sentiment, confidence and scores.
func (a *AI) mockSentiment(text string) model.SentimentResult {
	lower := strings.ToLower(text)

	var positiveScore, negativeScore float64
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positiveScore += 0.1
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negativeScore += 0.1
		}
	}
	neutralScore := max(1.0-positiveScore-negativeScore, 0)

	var sentiment string
	var confidence float64
	switch {
	case positiveScore > negativeScore:
		sentiment = "positive"
		confidence = min(0.5+positiveScore, 0.95)
	case negativeScore > positiveScore:
		sentiment = "negative"
		confidence = min(0.5+negativeScore, 0.95)
	default:
		sentiment = "neutral"
		confidence = 0.6
	}

	scores := map[string]float64{
		"positive": positiveScore,
		"negative": negativeScore,
		"neutral":  neutralScore,
	}
	if sentiment == "positive" {
		scores["positive"] = min(positiveScore+0.3, 1.0)
	}
	if sentiment == "negative" {
		scores["negative"] = min(negativeScore+0.3, 1.0)
	}

	return model.SentimentResult{
		Sentiment:  sentiment,
		Confidence: confidence,
		Scores:     scores,
		Source:     model.SourceFallback,
	}
}

// mockClassification scores text against fixed keyword lists over the default
// categories. Caller-supplied categories are honored only by the real backend.
func (a *AI) mockClassification(text string) model.ClassificationResult {
	lower := strings.ToLower(text)

	scores := make(map[string]float64, len(categoryKeywords))
	bestCategory := categoryKeywords[0].category
	bestScore := -1.0
	for _, ck := range categoryKeywords {
		var matches float64
		for _, w := range ck.words {
			if strings.Contains(lower, w) {
				matches++
			}
		}
		score := min(matches/float64(len(ck.words))+0.1, 0.9)
		scores[ck.category] = score
		if score > bestScore {
			bestScore = score
			bestCategory = ck.category
		}
	}

	return model.ClassificationResult{
		Category:   bestCategory,
		Confidence: bestScore,
		Scores:     scores,
		Source:     model.SourceFallback,
	}
}

func (a *AI) mockCompletion() model.CompletionResult {
	return model.CompletionResult{
		Response:   "Completion backend is not configured. This is a mock response.",
		Model:      "mock",
		TokensUsed: 0,
		Source:     model.SourceFallback,
	}
}
