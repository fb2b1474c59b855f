package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/aigate/internal/mocks"
	"github.com/dtroode/aigate/internal/model"
	"github.com/dtroode/aigate/internal/testutil"
)

func TestAI_MockSentiment_Deterministic(t *testing.T) {
	ctx := context.Background()
	a := NewAI(nil, "gpt-35-turbo", testutil.MakeNoopLogger())
	require.False(t, a.Available())

	first, err := a.AnalyzeSentiment(ctx, "I love this product", "en")
	require.NoError(t, err)
	second, err := a.AnalyzeSentiment(ctx, "I love this product", "en")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, model.SourceFallback, first.Source)
}

func TestAI_MockSentiment_Positive(t *testing.T) {
	ctx := context.Background()
	a := NewAI(nil, "gpt-35-turbo", testutil.MakeNoopLogger())

	res, err := a.AnalyzeSentiment(ctx, "I love this product", "en")
	require.NoError(t, err)

	assert.Equal(t, "positive", res.Sentiment)
	assert.LessOrEqual(t, res.Confidence, 0.95)
	assert.InDelta(t, 0.6, res.Confidence, 1e-9)

	require.Len(t, res.Scores, 3)
	require.Contains(t, res.Scores, "positive")
	require.Contains(t, res.Scores, "negative")
	require.Contains(t, res.Scores, "neutral")
	assert.InDelta(t, 0.4, res.Scores["positive"], 1e-9)
	assert.InDelta(t, 0.0, res.Scores["negative"], 1e-9)
	assert.InDelta(t, 0.9, res.Scores["neutral"], 1e-9)
}

func TestAI_MockSentiment_NegativeAndNeutral(t *testing.T) {
	ctx := context.Background()
	a := NewAI(nil, "gpt-35-turbo", testutil.MakeNoopLogger())

	neg, err := a.AnalyzeSentiment(ctx, "this is terrible and awful", "en")
	require.NoError(t, err)
	assert.Equal(t, "negative", neg.Sentiment)

	neu, err := a.AnalyzeSentiment(ctx, "the sky is blue", "en")
	require.NoError(t, err)
	assert.Equal(t, "neutral", neu.Sentiment)
	assert.InDelta(t, 0.6, neu.Confidence, 1e-9)
}

func TestAI_MockSentiment_ScoresWithinUnitInterval(t *testing.T) {
	ctx := context.Background()
	a := NewAI(nil, "gpt-35-turbo", testutil.MakeNoopLogger())

	inputs := []string{
		"",
		"good great excellent amazing wonderful fantastic love happy",
		"bad terrible awful horrible hate sad angry poor",
		"good great excellent amazing bad terrible awful horrible hate sad angry poor wonderful fantastic love happy",
	}
	for _, in := range inputs {
		res, err := a.AnalyzeSentiment(ctx, in, "en")
		require.NoError(t, err)
		for category, score := range res.Scores {
			assert.GreaterOrEqual(t, score, 0.0, "category %s input %q", category, in)
			assert.LessOrEqual(t, score, 1.0, "category %s input %q", category, in)
		}
	}
}

func TestAI_MockClassification(t *testing.T) {
	ctx := context.Background()
	a := NewAI(nil, "gpt-35-turbo", testutil.MakeNoopLogger())

	res, err := a.ClassifyText(ctx, "new ai software runs in the cloud", nil)
	require.NoError(t, err)

	assert.Equal(t, "Technology", res.Category)
	assert.Equal(t, model.SourceFallback, res.Source)
	require.Len(t, res.Scores, 6)
	for category, score := range res.Scores {
		assert.GreaterOrEqual(t, score, 0.0, category)
		assert.LessOrEqual(t, score, 0.9, category)
	}

	again, err := a.ClassifyText(ctx, "new ai software runs in the cloud", nil)
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestAI_MockChatCompletion(t *testing.T) {
	ctx := context.Background()
	a := NewAI(nil, "gpt-35-turbo", testutil.MakeNoopLogger())

	res, err := a.ChatCompletion(ctx, "What is cloud computing?", 100, 0.7)
	require.NoError(t, err)
	assert.Equal(t, "mock", res.Model)
	assert.Zero(t, res.TokensUsed)
	assert.Equal(t, model.SourceFallback, res.Source)
	assert.NotEmpty(t, res.Response)
}

func TestAI_DelegatesToBackend(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.CompletionBackend{}
	backend.On("ChatCompletion", mock.Anything, mock.Anything, 200, 0.3).Return(model.ChatResult{
		Content: `{"sentiment":"positive","confidence":0.92,"scores":{"positive":0.92,"negative":0.03,"neutral":0.05}}`,
	}, nil)

	a := NewAI(backend, "gpt-35-turbo", testutil.MakeNoopLogger())
	require.True(t, a.Available())

	res, err := a.AnalyzeSentiment(ctx, "great stuff", "en")
	require.NoError(t, err)
	assert.Equal(t, model.SourceBackend, res.Source)
	assert.Equal(t, "positive", res.Sentiment)
	assert.InDelta(t, 0.92, res.Confidence, 1e-9)
	backend.AssertExpectations(t)
}

func TestAI_BackendErrorDegradesToFallback(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.CompletionBackend{}
	backend.On("ChatCompletion", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(model.ChatResult{}, errors.New("upstream timeout"))

	a := NewAI(backend, "gpt-35-turbo", testutil.MakeNoopLogger())

	res, err := a.AnalyzeSentiment(ctx, "I love this product", "en")
	require.NoError(t, err)
	assert.Equal(t, model.SourceFallback, res.Source)
	assert.Equal(t, "positive", res.Sentiment)

	chat, err := a.ChatCompletion(ctx, "hello", 50, 0.7)
	require.NoError(t, err)
	assert.Equal(t, model.SourceFallback, chat.Source)
}

func TestAI_MalformedBackendResponseDegradesToFallback(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.CompletionBackend{}
	backend.On("ChatCompletion", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(model.ChatResult{Content: "sorry, I cannot answer in JSON"}, nil)

	a := NewAI(backend, "gpt-35-turbo", testutil.MakeNoopLogger())

	res, err := a.ClassifyText(ctx, "the team won the match", nil)
	require.NoError(t, err)
	assert.Equal(t, model.SourceFallback, res.Source)
	assert.Equal(t, "Sports", res.Category)
}
