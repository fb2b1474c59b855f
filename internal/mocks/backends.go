package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/aigate/internal/model"
)

// CompletionBackend is a mock implementation of model.CompletionBackend.
type CompletionBackend struct {
	mock.Mock
}

func (m *CompletionBackend) ChatCompletion(ctx context.Context, messages []model.ChatMessage, maxTokens int, temperature float64) (model.ChatResult, error) {
	args := m.Called(ctx, messages, maxTokens, temperature)
	return args.Get(0).(model.ChatResult), args.Error(1)
}

// PoseDetector is a mock implementation of model.PoseDetector.
type PoseDetector struct {
	mock.Mock
}

func (m *PoseDetector) Detect(ctx context.Context, image []byte) ([]model.Detection, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Detection), args.Error(1)
}

// PasswordHasher is a mock implementation of model.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Verify(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}
