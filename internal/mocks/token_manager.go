package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/aigate/internal/model"
)

// TokenManager is a mock implementation of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Generate(user model.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Parse(token string) (model.Claims, error) {
	args := m.Called(token)
	return args.Get(0).(model.Claims), args.Error(1)
}

func (m *TokenManager) TTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}
