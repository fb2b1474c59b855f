package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// ObjectStore is a mock implementation of model.ObjectStore.
type ObjectStore struct {
	mock.Mock
}

func (m *ObjectStore) Save(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *ObjectStore) Available() bool {
	args := m.Called()
	return args.Bool(0)
}
