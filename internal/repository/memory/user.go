package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/aigate/internal/model"
)

var _ model.UserStore = (*UserStore)(nil)

// UserStore is a process-local user registry. The duplicate check and insert
// run under one mutex so concurrent registration of the same username cannot
// create two records.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]model.User
	byName  map[string]uuid.UUID
	byEmail map[string]uuid.UUID
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[uuid.UUID]model.User),
		byName:  make(map[string]uuid.UUID),
		byEmail: make(map[string]uuid.UUID),
	}
}

// Create inserts a user, enforcing case-sensitive username and email
// uniqueness atomically.
func (s *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[user.Username]; exists {
		return model.User{}, model.ErrUsernameTaken
	}
	if _, exists := s.byEmail[user.Email]; exists {
		return model.User{}, model.ErrEmailTaken
	}

	s.byID[user.ID] = user
	s.byName[user.Username] = user.ID
	s.byEmail[user.Email] = user.ID

	return user, nil
}

// GetByUsername returns the user with the given username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[username]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	return s.byID[id], nil
}

// GetByID returns the user with the given id.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	return user, nil
}

// Delete removes a user record. Used by tests to model a user disappearing
// between token issuance and use.
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return model.ErrNotFound
	}

	delete(s.byID, id)
	delete(s.byName, user.Username)
	delete(s.byEmail, user.Email)

	return nil
}
