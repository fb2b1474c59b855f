package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/aigate/internal/mocks"
	"github.com/dtroode/aigate/internal/model"
	"github.com/dtroode/aigate/internal/password"
	"github.com/dtroode/aigate/internal/repository/memory"
	"github.com/dtroode/aigate/internal/testutil"
	"github.com/dtroode/aigate/internal/token"
)

func newAuthWithMemory(t *testing.T, ttl time.Duration) (*Auth, *memory.UserStore) {
	t.Helper()
	store := memory.NewUserStore()
	tokens := token.NewJWT("test-secret", ttl)
	return NewAuth(store, tokens, password.NewBcrypt(), testutil.MakeNoopLogger()), store
}

func TestAuth_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	a, _ := newAuthWithMemory(t, 15*time.Minute)

	user, err := a.Register(ctx, model.RegisterParams{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "secret1",
		FullName: "Alice Example",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	tok, err := a.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.Equal(t, int64(900), tok.ExpiresIn)
}

func TestAuth_Register_Duplicates(t *testing.T) {
	ctx := context.Background()
	a, _ := newAuthWithMemory(t, 15*time.Minute)

	_, err := a.Register(ctx, model.RegisterParams{Username: "alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = a.Register(ctx, model.RegisterParams{Username: "alice", Email: "other@x.com", Password: "secret1"})
	require.ErrorIs(t, err, model.ErrUsernameTaken)

	_, err = a.Register(ctx, model.RegisterParams{Username: "bob", Email: "alice@x.com", Password: "secret1"})
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestAuth_Login_WrongPasswordIndistinguishableFromUnknownUser(t *testing.T) {
	ctx := context.Background()
	a, _ := newAuthWithMemory(t, 15*time.Minute)

	_, err := a.Register(ctx, model.RegisterParams{Username: "alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, errWrong := a.Login(ctx, "alice", "wrong")
	_, errUnknown := a.Login(ctx, "nobody", "secret1")

	require.ErrorIs(t, errWrong, model.ErrInvalidCredentials)
	require.ErrorIs(t, errUnknown, model.ErrInvalidCredentials)
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestAuth_Login_InactiveAccount(t *testing.T) {
	ctx := context.Background()

	users := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}
	tokens := &mocks.TokenManager{}

	users.On("GetByUsername", mock.Anything, "alice").Return(model.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hash",
		IsActive:     false,
	}, nil)
	hasher.On("Verify", "secret1", "hash").Return(true)

	a := NewAuth(users, tokens, hasher, testutil.MakeNoopLogger())

	_, err := a.Login(ctx, "alice", "secret1")
	require.ErrorIs(t, err, model.ErrInactiveAccount)
}

func TestAuth_Identify(t *testing.T) {
	ctx := context.Background()
	a, _ := newAuthWithMemory(t, 15*time.Minute)

	registered, err := a.Register(ctx, model.RegisterParams{Username: "alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	tok, err := a.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	user, err := a.Identify(ctx, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuth_Identify_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	a, _ := newAuthWithMemory(t, -time.Minute)

	_, err := a.Register(ctx, model.RegisterParams{Username: "alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	tok, err := a.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = a.Identify(ctx, tok.Token)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestAuth_Identify_UserRemovedAfterIssuance(t *testing.T) {
	ctx := context.Background()
	a, store := newAuthWithMemory(t, 15*time.Minute)

	registered, err := a.Register(ctx, model.RegisterParams{Username: "alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	tok, err := a.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, registered.ID))

	_, err = a.Identify(ctx, tok.Token)
	require.ErrorIs(t, err, model.ErrNotFound)
}
