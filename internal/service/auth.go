package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/aigate/internal/logger"
	"github.com/dtroode/aigate/internal/model"
)

// Auth implements registration, login and token-based identification.
type Auth struct {
	users  model.UserStore
	tokens model.TokenManager
	hasher model.PasswordHasher
	logger *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(users model.UserStore, tokens model.TokenManager, hasher model.PasswordHasher, logger *logger.Logger) *Auth {
	return &Auth{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
	}
}

// Register creates a new active user. The plaintext password is hashed before
// the record is built and is never stored.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	a.logger.Debug("Auth service: registering user", "username", params.Username)

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		FullName:     params.FullName,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := a.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrUsernameTaken) || errors.Is(err, model.ErrEmailTaken) {
			a.logger.Info("Auth service: registration rejected",
				"username", params.Username,
				"reason", err.Error())
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "username", created.Username, "user_id", created.ID)

	return created, nil
}

// Login verifies credentials and issues an access token. Unknown username and
// wrong password both return ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, username, password string) (model.AccessToken, error) {
	a.logger.Debug("Auth service: login attempt", "username", username)

	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.AccessToken{}, model.ErrInvalidCredentials
		}
		return model.AccessToken{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return model.AccessToken{}, model.ErrInvalidCredentials
	}

	if !user.IsActive {
		return model.AccessToken{}, model.ErrInactiveAccount
	}

	tokenString, err := a.tokens.Generate(user)
	if err != nil {
		return model.AccessToken{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "username", username)

	return model.AccessToken{
		Token:     tokenString,
		TokenType: "bearer",
		ExpiresIn: int64(a.tokens.TTL().Seconds()),
	}, nil
}

// Identify resolves a bearer token to the current user record. Token validity
// does not imply current existence: a user removed after issuance yields
// ErrNotFound.
func (a *Auth) Identify(ctx context.Context, tokenString string) (model.User, error) {
	claims, err := a.tokens.Parse(tokenString)
	if err != nil {
		a.logger.Info("Auth service: token rejected", "reason", err.Error())
		return model.User{}, model.ErrInvalidToken
	}

	user, err := a.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
