package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenManager issues and validates signed bearer tokens.
type TokenManager interface {
	Generate(user User) (string, error)
	Parse(token string) (Claims, error)
	TTL() time.Duration
}

// Claims is the decoded, validated payload of a bearer token.
// Subject carries the username; UserID is required alongside it.
type Claims struct {
	Subject   string
	UserID    uuid.UUID
	Email     string
	FullName  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AccessToken is the issued credential returned on login.
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresIn int64
}
