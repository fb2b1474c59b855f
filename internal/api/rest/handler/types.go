package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/aigate/internal/model"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type sentimentRequest struct {
	Text     string `json:"text" binding:"required,min=1"`
	Language string `json:"language"`
}

type sentimentResponse struct {
	Text           string             `json:"text"`
	Sentiment      string             `json:"sentiment"`
	Confidence     float64            `json:"confidence"`
	Scores         map[string]float64 `json:"scores"`
	Source         string             `json:"source"`
	ProcessingTime float64            `json:"processing_time"`
	RequestID      string             `json:"request_id"`
}

type classifyRequest struct {
	Text       string   `json:"text" binding:"required,min=1"`
	Categories []string `json:"categories"`
}

type classifyResponse struct {
	Text           string             `json:"text"`
	Category       string             `json:"category"`
	Confidence     float64            `json:"confidence"`
	AllScores      map[string]float64 `json:"all_scores"`
	Source         string             `json:"source"`
	ProcessingTime float64            `json:"processing_time"`
	RequestID      string             `json:"request_id"`
}

type chatRequest struct {
	Prompt      string   `json:"prompt" binding:"required,min=1"`
	MaxTokens   *int     `json:"max_tokens" binding:"omitempty,min=1,max=4000"`
	Temperature *float64 `json:"temperature" binding:"omitempty,min=0,max=2"`
}

type chatResponse struct {
	Prompt         string  `json:"prompt"`
	Response       string  `json:"response"`
	Model          string  `json:"model"`
	TokensUsed     int     `json:"tokens_used"`
	Source         string  `json:"source"`
	ProcessingTime float64 `json:"processing_time"`
	RequestID      string  `json:"request_id"`
}

type poseResponse struct {
	Filename        string             `json:"filename"`
	Pose            string             `json:"pose"`
	Confidence      float64            `json:"confidence"`
	AllScores       map[string]float64 `json:"all_scores"`
	DetectionsCount int                `json:"detections_count"`
	Source          string             `json:"source"`
	ProcessingTime  float64            `json:"processing_time"`
	RequestID       string             `json:"request_id"`
	Message         string             `json:"message,omitempty"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
