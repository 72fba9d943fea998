package auth

import (
	"time"

	"github.com/DhavalSuthar-24/pitchup/internal/models"
)

type RegisterRequest struct {
	Email              string          `json:"email" binding:"required,email" example:"alice@x.com"`
	Password           string          `json:"password" binding:"required,min=6,max=72" example:"secret1"`
	Nickname           string          `json:"nickname" binding:"required,min=2,max=50" example:"AliceP"`
	PositionPreference models.Position `json:"position_preference" binding:"omitempty,oneof=goalkeeper defender midfielder forward" example:"midfielder"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@x.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// Session is returned by register and login.
type Session struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	User      *models.User   `json:"user"`
	Player    *models.Player `json:"player"`
}

// Profile is the caller's own user and player.
type Profile struct {
	User   *models.User   `json:"user"`
	Player *models.Player `json:"player"`
}

// RegisterInput is the transport-independent registration payload.
type RegisterInput struct {
	Email    string
	Password string
	Nickname string
	Position models.Position
}
