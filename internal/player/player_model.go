package player

import "github.com/DhavalSuthar-24/pitchup/internal/models"

// CreatePlayerInput creates a profile for an account that has none.
type CreatePlayerInput struct {
	Nickname           string          `json:"nickname" binding:"required,min=2,max=50" example:"AliceP"`
	PositionPreference models.Position `json:"position_preference" binding:"omitempty,oneof=goalkeeper defender midfielder forward" example:"midfielder"`
	PhotoURL           string          `json:"photo_url" binding:"omitempty,url" example:"https://cdn.example.com/alice.png"`
}

// UpdatePlayerInput changes profile fields. Ratings and counters are not accepted.
type UpdatePlayerInput struct {
	Nickname           *string          `json:"nickname" binding:"omitempty,min=2,max=50" example:"AliceP"`
	PositionPreference *models.Position `json:"position_preference" binding:"omitempty,oneof=goalkeeper defender midfielder forward" example:"defender"`
	PhotoURL           *string          `json:"photo_url" binding:"omitempty,url" example:"https://cdn.example.com/alice.png"`
}
