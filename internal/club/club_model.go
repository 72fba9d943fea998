package club

import "github.com/google/uuid"

type CreateClubInput struct {
	Name        string `json:"name" binding:"required,min=3,max=100" example:"Hackney Wanderers"`
	Description string `json:"description" binding:"max=500" example:"Sunday league regulars"`
	LogoURL     string `json:"logo_url" binding:"omitempty,url" example:"https://cdn.example.com/logo.png"`
}

type InvitePlayerInput struct {
	PlayerID uuid.UUID `json:"player_id" binding:"required" example:"5f0c7a9e-8a7b-4c53-9d61-1b3f2f0a8c11"`
}
