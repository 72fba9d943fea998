package rating

import "github.com/google/uuid"

type CreateRatingRequest struct {
	RatedPlayerID uuid.UUID `json:"rated_player_id" binding:"required"`
	MatchID       uuid.UUID `json:"match_id" binding:"required"`
	Rating        int       `json:"rating" example:"8"`
	Category      string    `json:"category" example:"overall"`
	Comment       *string   `json:"comment" binding:"omitempty,max=500" example:"Ran the midfield"`
}
