package match

import (
	"time"

	"github.com/google/uuid"

	"github.com/DhavalSuthar-24/pitchup/internal/models"
)

const (
	minMaxPlayers = 2
	maxMaxPlayers = 22
)

// CreateMatchRequest represents the request body for creating a match
type CreateMatchRequest struct {
	Title       string             `json:"title" binding:"required,min=3,max=200" example:"Friday kickabout"`
	Description string             `json:"description" example:"Bring both shirts"`
	Location    string             `json:"location" binding:"required,min=3" example:"Hackney Marshes"`
	MatchDate   time.Time          `json:"match_date" binding:"required" example:"2026-11-06T19:00:00Z"`
	Format      models.MatchFormat `json:"format" binding:"required,oneof=5v5 7v7 11v11" example:"5v5"`
	MaxPlayers  int                `json:"max_players" binding:"required,min=2,max=22" example:"10"`
	// Both club ids together make a club-vs-club match with an automatic roster.
	TeamAClubID *uuid.UUID `json:"team_a_club_id"`
	TeamBClubID *uuid.UUID `json:"team_b_club_id"`
}

// JoinMatchRequest joins a player to the roster. PlayerID defaults to the caller's own profile.
type JoinMatchRequest struct {
	PlayerID *uuid.UUID   `json:"player_id"`
	Team     *models.Team `json:"team" binding:"omitempty,oneof=A B" example:"A"`
}

type UpdateStatusRequest struct {
	Status models.MatchStatus `json:"status" binding:"required,oneof=in_progress cancelled" example:"in_progress"`
}

// SubmitResultRequest records the final score. Goal scorers are keyed by player id.
type SubmitResultRequest struct {
	MatchID         uuid.UUID          `json:"match_id" binding:"required"`
	TeamAScore      *int               `json:"team_a_score" binding:"required,min=0" example:"3"`
	TeamBScore      *int               `json:"team_b_score" binding:"required,min=0" example:"2"`
	DurationMinutes int                `json:"duration_minutes" binding:"min=0" example:"60"`
	GoalScorers     models.GoalScorers `json:"goal_scorers"`
}

// TeamSplit is the outcome of balancing a roster.
type TeamSplit struct {
	TeamA []models.MatchPlayer `json:"team_a"`
	TeamB []models.MatchPlayer `json:"team_b"`
}
