package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MatchStatus string

const (
	MatchUpcoming   MatchStatus = "upcoming"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
	MatchCancelled  MatchStatus = "cancelled"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchUpcoming, MatchInProgress, MatchCompleted, MatchCancelled:
		return true
	}
	return false
}

// Terminal statuses accept no further transition.
func (s MatchStatus) Terminal() bool {
	return s == MatchCompleted || s == MatchCancelled
}

type MatchFormat string

const (
	Format5v5   MatchFormat = "5v5"
	Format7v7   MatchFormat = "7v7"
	Format11v11 MatchFormat = "11v11"
)

func (f MatchFormat) Valid() bool {
	switch f {
	case Format5v5, Format7v7, Format11v11:
		return true
	}
	return false
}

// Team is a side within a match.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

// Ptr returns a pointer suitable for the nullable team column.
func (t Team) Ptr() *Team {
	return &t
}

type Match struct {
	BaseModel
	Title       string        `json:"title" gorm:"size:200;not null"`
	Description string        `json:"description"`
	Location    string        `json:"location" gorm:"not null"`
	MatchDate   time.Time     `json:"match_date" gorm:"not null;index"`
	Format      MatchFormat   `json:"format" gorm:"type:varchar(10);not null"`
	MaxPlayers  int           `json:"max_players" gorm:"not null"`
	Status      MatchStatus   `json:"status" gorm:"type:varchar(20);not null;default:'upcoming';index"`
	OrganizerID uuid.UUID     `json:"organizer_id" gorm:"type:uuid;not null;index"`
	TeamAClubID *uuid.UUID    `json:"team_a_club_id,omitempty" gorm:"type:uuid"`
	TeamBClubID *uuid.UUID    `json:"team_b_club_id,omitempty" gorm:"type:uuid"`
	Players     []MatchPlayer `json:"players,omitempty" gorm:"foreignKey:MatchID"`
	Result      *MatchResult  `json:"result,omitempty" gorm:"foreignKey:MatchID"`
}

// IsClubMatch reports whether both sides are clubs.
func (m *Match) IsClubMatch() bool {
	return m.TeamAClubID != nil && m.TeamBClubID != nil
}

// SeedMatchRating is the per-roster rating recorded when a player joins.
const SeedMatchRating = 5.0

// MatchPlayer is a roster entry; (match_id, player_id) is unique.
type MatchPlayer struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	MatchID     uuid.UUID `json:"match_id" gorm:"type:uuid;not null;uniqueIndex:idx_match_player"`
	PlayerID    uuid.UUID `json:"player_id" gorm:"type:uuid;not null;uniqueIndex:idx_match_player;index"`
	Team        *Team     `json:"team" gorm:"type:varchar(1)"`
	GoalsScored int       `json:"goals_scored" gorm:"not null;default:0"`
	Rating      float64   `json:"rating" gorm:"not null;default:5"`
	IsPresent   bool      `json:"is_present" gorm:"not null;default:false"`
	JoinedAt    time.Time `json:"joined_at"`
	Player      *Player   `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
}

func (mp *MatchPlayer) BeforeCreate(tx *gorm.DB) error {
	if mp.ID == uuid.Nil {
		mp.ID = uuid.New()
	}
	return nil
}

func (cp *ClubPlayer) BeforeCreate(tx *gorm.DB) error {
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	return nil
}

// GoalScorers maps a player id to the goals scored in one match.
type GoalScorers map[string]int

func (g GoalScorers) For(playerID uuid.UUID) int { return g[playerID.String()] }

type MatchResult struct {
	BaseModel
	MatchID         uuid.UUID                       `json:"match_id" gorm:"type:uuid;not null;uniqueIndex"`
	TeamAScore      int                             `json:"team_a_score" gorm:"not null"`
	TeamBScore      int                             `json:"team_b_score" gorm:"not null"`
	DurationMinutes int                             `json:"duration_minutes" gorm:"not null;default:0"`
	GoalScorers     datatypes.JSONType[GoalScorers] `json:"goal_scorers" gorm:"type:jsonb"`
	SubmittedBy     uuid.UUID                       `json:"submitted_by" gorm:"type:uuid"`
}

// Outcome is a match result seen from one team.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
	// OutcomeNone applies to roster entries never assigned to a side.
	OutcomeNone Outcome = ""
)

// OutcomeFor derives the outcome for a player on the given team.
func (r *MatchResult) OutcomeFor(team *Team) Outcome {
	if team == nil || !team.Valid() {
		return OutcomeNone
	}
	own, other := r.TeamAScore, r.TeamBScore
	if *team == TeamB {
		own, other = other, own
	}
	switch {
	case own > other:
		return OutcomeWin
	case own < other:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}
