package models

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// Position is a player's preferred position on the pitch.
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

func (p Position) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// Overall ratings live on the same 1..10 scale as peer ratings.
// A new profile starts in the middle of it.
const (
	DefaultOverallRating = 5.0
	MinRating            = 1
	MaxRating            = 10
)

type Player struct {
	BaseModel
	UserID             uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Nickname           string    `json:"nickname" gorm:"size:50;uniqueIndex;not null"`
	PhotoURL           string    `json:"photo_url"`
	OverallRating      float64   `json:"overall_rating" gorm:"not null;default:5"`
	MatchesPlayed      int       `json:"matches_played" gorm:"not null;default:0"`
	Wins               int       `json:"wins" gorm:"not null;default:0"`
	GoalsScored        int       `json:"goals_scored" gorm:"not null;default:0"`
	PositionPreference Position  `json:"position_preference" gorm:"type:varchar(20);not null;default:'forward'"`
}

// DefaultAvatarURL builds the generated avatar used until a player uploads a photo.
func DefaultAvatarURL(nickname string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(nickname))
}

// StatsDelta is added to a player's career counters.
type StatsDelta struct {
	MatchesPlayed int
	Wins          int
	GoalsScored   int
}

func (d StatsDelta) IsZero() bool {
	return d.MatchesPlayed == 0 && d.Wins == 0 && d.GoalsScored == 0
}
