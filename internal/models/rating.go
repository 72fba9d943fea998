package models

import "github.com/google/uuid"

// DefaultRatingCategory is used when a rating names no category.
const DefaultRatingCategory = "overall"

var ratingCategories = map[string]bool{
	"overall":  true,
	"attack":   true,
	"defense":  true,
	"passing":  true,
	"teamwork": true,
}

func ValidRatingCategory(c string) bool {
	return ratingCategories[c]
}

// PlayerRating is one peer rating; (rater_id, rated_player_id, match_id) is unique.
type PlayerRating struct {
	BaseModel
	RaterID       uuid.UUID `json:"rater_id" gorm:"type:uuid;not null;uniqueIndex:idx_rating_triple"`
	RatedPlayerID uuid.UUID `json:"rated_player_id" gorm:"type:uuid;not null;uniqueIndex:idx_rating_triple;index"`
	MatchID       uuid.UUID `json:"match_id" gorm:"type:uuid;not null;uniqueIndex:idx_rating_triple;index"`
	Rating        int       `json:"rating" gorm:"not null"`
	Category      string    `json:"category" gorm:"size:30;not null;default:'overall'"`
	Comment       *string   `json:"comment"`
	Rater         *Player   `json:"rater,omitempty" gorm:"foreignKey:RaterID"`
	RatedPlayer   *Player   `json:"rated_player,omitempty" gorm:"foreignKey:RatedPlayerID"`
}
