package match

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/pitchup/internal/models"
)

func rosterWithRatings(ratings ...float64) []models.MatchPlayer {
	base := time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)
	roster := make([]models.MatchPlayer, len(ratings))
	for i, r := range ratings {
		id := uuid.New()
		roster[i] = models.MatchPlayer{
			PlayerID: id,
			JoinedAt: base.Add(time.Duration(i) * time.Minute),
			Player:   &models.Player{BaseModel: models.BaseModel{ID: id}, OverallRating: r},
		}
	}
	return roster
}

func ratingsOf(mps []models.MatchPlayer) []float64 {
	out := make([]float64, len(mps))
	for i, mp := range mps {
		out[i] = mp.Player.OverallRating
	}
	return out
}

func TestBalanceAlternatesByRating(t *testing.T) {
	// joined in ascending order so the sort has work to do
	split, assignment := balance(rosterWithRatings(3, 9, 5, 7))

	assert.Equal(t, []float64{9, 5}, ratingsOf(split.TeamA))
	assert.Equal(t, []float64{7, 3}, ratingsOf(split.TeamB))
	assert.Len(t, assignment, 4)
	for _, mp := range split.TeamA {
		assert.Equal(t, models.TeamA, assignment[mp.PlayerID])
		require.NotNil(t, mp.Team)
		assert.Equal(t, models.TeamA, *mp.Team)
	}
}

func TestBalanceIsDeterministic(t *testing.T) {
	roster := rosterWithRatings(6, 6, 6, 8, 4, 6, 6)

	first, _ := balance(roster)
	for i := 0; i < 10; i++ {
		again, _ := balance(roster)
		assert.Equal(t, first, again)
	}

	// equal ratings fall back to join order
	tied := rosterWithRatings(5, 5)
	split, _ := balance(tied)
	assert.Equal(t, tied[0].PlayerID, split.TeamA[0].PlayerID)
	assert.Equal(t, tied[1].PlayerID, split.TeamB[0].PlayerID)
}

func TestBalanceSeparatesTopTwo(t *testing.T) {
	split, assignment := balance(rosterWithRatings(1, 2, 10, 3, 9))
	assert.Len(t, split.TeamA, 3)
	assert.Len(t, split.TeamB, 2)

	var top, second uuid.UUID
	for _, mp := range append(split.TeamA, split.TeamB...) {
		switch mp.Player.OverallRating {
		case 10:
			top = mp.PlayerID
		case 9:
			second = mp.PlayerID
		}
	}
	assert.NotEqual(t, assignment[top], assignment[second])
}

func TestBalanceDoesNotMutateInput(t *testing.T) {
	roster := rosterWithRatings(4, 8)
	balance(roster)
	assert.Nil(t, roster[0].Team)
	assert.Equal(t, 4.0, roster[0].Player.OverallRating)
}
