package match

import (
	"sort"

	"github.com/google/uuid"

	"github.com/DhavalSuthar-24/pitchup/internal/models"
)

func playerRating(mp models.MatchPlayer) float64 {
	if mp.Player == nil {
		return models.DefaultOverallRating
	}
	return mp.Player.OverallRating
}

// balance orders the roster by overall rating, highest first, and deals it
// alternately to A and B. Ties fall back to join order, then player id, so the
// same snapshot always produces the same split.
func balance(roster []models.MatchPlayer) (TeamSplit, map[uuid.UUID]models.Team) {
	sorted := make([]models.MatchPlayer, len(roster))
	copy(sorted, roster)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := playerRating(sorted[i]), playerRating(sorted[j])
		if ri != rj {
			return ri > rj
		}
		if !sorted[i].JoinedAt.Equal(sorted[j].JoinedAt) {
			return sorted[i].JoinedAt.Before(sorted[j].JoinedAt)
		}
		return sorted[i].PlayerID.String() < sorted[j].PlayerID.String()
	})

	split := TeamSplit{TeamA: []models.MatchPlayer{}, TeamB: []models.MatchPlayer{}}
	assignment := make(map[uuid.UUID]models.Team, len(sorted))
	for i, mp := range sorted {
		team := models.TeamA
		if i%2 == 1 {
			team = models.TeamB
		}
		mp.Team = team.Ptr()
		assignment[mp.PlayerID] = team
		if team == models.TeamA {
			split.TeamA = append(split.TeamA, mp)
		} else {
			split.TeamB = append(split.TeamB, mp)
		}
	}
	return split, assignment
}
