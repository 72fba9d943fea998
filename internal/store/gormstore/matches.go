package gormstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
)

func rosterByJoinOrder(db *gorm.DB) *gorm.DB {
	return db.Order("joined_at ASC, id ASC")
}

// lockMatch selects the match row FOR UPDATE so roster and status checks
// cannot interleave with another writer.
func lockMatch(tx *gorm.DB, id uuid.UUID) (*models.Match, error) {
	var m models.Match
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (s *Store) CreateMatch(ctx context.Context, m *models.Match, roster []models.MatchPlayer) error {
	if len(roster) > m.MaxPlayers {
		return store.ErrCapacity
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return translate(err)
		}
		if len(roster) == 0 {
			return nil
		}
		now := time.Now()
		for i := range roster {
			roster[i].MatchID = m.ID
			if roster[i].JoinedAt.IsZero() {
				roster[i].JoinedAt = now
			}
		}
		return translate(tx.Omit(clause.Associations).Create(&roster).Error)
	})
}

func (s *Store) GetMatchByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var m models.Match
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (s *Store) GetMatchDetails(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var m models.Match
	err := s.db.WithContext(ctx).
		Preload("Players", rosterByJoinOrder).
		Preload("Players.Player").
		Preload("Result").
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (s *Store) ListMatches(ctx context.Context, f store.MatchFilter) ([]models.Match, int64, error) {
	var (
		matches []models.Match
		total   int64
	)
	query := s.db.WithContext(ctx).Model(&models.Match{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	offset, limit := orderedPage(f.Page)
	if err := query.Order("match_date ASC, id ASC").Offset(offset).Limit(limit).Find(&matches).Error; err != nil {
		return nil, 0, translate(err)
	}
	return matches, total, nil
}

func (s *Store) ListMatchPlayers(ctx context.Context, matchID uuid.UUID) ([]models.MatchPlayer, error) {
	db := s.db.WithContext(ctx)
	ok, err := rowExists(db, &models.Match{}, matchID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, store.ErrNotFound
	}
	var roster []models.MatchPlayer
	if err := rosterByJoinOrder(db.Preload("Player").Where("match_id = ?", matchID)).Find(&roster).Error; err != nil {
		return nil, translate(err)
	}
	return roster, nil
}

func (s *Store) GetMatchPlayer(ctx context.Context, matchID, playerID uuid.UUID) (*models.MatchPlayer, error) {
	var mp models.MatchPlayer
	err := s.db.WithContext(ctx).Where("match_id = ? AND player_id = ?", matchID, playerID).First(&mp).Error
	if err != nil {
		return nil, translate(err)
	}
	return &mp, nil
}

func (s *Store) AddMatchPlayer(ctx context.Context, mp *models.MatchPlayer, ownerUserID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockMatch(tx, mp.MatchID)
		if err != nil {
			return err
		}
		if m.Status.Terminal() {
			return store.ErrConflict
		}
		var n int64
		if err := tx.Model(&models.MatchPlayer{}).Where("match_id = ?", mp.MatchID).Count(&n).Error; err != nil {
			return translate(err)
		}
		if n >= int64(m.MaxPlayers) {
			return store.ErrCapacity
		}
		var joined int64
		err = tx.Model(&models.MatchPlayer{}).
			Where("match_id = ? AND player_id = ?", mp.MatchID, mp.PlayerID).
			Count(&joined).Error
		if err != nil {
			return translate(err)
		}
		if joined > 0 {
			return store.ErrDuplicate
		}
		var p models.Player
		if err := tx.Select("id", "user_id").First(&p, "id = ?", mp.PlayerID).Error; err != nil {
			return translate(err)
		}
		if p.UserID != ownerUserID {
			return store.ErrNotOwner
		}
		if mp.JoinedAt.IsZero() {
			mp.JoinedAt = time.Now()
		}
		return translate(tx.Omit(clause.Associations).Create(mp).Error)
	})
}

func (s *Store) AssignTeams(ctx context.Context, matchID uuid.UUID, teams map[uuid.UUID]models.Team) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockMatch(tx, matchID); err != nil {
			return err
		}
		for playerID, team := range teams {
			err := tx.Model(&models.MatchPlayer{}).
				Where("match_id = ? AND player_id = ?", matchID, playerID).
				Update("team", team).Error
			if err != nil {
				return translate(err)
			}
		}
		return nil
	})
}

func (s *Store) UpdateMatchStatus(ctx context.Context, id uuid.UUID, from []models.MatchStatus, to models.MatchStatus) error {
	db := s.db.WithContext(ctx)
	res := db.Model(&models.Match{}).Where("id = ? AND status IN ?", id, from).Update("status", to)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	ok, err := rowExists(db, &models.Match{}, id)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrNotFound
	}
	return store.ErrConflict
}

func (s *Store) CompleteMatch(ctx context.Context, result *models.MatchResult) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockMatch(tx, result.MatchID)
		if err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&models.MatchResult{}).Where("match_id = ?", result.MatchID).Count(&n).Error; err != nil {
			return translate(err)
		}
		if n > 0 {
			return store.ErrDuplicate
		}
		if m.Status.Terminal() {
			return store.ErrConflict
		}
		if err := tx.Create(result).Error; err != nil {
			return translate(err)
		}
		for key, goals := range result.GoalScorers.Data() {
			playerID, err := uuid.Parse(key)
			if err != nil {
				continue
			}
			err = tx.Model(&models.MatchPlayer{}).
				Where("match_id = ? AND player_id = ?", result.MatchID, playerID).
				Update("goals_scored", goals).Error
			if err != nil {
				return translate(err)
			}
		}
		return translate(tx.Model(m).Update("status", models.MatchCompleted).Error)
	})
}

func (s *Store) GetMatchResult(ctx context.Context, matchID uuid.UUID) (*models.MatchResult, error) {
	var r models.MatchResult
	if err := s.db.WithContext(ctx).Where("match_id = ?", matchID).First(&r).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}
