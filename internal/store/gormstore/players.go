package gormstore

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
)

func (s *Store) CreatePlayer(ctx context.Context, p *models.Player) error {
	return translate(s.db.WithContext(ctx).Create(p).Error)
}

func (s *Store) GetPlayerByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	var p models.Player
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) GetPlayerByUserID(ctx context.Context, userID uuid.UUID) (*models.Player, error) {
	var p models.Player
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) GetPlayerByNickname(ctx context.Context, nickname string) (*models.Player, error) {
	var p models.Player
	if err := s.db.WithContext(ctx).Where("nickname = ?", nickname).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) ListPlayers(ctx context.Context, f store.PlayerFilter) ([]models.Player, int64, error) {
	var (
		players []models.Player
		total   int64
	)
	query := s.db.WithContext(ctx).Model(&models.Player{})
	if search := strings.TrimSpace(f.Search); search != "" {
		query = query.Where("nickname ILIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	offset, limit := orderedPage(f.Page)
	err := query.Order("overall_rating DESC, created_at ASC, id ASC").
		Offset(offset).Limit(limit).Find(&players).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return players, total, nil
}

func (s *Store) UpdatePlayerProfile(ctx context.Context, id uuid.UUID, upd store.PlayerUpdate) (*models.Player, error) {
	updates := map[string]interface{}{}
	if upd.Nickname != nil {
		updates["nickname"] = *upd.Nickname
	}
	if upd.PositionPreference != nil {
		updates["position_preference"] = *upd.PositionPreference
	}
	if upd.PhotoURL != nil {
		updates["photo_url"] = *upd.PhotoURL
	}

	var p models.Player
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			res := tx.Model(&models.Player{}).Where("id = ?", id).Updates(updates)
			if res.Error != nil {
				return translate(res.Error)
			}
			if res.RowsAffected == 0 {
				return store.ErrNotFound
			}
		}
		return translate(tx.First(&p, "id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ApplyPlayerStats(ctx context.Context, id uuid.UUID, delta models.StatsDelta) error {
	res := s.db.WithContext(ctx).Model(&models.Player{}).Where("id = ?", id).Updates(map[string]interface{}{
		"matches_played": gorm.Expr("matches_played + ?", delta.MatchesPlayed),
		"wins":           gorm.Expr("wins + ?", delta.Wins),
		"goals_scored":   gorm.Expr("goals_scored + ?", delta.GoalsScored),
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) SetPlayerOverallRating(ctx context.Context, id uuid.UUID, rating float64) error {
	res := s.db.WithContext(ctx).Model(&models.Player{}).Where("id = ?", id).Update("overall_rating", rating)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
