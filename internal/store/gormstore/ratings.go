package gormstore

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
)

func (s *Store) CreateRating(ctx context.Context, r *models.PlayerRating) error {
	if r.Category == "" {
		r.Category = models.DefaultRatingCategory
	}
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(r).Error)
}

func (s *Store) RatingExists(ctx context.Context, raterID, ratedPlayerID, matchID uuid.UUID) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.PlayerRating{}).
		Where("rater_id = ? AND rated_player_id = ? AND match_id = ?", raterID, ratedPlayerID, matchID).
		Count(&n).Error
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (s *Store) listRatings(ctx context.Context, column string, id uuid.UUID) ([]models.PlayerRating, error) {
	var ratings []models.PlayerRating
	err := s.db.WithContext(ctx).
		Preload("Rater").
		Preload("RatedPlayer").
		Where(column+" = ?", id).
		Order("created_at DESC, id DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, translate(err)
	}
	return ratings, nil
}

func (s *Store) ListRatingsForPlayer(ctx context.Context, playerID uuid.UUID) ([]models.PlayerRating, error) {
	return s.listRatings(ctx, "rated_player_id", playerID)
}

func (s *Store) ListRatingsForMatch(ctx context.Context, matchID uuid.UUID) ([]models.PlayerRating, error) {
	return s.listRatings(ctx, "match_id", matchID)
}

// RefreshOverallRating folds the aggregate into the UPDATE so concurrent
// ratings for the same player cannot store a stale mean.
func (s *Store) RefreshOverallRating(ctx context.Context, playerID uuid.UUID) error {
	db := s.db.WithContext(ctx)
	mean := db.Model(&models.PlayerRating{}).Select("AVG(rating)").Where("rated_player_id = ?", playerID)
	res := db.Model(&models.Player{}).
		Where("id = ?", playerID).
		Update("overall_rating", gorm.Expr("COALESCE((?), overall_rating)", mean))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
