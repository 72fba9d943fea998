package rating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/pitchup/internal/apperror"
	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/internal/metrics"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
)

const maxCommentLen = 500

type Store interface {
	store.PlayerRepository
	store.MatchRepository
	store.RatingRepository
}

type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(s Store, log *zap.Logger) *Service {
	return &Service{store: s, log: log}
}

func validate(req *CreateRatingRequest) error {
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	if req.Category == "" {
		req.Category = models.DefaultRatingCategory
	}

	var violations []string
	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		violations = append(violations, fmt.Sprintf("rating must be between %d and %d", models.MinRating, models.MaxRating))
	}
	if !models.ValidRatingCategory(req.Category) {
		violations = append(violations, "category must be one of: overall, attack, defense, passing, teamwork")
	}
	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > maxCommentLen {
		violations = append(violations, "comment must not exceed 500 characters")
	}
	if len(violations) > 0 {
		return apperror.Validation(violations...)
	}
	return nil
}

// CreateRating records one peer rating for a completed match both players
// took part in, then sets the rated player's overall rating to the mean of
// every rating they have received.
func (s *Service) CreateRating(ctx context.Context, caller common.CallerIdentity, req CreateRatingRequest) (*models.PlayerRating, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}
	if !caller.HasPlayer() {
		return nil, apperror.Forbidden("A player profile is required to rate players")
	}
	raterID := caller.PlayerID
	if raterID == req.RatedPlayerID {
		return nil, apperror.New(apperror.KindSelfRating, "You cannot rate yourself")
	}

	m, err := s.store.GetMatchByID(ctx, req.MatchID)
	if err != nil {
		return nil, common.StoreError(err, "Match")
	}
	if m.Status != models.MatchCompleted {
		return nil, apperror.New(apperror.KindMatchNotCompleted, "Ratings open once the match is completed")
	}
	for _, id := range []uuid.UUID{raterID, req.RatedPlayerID} {
		if _, err := s.store.GetMatchPlayer(ctx, req.MatchID, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, apperror.New(apperror.KindNotParticipant, "Both players must have played in the match")
			}
			return nil, common.StoreError(err, "Match player")
		}
	}
	exists, err := s.store.RatingExists(ctx, raterID, req.RatedPlayerID, req.MatchID)
	if err != nil {
		return nil, common.StoreError(err, "Rating")
	}
	if exists {
		return nil, errDuplicate
	}

	r := &models.PlayerRating{
		RaterID:       raterID,
		RatedPlayerID: req.RatedPlayerID,
		MatchID:       req.MatchID,
		Rating:        req.Rating,
		Category:      req.Category,
		Comment:       req.Comment,
	}
	if err := s.store.CreateRating(ctx, r); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, errDuplicate
		}
		return nil, common.StoreError(err, "Rating")
	}
	metrics.RatingsCreated.Inc()

	if err := s.recompute(ctx, req.RatedPlayerID); err != nil {
		return nil, err
	}
	s.log.Info("player rated",
		zap.String("rating_id", r.ID.String()),
		zap.String("match_id", req.MatchID.String()),
		zap.String("rated_player_id", req.RatedPlayerID.String()),
		zap.Int("rating", req.Rating))
	return r, nil
}

var errDuplicate = apperror.New(apperror.KindDuplicate, "You have already rated this player for this match")

func (s *Service) recompute(ctx context.Context, playerID uuid.UUID) error {
	if err := s.store.RefreshOverallRating(ctx, playerID); err != nil {
		return common.StoreError(err, "Player")
	}
	return nil
}

// PlayerRatings lists ratings received by a player, newest first.
func (s *Service) PlayerRatings(ctx context.Context, playerID uuid.UUID) ([]models.PlayerRating, error) {
	if _, err := s.store.GetPlayerByID(ctx, playerID); err != nil {
		return nil, common.StoreError(err, "Player")
	}
	ratings, err := s.store.ListRatingsForPlayer(ctx, playerID)
	if err != nil {
		return nil, common.StoreError(err, "Rating")
	}
	return ratings, nil
}

// MatchRatings lists ratings given for a match, newest first.
func (s *Service) MatchRatings(ctx context.Context, matchID uuid.UUID) ([]models.PlayerRating, error) {
	if _, err := s.store.GetMatchByID(ctx, matchID); err != nil {
		return nil, common.StoreError(err, "Match")
	}
	ratings, err := s.store.ListRatingsForMatch(ctx, matchID)
	if err != nil {
		return nil, common.StoreError(err, "Rating")
	}
	return ratings, nil
}
