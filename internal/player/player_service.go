package player

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/pitchup/internal/apperror"
	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
)

type Store interface {
	store.UserRepository
	store.PlayerRepository
}

// Service is the player directory.
type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(s Store, log *zap.Logger) *Service {
	return &Service{store: s, log: log}
}

// List returns players ordered by overall rating, highest first.
func (s *Service) List(ctx context.Context, f store.PlayerFilter) ([]models.Player, int64, error) {
	f.Page = f.Page.Normalize()
	f.Search = strings.TrimSpace(f.Search)
	players, total, err := s.store.ListPlayers(ctx, f)
	if err != nil {
		return nil, 0, common.StoreError(err, "Player")
	}
	return players, total, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	p, err := s.store.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, common.StoreError(err, "Player")
	}
	return p, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*models.Player, error) {
	u, err := s.store.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, common.StoreError(err, "Player")
	}
	p, err := s.store.GetPlayerByUserID(ctx, u.ID)
	if err != nil {
		return nil, common.StoreError(err, "Player")
	}
	return p, nil
}

// CreateForCaller creates the caller's profile. Accounts already holding one get Conflict.
func (s *Service) CreateForCaller(ctx context.Context, caller common.CallerIdentity, in CreatePlayerInput) (*models.Player, error) {
	if _, err := s.store.GetPlayerByUserID(ctx, caller.UserID); err == nil {
		return nil, apperror.Conflict("Player profile already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, common.StoreError(err, "Player")
	}

	nickname := strings.TrimSpace(in.Nickname)
	if n := utf8.RuneCountInString(nickname); n < 2 || n > 50 {
		return nil, apperror.Validation("nickname must be between 2 and 50 characters")
	}
	if err := s.ensureNicknameFree(ctx, nickname, uuid.Nil); err != nil {
		return nil, err
	}

	position := in.PositionPreference
	if position == "" {
		position = models.PositionForward
	}
	photo := in.PhotoURL
	if photo == "" {
		photo = models.DefaultAvatarURL(nickname)
	}
	p := &models.Player{
		UserID:             caller.UserID,
		Nickname:           nickname,
		PhotoURL:           photo,
		OverallRating:      models.DefaultOverallRating,
		PositionPreference: position,
	}
	if err := s.store.CreatePlayer(ctx, p); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperror.Conflict("Player profile already exists")
		}
		return nil, common.StoreError(err, "Player")
	}
	s.log.Info("player profile created", zap.String("player_id", p.ID.String()), zap.String("user_id", caller.UserID.String()))
	return p, nil
}

// Update changes the caller's own profile.
func (s *Service) Update(ctx context.Context, id uuid.UUID, caller common.CallerIdentity, in UpdatePlayerInput) (*models.Player, error) {
	existing, err := s.store.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, common.StoreError(err, "Player")
	}
	if existing.UserID != caller.UserID {
		return nil, apperror.Forbidden("You can only update your own profile")
	}

	upd := store.PlayerUpdate{PositionPreference: in.PositionPreference, PhotoURL: in.PhotoURL}
	if in.Nickname != nil {
		nickname := strings.TrimSpace(*in.Nickname)
		if n := utf8.RuneCountInString(nickname); n < 2 || n > 50 {
			return nil, apperror.Validation("nickname must be between 2 and 50 characters")
		}
		if nickname != existing.Nickname {
			if err := s.ensureNicknameFree(ctx, nickname, id); err != nil {
				return nil, err
			}
		}
		upd.Nickname = &nickname
	}
	if upd.PositionPreference != nil && !upd.PositionPreference.Valid() {
		return nil, apperror.Validation("position_preference must be one of: goalkeeper, defender, midfielder, forward")
	}

	p, err := s.store.UpdatePlayerProfile(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperror.Conflict("Nickname already taken")
		}
		return nil, common.StoreError(err, "Player")
	}
	return p, nil
}

func (s *Service) ensureNicknameFree(ctx context.Context, nickname string, self uuid.UUID) error {
	other, err := s.store.GetPlayerByNickname(ctx, nickname)
	switch {
	case err == nil && other.ID != self:
		return apperror.Conflict("Nickname already taken")
	case err == nil, errors.Is(err, store.ErrNotFound):
		return nil
	default:
		return common.StoreError(err, "Player")
	}
}
