package club

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
	store.PlayerRepository
	store.ClubRepository
}

type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(s Store, log *zap.Logger) *Service {
	return &Service{store: s, log: log}
}

// CreateClub inserts the club with the creator as its manager. Admins only.
func (s *Service) CreateClub(ctx context.Context, caller common.CallerIdentity, in CreateClubInput) (*models.Club, error) {
	if !caller.IsAdmin() {
		return nil, apperror.Forbidden("Only admins can create clubs")
	}
	in.Name = strings.TrimSpace(in.Name)
	var violations []string
	if n := utf8.RuneCountInString(in.Name); n < 3 || n > 100 {
		violations = append(violations, "name must be between 3 and 100 characters")
	}
	if utf8.RuneCountInString(in.Description) > 500 {
		violations = append(violations, "description must not exceed 500 characters")
	}
	if !caller.HasPlayer() {
		violations = append(violations, "a player profile is required to manage a club")
	}
	if len(violations) > 0 {
		return nil, apperror.Validation(violations...)
	}

	club := &models.Club{
		Name:        in.Name,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		CreatedBy:   caller.UserID,
	}
	manager := &models.ClubPlayer{PlayerID: caller.PlayerID, Role: models.ClubRoleManager}
	if err := s.store.CreateClubWithManager(ctx, club, manager); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperror.Conflict("Club name already taken")
		}
		return nil, common.StoreError(err, "Club")
	}
	s.log.Info("club created", zap.String("club_id", club.ID.String()), zap.String("created_by", caller.UserID.String()))
	return s.GetClub(ctx, club.ID)
}

func (s *Service) ListClubs(ctx context.Context, p store.Page) ([]models.Club, int64, error) {
	clubs, total, err := s.store.ListClubs(ctx, p.Normalize())
	if err != nil {
		return nil, 0, common.StoreError(err, "Club")
	}
	return clubs, total, nil
}

// GetClub returns the club with its members.
func (s *Service) GetClub(ctx context.Context, id uuid.UUID) (*models.Club, error) {
	c, err := s.store.GetClubByID(ctx, id)
	if err != nil {
		return nil, common.StoreError(err, "Club")
	}
	return c, nil
}

func (s *Service) MyClubs(ctx context.Context, caller common.CallerIdentity) ([]models.Club, error) {
	if !caller.HasPlayer() {
		return []models.Club{}, nil
	}
	clubs, err := s.store.ListClubsForPlayer(ctx, caller.PlayerID)
	if err != nil {
		return nil, common.StoreError(err, "Club")
	}
	return clubs, nil
}

func (s *Service) Members(ctx context.Context, clubID uuid.UUID) ([]models.ClubPlayer, error) {
	members, err := s.store.ListClubMembers(ctx, clubID)
	if err != nil {
		return nil, common.StoreError(err, "Club")
	}
	return members, nil
}

// InvitePlayer creates a pending invitation. The invoker must be a manager or
// captain of the club, or hold the admin role.
func (s *Service) InvitePlayer(ctx context.Context, clubID uuid.UUID, caller common.CallerIdentity, playerID uuid.UUID) (*models.ClubInvitation, error) {
	if _, err := s.store.GetClubByID(ctx, clubID); err != nil {
		return nil, common.StoreError(err, "Club")
	}
	if err := s.authorizeInvite(ctx, clubID, caller); err != nil {
		return nil, err
	}
	if _, err := s.store.GetPlayerByID(ctx, playerID); err != nil {
		return nil, common.StoreError(err, "Player")
	}

	if _, err := s.store.GetClubMember(ctx, clubID, playerID); err == nil {
		return nil, apperror.Conflict("Player is already a member of this club")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, common.StoreError(err, "Club member")
	}
	if _, err := s.store.GetPendingInvitation(ctx, clubID, playerID); err == nil {
		return nil, apperror.Conflict("Player already has a pending invitation to this club")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, common.StoreError(err, "Invitation")
	}

	inv := &models.ClubInvitation{
		ClubID:    clubID,
		PlayerID:  playerID,
		InvitedBy: caller.UserID,
		Status:    models.InvitationPending,
	}
	if err := s.store.CreateInvitation(ctx, inv); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperror.Conflict("Player already has a pending invitation to this club")
		}
		return nil, common.StoreError(err, "Invitation")
	}
	s.log.Info("club invitation sent",
		zap.String("invitation_id", inv.ID.String()),
		zap.String("club_id", clubID.String()),
		zap.String("player_id", playerID.String()))
	return inv, nil
}

func (s *Service) authorizeInvite(ctx context.Context, clubID uuid.UUID, caller common.CallerIdentity) error {
	if caller.IsAdmin() {
		return nil
	}
	if !caller.HasPlayer() {
		return apperror.Forbidden("Only club managers and captains can invite players")
	}
	member, err := s.store.GetClubMember(ctx, clubID, caller.PlayerID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && !member.Role.CanInvite()) {
		return apperror.Forbidden("Only club managers and captains can invite players")
	}
	if err != nil {
		return common.StoreError(err, "Club member")
	}
	return nil
}

// AcceptInvitation turns a pending invitation addressed to the caller into a membership.
func (s *Service) AcceptInvitation(ctx context.Context, invitationID uuid.UUID, caller common.CallerIdentity) (*models.ClubPlayer, error) {
	if !caller.HasPlayer() {
		return nil, apperror.NotFound("Invitation")
	}
	member, err := s.store.AcceptInvitation(ctx, invitationID, caller.PlayerID)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperror.Conflict("Player is already a member of this club")
		}
		return nil, common.StoreError(err, "Invitation")
	}
	s.log.Info("club invitation accepted",
		zap.String("invitation_id", invitationID.String()),
		zap.String("club_id", member.ClubID.String()),
		zap.String("player_id", caller.PlayerID.String()))
	return member, nil
}

func (s *Service) RejectInvitation(ctx context.Context, invitationID uuid.UUID, caller common.CallerIdentity) (*models.ClubInvitation, error) {
	if !caller.HasPlayer() {
		return nil, apperror.NotFound("Invitation")
	}
	inv, err := s.store.RejectInvitation(ctx, invitationID, caller.PlayerID)
	if err != nil {
		return nil, common.StoreError(err, "Invitation")
	}
	s.log.Info("club invitation rejected", zap.String("invitation_id", invitationID.String()))
	return inv, nil
}

// JoinClub accepts the caller's pending invitation to clubID.
func (s *Service) JoinClub(ctx context.Context, clubID uuid.UUID, caller common.CallerIdentity) (*models.ClubPlayer, error) {
	if _, err := s.store.GetClubByID(ctx, clubID); err != nil {
		return nil, common.StoreError(err, "Club")
	}
	if !caller.HasPlayer() {
		return nil, apperror.NotFound("Invitation")
	}
	if _, err := s.store.GetClubMember(ctx, clubID, caller.PlayerID); err == nil {
		return nil, apperror.Conflict("Player is already a member of this club")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, common.StoreError(err, "Club member")
	}
	inv, err := s.store.GetPendingInvitation(ctx, clubID, caller.PlayerID)
	if err != nil {
		return nil, common.StoreError(err, "Invitation")
	}
	return s.AcceptInvitation(ctx, inv.ID, caller)
}

// MyInvitations lists pending invitations addressed to the caller, newest first.
func (s *Service) MyInvitations(ctx context.Context, caller common.CallerIdentity) ([]models.ClubInvitation, error) {
	if !caller.HasPlayer() {
		return []models.ClubInvitation{}, nil
	}
	invs, err := s.store.ListPendingInvitationsForPlayer(ctx, caller.PlayerID)
	if err != nil {
		return nil, common.StoreError(err, "Invitation")
	}
	return invs, nil
}
