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

func membersByJoinOrder(db *gorm.DB) *gorm.DB {
	return db.Order("joined_at ASC, id ASC")
}

func (s *Store) CreateClubWithManager(ctx context.Context, club *models.Club, manager *models.ClubPlayer) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(club).Error; err != nil {
			return translate(err)
		}
		manager.ClubID = club.ID
		if manager.JoinedAt.IsZero() {
			manager.JoinedAt = time.Now()
		}
		return translate(tx.Omit(clause.Associations).Create(manager).Error)
	})
}

func (s *Store) GetClubByID(ctx context.Context, id uuid.UUID) (*models.Club, error) {
	var c models.Club
	err := s.db.WithContext(ctx).
		Preload("Members", membersByJoinOrder).
		Preload("Members.Player").
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) ListClubs(ctx context.Context, p store.Page) ([]models.Club, int64, error) {
	var (
		clubs []models.Club
		total int64
	)
	query := s.db.WithContext(ctx).Model(&models.Club{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	offset, limit := orderedPage(p)
	if err := query.Order("created_at DESC, name ASC").Offset(offset).Limit(limit).Find(&clubs).Error; err != nil {
		return nil, 0, translate(err)
	}
	return clubs, total, nil
}

func (s *Store) ListClubsForPlayer(ctx context.Context, playerID uuid.UUID) ([]models.Club, error) {
	var clubs []models.Club
	err := s.db.WithContext(ctx).
		Joins("JOIN club_players ON club_players.club_id = clubs.id").
		Where("club_players.player_id = ?", playerID).
		Order("clubs.created_at DESC, clubs.name ASC").
		Find(&clubs).Error
	if err != nil {
		return nil, translate(err)
	}
	return clubs, nil
}

func (s *Store) ListClubMembers(ctx context.Context, clubID uuid.UUID) ([]models.ClubPlayer, error) {
	db := s.db.WithContext(ctx)
	ok, err := rowExists(db, &models.Club{}, clubID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, store.ErrNotFound
	}
	var members []models.ClubPlayer
	if err := membersByJoinOrder(db.Preload("Player").Where("club_id = ?", clubID)).Find(&members).Error; err != nil {
		return nil, translate(err)
	}
	return members, nil
}

func (s *Store) GetClubMember(ctx context.Context, clubID, playerID uuid.UUID) (*models.ClubPlayer, error) {
	var cp models.ClubPlayer
	err := s.db.WithContext(ctx).Where("club_id = ? AND player_id = ?", clubID, playerID).First(&cp).Error
	if err != nil {
		return nil, translate(err)
	}
	return &cp, nil
}

func (s *Store) CreateInvitation(ctx context.Context, inv *models.ClubInvitation) error {
	if inv.Status == "" {
		inv.Status = models.InvitationPending
	}
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(inv).Error)
}

func (s *Store) GetInvitationByID(ctx context.Context, id uuid.UUID) (*models.ClubInvitation, error) {
	var inv models.ClubInvitation
	if err := s.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (s *Store) GetPendingInvitation(ctx context.Context, clubID, playerID uuid.UUID) (*models.ClubInvitation, error) {
	var inv models.ClubInvitation
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND player_id = ? AND status = ?", clubID, playerID, models.InvitationPending).
		First(&inv).Error
	if err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (s *Store) ListPendingInvitationsForPlayer(ctx context.Context, playerID uuid.UUID) ([]models.ClubInvitation, error) {
	var invs []models.ClubInvitation
	err := s.db.WithContext(ctx).Preload("Club").
		Where("player_id = ? AND status = ?", playerID, models.InvitationPending).
		Order("created_at DESC").
		Find(&invs).Error
	if err != nil {
		return nil, translate(err)
	}
	return invs, nil
}

// lockPendingInvitation selects the pending invitation for update inside tx.
func lockPendingInvitation(tx *gorm.DB, invitationID, playerID uuid.UUID) (*models.ClubInvitation, error) {
	var inv models.ClubInvitation
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND player_id = ? AND status = ?", invitationID, playerID, models.InvitationPending).
		First(&inv).Error
	if err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (s *Store) AcceptInvitation(ctx context.Context, invitationID, playerID uuid.UUID) (*models.ClubPlayer, error) {
	var member models.ClubPlayer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inv, err := lockPendingInvitation(tx, invitationID, playerID)
		if err != nil {
			return err
		}
		if err := tx.Model(inv).Update("status", models.InvitationAccepted).Error; err != nil {
			return translate(err)
		}
		member = models.ClubPlayer{
			ClubID:   inv.ClubID,
			PlayerID: playerID,
			Role:     models.ClubRoleMember,
			JoinedAt: time.Now(),
		}
		return translate(tx.Omit(clause.Associations).Create(&member).Error)
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *Store) RejectInvitation(ctx context.Context, invitationID, playerID uuid.UUID) (*models.ClubInvitation, error) {
	var out *models.ClubInvitation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inv, err := lockPendingInvitation(tx, invitationID, playerID)
		if err != nil {
			return err
		}
		if err := tx.Model(inv).Update("status", models.InvitationRejected).Error; err != nil {
			return translate(err)
		}
		inv.Status = models.InvitationRejected
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
