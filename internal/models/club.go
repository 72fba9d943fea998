package models

import (
	"time"

	"github.com/google/uuid"
)

// ClubRole is a member's role inside one club.
type ClubRole string

const (
	ClubRoleManager ClubRole = "manager"
	ClubRoleCaptain ClubRole = "captain"
	ClubRoleMember  ClubRole = "member"
)

func (r ClubRole) Valid() bool {
	switch r {
	case ClubRoleManager, ClubRoleCaptain, ClubRoleMember:
		return true
	}
	return false
}

// CanInvite reports whether members with this role may invite players.
func (r ClubRole) CanInvite() bool {
	return r == ClubRoleManager || r == ClubRoleCaptain
}

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

type Club struct {
	BaseModel
	Name        string       `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string       `json:"description" gorm:"size:500"`
	LogoURL     string       `json:"logo_url"`
	CreatedBy   uuid.UUID    `json:"created_by" gorm:"type:uuid;index;not null"`
	Members     []ClubPlayer `json:"members,omitempty" gorm:"foreignKey:ClubID"`
}

// ClubPlayer is a membership row; (club_id, player_id) is unique.
type ClubPlayer struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ClubID   uuid.UUID `json:"club_id" gorm:"type:uuid;not null;uniqueIndex:idx_club_player"`
	PlayerID uuid.UUID `json:"player_id" gorm:"type:uuid;not null;uniqueIndex:idx_club_player;index"`
	Role     ClubRole  `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	JoinedAt time.Time `json:"joined_at"`
	Player   *Player   `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
}

// ClubInvitation allows at most one pending row per (club_id, player_id).
type ClubInvitation struct {
	BaseModel
	ClubID    uuid.UUID        `json:"club_id" gorm:"type:uuid;not null;uniqueIndex:idx_pending_invitation,where:status = 'pending'"`
	PlayerID  uuid.UUID        `json:"player_id" gorm:"type:uuid;not null;uniqueIndex:idx_pending_invitation,where:status = 'pending';index"`
	InvitedBy uuid.UUID        `json:"invited_by" gorm:"type:uuid;not null"`
	Status    InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Club      *Club            `json:"club,omitempty" gorm:"foreignKey:ClubID"`
}
