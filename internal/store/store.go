// Package store defines the data store gateway every service is written against.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/DhavalSuthar-24/pitchup/internal/models"
)

var (
	ErrNotFound  = errors.New("store: record not found")
	ErrDuplicate = errors.New("store: unique constraint violated")
	// ErrCapacity is returned when a roster insert would exceed the match's max_players.
	ErrCapacity = errors.New("store: capacity exceeded")
	// ErrConflict is returned when a conditional write finds the row in an unexpected state.
	ErrConflict = errors.New("store: state precondition failed")
	// ErrNotOwner is returned when a write names a player the acting user does not own.
	ErrNotOwner = errors.New("store: player belongs to another user")
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a 1-based page request.
type Page struct {
	Page  int
	Limit int
}

// Normalize clamps the page into a usable range.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

func (p Page) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

type PlayerFilter struct {
	Page
	// Search matches nicknames case-insensitively.
	Search string
}

type MatchFilter struct {
	Page
	Status models.MatchStatus
}

// PlayerUpdate holds the profile fields an owner may change. Nil fields are left alone.
type PlayerUpdate struct {
	Nickname           *string
	PositionPreference *models.Position
	PhotoURL           *string
}

type UserRepository interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdateUserRole(ctx context.Context, id uuid.UUID, role models.UserRole) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type PlayerRepository interface {
	CreatePlayer(ctx context.Context, p *models.Player) error
	GetPlayerByID(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetPlayerByUserID(ctx context.Context, userID uuid.UUID) (*models.Player, error)
	GetPlayerByNickname(ctx context.Context, nickname string) (*models.Player, error)
	// ListPlayers orders by overall rating, highest first.
	ListPlayers(ctx context.Context, f PlayerFilter) ([]models.Player, int64, error)
	UpdatePlayerProfile(ctx context.Context, id uuid.UUID, upd PlayerUpdate) (*models.Player, error)
	// ApplyPlayerStats adds delta to the career counters in a single write.
	ApplyPlayerStats(ctx context.Context, id uuid.UUID, delta models.StatsDelta) error
	SetPlayerOverallRating(ctx context.Context, id uuid.UUID, rating float64) error
}

type ClubRepository interface {
	// CreateClubWithManager inserts the club and its first membership atomically.
	CreateClubWithManager(ctx context.Context, club *models.Club, manager *models.ClubPlayer) error
	GetClubByID(ctx context.Context, id uuid.UUID) (*models.Club, error)
	ListClubs(ctx context.Context, p Page) ([]models.Club, int64, error)
	ListClubsForPlayer(ctx context.Context, playerID uuid.UUID) ([]models.Club, error)
	// ListClubMembers returns memberships with their players, oldest first.
	ListClubMembers(ctx context.Context, clubID uuid.UUID) ([]models.ClubPlayer, error)
	GetClubMember(ctx context.Context, clubID, playerID uuid.UUID) (*models.ClubPlayer, error)

	CreateInvitation(ctx context.Context, inv *models.ClubInvitation) error
	GetInvitationByID(ctx context.Context, id uuid.UUID) (*models.ClubInvitation, error)
	GetPendingInvitation(ctx context.Context, clubID, playerID uuid.UUID) (*models.ClubInvitation, error)
	ListPendingInvitationsForPlayer(ctx context.Context, playerID uuid.UUID) ([]models.ClubInvitation, error)
	// AcceptInvitation flips a pending invitation addressed to playerID to accepted
	// and inserts the membership. ErrNotFound when no such pending invitation exists.
	AcceptInvitation(ctx context.Context, invitationID, playerID uuid.UUID) (*models.ClubPlayer, error)
	RejectInvitation(ctx context.Context, invitationID, playerID uuid.UUID) (*models.ClubInvitation, error)
}

type MatchRepository interface {
	// CreateMatch inserts the match and its initial roster atomically.
	CreateMatch(ctx context.Context, m *models.Match, roster []models.MatchPlayer) error
	GetMatchByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	// GetMatchDetails loads the roster with players and the result, if any.
	GetMatchDetails(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListMatches(ctx context.Context, f MatchFilter) ([]models.Match, int64, error)
	// ListMatchPlayers returns the roster with players in join order.
	ListMatchPlayers(ctx context.Context, matchID uuid.UUID) ([]models.MatchPlayer, error)
	GetMatchPlayer(ctx context.Context, matchID, playerID uuid.UUID) (*models.MatchPlayer, error)
	// AddMatchPlayer checks, under one lock and in this order: ErrConflict for
	// completed or cancelled matches, ErrCapacity when full, ErrDuplicate when the
	// player is already on the roster, ErrNotOwner when the player's user is not ownerUserID.
	AddMatchPlayer(ctx context.Context, mp *models.MatchPlayer, ownerUserID uuid.UUID) error
	AssignTeams(ctx context.Context, matchID uuid.UUID, teams map[uuid.UUID]models.Team) error
	// UpdateMatchStatus moves the match to `to` only if its status is in `from`.
	UpdateMatchStatus(ctx context.Context, id uuid.UUID, from []models.MatchStatus, to models.MatchStatus) error
	// CompleteMatch inserts the result, copies each scorer's goals onto the roster
	// and marks the match completed atomically.
	// ErrDuplicate if a result exists, ErrConflict if the match is cancelled.
	CompleteMatch(ctx context.Context, result *models.MatchResult) error
	GetMatchResult(ctx context.Context, matchID uuid.UUID) (*models.MatchResult, error)
}

type RatingRepository interface {
	CreateRating(ctx context.Context, r *models.PlayerRating) error
	RatingExists(ctx context.Context, raterID, ratedPlayerID, matchID uuid.UUID) (bool, error)
	// ListRatingsForPlayer and ListRatingsForMatch return newest first.
	ListRatingsForPlayer(ctx context.Context, playerID uuid.UUID) ([]models.PlayerRating, error)
	ListRatingsForMatch(ctx context.Context, matchID uuid.UUID) ([]models.PlayerRating, error)
	// RefreshOverallRating sets the player's overall rating to the mean of every
	// rating received, reading and writing in one step. A player with no ratings
	// keeps the current value.
	RefreshOverallRating(ctx context.Context, playerID uuid.UUID) error
}

// DataStore is the single gateway consumed by the services.
type DataStore interface {
	UserRepository
	PlayerRepository
	ClubRepository
	MatchRepository
	RatingRepository

	Ping(ctx context.Context) error
	Close() error
}
