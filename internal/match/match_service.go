package match

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/DhavalSuthar-24/pitchup/internal/apperror"
	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/internal/metrics"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
)

const fanoutTimeout = 10 * time.Second

type Store interface {
	store.PlayerRepository
	store.ClubRepository
	store.MatchRepository
}

type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(s Store, log *zap.Logger) *Service {
	return &Service{store: s, log: log}
}

func validateCreate(req *CreateMatchRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Location = strings.TrimSpace(req.Location)

	var violations []string
	if n := utf8.RuneCountInString(req.Title); n < 3 || n > 200 {
		violations = append(violations, "title must be between 3 and 200 characters")
	}
	if utf8.RuneCountInString(req.Location) < 3 {
		violations = append(violations, "location must be at least 3 characters")
	}
	if !req.Format.Valid() {
		violations = append(violations, "format must be one of: 5v5, 7v7, 11v11")
	}
	if req.MaxPlayers < minMaxPlayers || req.MaxPlayers > maxMaxPlayers {
		violations = append(violations, fmt.Sprintf("max_players must be between %d and %d", minMaxPlayers, maxMaxPlayers))
	}
	if req.MatchDate.IsZero() {
		violations = append(violations, "match_date is required")
	}
	if (req.TeamAClubID == nil) != (req.TeamBClubID == nil) {
		violations = append(violations, "team_a_club_id and team_b_club_id must be provided together")
	} else if req.TeamAClubID != nil && *req.TeamAClubID == *req.TeamBClubID {
		violations = append(violations, "a club cannot play against itself")
	}
	if len(violations) > 0 {
		return apperror.Validation(violations...)
	}
	return nil
}

// CreateMatch schedules a match organized by the caller. A club-vs-club match
// gets every member of both clubs on its roster; a combined roster larger than
// max_players is rejected before anything is written.
func (s *Service) CreateMatch(ctx context.Context, caller common.CallerIdentity, req CreateMatchRequest) (*models.Match, error) {
	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	m := &models.Match{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		MatchDate:   req.MatchDate,
		Format:      req.Format,
		MaxPlayers:  req.MaxPlayers,
		Status:      models.MatchUpcoming,
		OrganizerID: caller.UserID,
		TeamAClubID: req.TeamAClubID,
		TeamBClubID: req.TeamBClubID,
	}

	var roster []models.MatchPlayer
	if m.IsClubMatch() {
		var err error
		roster, err = s.clubRoster(ctx, *m.TeamAClubID, *m.TeamBClubID)
		if err != nil {
			return nil, err
		}
		if len(roster) > m.MaxPlayers {
			return nil, apperror.New(apperror.KindCapacity,
				fmt.Sprintf("Club rosters have %d players but max_players is %d", len(roster), m.MaxPlayers))
		}
	}

	if err := s.store.CreateMatch(ctx, m, roster); err != nil {
		if errors.Is(err, store.ErrCapacity) {
			return nil, apperror.New(apperror.KindCapacity, "Club rosters exceed max_players")
		}
		return nil, common.StoreError(err, "Match")
	}
	s.log.Info("match created",
		zap.String("match_id", m.ID.String()),
		zap.String("organizer_id", caller.UserID.String()),
		zap.Int("roster", len(roster)))
	return s.GetMatch(ctx, m.ID)
}

// clubRoster lists both clubs' members, each assigned to their club's side.
// A player in both clubs plays for side A.
func (s *Service) clubRoster(ctx context.Context, clubA, clubB uuid.UUID) ([]models.MatchPlayer, error) {
	seen := make(map[uuid.UUID]bool)
	var roster []models.MatchPlayer
	for _, side := range []struct {
		club uuid.UUID
		team models.Team
	}{{clubA, models.TeamA}, {clubB, models.TeamB}} {
		members, err := s.store.ListClubMembers(ctx, side.club)
		if err != nil {
			return nil, common.StoreError(err, "Club")
		}
		for _, cp := range members {
			if seen[cp.PlayerID] {
				continue
			}
			seen[cp.PlayerID] = true
			roster = append(roster, models.MatchPlayer{
				PlayerID: cp.PlayerID,
				Team:     side.team.Ptr(),
				Rating:   models.SeedMatchRating,
			})
		}
	}
	return roster, nil
}

// JoinMatch adds a player to the roster. Callers may only add their own profile.
// Failures are reported in order: unknown match, closed match, full roster,
// already joined, foreign profile.
func (s *Service) JoinMatch(ctx context.Context, matchID uuid.UUID, caller common.CallerIdentity, req JoinMatchRequest) (*models.MatchPlayer, error) {
	m, err := s.store.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, common.StoreError(err, "Match")
	}
	if m.Status.Terminal() {
		return nil, errMatchClosed(m.Status)
	}
	if req.Team != nil && !req.Team.Valid() {
		return nil, apperror.Validation("team must be one of: A, B")
	}

	playerID := caller.PlayerID
	if req.PlayerID != nil {
		playerID = *req.PlayerID
	}
	if playerID == uuid.Nil {
		return nil, apperror.Validation("player_id is required when the caller has no player profile")
	}
	p, err := s.store.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, common.StoreError(err, "Player")
	}

	mp := &models.MatchPlayer{
		MatchID:  matchID,
		PlayerID: playerID,
		Team:     req.Team,
		Rating:   models.SeedMatchRating,
	}
	if err := s.store.AddMatchPlayer(ctx, mp, caller.UserID); err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			return nil, apperror.Conflict("Match is no longer open for joining")
		case errors.Is(err, store.ErrCapacity):
			return nil, apperror.New(apperror.KindCapacity, "Match is full")
		case errors.Is(err, store.ErrDuplicate):
			return nil, apperror.Conflict("Player has already joined this match")
		case errors.Is(err, store.ErrNotOwner):
			return nil, apperror.Forbidden("You can only join a match with your own player profile")
		}
		return nil, common.StoreError(err, "Match")
	}
	mp.Player = p
	s.log.Info("player joined match", zap.String("match_id", matchID.String()), zap.String("player_id", playerID.String()))
	return mp, nil
}

func errMatchClosed(status models.MatchStatus) error {
	return apperror.Conflict(fmt.Sprintf("Match is %s", status))
}

func canManage(m *models.Match, caller common.CallerIdentity) bool {
	return caller.IsAdmin() || m.OrganizerID == caller.UserID
}

// BalanceTeams splits the roster into two sides of near-equal total rating.
func (s *Service) BalanceTeams(ctx context.Context, matchID uuid.UUID, caller common.CallerIdentity) (*TeamSplit, error) {
	m, err := s.store.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, common.StoreError(err, "Match")
	}
	if !canManage(m, caller) {
		return nil, apperror.Forbidden("Only the match organizer or an admin can balance teams")
	}
	if m.Status.Terminal() {
		return nil, errMatchClosed(m.Status)
	}

	roster, err := s.store.ListMatchPlayers(ctx, matchID)
	if err != nil {
		return nil, common.StoreError(err, "Match")
	}
	if len(roster) == 0 {
		return nil, apperror.New(apperror.KindEmptyRoster, "Match has no players to balance")
	}

	split, assignment := balance(roster)
	if err := s.store.AssignTeams(ctx, matchID, assignment); err != nil {
		return nil, common.StoreError(err, "Match")
	}
	s.log.Info("teams balanced",
		zap.String("match_id", matchID.String()),
		zap.Int("team_a", len(split.TeamA)),
		zap.Int("team_b", len(split.TeamB)))
	return &split, nil
}

// SubmitMatchResult stores the result once and completes the match. Player
// statistics are then updated best effort: failures are logged and counted,
// never returned.
func (s *Service) SubmitMatchResult(ctx context.Context, caller common.CallerIdentity, req SubmitResultRequest) (*models.Match, error) {
	var violations []string
	if req.TeamAScore == nil || *req.TeamAScore < 0 {
		violations = append(violations, "team_a_score must be a non-negative integer")
	}
	if req.TeamBScore == nil || *req.TeamBScore < 0 {
		violations = append(violations, "team_b_score must be a non-negative integer")
	}
	if req.DurationMinutes < 0 {
		violations = append(violations, "duration_minutes must not be negative")
	}
	if len(violations) > 0 {
		return nil, apperror.Validation(violations...)
	}

	m, err := s.store.GetMatchByID(ctx, req.MatchID)
	if err != nil {
		return nil, common.StoreError(err, "Match")
	}
	if !canManage(m, caller) {
		return nil, apperror.Forbidden("Only the match organizer or an admin can submit results")
	}
	switch m.Status {
	case models.MatchCompleted:
		return nil, apperror.Conflict("Match result already submitted")
	case models.MatchCancelled:
		return nil, apperror.Conflict("Match is cancelled")
	}

	roster, err := s.store.ListMatchPlayers(ctx, req.MatchID)
	if err != nil {
		return nil, common.StoreError(err, "Match")
	}
	goals, err := scorerGoals(req.GoalScorers, roster)
	if err != nil {
		return nil, err
	}

	result := &models.MatchResult{
		MatchID:         req.MatchID,
		TeamAScore:      *req.TeamAScore,
		TeamBScore:      *req.TeamBScore,
		DurationMinutes: req.DurationMinutes,
		GoalScorers:     datatypes.NewJSONType(normalizedScorers(goals)),
		SubmittedBy:     caller.UserID,
	}
	if err := s.store.CompleteMatch(ctx, result); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return nil, apperror.Conflict("Match result already submitted")
		case errors.Is(err, store.ErrConflict):
			return nil, apperror.Conflict("Match is cancelled")
		}
		return nil, common.StoreError(err, "Match")
	}
	metrics.MatchesCompleted.Inc()
	s.log.Info("match completed",
		zap.String("match_id", req.MatchID.String()),
		zap.Int("team_a_score", result.TeamAScore),
		zap.Int("team_b_score", result.TeamBScore))

	s.applyStats(ctx, result, roster, goals)
	return s.GetMatch(ctx, req.MatchID)
}

// scorerGoals checks every scorer is on the roster with a non-negative count.
func scorerGoals(scorers models.GoalScorers, roster []models.MatchPlayer) (map[uuid.UUID]int, error) {
	onRoster := make(map[uuid.UUID]bool, len(roster))
	for _, mp := range roster {
		onRoster[mp.PlayerID] = true
	}
	goals := make(map[uuid.UUID]int, len(scorers))
	var violations []string
	for key, n := range scorers {
		id, err := uuid.Parse(key)
		if err != nil {
			violations = append(violations, fmt.Sprintf("goal_scorers key %q is not a valid player id", key))
			continue
		}
		if !onRoster[id] {
			violations = append(violations, fmt.Sprintf("goal scorer %s is not on the match roster", id))
			continue
		}
		if n < 0 {
			violations = append(violations, fmt.Sprintf("goals for %s must not be negative", id))
			continue
		}
		goals[id] += n
	}
	if len(violations) > 0 {
		return nil, apperror.Validation(violations...)
	}
	return goals, nil
}

func normalizedScorers(goals map[uuid.UUID]int) models.GoalScorers {
	out := make(models.GoalScorers, len(goals))
	for id, n := range goals {
		out[id.String()] = n
	}
	return out
}

// applyStats adds one match, any win and the goals scored to each roster
// player's career counters. Entries without a side count as played only.
func (s *Service) applyStats(ctx context.Context, result *models.MatchResult, roster []models.MatchPlayer, goals map[uuid.UUID]int) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fanoutTimeout)
	defer cancel()

	for _, mp := range roster {
		delta := models.StatsDelta{MatchesPlayed: 1, GoalsScored: goals[mp.PlayerID]}
		if result.OutcomeFor(mp.Team) == models.OutcomeWin {
			delta.Wins = 1
		}
		if err := s.store.ApplyPlayerStats(ctx, mp.PlayerID, delta); err != nil {
			metrics.StatsFanoutFailures.Inc()
			s.log.Error("failed to update player statistics",
				zap.String("match_id", result.MatchID.String()),
				zap.String("player_id", mp.PlayerID.String()),
				zap.Error(err))
		}
	}
}

func (s *Service) ListMatches(ctx context.Context, f store.MatchFilter) ([]models.Match, int64, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, apperror.Validation("status must be one of: upcoming, in_progress, completed, cancelled")
	}
	f.Page = f.Page.Normalize()
	matches, total, err := s.store.ListMatches(ctx, f)
	if err != nil {
		return nil, 0, common.StoreError(err, "Match")
	}
	return matches, total, nil
}

// GetMatch returns the match with its roster and result.
func (s *Service) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	m, err := s.store.GetMatchDetails(ctx, id)
	if err != nil {
		return nil, common.StoreError(err, "Match")
	}
	return m, nil
}

// transitions lists the statuses each target may be reached from by a direct
// update. completed is only reachable through result submission.
var transitions = map[models.MatchStatus][]models.MatchStatus{
	models.MatchInProgress: {models.MatchUpcoming},
	models.MatchCancelled:  {models.MatchUpcoming},
}

func (s *Service) UpdateStatus(ctx context.Context, matchID uuid.UUID, caller common.CallerIdentity, to models.MatchStatus) (*models.Match, error) {
	from, ok := transitions[to]
	if !ok {
		return nil, apperror.Validation("status must be one of: in_progress, cancelled")
	}
	m, err := s.store.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, common.StoreError(err, "Match")
	}
	if !canManage(m, caller) {
		return nil, apperror.Forbidden("Only the match organizer or an admin can change the match status")
	}

	if err := s.store.UpdateMatchStatus(ctx, matchID, from, to); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, apperror.Conflict(fmt.Sprintf("Match cannot move from %s to %s", m.Status, to))
		}
		return nil, common.StoreError(err, "Match")
	}
	s.log.Info("match status changed",
		zap.String("match_id", matchID.String()),
		zap.String("from", string(m.Status)),
		zap.String("to", string(to)))
	return s.GetMatch(ctx, matchID)
}
