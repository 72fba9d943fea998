// Package memstore is an in-memory store.DataStore for tests and local runs.
// Every constraint the postgres schema enforces is enforced here under one mutex.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
)

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users        map[uuid.UUID]models.User
	players      map[uuid.UUID]models.Player
	clubs        map[uuid.UUID]models.Club
	matches      map[uuid.UUID]models.Match
	results      map[uuid.UUID]models.MatchResult // keyed by match id
	clubPlayers  []models.ClubPlayer
	invitations  []models.ClubInvitation
	matchPlayers []models.MatchPlayer
	ratings      []models.PlayerRating
}

var _ store.DataStore = (*Store)(nil)

type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		now:     time.Now,
		users:   make(map[uuid.UUID]models.User),
		players: make(map[uuid.UUID]models.Player),
		clubs:   make(map[uuid.UUID]models.Club),
		matches: make(map[uuid.UUID]models.Match),
		results: make(map[uuid.UUID]models.MatchResult),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close() error { return nil }

// --- users ---

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return store.ErrDuplicate
		}
	}
	u.EnsureID()
	if _, ok := s.users[u.ID]; ok {
		return store.ErrDuplicate
	}
	if u.Role == "" {
		u.Role = models.RolePlayer
	}
	u.Touch(s.now())
	s.users[u.ID] = *u
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyUser(u), nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return copyUser(u), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UpdateUserLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.LastLogin = &at
	u.UpdatedAt = s.now()
	s.users[id] = u
	return nil
}

func (s *Store) UpdateUserRole(ctx context.Context, id uuid.UUID, role models.UserRole) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Role = role
	u.UpdatedAt = s.now()
	s.users[id] = u
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// --- players ---

func (s *Store) CreatePlayer(ctx context.Context, p *models.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[p.UserID]; !ok {
		return store.ErrNotFound
	}
	for _, existing := range s.players {
		if existing.UserID == p.UserID || existing.Nickname == p.Nickname {
			return store.ErrDuplicate
		}
	}
	p.EnsureID()
	if _, ok := s.players[p.ID]; ok {
		return store.ErrDuplicate
	}
	p.Touch(s.now())
	s.players[p.ID] = *p
	return nil
}

func (s *Store) GetPlayerByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (s *Store) GetPlayerByUserID(ctx context.Context, userID uuid.UUID) (*models.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.players {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetPlayerByNickname(ctx context.Context, nickname string) (*models.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.players {
		if p.Nickname == nickname {
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListPlayers(ctx context.Context, f store.PlayerFilter) ([]models.Player, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	search := strings.ToLower(strings.TrimSpace(f.Search))
	all := make([]models.Player, 0, len(s.players))
	for _, p := range s.players {
		if search != "" && !strings.Contains(strings.ToLower(p.Nickname), search) {
			continue
		}
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].OverallRating != all[j].OverallRating {
			return all[i].OverallRating > all[j].OverallRating
		}
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID.String() < all[j].ID.String()
	})
	return paginate(all, f.Page), int64(len(all)), nil
}

func (s *Store) UpdatePlayerProfile(ctx context.Context, id uuid.UUID, upd store.PlayerUpdate) (*models.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.Nickname != nil && *upd.Nickname != p.Nickname {
		for _, other := range s.players {
			if other.ID != id && other.Nickname == *upd.Nickname {
				return nil, store.ErrDuplicate
			}
		}
		p.Nickname = *upd.Nickname
	}
	if upd.PositionPreference != nil {
		p.PositionPreference = *upd.PositionPreference
	}
	if upd.PhotoURL != nil {
		p.PhotoURL = *upd.PhotoURL
	}
	p.UpdatedAt = s.now()
	s.players[id] = p
	return &p, nil
}

func (s *Store) ApplyPlayerStats(ctx context.Context, id uuid.UUID, delta models.StatsDelta) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok {
		return store.ErrNotFound
	}
	p.MatchesPlayed += delta.MatchesPlayed
	p.Wins += delta.Wins
	p.GoalsScored += delta.GoalsScored
	p.UpdatedAt = s.now()
	s.players[id] = p
	return nil
}

func (s *Store) SetPlayerOverallRating(ctx context.Context, id uuid.UUID, rating float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok {
		return store.ErrNotFound
	}
	p.OverallRating = rating
	p.UpdatedAt = s.now()
	s.players[id] = p
	return nil
}

// --- clubs ---

func (s *Store) CreateClubWithManager(ctx context.Context, club *models.Club, manager *models.ClubPlayer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clubs {
		if c.Name == club.Name {
			return store.ErrDuplicate
		}
	}
	if _, ok := s.players[manager.PlayerID]; !ok {
		return store.ErrNotFound
	}
	club.EnsureID()
	now := s.now()
	club.Touch(now)
	club.Members = nil
	manager.ClubID = club.ID
	if manager.ID == uuid.Nil {
		manager.ID = uuid.New()
	}
	if manager.JoinedAt.IsZero() {
		manager.JoinedAt = now
	}
	manager.Player = nil
	s.clubs[club.ID] = *club
	s.clubPlayers = append(s.clubPlayers, *manager)
	return nil
}

func (s *Store) GetClubByID(ctx context.Context, id uuid.UUID) (*models.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clubs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	c.Members = s.membersLocked(id)
	return &c, nil
}

func (s *Store) ListClubs(ctx context.Context, p store.Page) ([]models.Club, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]models.Club, 0, len(s.clubs))
	for _, c := range s.clubs {
		all = append(all, c)
	}
	sortClubs(all)
	return paginate(all, p), int64(len(all)), nil
}

func (s *Store) ListClubsForPlayer(ctx context.Context, playerID uuid.UUID) ([]models.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Club
	for _, cp := range s.clubPlayers {
		if cp.PlayerID == playerID {
			if c, ok := s.clubs[cp.ClubID]; ok {
				out = append(out, c)
			}
		}
	}
	sortClubs(out)
	return out, nil
}

func (s *Store) ListClubMembers(ctx context.Context, clubID uuid.UUID) ([]models.ClubPlayer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.clubs[clubID]; !ok {
		return nil, store.ErrNotFound
	}
	return s.membersLocked(clubID), nil
}

func (s *Store) GetClubMember(ctx context.Context, clubID, playerID uuid.UUID) (*models.ClubPlayer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cp := range s.clubPlayers {
		if cp.ClubID == clubID && cp.PlayerID == playerID {
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateInvitation(ctx context.Context, inv *models.ClubInvitation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clubs[inv.ClubID]; !ok {
		return store.ErrNotFound
	}
	if _, ok := s.players[inv.PlayerID]; !ok {
		return store.ErrNotFound
	}
	if inv.Status == "" {
		inv.Status = models.InvitationPending
	}
	if inv.Status == models.InvitationPending {
		for _, existing := range s.invitations {
			if existing.ClubID == inv.ClubID && existing.PlayerID == inv.PlayerID && existing.Status == models.InvitationPending {
				return store.ErrDuplicate
			}
		}
	}
	inv.EnsureID()
	inv.Touch(s.now())
	inv.Club = nil
	s.invitations = append(s.invitations, *inv)
	return nil
}

func (s *Store) GetInvitationByID(ctx context.Context, id uuid.UUID) (*models.ClubInvitation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.invitationIndexLocked(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	inv := s.invitations[i]
	return &inv, nil
}

func (s *Store) GetPendingInvitation(ctx context.Context, clubID, playerID uuid.UUID) (*models.ClubInvitation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invitations {
		if inv.ClubID == clubID && inv.PlayerID == playerID && inv.Status == models.InvitationPending {
			return &inv, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListPendingInvitationsForPlayer(ctx context.Context, playerID uuid.UUID) ([]models.ClubInvitation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ClubInvitation
	for i := len(s.invitations) - 1; i >= 0; i-- {
		inv := s.invitations[i]
		if inv.PlayerID != playerID || inv.Status != models.InvitationPending {
			continue
		}
		if c, ok := s.clubs[inv.ClubID]; ok {
			inv.Club = &c
		}
		out = append(out, inv)
	}
	return out, nil
}

func (s *Store) AcceptInvitation(ctx context.Context, invitationID, playerID uuid.UUID) (*models.ClubPlayer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.invitationIndexLocked(invitationID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	inv := s.invitations[i]
	if inv.PlayerID != playerID || inv.Status != models.InvitationPending {
		return nil, store.ErrNotFound
	}
	for _, cp := range s.clubPlayers {
		if cp.ClubID == inv.ClubID && cp.PlayerID == playerID {
			return nil, store.ErrDuplicate
		}
	}
	now := s.now()
	member := models.ClubPlayer{
		ID:       uuid.New(),
		ClubID:   inv.ClubID,
		PlayerID: playerID,
		Role:     models.ClubRoleMember,
		JoinedAt: now,
	}
	inv.Status = models.InvitationAccepted
	inv.UpdatedAt = now
	s.invitations[i] = inv
	s.clubPlayers = append(s.clubPlayers, member)
	return &member, nil
}

func (s *Store) RejectInvitation(ctx context.Context, invitationID, playerID uuid.UUID) (*models.ClubInvitation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.invitationIndexLocked(invitationID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	inv := s.invitations[i]
	if inv.PlayerID != playerID || inv.Status != models.InvitationPending {
		return nil, store.ErrNotFound
	}
	inv.Status = models.InvitationRejected
	inv.UpdatedAt = s.now()
	s.invitations[i] = inv
	return &inv, nil
}

// --- matches ---

func (s *Store) CreateMatch(ctx context.Context, m *models.Match, roster []models.MatchPlayer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(roster) > m.MaxPlayers {
		return store.ErrCapacity
	}
	seen := make(map[uuid.UUID]bool, len(roster))
	for _, mp := range roster {
		if seen[mp.PlayerID] {
			return store.ErrDuplicate
		}
		if _, ok := s.players[mp.PlayerID]; !ok {
			return store.ErrNotFound
		}
		seen[mp.PlayerID] = true
	}
	m.EnsureID()
	now := s.now()
	m.Touch(now)
	if m.Status == "" {
		m.Status = models.MatchUpcoming
	}
	m.Players = nil
	m.Result = nil
	s.matches[m.ID] = *m
	for i := range roster {
		mp := roster[i]
		mp.MatchID = m.ID
		if mp.ID == uuid.Nil {
			mp.ID = uuid.New()
		}
		if mp.JoinedAt.IsZero() {
			mp.JoinedAt = now
		}
		mp.Player = nil
		s.matchPlayers = append(s.matchPlayers, mp)
		roster[i] = mp
	}
	return nil
}

func (s *Store) GetMatchByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &m, nil
}

func (s *Store) GetMatchDetails(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	m.Players = s.rosterLocked(id)
	if r, ok := s.results[id]; ok {
		m.Result = copyResult(r)
	}
	return &m, nil
}

func (s *Store) ListMatches(ctx context.Context, f store.MatchFilter) ([]models.Match, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]models.Match, 0, len(s.matches))
	for _, m := range s.matches {
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].MatchDate.Equal(all[j].MatchDate) {
			return all[i].MatchDate.Before(all[j].MatchDate)
		}
		return all[i].ID.String() < all[j].ID.String()
	})
	return paginate(all, f.Page), int64(len(all)), nil
}

func (s *Store) ListMatchPlayers(ctx context.Context, matchID uuid.UUID) ([]models.MatchPlayer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.matches[matchID]; !ok {
		return nil, store.ErrNotFound
	}
	return s.rosterLocked(matchID), nil
}

func (s *Store) GetMatchPlayer(ctx context.Context, matchID, playerID uuid.UUID) (*models.MatchPlayer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, mp := range s.matchPlayers {
		if mp.MatchID == matchID && mp.PlayerID == playerID {
			return copyMatchPlayer(mp), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) AddMatchPlayer(ctx context.Context, mp *models.MatchPlayer, ownerUserID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[mp.MatchID]
	if !ok {
		return store.ErrNotFound
	}
	p, ok := s.players[mp.PlayerID]
	if !ok {
		return store.ErrNotFound
	}
	if m.Status.Terminal() {
		return store.ErrConflict
	}
	count, joined := 0, false
	for _, existing := range s.matchPlayers {
		if existing.MatchID != mp.MatchID {
			continue
		}
		count++
		if existing.PlayerID == mp.PlayerID {
			joined = true
		}
	}
	switch {
	case count >= m.MaxPlayers:
		return store.ErrCapacity
	case joined:
		return store.ErrDuplicate
	case p.UserID != ownerUserID:
		return store.ErrNotOwner
	}
	if mp.ID == uuid.Nil {
		mp.ID = uuid.New()
	}
	if mp.JoinedAt.IsZero() {
		mp.JoinedAt = s.now()
	}
	stored := *copyMatchPlayer(*mp)
	stored.Player = nil
	s.matchPlayers = append(s.matchPlayers, stored)
	return nil
}

func (s *Store) AssignTeams(ctx context.Context, matchID uuid.UUID, teams map[uuid.UUID]models.Team) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[matchID]; !ok {
		return store.ErrNotFound
	}
	for i := range s.matchPlayers {
		mp := &s.matchPlayers[i]
		if mp.MatchID != matchID {
			continue
		}
		if team, ok := teams[mp.PlayerID]; ok {
			mp.Team = team.Ptr()
		}
	}
	return nil
}

func (s *Store) UpdateMatchStatus(ctx context.Context, id uuid.UUID, from []models.MatchStatus, to models.MatchStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[id]
	if !ok {
		return store.ErrNotFound
	}
	if !containsStatus(from, m.Status) {
		return store.ErrConflict
	}
	m.Status = to
	m.UpdatedAt = s.now()
	s.matches[id] = m
	return nil
}

func (s *Store) CompleteMatch(ctx context.Context, result *models.MatchResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[result.MatchID]
	if !ok {
		return store.ErrNotFound
	}
	if _, exists := s.results[result.MatchID]; exists {
		return store.ErrDuplicate
	}
	if m.Status.Terminal() {
		return store.ErrConflict
	}
	result.EnsureID()
	now := s.now()
	result.Touch(now)
	s.results[result.MatchID] = *copyResult(*result)
	scorers := result.GoalScorers.Data()
	for i := range s.matchPlayers {
		if mp := &s.matchPlayers[i]; mp.MatchID == result.MatchID {
			mp.GoalsScored = scorers.For(mp.PlayerID)
		}
	}
	m.Status = models.MatchCompleted
	m.UpdatedAt = now
	s.matches[m.ID] = m
	return nil
}

func (s *Store) GetMatchResult(ctx context.Context, matchID uuid.UUID) (*models.MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[matchID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyResult(r), nil
}

// --- ratings ---

func (s *Store) CreateRating(ctx context.Context, r *models.PlayerRating) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.ratings {
		if existing.RaterID == r.RaterID && existing.RatedPlayerID == r.RatedPlayerID && existing.MatchID == r.MatchID {
			return store.ErrDuplicate
		}
	}
	if _, ok := s.matches[r.MatchID]; !ok {
		return store.ErrNotFound
	}
	if r.Category == "" {
		r.Category = models.DefaultRatingCategory
	}
	r.EnsureID()
	r.Touch(s.now())
	stored := *r
	stored.Comment = copyString(r.Comment)
	stored.Rater, stored.RatedPlayer = nil, nil
	s.ratings = append(s.ratings, stored)
	return nil
}

func (s *Store) RatingExists(ctx context.Context, raterID, ratedPlayerID, matchID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.ratings {
		if r.RaterID == raterID && r.RatedPlayerID == ratedPlayerID && r.MatchID == matchID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListRatingsForPlayer(ctx context.Context, playerID uuid.UUID) ([]models.PlayerRating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ratingsLocked(func(r models.PlayerRating) bool { return r.RatedPlayerID == playerID }), nil
}

func (s *Store) ListRatingsForMatch(ctx context.Context, matchID uuid.UUID) ([]models.PlayerRating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ratingsLocked(func(r models.PlayerRating) bool { return r.MatchID == matchID }), nil
}

func (s *Store) RefreshOverallRating(ctx context.Context, playerID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[playerID]
	if !ok {
		return store.ErrNotFound
	}
	var sum, n int64
	for _, r := range s.ratings {
		if r.RatedPlayerID == playerID {
			sum += int64(r.Rating)
			n++
		}
	}
	if n == 0 {
		return nil
	}
	p.OverallRating = float64(sum) / float64(n)
	p.UpdatedAt = s.now()
	s.players[playerID] = p
	return nil
}

// --- helpers, callers hold s.mu ---

func (s *Store) membersLocked(clubID uuid.UUID) []models.ClubPlayer {
	var out []models.ClubPlayer
	for _, cp := range s.clubPlayers {
		if cp.ClubID != clubID {
			continue
		}
		if p, ok := s.players[cp.PlayerID]; ok {
			cp.Player = &p
		}
		out = append(out, cp)
	}
	return out
}

func (s *Store) rosterLocked(matchID uuid.UUID) []models.MatchPlayer {
	var out []models.MatchPlayer
	for _, mp := range s.matchPlayers {
		if mp.MatchID != matchID {
			continue
		}
		c := copyMatchPlayer(mp)
		if p, ok := s.players[mp.PlayerID]; ok {
			c.Player = &p
		}
		out = append(out, *c)
	}
	return out
}

func (s *Store) ratingsLocked(keep func(models.PlayerRating) bool) []models.PlayerRating {
	var out []models.PlayerRating
	for i := len(s.ratings) - 1; i >= 0; i-- {
		r := s.ratings[i]
		if !keep(r) {
			continue
		}
		r.Comment = copyString(r.Comment)
		if p, ok := s.players[r.RaterID]; ok {
			r.Rater = &p
		}
		if p, ok := s.players[r.RatedPlayerID]; ok {
			r.RatedPlayer = &p
		}
		out = append(out, r)
	}
	return out
}

func (s *Store) invitationIndexLocked(id uuid.UUID) int {
	for i, inv := range s.invitations {
		if inv.ID == id {
			return i
		}
	}
	return -1
}

func sortClubs(clubs []models.Club) {
	sort.Slice(clubs, func(i, j int) bool {
		if !clubs[i].CreatedAt.Equal(clubs[j].CreatedAt) {
			return clubs[i].CreatedAt.After(clubs[j].CreatedAt)
		}
		return clubs[i].Name < clubs[j].Name
	})
}

func paginate[T any](items []T, p store.Page) []T {
	p = p.Normalize()
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func containsStatus(set []models.MatchStatus, s models.MatchStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func copyUser(u models.User) *models.User {
	if u.LastLogin != nil {
		t := *u.LastLogin
		u.LastLogin = &t
	}
	return &u
}

func copyMatchPlayer(mp models.MatchPlayer) *models.MatchPlayer {
	if mp.Team != nil {
		mp.Team = mp.Team.Ptr()
	}
	return &mp
}

func copyResult(r models.MatchResult) *models.MatchResult {
	scorers := make(models.GoalScorers, len(r.GoalScorers.Data()))
	for k, v := range r.GoalScorers.Data() {
		scorers[k] = v
	}
	r.GoalScorers = datatypes.NewJSONType(scorers)
	return &r
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
