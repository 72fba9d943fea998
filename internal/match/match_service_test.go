package match

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/DhavalSuthar-24/pitchup/internal/apperror"
	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/internal/metrics"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
	"github.com/DhavalSuthar-24/pitchup/internal/store/memstore"
)

type fixture struct {
	ctx       context.Context
	store     *memstore.Store
	svc       *Service
	organizer common.CallerIdentity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memstore.New()
	f := &fixture{ctx: context.Background(), store: s, svc: NewService(s, zap.NewNop())}
	f.organizer = f.caller(t, "organizer", models.RoleOrganizer, models.DefaultOverallRating)
	return f
}

func (f *fixture) caller(t *testing.T, nickname string, role models.UserRole, rating float64) common.CallerIdentity {
	t.Helper()
	u := &models.User{Email: nickname + "@x.com", PasswordHash: "x", Role: role}
	require.NoError(t, f.store.CreateUser(f.ctx, u))
	p := &models.Player{UserID: u.ID, Nickname: nickname, OverallRating: rating}
	require.NoError(t, f.store.CreatePlayer(f.ctx, p))
	return common.CallerIdentity{UserID: u.ID, Email: u.Email, PlayerID: p.ID, Role: role}
}

func (f *fixture) match(t *testing.T, maxPlayers int) *models.Match {
	t.Helper()
	m, err := f.svc.CreateMatch(f.ctx, f.organizer, CreateMatchRequest{
		Title:      "Friday kickabout",
		Location:   "Hackney Marshes",
		MatchDate:  time.Now().Add(72 * time.Hour),
		Format:     models.Format5v5,
		MaxPlayers: maxPlayers,
	})
	require.NoError(t, err)
	return m
}

func intPtr(v int) *int { return &v }

func TestCreateMatchValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateMatch(f.ctx, f.organizer, CreateMatchRequest{Title: "ab", Location: "x", Format: "6v6", MaxPlayers: 30})
	require.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Len(t, apperror.ViolationsOf(err), 5)

	m := f.match(t, 10)
	assert.Equal(t, models.MatchUpcoming, m.Status)
	assert.Equal(t, f.organizer.UserID, m.OrganizerID)
}

func TestJoinMatchCapacity(t *testing.T) {
	f := newFixture(t)
	m := f.match(t, 2)
	p1 := f.caller(t, "p1", models.RolePlayer, 5)
	p2 := f.caller(t, "p2", models.RolePlayer, 5)
	p3 := f.caller(t, "p3", models.RolePlayer, 5)

	_, err := f.svc.JoinMatch(f.ctx, m.ID, p1, JoinMatchRequest{})
	require.NoError(t, err)
	joined, err := f.svc.JoinMatch(f.ctx, m.ID, p2, JoinMatchRequest{Team: models.TeamB.Ptr()})
	require.NoError(t, err)
	assert.Equal(t, models.TeamB, *joined.Team)
	assert.Equal(t, models.SeedMatchRating, joined.Rating)

	_, err = f.svc.JoinMatch(f.ctx, m.ID, p3, JoinMatchRequest{})
	assert.Equal(t, apperror.KindCapacity, apperror.KindOf(err))

	_, err = f.svc.JoinMatch(f.ctx, m.ID, p1, JoinMatchRequest{})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestJoinMatchRules(t *testing.T) {
	f := newFixture(t)
	m := f.match(t, 10)
	alice := f.caller(t, "alice", models.RolePlayer, 5)
	bob := f.caller(t, "bob", models.RolePlayer, 5)

	_, err := f.svc.JoinMatch(f.ctx, uuid.New(), alice, JoinMatchRequest{})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = f.svc.JoinMatch(f.ctx, m.ID, alice, JoinMatchRequest{PlayerID: &bob.PlayerID})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	_, err = f.svc.UpdateStatus(f.ctx, m.ID, f.organizer, models.MatchCancelled)
	require.NoError(t, err)
	_, err = f.svc.JoinMatch(f.ctx, m.ID, alice, JoinMatchRequest{})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestJoinMatchCheckOrder(t *testing.T) {
	f := newFixture(t)
	m := f.match(t, 2)
	p1 := f.caller(t, "p1", models.RolePlayer, 5)
	p2 := f.caller(t, "p2", models.RolePlayer, 5)
	p3 := f.caller(t, "p3", models.RolePlayer, 5)

	_, err := f.svc.JoinMatch(f.ctx, m.ID, p1, JoinMatchRequest{})
	require.NoError(t, err)

	// room left: foreign profile and rejoin are judged on their own
	_, err = f.svc.JoinMatch(f.ctx, m.ID, p3, JoinMatchRequest{PlayerID: &p2.PlayerID})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	_, err = f.svc.JoinMatch(f.ctx, m.ID, p3, JoinMatchRequest{PlayerID: &p1.PlayerID})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err), "already joined beats foreign profile")

	_, err = f.svc.JoinMatch(f.ctx, m.ID, p2, JoinMatchRequest{})
	require.NoError(t, err)

	_, err = f.svc.JoinMatch(f.ctx, m.ID, p3, JoinMatchRequest{PlayerID: &p1.PlayerID})
	assert.Equal(t, apperror.KindCapacity, apperror.KindOf(err), "full beats already joined and foreign profile")
	_, err = f.svc.JoinMatch(f.ctx, m.ID, p1, JoinMatchRequest{})
	assert.Equal(t, apperror.KindCapacity, apperror.KindOf(err))

	_, err = f.svc.SubmitMatchResult(f.ctx, f.organizer, SubmitResultRequest{MatchID: m.ID, TeamAScore: intPtr(1), TeamBScore: intPtr(0)})
	require.NoError(t, err)
	_, err = f.svc.JoinMatch(f.ctx, m.ID, p3, JoinMatchRequest{PlayerID: &p1.PlayerID})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err), "completed beats foreign profile")
	_, err = f.svc.JoinMatch(f.ctx, m.ID, p3, JoinMatchRequest{PlayerID: ptrUUID(uuid.New())})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err), "completed beats unknown player")

	roster, err := f.store.ListMatchPlayers(f.ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, roster, 2)
}

func ptrUUID(id uuid.UUID) *uuid.UUID { return &id }

func TestConcurrentJoinsRespectCapacity(t *testing.T) {
	f := newFixture(t)
	m := f.match(t, 4)
	callers := make([]common.CallerIdentity, 12)
	for i := range callers {
		callers[i] = f.caller(t, "racer"+string(rune('a'+i)), models.RolePlayer, 5)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var joined, full int
	for _, c := range callers {
		wg.Add(1)
		go func(c common.CallerIdentity) {
			defer wg.Done()
			_, err := f.svc.JoinMatch(f.ctx, m.ID, c, JoinMatchRequest{})
			mu.Lock()
			defer mu.Unlock()
			switch apperror.KindOf(err) {
			case "":
				joined++
			case apperror.KindCapacity:
				full++
			}
		}(c)
	}
	wg.Wait()

	assert.Equal(t, 4, joined)
	assert.Equal(t, 8, full)
	roster, err := f.store.ListMatchPlayers(f.ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, roster, 4)
}

func TestBalanceTeams(t *testing.T) {
	f := newFixture(t)
	m := f.match(t, 10)
	outsider := f.caller(t, "outsider", models.RolePlayer, 5)

	_, err := f.svc.BalanceTeams(f.ctx, m.ID, f.organizer)
	assert.Equal(t, apperror.KindEmptyRoster, apperror.KindOf(err))

	ids := map[float64]uuid.UUID{}
	for _, r := range []float64{9, 7, 5, 3} {
		c := f.caller(t, "rated"+string(rune('0'+int(r))), models.RolePlayer, r)
		ids[r] = c.PlayerID
		_, err := f.svc.JoinMatch(f.ctx, m.ID, c, JoinMatchRequest{})
		require.NoError(t, err)
	}

	_, err = f.svc.BalanceTeams(f.ctx, m.ID, outsider)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	split, err := f.svc.BalanceTeams(f.ctx, m.ID, f.organizer)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 5}, ratingsOf(split.TeamA))
	assert.Equal(t, []float64{7, 3}, ratingsOf(split.TeamB))

	// the assignment is persisted
	mp, err := f.store.GetMatchPlayer(f.ctx, m.ID, ids[7])
	require.NoError(t, err)
	require.NotNil(t, mp.Team)
	assert.Equal(t, models.TeamB, *mp.Team)

	again, err := f.svc.BalanceTeams(f.ctx, m.ID, f.organizer)
	require.NoError(t, err)
	assert.Equal(t, ratingsOf(split.TeamA), ratingsOf(again.TeamA))
}

func TestSubmitMatchResult(t *testing.T) {
	f := newFixture(t)
	m := f.match(t, 10)
	a := f.caller(t, "alpha", models.RolePlayer, 5)
	b := f.caller(t, "bravo", models.RolePlayer, 5)
	bench := f.caller(t, "bench", models.RolePlayer, 5)
	outsider := f.caller(t, "outsider", models.RolePlayer, 5)
	_, err := f.svc.JoinMatch(f.ctx, m.ID, a, JoinMatchRequest{Team: models.TeamA.Ptr()})
	require.NoError(t, err)
	_, err = f.svc.JoinMatch(f.ctx, m.ID, b, JoinMatchRequest{Team: models.TeamB.Ptr()})
	require.NoError(t, err)
	_, err = f.svc.JoinMatch(f.ctx, m.ID, bench, JoinMatchRequest{})
	require.NoError(t, err)
	require.NoError(t, f.store.ApplyPlayerStats(f.ctx, a.PlayerID, models.StatsDelta{GoalsScored: 4}))

	req := SubmitResultRequest{
		MatchID:         m.ID,
		TeamAScore:      intPtr(3),
		TeamBScore:      intPtr(1),
		DurationMinutes: 60,
		GoalScorers:     models.GoalScorers{a.PlayerID.String(): 2, b.PlayerID.String(): 1},
	}

	_, err = f.svc.SubmitMatchResult(f.ctx, outsider, req)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	bad := req
	bad.GoalScorers = models.GoalScorers{outsider.PlayerID.String(): 1}
	_, err = f.svc.SubmitMatchResult(f.ctx, f.organizer, bad)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	bad = req
	bad.TeamAScore = intPtr(-1)
	_, err = f.svc.SubmitMatchResult(f.ctx, f.organizer, bad)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	before := testutil.ToFloat64(metrics.MatchesCompleted)
	done, err := f.svc.SubmitMatchResult(f.ctx, f.organizer, req)
	require.NoError(t, err)
	assert.Equal(t, models.MatchCompleted, done.Status)
	require.NotNil(t, done.Result)
	assert.Equal(t, 2, done.Result.GoalScorers.Data()[a.PlayerID.String()])
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.MatchesCompleted))

	pa, err := f.store.GetPlayerByID(f.ctx, a.PlayerID)
	require.NoError(t, err)
	assert.Equal(t, 1, pa.MatchesPlayed)
	assert.Equal(t, 1, pa.Wins)
	assert.Equal(t, 6, pa.GoalsScored, "goals accumulate across matches")

	pb, err := f.store.GetPlayerByID(f.ctx, b.PlayerID)
	require.NoError(t, err)
	assert.Equal(t, 1, pb.MatchesPlayed)
	assert.Equal(t, 0, pb.Wins)
	assert.Equal(t, 1, pb.GoalsScored)

	pbench, err := f.store.GetPlayerByID(f.ctx, bench.PlayerID)
	require.NoError(t, err)
	assert.Equal(t, 1, pbench.MatchesPlayed)
	assert.Equal(t, 0, pbench.Wins)

	roster, err := f.store.ListMatchPlayers(f.ctx, m.ID)
	require.NoError(t, err)
	perMatch := make(map[uuid.UUID]int, len(roster))
	for _, mp := range roster {
		perMatch[mp.PlayerID] = mp.GoalsScored
	}
	assert.Equal(t, map[uuid.UUID]int{a.PlayerID: 2, b.PlayerID: 1, bench.PlayerID: 0}, perMatch,
		"roster rows carry this match's goals only")

	_, err = f.svc.SubmitMatchResult(f.ctx, f.organizer, req)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	result, err := f.store.GetMatchResult(f.ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TeamAScore)
}

// flakyStats fails every statistics write.
type flakyStats struct {
	*memstore.Store
}

func (flakyStats) ApplyPlayerStats(ctx context.Context, id uuid.UUID, delta models.StatsDelta) error {
	return errors.New("connection reset")
}

func TestSubmitMatchResultStatsAreBestEffort(t *testing.T) {
	f := newFixture(t)
	m := f.match(t, 4)
	p := f.caller(t, "solo", models.RolePlayer, 5)
	_, err := f.svc.JoinMatch(f.ctx, m.ID, p, JoinMatchRequest{Team: models.TeamA.Ptr()})
	require.NoError(t, err)

	core, logs := observer.New(zap.ErrorLevel)
	svc := NewService(flakyStats{f.store}, zap.New(core))
	before := testutil.ToFloat64(metrics.StatsFanoutFailures)

	done, err := svc.SubmitMatchResult(f.ctx, f.organizer, SubmitResultRequest{
		MatchID: m.ID, TeamAScore: intPtr(1), TeamBScore: intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, models.MatchCompleted, done.Status)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.StatsFanoutFailures))
	assert.Equal(t, 1, logs.FilterMessage("failed to update player statistics").Len())
}

func TestClubMatchAutoRoster(t *testing.T) {
	f := newFixture(t)
	admin := f.caller(t, "root", models.RoleAdmin, 5)
	clubs := make([]*models.Club, 2)
	for i, name := range []string{"Wanderers", "Rovers"} {
		clubs[i] = &models.Club{Name: name, CreatedBy: admin.UserID}
		manager := f.caller(t, "mgr-"+name, models.RolePlayer, 5)
		require.NoError(t, f.store.CreateClubWithManager(f.ctx, clubs[i], &models.ClubPlayer{PlayerID: manager.PlayerID, Role: models.ClubRoleManager}))
	}
	req := CreateMatchRequest{
		Title:       "Derby",
		Location:    "Hackney Marshes",
		MatchDate:   time.Now().Add(time.Hour),
		Format:      models.Format5v5,
		MaxPlayers:  2,
		TeamAClubID: &clubs[0].ID,
		TeamBClubID: &clubs[1].ID,
	}

	m, err := f.svc.CreateMatch(f.ctx, f.organizer, req)
	require.NoError(t, err)
	require.Len(t, m.Players, 2)
	teams := map[models.Team]int{}
	for _, mp := range m.Players {
		require.NotNil(t, mp.Team)
		teams[*mp.Team]++
	}
	assert.Equal(t, map[models.Team]int{models.TeamA: 1, models.TeamB: 1}, teams)

	// a third member pushes the combined roster over capacity
	extra := f.caller(t, "extra", models.RolePlayer, 5)
	require.NoError(t, f.store.CreateInvitation(f.ctx, &models.ClubInvitation{ClubID: clubs[0].ID, PlayerID: extra.PlayerID, InvitedBy: admin.UserID}))
	inv, err := f.store.GetPendingInvitation(f.ctx, clubs[0].ID, extra.PlayerID)
	require.NoError(t, err)
	_, err = f.store.AcceptInvitation(f.ctx, inv.ID, extra.PlayerID)
	require.NoError(t, err)

	_, total, err := f.store.ListMatches(f.ctx, store.MatchFilter{})
	require.NoError(t, err)
	_, err = f.svc.CreateMatch(f.ctx, f.organizer, req)
	assert.Equal(t, apperror.KindCapacity, apperror.KindOf(err))
	_, after, err := f.store.ListMatches(f.ctx, store.MatchFilter{})
	require.NoError(t, err)
	assert.Equal(t, total, after)

	missing := uuid.New()
	req.TeamBClubID = &missing
	_, err = f.svc.CreateMatch(f.ctx, f.organizer, req)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	m := f.match(t, 10)
	player := f.caller(t, "pat", models.RolePlayer, 5)

	_, err := f.svc.UpdateStatus(f.ctx, m.ID, player, models.MatchInProgress)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	_, err = f.svc.UpdateStatus(f.ctx, m.ID, f.organizer, models.MatchCompleted)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	started, err := f.svc.UpdateStatus(f.ctx, m.ID, f.organizer, models.MatchInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.MatchInProgress, started.Status)

	_, err = f.svc.UpdateStatus(f.ctx, m.ID, f.organizer, models.MatchCancelled)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	list, total, err := f.svc.ListMatches(f.ctx, store.MatchFilter{Status: models.MatchInProgress})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, m.ID, list[0].ID)

	_, _, err = f.svc.ListMatches(f.ctx, store.MatchFilter{Status: "finished"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
