package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/DhavalSuthar-24/pitchup/config"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store/memstore"
	"github.com/DhavalSuthar-24/pitchup/pkg/token"
	"github.com/DhavalSuthar-24/pitchup/utils"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Errors  []string        `json:"errors"`
}

type app struct {
	t      *testing.T
	store  *memstore.Store
	router *gin.Engine
}

type account struct {
	token    string
	userID   uuid.UUID
	playerID uuid.UUID
}

func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.FrontendURL = "http://localhost:5173"
	cfg.App.RequestTimeout = 5 * time.Second
	cfg.DataStore.PublicKey = "pk-live"

	s := memstore.New()
	deps := Dependencies{
		Config: cfg,
		Store:  s,
		Tokens: token.NewManager("router-test-secret", time.Hour),
		Hasher: utils.NewHasher(bcrypt.MinCost),
		Log:    zap.NewNop(),
	}
	svc := NewServices(deps)
	require.NoError(t, svc.Auth.EnsureAdmin(context.Background(), "admin@pitchup.test", "admin-pass", "admin"))
	return &app{t: t, store: s, router: SetupRoutes(deps, svc)}
}

func (a *app) do(method, path, bearer string, body interface{}) (int, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

type idBody struct {
	ID uuid.UUID `json:"id"`
}

type sessionBody struct {
	Token  string `json:"token"`
	User   idBody `json:"user"`
	Player idBody `json:"player"`
}

func (a *app) register(nickname string) account {
	a.t.Helper()
	code, env := a.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    nickname + "@pitchup.test",
		"password": "secret123",
		"nickname": nickname,
	})
	require.Equal(a.t, http.StatusCreated, code, env.Error)
	s := decode[sessionBody](a.t, env)
	return account{token: s.Token, userID: s.User.ID, playerID: s.Player.ID}
}

func (a *app) login(email, password string) account {
	a.t.Helper()
	code, env := a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, code, env.Error)
	s := decode[sessionBody](a.t, env)
	return account{token: s.Token, userID: s.User.ID, playerID: s.Player.ID}
}

func (a *app) organizer(nickname string) account {
	a.t.Helper()
	acc := a.register(nickname)
	require.NoError(a.t, a.store.UpdateUserRole(context.Background(), acc.userID, models.RoleOrganizer))
	return acc
}

func (a *app) createMatch(org account, maxPlayers int) uuid.UUID {
	a.t.Helper()
	code, env := a.do(http.MethodPost, "/api/matches", org.token, map[string]interface{}{
		"title":       "Thursday five a side",
		"location":    "Powerleague Shoreditch",
		"match_date":  time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
		"format":      "5v5",
		"max_players": maxPlayers,
	})
	require.Equal(a.t, http.StatusCreated, code, env.Error)
	return decode[models.Match](a.t, env).ID
}

func (a *app) join(acc account, matchID uuid.UUID) int {
	a.t.Helper()
	code, _ := a.do(http.MethodPost, fmt.Sprintf("/api/matches/%s/join", matchID), acc.token, nil)
	return code
}

func TestHealthMetricsAndDocs(t *testing.T) {
	a := newApp(t)

	code, env := a.do(http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, code)
	h := decode[healthStatus](t, env)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "up", h.Store)
	assert.Equal(t, "configured", h.PublicKey)

	code, env = a.do(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")

	req = httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w = httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/matches/{id}/balance-teams")
}

func TestRequestIDIsEchoed(t *testing.T) {
	a := newApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), `"requestId":"req-123"`)
}

func TestAuthFlow(t *testing.T) {
	a := newApp(t)
	alice := a.register("alice")
	assert.NotEqual(t, uuid.Nil, alice.playerID)

	code, _ := a.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "ALICE@pitchup.test", "password": "secret123", "nickname": "alice2",
	})
	assert.Equal(t, http.StatusConflict, code)
	code, _ = a.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "other@pitchup.test", "password": "secret123", "nickname": "alice",
	})
	assert.Equal(t, http.StatusConflict, code)
	code, env := a.do(http.MethodPost, "/api/auth/register", "", map[string]string{"email": "bad", "password": "1"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, env.Errors)

	code, _ = a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "alice@pitchup.test", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, code)
	again := a.login("alice@pitchup.test", "secret123")
	assert.Equal(t, alice.playerID, again.playerID)

	code, _ = a.do(http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = a.do(http.MethodGet, "/api/auth/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, env = a.do(http.MethodGet, "/api/auth/me", alice.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"nickname":"alice"`)

	code, _ = a.do(http.MethodPost, "/api/auth/logout", alice.token, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestPlayerEndpoints(t *testing.T) {
	a := newApp(t)
	alice := a.register("alice")
	bob := a.register("bob")

	code, env := a.do(http.MethodGet, "/api/players/email/alice@pitchup.test", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, alice.playerID, decode[models.Player](t, env).ID)

	code, _ = a.do(http.MethodGet, "/api/players/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = a.do(http.MethodPut, "/api/players/"+alice.playerID.String(), bob.token, map[string]string{"nickname": "hijack"})
	assert.Equal(t, http.StatusForbidden, code)
	code, env = a.do(http.MethodPut, "/api/players/"+alice.playerID.String(), alice.token, map[string]string{"position_preference": "goalkeeper"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.Position("goalkeeper"), decode[models.Player](t, env).PositionPreference)

	code, _ = a.do(http.MethodPost, "/api/players", alice.token, map[string]string{"nickname": "alice-again"})
	assert.Equal(t, http.StatusConflict, code)
}

func TestMatchCapacity(t *testing.T) {
	a := newApp(t)
	org := a.organizer("org")
	matchID := a.createMatch(org, 2)

	p1, p2, p3 := a.register("p1"), a.register("p2"), a.register("p3")
	assert.Equal(t, http.StatusCreated, a.join(p1, matchID))
	assert.Equal(t, http.StatusConflict, a.join(p1, matchID))
	assert.Equal(t, http.StatusCreated, a.join(p2, matchID))
	assert.Equal(t, http.StatusBadRequest, a.join(p3, matchID))

	code, env := a.do(http.MethodGet, "/api/matches/"+matchID.String(), org.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[models.Match](t, env).Players, 2)

	// plain players cannot organize
	code, _ = a.do(http.MethodPost, "/api/matches", p1.token, map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestBalanceTeamsEndpoint(t *testing.T) {
	a := newApp(t)
	org := a.organizer("org")
	matchID := a.createMatch(org, 10)

	ratings := map[string]float64{"r3": 3, "r9": 9, "r5": 5, "r7": 7}
	byRating := make(map[float64]uuid.UUID)
	for _, nick := range []string{"r3", "r9", "r5", "r7"} {
		acc := a.register(nick)
		require.NoError(t, a.store.SetPlayerOverallRating(context.Background(), acc.playerID, ratings[nick]))
		require.Equal(t, http.StatusCreated, a.join(acc, matchID))
		byRating[ratings[nick]] = acc.playerID
	}

	outsider := a.register("outsider")
	code, _ := a.do(http.MethodPost, "/api/matches/"+matchID.String()+"/balance-teams", outsider.token, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env := a.do(http.MethodPost, "/api/matches/"+matchID.String()+"/balance-teams", org.token, nil)
	require.Equal(t, http.StatusOK, code, env.Error)
	split := decode[struct {
		TeamA []models.MatchPlayer `json:"team_a"`
		TeamB []models.MatchPlayer `json:"team_b"`
	}](t, env)
	ids := func(mps []models.MatchPlayer) []uuid.UUID {
		out := make([]uuid.UUID, len(mps))
		for i, mp := range mps {
			out[i] = mp.PlayerID
		}
		return out
	}
	assert.Equal(t, []uuid.UUID{byRating[9], byRating[5]}, ids(split.TeamA))
	assert.Equal(t, []uuid.UUID{byRating[7], byRating[3]}, ids(split.TeamB))
}

func TestResultAndRatingFlow(t *testing.T) {
	a := newApp(t)
	org := a.organizer("org")
	matchID := a.createMatch(org, 4)
	alice, bob := a.register("alice"), a.register("bob")
	require.Equal(t, http.StatusCreated, a.join(alice, matchID))
	require.Equal(t, http.StatusCreated, a.join(bob, matchID))

	rate := func(by account, target uuid.UUID, score int) (int, envelope) {
		return a.do(http.MethodPost, "/api/ratings", by.token, map[string]interface{}{
			"rated_player_id": target, "match_id": matchID, "rating": score,
		})
	}

	code, _ := rate(alice, bob.playerID, 8)
	assert.Equal(t, http.StatusConflict, code, "match not completed yet")

	result := map[string]interface{}{
		"match_id":     matchID,
		"team_a_score": 3,
		"team_b_score": 1,
		"goal_scorers": map[string]int{alice.playerID.String(): 2},
	}
	code, _ = a.do(http.MethodPost, "/api/matches/results", alice.token, result)
	assert.Equal(t, http.StatusForbidden, code)
	code, env := a.do(http.MethodPost, "/api/matches/results", org.token, result)
	require.Equal(t, http.StatusCreated, code, env.Error)
	assert.Equal(t, models.MatchCompleted, decode[models.Match](t, env).Status)
	code, _ = a.do(http.MethodPost, "/api/matches/results", org.token, result)
	assert.Equal(t, http.StatusConflict, code)

	code, env = a.do(http.MethodGet, "/api/players/"+alice.playerID.String(), "", nil)
	require.Equal(t, http.StatusOK, code)
	pa := decode[models.Player](t, env)
	assert.Equal(t, 1, pa.MatchesPlayed)
	assert.Equal(t, 2, pa.GoalsScored)

	code, _ = rate(alice, alice.playerID, 8)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = rate(alice, bob.playerID, 11)
	assert.Equal(t, http.StatusBadRequest, code)
	code, env = rate(alice, bob.playerID, 8)
	require.Equal(t, http.StatusCreated, code, env.Error)
	code, _ = rate(alice, bob.playerID, 6)
	assert.Equal(t, http.StatusConflict, code)

	code, env = a.do(http.MethodGet, "/api/ratings/player/"+bob.playerID.String(), alice.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]models.PlayerRating](t, env), 1)

	code, env = a.do(http.MethodGet, "/api/players/"+bob.playerID.String(), "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.InDelta(t, 8.0, decode[models.Player](t, env).OverallRating, 1e-9)
}

func TestClubInvitationFlow(t *testing.T) {
	a := newApp(t)
	admin := a.login("admin@pitchup.test", "admin-pass")
	alice, bob := a.register("alice"), a.register("bob")

	code, _ := a.do(http.MethodPost, "/api/clubs", alice.token, map[string]string{"name": "Sunday League"})
	assert.Equal(t, http.StatusForbidden, code)

	code, env := a.do(http.MethodPost, "/api/clubs", admin.token, map[string]string{"name": "Sunday League"})
	require.Equal(t, http.StatusCreated, code, env.Error)
	clubID := decode[models.Club](t, env).ID
	clubPath := "/api/clubs/" + clubID.String()

	code, env = a.do(http.MethodPost, clubPath+"/invite", admin.token, map[string]interface{}{"player_id": alice.playerID})
	require.Equal(t, http.StatusCreated, code, env.Error)
	aliceInv := decode[models.ClubInvitation](t, env).ID
	code, _ = a.do(http.MethodPost, clubPath+"/invite", admin.token, map[string]interface{}{"player_id": alice.playerID})
	assert.Equal(t, http.StatusConflict, code)

	code, env = a.do(http.MethodGet, "/api/clubs/invitations", alice.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]models.ClubInvitation](t, env), 1)

	code, _ = a.do(http.MethodPost, "/api/clubs/invitations/"+aliceInv.String()+"/accept", bob.token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = a.do(http.MethodPost, "/api/clubs/invitations/"+aliceInv.String()+"/accept", alice.token, nil)
	require.Equal(t, http.StatusOK, code)

	// plain members cannot invite
	code, _ = a.do(http.MethodPost, clubPath+"/invite", alice.token, map[string]interface{}{"player_id": bob.playerID})
	assert.Equal(t, http.StatusForbidden, code)

	code, env = a.do(http.MethodPost, clubPath+"/invite", admin.token, map[string]interface{}{"player_id": bob.playerID})
	require.Equal(t, http.StatusCreated, code, env.Error)
	bobInv := decode[models.ClubInvitation](t, env).ID
	code, _ = a.do(http.MethodPost, "/api/clubs/invitations/"+bobInv.String()+"/reject", bob.token, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = a.do(http.MethodPost, "/api/clubs/invitations/"+bobInv.String()+"/accept", bob.token, nil)
	assert.NotEqual(t, http.StatusOK, code)
	code, _ = a.do(http.MethodPost, clubPath+"/join", bob.token, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = a.do(http.MethodGet, clubPath+"/members", alice.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]models.ClubPlayer](t, env), 2)

	code, env = a.do(http.MethodGet, "/api/clubs/my-clubs", alice.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]models.Club](t, env), 1)
}
