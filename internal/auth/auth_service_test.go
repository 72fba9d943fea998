package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"

	"github.com/DhavalSuthar-24/pitchup/internal/apperror"
	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
	"github.com/DhavalSuthar-24/pitchup/internal/store/memstore"
	"github.com/DhavalSuthar-24/pitchup/pkg/token"
	"github.com/DhavalSuthar-24/pitchup/utils"
)

func newTestService(s Store, log *zap.Logger) *Service {
	return NewService(s, utils.NewHasher(bcrypt.MinCost), token.NewManager("test-secret", time.Hour), log)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	svc := newTestService(s, zap.NewNop())

	sess, err := svc.Register(ctx, RegisterInput{Email: "Alice@X.com", Password: "secret1", Nickname: "AliceP"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "alice@x.com", sess.User.Email)
	assert.Equal(t, models.RolePlayer, sess.User.Role)
	assert.Equal(t, models.DefaultOverallRating, sess.Player.OverallRating)
	assert.Equal(t, models.PositionForward, sess.Player.PositionPreference)
	assert.Contains(t, sess.Player.PhotoURL, "AliceP")
	assert.NotEqual(t, "secret1", sess.User.PasswordHash)

	claims, err := svc.tokens.Validate(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Player.ID, claims.PlayerID)
	assert.Equal(t, "player", claims.Role)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Email: "alice@x.com", Password: "secret1", Nickname: "Other"})
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
		_, err = s.GetPlayerByNickname(ctx, "Other")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate nickname", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Email: "bob@x.com", Password: "secret1", Nickname: "AliceP"})
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
		_, err = s.GetUserByEmail(ctx, "bob@x.com")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("validation reports every rule", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Email: "nope", Password: "123", Nickname: "A", Position: "striker"})
		require.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		assert.Len(t, apperror.ViolationsOf(err), 4)
	})
}

// failingPlayers rejects every player insert.
type failingPlayers struct {
	*memstore.Store
}

func (f failingPlayers) CreatePlayer(ctx context.Context, p *models.Player) error {
	return errors.New("disk full")
}

func TestRegisterCompensatesUser(t *testing.T) {
	ctx := context.Background()
	mem := memstore.New()
	core, logs := observer.New(zap.WarnLevel)
	svc := newTestService(failingPlayers{mem}, zap.New(core))

	_, err := svc.Register(ctx, RegisterInput{Email: "carol@x.com", Password: "secret1", Nickname: "Carol"})
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))

	_, err = mem.GetUserByEmail(ctx, "carol@x.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, 1, logs.FilterMessage("rolled back user after player creation failed").Len())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	svc := newTestService(s, zap.NewNop())
	_, err := svc.Register(ctx, RegisterInput{Email: "alice@x.com", Password: "secret1", Nickname: "AliceP"})
	require.NoError(t, err)

	sess, err := svc.Login(ctx, "ALICE@x.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	require.NotNil(t, sess.User.LastLogin)

	_, wrongPassword := svc.Login(ctx, "alice@x.com", "wrong")
	_, unknownEmail := svc.Login(ctx, "nobody@x.com", "secret1")
	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(wrongPassword))
	assert.Equal(t, apperror.PublicMessage(wrongPassword), apperror.PublicMessage(unknownEmail))
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(memstore.New(), zap.NewNop())
	sess, err := svc.Register(ctx, RegisterInput{Email: "alice@x.com", Password: "secret1", Nickname: "AliceP"})
	require.NoError(t, err)

	profile, err := svc.Me(ctx, common.CallerIdentity{UserID: sess.User.ID})
	require.NoError(t, err)
	assert.Equal(t, sess.Player.ID, profile.Player.ID)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	svc := newTestService(s, zap.NewNop())

	require.NoError(t, svc.EnsureAdmin(ctx, "", "", ""))
	require.NoError(t, svc.EnsureAdmin(ctx, "root@x.com", "rootpass", "admin"))
	u, err := s.GetUserByEmail(ctx, "root@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)

	// idempotent, and promotes existing accounts
	require.NoError(t, svc.EnsureAdmin(ctx, "root@x.com", "rootpass", "admin"))
	sess, err := svc.Register(ctx, RegisterInput{Email: "bob@x.com", Password: "secret1", Nickname: "Bobby"})
	require.NoError(t, err)
	require.NoError(t, svc.EnsureAdmin(ctx, "bob@x.com", "", ""))
	u, err = s.GetUserByID(ctx, sess.User.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
}
