package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/pitchup/internal/apperror"
	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
	"github.com/DhavalSuthar-24/pitchup/pkg/token"
	"github.com/DhavalSuthar-24/pitchup/utils"
)

const (
	minPasswordLen = 6
	minNicknameLen = 2
	maxNicknameLen = 50

	compensationTimeout = 5 * time.Second
)

var validate = validator.New()

var errInvalidCredentials = apperror.New(apperror.KindUnauthenticated, "Invalid email or password")

// Store is the slice of the data store identity needs.
type Store interface {
	store.UserRepository
	store.PlayerRepository
}

type Service struct {
	store  Store
	hasher *utils.Hasher
	tokens *token.Manager
	log    *zap.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewService(s Store, hasher *utils.Hasher, tokens *token.Manager, log *zap.Logger) *Service {
	return &Service{store: s, hasher: hasher, tokens: tokens, log: log}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (in RegisterInput) validate() error {
	var violations []string
	if err := validate.Var(in.Email, "required,email"); err != nil {
		violations = append(violations, "email must be a valid email address")
	}
	if len(in.Password) < minPasswordLen {
		violations = append(violations, "password must be at least 6 characters")
	}
	if n := utf8.RuneCountInString(in.Nickname); n < minNicknameLen || n > maxNicknameLen {
		violations = append(violations, "nickname must be between 2 and 50 characters")
	}
	if in.Position != "" && !in.Position.Valid() {
		violations = append(violations, "position_preference must be one of: goalkeeper, defender, midfielder, forward")
	}
	if len(violations) > 0 {
		return apperror.Validation(violations...)
	}
	return nil
}

// Register creates a user and its player profile and opens a session.
// The two inserts are separate writes; a failed player insert deletes the user again.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Email = normalizeEmail(in.Email)
	in.Nickname = strings.TrimSpace(in.Nickname)
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.Position == "" {
		in.Position = models.PositionForward
	}

	if _, err := s.store.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, apperror.Conflict("Email already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, common.StoreError(err, "User")
	}
	if _, err := s.store.GetPlayerByNickname(ctx, in.Nickname); err == nil {
		return nil, apperror.Conflict("Nickname already taken")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, common.StoreError(err, "Player")
	}

	hash, err := s.hasher.HashPassword(in.Password)
	if err != nil {
		if utils.IsPasswordTooLong(err) {
			return nil, apperror.Validation("password must not exceed 72 bytes")
		}
		return nil, apperror.Internal(err)
	}

	user := &models.User{Email: in.Email, PasswordHash: hash, Role: models.RolePlayer}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperror.Conflict("Email already registered")
		}
		return nil, common.StoreError(err, "User")
	}

	player := &models.Player{
		UserID:             user.ID,
		Nickname:           in.Nickname,
		PhotoURL:           models.DefaultAvatarURL(in.Nickname),
		OverallRating:      models.DefaultOverallRating,
		PositionPreference: in.Position,
	}
	if err := s.store.CreatePlayer(ctx, player); err != nil {
		s.compensateUser(ctx, user.ID, err)
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperror.Conflict("Nickname already taken")
		}
		return nil, common.StoreError(err, "Player")
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.String()), zap.String("player_id", player.ID.String()))
	return s.session(user, player)
}

// compensateUser removes a user whose player insert failed. It runs on a
// detached context so a request timeout does not leave the orphan behind.
func (s *Service) compensateUser(ctx context.Context, userID uuid.UUID, cause error) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()
	if err := s.store.DeleteUser(cctx, userID); err != nil {
		s.log.Error("failed to roll back user after player creation failed",
			zap.String("user_id", userID.String()), zap.NamedError("cause", cause), zap.Error(err))
		return
	}
	s.log.Warn("rolled back user after player creation failed", zap.String("user_id", userID.String()), zap.Error(cause))
}

// Login verifies credentials. Unknown email and wrong password fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.store.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.burnHash(password)
			return nil, errInvalidCredentials
		}
		return nil, common.StoreError(err, "User")
	}
	if !s.hasher.CheckPassword(user.PasswordHash, password) {
		return nil, errInvalidCredentials
	}

	player, err := s.store.GetPlayerByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, common.StoreError(err, "Player")
	}

	now := time.Now()
	if err := s.store.UpdateUserLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn("failed to record last login", zap.String("user_id", user.ID.String()), zap.Error(err))
	} else {
		user.LastLogin = &now
	}
	return s.session(user, player)
}

// burnHash spends one bcrypt comparison so unknown emails cost the same as wrong passwords.
func (s *Service) burnHash(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.HashPassword("pitchup-timing-equalizer")
	})
	s.hasher.CheckPassword(s.dummyHash, password)
}

// Me resolves the caller's user and player from the store.
func (s *Service) Me(ctx context.Context, caller common.CallerIdentity) (*Profile, error) {
	user, err := s.store.GetUserByID(ctx, caller.UserID)
	if err != nil {
		return nil, common.StoreError(err, "User")
	}
	player, err := s.store.GetPlayerByUserID(ctx, caller.UserID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, common.StoreError(err, "Player")
	}
	return &Profile{User: user, Player: player}, nil
}

// Logout is advisory. Tokens stay valid until they expire; a readable token
// only identifies the user in the log.
func (s *Service) Logout(ctx context.Context, bearer string) {
	if bearer == "" {
		return
	}
	claims, err := s.tokens.Validate(bearer)
	if err != nil {
		return
	}
	s.log.Info("user logged out", zap.String("user_id", claims.UserID.String()))
}

// EnsureAdmin creates or promotes the bootstrap admin account. An empty email disables it.
func (s *Service) EnsureAdmin(ctx context.Context, email, password, nickname string) error {
	email = normalizeEmail(email)
	if email == "" {
		return nil
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if user.Role != models.RoleAdmin {
			if err := s.store.UpdateUserRole(ctx, user.ID, models.RoleAdmin); err != nil {
				return common.StoreError(err, "User")
			}
			s.log.Info("promoted bootstrap admin", zap.String("email", email))
		}
		return nil
	case !errors.Is(err, store.ErrNotFound):
		return common.StoreError(err, "User")
	}

	if password == "" {
		return apperror.Validation("ADMIN_PASSWORD is required to create the admin account")
	}
	sess, err := s.Register(ctx, RegisterInput{Email: email, Password: password, Nickname: nickname})
	if err != nil {
		return err
	}
	if err := s.store.UpdateUserRole(ctx, sess.User.ID, models.RoleAdmin); err != nil {
		return common.StoreError(err, "User")
	}
	s.log.Info("created bootstrap admin", zap.String("email", email))
	return nil
}

func (s *Service) session(user *models.User, player *models.Player) (*Session, error) {
	playerID := uuid.Nil
	if player != nil {
		playerID = player.ID
	}
	signed, expiresAt, err := s.tokens.Generate(user.ID, user.Email, playerID, string(user.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &Session{Token: signed, ExpiresAt: expiresAt, User: user, Player: player}, nil
}
