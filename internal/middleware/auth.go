package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
	"github.com/DhavalSuthar-24/pitchup/pkg/responses"
	"github.com/DhavalSuthar-24/pitchup/pkg/token"
)

// IdentityStore is the part of the data store the auth middleware reads.
type IdentityStore interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetPlayerByUserID(ctx context.Context, userID uuid.UUID) (*models.Player, error)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware verifies the bearer token and attaches the caller identity.
// The user's role and player are re-read so revoked roles take effect immediately.
func AuthMiddleware(tokens *token.Manager, ids IdentityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		raw, ok := BearerToken(authHeader)
		if !ok {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := tokens.Validate(raw)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token")
			return
		}

		ctx := c.Request.Context()
		user, err := ids.GetUserByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				responses.Unauthorized(c, "User not found or inactive")
				return
			}
			responses.SendAppError(c, common.StoreError(err, "User"))
			return
		}

		caller := common.CallerIdentity{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		}
		player, err := ids.GetPlayerByUserID(ctx, user.ID)
		switch {
		case err == nil:
			caller.PlayerID = player.ID
		case !errors.Is(err, store.ErrNotFound):
			responses.SendAppError(c, common.StoreError(err, "Player"))
			return
		}

		common.SetCaller(c, caller)
		c.Next()
	}
}
