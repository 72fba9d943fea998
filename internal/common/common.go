package common

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DhavalSuthar-24/pitchup/internal/apperror"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
)

const (
	// Context keys
	ContextCallerKey = "caller" // Key to store the authenticated caller in context
)

// CallerIdentity is the authenticated principal attached to a request.
type CallerIdentity struct {
	UserID   uuid.UUID       `json:"userId"`
	Email    string          `json:"email"`
	PlayerID uuid.UUID       `json:"playerId"`
	Role     models.UserRole `json:"role"`
}

func (c CallerIdentity) IsAdmin() bool { return c.Role == models.RoleAdmin }

func (c CallerIdentity) CanOrganize() bool { return c.Role.CanOrganize() }

// HasPlayer reports whether the caller owns a player profile.
func (c CallerIdentity) HasPlayer() bool { return c.PlayerID != uuid.Nil }

// SetCaller stores the caller on the gin context.
func SetCaller(c *gin.Context, caller CallerIdentity) {
	c.Set(ContextCallerKey, caller)
}

// GetCaller retrieves the authenticated caller from the gin context.
func GetCaller(c *gin.Context) (CallerIdentity, error) {
	v, exists := c.Get(ContextCallerKey)
	if !exists {
		return CallerIdentity{}, apperror.New(apperror.KindUnauthenticated, "Authentication required")
	}
	caller, ok := v.(CallerIdentity)
	if !ok {
		return CallerIdentity{}, apperror.Internal(errors.New("caller in context has unexpected type"))
	}
	return caller, nil
}

// StoreError converts a data store failure into a typed error naming resource.
func StoreError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return apperror.NotFound(resource)
	case errors.Is(err, store.ErrDuplicate):
		return apperror.Conflict(resource + " already exists")
	case errors.Is(err, context.DeadlineExceeded):
		return apperror.Wrap(apperror.KindTimeout, "Data store timeout", err)
	case errors.Is(err, context.Canceled):
		return apperror.Wrap(apperror.KindUnavailable, "Request cancelled", err)
	}
	var ae *apperror.Error
	if errors.As(err, &ae) {
		return ae
	}
	return apperror.Internal(err)
}

// UUIDParam parses a path parameter as a UUID.
func UUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.Validation(name + " must be a valid UUID")
	}
	return id, nil
}

// PageQuery reads ?page= and ?limit=. Unparseable values fall back to defaults.
func PageQuery(c *gin.Context) store.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultPageSize)))
	return store.Page{Page: page, Limit: limit}.Normalize()
}
