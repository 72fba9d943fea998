package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/pitchup/internal/apperror"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
)

func TestStoreError(t *testing.T) {
	assert.NoError(t, StoreError(nil, "Match"))

	err := StoreError(store.ErrNotFound, "Match")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, "Match not found", apperror.PublicMessage(err))

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(StoreError(fmt.Errorf("x: %w", store.ErrDuplicate), "Club")))
	assert.Equal(t, apperror.KindTimeout, apperror.KindOf(StoreError(context.DeadlineExceeded, "Club")))
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(StoreError(errors.New("boom"), "Club")))

	typed := apperror.Forbidden("nope")
	assert.Same(t, typed, StoreError(typed, "Club"))
}

func TestCallerRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetCaller(c)
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))

	want := CallerIdentity{UserID: uuid.New(), PlayerID: uuid.New(), Role: models.RoleOrganizer}
	SetCaller(c, want)
	got, err := GetCaller(c)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.CanOrganize())
	assert.False(t, got.IsAdmin())
	assert.True(t, got.HasPlayer())
}

func TestParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&limit=500", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	_, err := UUIDParam(c, "id")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	got, err := UUIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	assert.Equal(t, store.Page{Page: 3, Limit: store.MaxPageSize}, PageQuery(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=abc", nil)
	assert.Equal(t, store.Page{Page: 1, Limit: store.DefaultPageSize}, PageQuery(c))
}
