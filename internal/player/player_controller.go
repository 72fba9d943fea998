package player

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
	"github.com/DhavalSuthar-24/pitchup/pkg/responses"
	"github.com/DhavalSuthar-24/pitchup/pkg/validator"
)

// PlayerController handles player directory requests
type PlayerController struct {
	service *Service
}

func NewPlayerController(service *Service) *PlayerController {
	return &PlayerController{service: service}
}

// ListPlayers godoc
// @Summary List players
// @Description Paginated player directory ordered by overall rating
// @Tags players
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param search query string false "Case-insensitive nickname filter"
// @Success 200 {object} responses.Envelope{data=[]models.Player}
// @Router /players [get]
func (c *PlayerController) ListPlayers(ctx *gin.Context) {
	page := common.PageQuery(ctx)
	players, total, err := c.service.List(ctx.Request.Context(), store.PlayerFilter{
		Page:   page,
		Search: ctx.Query("search"),
	})
	if err != nil {
		responses.SendAppError(ctx, err)
		return
	}
	responses.SendPaginated(ctx, "Players retrieved successfully", players, total, page.Page, page.Limit)
}

// GetPlayer godoc
// @Summary Get player by ID
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} responses.Envelope{data=models.Player}
// @Failure 404 {object} responses.Envelope "Player not found"
// @Router /players/{id} [get]
func (c *PlayerController) GetPlayer(ctx *gin.Context) {
	id, err := common.UUIDParam(ctx, "id")
	if err != nil {
		responses.SendAppError(ctx, err)
		return
	}
	p, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		responses.SendAppError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Player retrieved successfully", p)
}

// GetPlayerByEmail godoc
// @Summary Get player by account email
// @Tags players
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} responses.Envelope{data=models.Player}
// @Failure 404 {object} responses.Envelope "Player not found"
// @Router /players/email/{email} [get]
func (c *PlayerController) GetPlayerByEmail(ctx *gin.Context) {
	p, err := c.service.GetByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		responses.SendAppError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Player retrieved successfully", p)
}

// CreatePlayer godoc
// @Summary Create the caller's player profile
// @Tags players
// @Accept json
// @Produce json
// @Param player body CreatePlayerInput true "Profile"
// @Success 201 {object} responses.Envelope{data=models.Player}
// @Failure 409 {object} responses.Envelope "Profile or nickname already exists"
// @Router /players [post]
// @Security BearerAuth
func (c *PlayerController) CreatePlayer(ctx *gin.Context) {
	caller, err := common.GetCaller(ctx)
	if err != nil {
		responses.SendAppError(ctx, err)
		return
	}
	var input CreatePlayerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.SendValidation(ctx, validator.ParseError(err))
		return
	}

	p, err := c.service.CreateForCaller(ctx.Request.Context(), caller, input)
	if err != nil {
		responses.SendAppError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusCreated, "Player created successfully", p)
}

// UpdatePlayer godoc
// @Summary Update the caller's player profile
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param player body UpdatePlayerInput true "Fields to change"
// @Success 200 {object} responses.Envelope{data=models.Player}
// @Failure 403 {object} responses.Envelope "Not the owner"
// @Failure 409 {object} responses.Envelope "Nickname already taken"
// @Router /players/{id} [put]
// @Security BearerAuth
func (c *PlayerController) UpdatePlayer(ctx *gin.Context) {
	caller, err := common.GetCaller(ctx)
	if err != nil {
		responses.SendAppError(ctx, err)
		return
	}
	id, err := common.UUIDParam(ctx, "id")
	if err != nil {
		responses.SendAppError(ctx, err)
		return
	}
	var input UpdatePlayerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.SendValidation(ctx, validator.ParseError(err))
		return
	}

	p, err := c.service.Update(ctx.Request.Context(), id, caller, input)
	if err != nil {
		responses.SendAppError(ctx, err)
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Player updated successfully", p)
}
