package match

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
	"github.com/DhavalSuthar-24/pitchup/pkg/responses"
	"github.com/DhavalSuthar-24/pitchup/pkg/validator"
)

type MatchController struct {
	service *Service
}

func NewMatchController(service *Service) *MatchController {
	return &MatchController{service: service}
}

// CreateMatch schedules a new match
// @Summary      Create a match
// @Description  Organizers and admins only. Supplying both club ids builds the roster from the clubs' members.
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Param        match  body      CreateMatchRequest  true  "Match details"
// @Success      201    {object}  responses.Envelope{data=models.Match}
// @Failure      400    {object}  responses.Envelope "Validation error or club rosters over capacity"
// @Failure      403    {object}  responses.Envelope
// @Router       /matches [post]
// @Security     BearerAuth
func (mc *MatchController) CreateMatch(c *gin.Context) {
	caller, err := common.GetCaller(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidation(c, validator.ParseError(err))
		return
	}

	match, err := mc.service.CreateMatch(c.Request.Context(), caller, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", match)
}

// GetMatches lists matches, soonest first
// @Summary      List matches
// @Tags         Matches
// @Produce      json
// @Param        page    query  int     false  "Page number (default: 1)"
// @Param        limit   query  int     false  "Items per page (default: 20, max: 100)"
// @Param        status  query  string  false  "upcoming, in_progress, completed or cancelled"
// @Success      200     {object}  responses.Envelope{data=[]models.Match}
// @Router       /matches [get]
// @Security     BearerAuth
func (mc *MatchController) GetMatches(c *gin.Context) {
	page := common.PageQuery(c)
	matches, total, err := mc.service.ListMatches(c.Request.Context(), store.MatchFilter{
		Page:   page,
		Status: models.MatchStatus(c.Query("status")),
	})
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, "Matches retrieved successfully", matches, total, page.Page, page.Limit)
}

// GetMatchByID retrieves a specific match by ID
// @Summary      Get a match with its roster and result
// @Tags         Matches
// @Produce      json
// @Param        id   path      string  true  "Match ID"
// @Success      200  {object}  responses.Envelope{data=models.Match}
// @Failure      404  {object}  responses.Envelope
// @Router       /matches/{id} [get]
// @Security     BearerAuth
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, err := common.UUIDParam(c, "id")
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	match, err := mc.service.GetMatch(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", match)
}

// JoinMatch adds the caller's player to the roster
// @Summary      Join a match
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Param        id    path      string            true   "Match ID"
// @Param        join  body      JoinMatchRequest  false  "Optional team and player"
// @Success      201   {object}  responses.Envelope{data=models.MatchPlayer}
// @Failure      400   {object}  responses.Envelope "Match is full"
// @Failure      403   {object}  responses.Envelope "Not the caller's player"
// @Failure      404   {object}  responses.Envelope
// @Failure      409   {object}  responses.Envelope "Already joined or match closed"
// @Router       /matches/{id}/join [post]
// @Security     BearerAuth
func (mc *MatchController) JoinMatch(c *gin.Context) {
	caller, err := common.GetCaller(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	id, err := common.UUIDParam(c, "id")
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	var req JoinMatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.SendValidation(c, validator.ParseError(err))
			return
		}
	}

	mp, err := mc.service.JoinMatch(c.Request.Context(), id, caller, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Joined match successfully", mp)
}

// BalanceTeams splits the roster into two balanced sides
// @Summary      Balance teams
// @Description  Organizer or admin only. Sorts by overall rating and deals players alternately to A and B.
// @Tags         Matches
// @Produce      json
// @Param        id   path      string  true  "Match ID"
// @Success      200  {object}  responses.Envelope{data=TeamSplit}
// @Failure      400  {object}  responses.Envelope "Empty roster"
// @Failure      403  {object}  responses.Envelope
// @Router       /matches/{id}/balance-teams [post]
// @Security     BearerAuth
func (mc *MatchController) BalanceTeams(c *gin.Context) {
	caller, err := common.GetCaller(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	id, err := common.UUIDParam(c, "id")
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	split, err := mc.service.BalanceTeams(c.Request.Context(), id, caller)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Teams balanced successfully", split)
}

// UpdateMatchStatus starts or cancels an upcoming match
// @Summary      Change match status
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Match ID"
// @Param        status  body      UpdateStatusRequest  true  "Target status"
// @Success      200     {object}  responses.Envelope{data=models.Match}
// @Failure      409     {object}  responses.Envelope "Transition not allowed"
// @Router       /matches/{id}/status [put]
// @Security     BearerAuth
func (mc *MatchController) UpdateMatchStatus(c *gin.Context) {
	caller, err := common.GetCaller(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	id, err := common.UUIDParam(c, "id")
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidation(c, validator.ParseError(err))
		return
	}

	match, err := mc.service.UpdateStatus(c.Request.Context(), id, caller, req.Status)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match status updated successfully", match)
}

// SubmitMatchResult records the final score
// @Summary      Submit a match result
// @Description  Organizer or admin only, once per match. Completes the match and updates player statistics.
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Param        result  body      SubmitResultRequest  true  "Final score"
// @Success      201     {object}  responses.Envelope{data=models.Match}
// @Failure      403     {object}  responses.Envelope
// @Failure      409     {object}  responses.Envelope "Result already submitted"
// @Router       /matches/results [post]
// @Security     BearerAuth
func (mc *MatchController) SubmitMatchResult(c *gin.Context) {
	caller, err := common.GetCaller(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	var req SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidation(c, validator.ParseError(err))
		return
	}

	match, err := mc.service.SubmitMatchResult(c.Request.Context(), caller, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match result submitted successfully", match)
}
