package rating

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/pkg/responses"
	"github.com/DhavalSuthar-24/pitchup/pkg/validator"
)

type RatingController struct {
	service *Service
}

func NewRatingController(service *Service) *RatingController {
	return &RatingController{service: service}
}

// @Summary      Rate a player
// @Description  Rate a teammate or opponent from a completed match on a 1 to 10 scale.
// @Tags         Ratings
// @Accept       json
// @Produce      json
// @Param        rating  body      CreateRatingRequest  true  "Rating"
// @Success      201     {object}  responses.Envelope{data=models.PlayerRating}
// @Failure      400     {object}  responses.Envelope "Out of range, self rating, match not completed or not a participant"
// @Failure      404     {object}  responses.Envelope "Match not found"
// @Failure      409     {object}  responses.Envelope "Already rated"
// @Router       /ratings [post]
// @Security     BearerAuth
func (rc *RatingController) CreateRating(c *gin.Context) {
	caller, err := common.GetCaller(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	var req CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidation(c, validator.ParseError(err))
		return
	}

	r, err := rc.service.CreateRating(c.Request.Context(), caller, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Rating submitted successfully", r)
}

// @Summary      Ratings received by a player
// @Tags         Ratings
// @Produce      json
// @Param        id   path      string  true  "Player ID"
// @Success      200  {object}  responses.Envelope{data=[]models.PlayerRating}
// @Router       /ratings/player/{id} [get]
// @Security     BearerAuth
func (rc *RatingController) GetPlayerRatings(c *gin.Context) {
	id, err := common.UUIDParam(c, "id")
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	ratings, err := rc.service.PlayerRatings(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Ratings retrieved successfully", ratings)
}

// @Summary      Ratings given in a match
// @Tags         Ratings
// @Produce      json
// @Param        id   path      string  true  "Match ID"
// @Success      200  {object}  responses.Envelope{data=[]models.PlayerRating}
// @Router       /ratings/match/{id} [get]
// @Security     BearerAuth
func (rc *RatingController) GetMatchRatings(c *gin.Context) {
	id, err := common.UUIDParam(c, "id")
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	ratings, err := rc.service.MatchRatings(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Ratings retrieved successfully", ratings)
}
