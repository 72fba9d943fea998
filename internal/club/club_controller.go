package club

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/pkg/responses"
	"github.com/DhavalSuthar-24/pitchup/pkg/validator"
)

// ClubController handles club and membership requests
type ClubController struct {
	service *Service
}

// NewClubController creates a new club controller
func NewClubController(service *Service) *ClubController {
	return &ClubController{service: service}
}

// CreateClub godoc
// @Summary Create a club
// @Description Admin only. The creator becomes the club manager.
// @Tags clubs
// @Accept json
// @Produce json
// @Param club body CreateClubInput true "Club"
// @Success 201 {object} responses.Envelope{data=models.Club}
// @Failure 400 {object} responses.Envelope "Validation error"
// @Failure 403 {object} responses.Envelope "Admins only"
// @Failure 409 {object} responses.Envelope "Club name already taken"
// @Router /clubs [post]
// @Security BearerAuth
func (cc *ClubController) CreateClub(c *gin.Context) {
	caller, err := common.GetCaller(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	var input CreateClubInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidation(c, validator.ParseError(err))
		return
	}

	club, err := cc.service.CreateClub(c.Request.Context(), caller, input)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Club created successfully", club)
}

// GetAllClubs godoc
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Success 200 {object} responses.Envelope{data=[]models.Club}
// @Router /clubs [get]
// @Security BearerAuth
func (cc *ClubController) GetAllClubs(c *gin.Context) {
	page := common.PageQuery(c)
	clubs, total, err := cc.service.ListClubs(c.Request.Context(), page)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, "Clubs retrieved successfully", clubs, total, page.Page, page.Limit)
}

// GetClubByID godoc
// @Summary Get a club with its members
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} responses.Envelope{data=models.Club}
// @Failure 404 {object} responses.Envelope "Club not found"
// @Router /clubs/{id} [get]
// @Security BearerAuth
func (cc *ClubController) GetClubByID(c *gin.Context) {
	id, err := common.UUIDParam(c, "id")
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	club, err := cc.service.GetClub(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club retrieved successfully", club)
}

// GetClubMembers godoc
// @Summary List club members
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} responses.Envelope{data=[]models.ClubPlayer}
// @Failure 404 {object} responses.Envelope "Club not found"
// @Router /clubs/{id}/members [get]
// @Security BearerAuth
func (cc *ClubController) GetClubMembers(c *gin.Context) {
	id, err := common.UUIDParam(c, "id")
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	members, err := cc.service.Members(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club members retrieved successfully", members)
}

// GetMyClubs godoc
// @Summary Clubs the caller belongs to
// @Tags clubs
// @Produce json
// @Success 200 {object} responses.Envelope{data=[]models.Club}
// @Router /clubs/my-clubs [get]
// @Security BearerAuth
func (cc *ClubController) GetMyClubs(c *gin.Context) {
	caller, err := common.GetCaller(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	clubs, err := cc.service.MyClubs(c.Request.Context(), caller)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Clubs retrieved successfully", clubs)
}

// GetMyInvitations godoc
// @Summary Pending invitations addressed to the caller
// @Tags clubs
// @Produce json
// @Success 200 {object} responses.Envelope{data=[]models.ClubInvitation}
// @Router /clubs/invitations [get]
// @Security BearerAuth
func (cc *ClubController) GetMyInvitations(c *gin.Context) {
	caller, err := common.GetCaller(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	invs, err := cc.service.MyInvitations(c.Request.Context(), caller)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Invitations retrieved successfully", invs)
}

// InvitePlayer godoc
// @Summary Invite a player to a club
// @Description Club managers, captains and admins only.
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID"
// @Param invitation body InvitePlayerInput true "Player to invite"
// @Success 201 {object} responses.Envelope{data=models.ClubInvitation}
// @Failure 403 {object} responses.Envelope "Not a manager or captain"
// @Failure 404 {object} responses.Envelope "Club or player not found"
// @Failure 409 {object} responses.Envelope "Already a member or already invited"
// @Router /clubs/{id}/invite [post]
// @Security BearerAuth
func (cc *ClubController) InvitePlayer(c *gin.Context) {
	caller, err := common.GetCaller(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	clubID, err := common.UUIDParam(c, "id")
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	var input InvitePlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidation(c, validator.ParseError(err))
		return
	}

	inv, err := cc.service.InvitePlayer(c.Request.Context(), clubID, caller, input.PlayerID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Invitation sent successfully", inv)
}

// JoinClub godoc
// @Summary Join a club through a pending invitation
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} responses.Envelope{data=models.ClubPlayer}
// @Failure 404 {object} responses.Envelope "No pending invitation"
// @Router /clubs/{id}/join [post]
// @Security BearerAuth
func (cc *ClubController) JoinClub(c *gin.Context) {
	caller, err := common.GetCaller(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	clubID, err := common.UUIDParam(c, "id")
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	member, err := cc.service.JoinClub(c.Request.Context(), clubID, caller)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Joined club successfully", member)
}

// RespondToInvitation godoc
// @Summary Accept or reject an invitation
// @Tags clubs
// @Produce json
// @Param invitationId path string true "Invitation ID"
// @Success 200 {object} responses.Envelope
// @Failure 404 {object} responses.Envelope "No pending invitation for the caller"
// @Router /clubs/invitations/{invitationId}/accept [post]
// @Router /clubs/invitations/{invitationId}/reject [post]
// @Security BearerAuth
func (cc *ClubController) RespondToInvitation(accept bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := common.GetCaller(c)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}
		invitationID, err := common.UUIDParam(c, "invitationId")
		if err != nil {
			responses.SendAppError(c, err)
			return
		}

		if accept {
			member, err := cc.service.AcceptInvitation(c.Request.Context(), invitationID, caller)
			if err != nil {
				responses.SendAppError(c, err)
				return
			}
			responses.SendSuccess(c, http.StatusOK, "Invitation accepted", member)
			return
		}
		inv, err := cc.service.RejectInvitation(c.Request.Context(), invitationID, caller)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}
		responses.SendSuccess(c, http.StatusOK, "Invitation rejected", inv)
	}
}
