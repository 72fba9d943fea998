package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/internal/middleware"
	"github.com/DhavalSuthar-24/pitchup/pkg/responses"
	"github.com/DhavalSuthar-24/pitchup/pkg/validator"
)

type AuthController struct {
	service *Service
}

func NewAuthController(service *Service) *AuthController {
	return &AuthController{service: service}
}

// @Summary      Register a new user
// @Description  Create a user account and its player profile, then open a session.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body      RegisterRequest  true  "Registration details"
// @Success      201   {object}  responses.Envelope{data=Session}
// @Failure      400   {object}  responses.Envelope "Validation error"
// @Failure      409   {object}  responses.Envelope "Email or nickname already in use"
// @Failure      500   {object}  responses.Envelope
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidation(c, validator.ParseError(err))
		return
	}

	session, err := ac.service.Register(c.Request.Context(), RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
		Position: req.PositionPreference,
	})
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", session)
}

// @Summary      Log in
// @Description  Exchange email and password for a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Login credentials"
// @Success      200          {object}  responses.Envelope{data=Session}
// @Failure      400          {object}  responses.Envelope "Validation error"
// @Failure      401          {object}  responses.Envelope "Invalid email or password"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidation(c, validator.ParseError(err))
		return
	}

	session, err := ac.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Login successful", session)
}

// @Summary      Log out
// @Description  Acknowledge a logout. Tokens are stateless and remain valid until expiry.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	raw, _ := middleware.BearerToken(c.GetHeader("Authorization"))
	ac.service.Logout(c.Request.Context(), raw)
	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// @Summary      Current user
// @Description  Return the authenticated user and their player profile.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  responses.Envelope{data=Profile}
// @Failure      401  {object}  responses.Envelope
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	caller, err := common.GetCaller(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	profile, err := ac.service.Me(c.Request.Context(), caller)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", profile)
}
