package handlers

import (
	"net/http"

	request "car_maintenance/internal/adapter/http/dto/request"
	response "car_maintenance/internal/adapter/http/dto/response"
	"car_maintenance/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles signup, login and the profile edits tied to the session.
type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

// Signup godoc
// @Summary  Create a customer account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.SignupRequest true "Account"
// @Success  201 {object} response.UserResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /auth/signup [post]
func (h *AccountHandler) Signup(c *gin.Context) {
	var payload request.SignupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	user, err := h.usecase.Signup(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

// Login godoc
// @Summary  Log in and open the device session
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "Credentials"
// @Success  200 {object} response.SessionResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// Logout godoc
// @Summary   Close the device session
// @Tags      auth
// @Security  Bearer
// @Success   204
// @Router    /auth/logout [post]
func (h *AccountHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangePassword godoc
// @Summary   Change the account password
// @Tags      auth
// @Security  Bearer
// @Accept    json
// @Param     body body request.ChangePasswordRequest true "Passwords"
// @Success   204
// @Failure   400 {object} pkg.HTTPError
// @Failure   401 {object} pkg.HTTPError
// @Router    /auth/password [patch]
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var payload request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	if err := h.usecase.ChangePassword(c.Request.Context(), payload.CurrentPassword, payload.NewPassword); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateProfile godoc
// @Summary   Update name and phone of the logged-in user
// @Tags      auth
// @Security  Bearer
// @Accept    json
// @Produce   json
// @Param     body body request.UpdateProfileRequest true "Profile"
// @Success   200 {object} response.IdentityResponse
// @Failure   400 {object} pkg.HTTPError
// @Router    /profile [patch]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var payload request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	identity, err := h.usecase.UpdateProfile(c.Request.Context(), payload.Name, payload.Phone)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromIdentity(identity))
}
