package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecofinds/marketplace/internal/core/ports"
)

// ProfileHandler serves and edits the current user's profile.
type ProfileHandler struct {
	sessionService ports.SessionService
	authService    ports.AuthService
}

func NewProfileHandler(sessionService ports.SessionService, authService ports.AuthService) *ProfileHandler {
	return &ProfileHandler{sessionService: sessionService, authService: authService}
}

// Me returns the current user, password included so the profile form can
// pre-fill its fields.
//
// @Summary      Get the current user
// @Tags         profile
// @Produce      json
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	user, err := h.sessionService.CurrentUser(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Password: user.Password,
	})
}

// Update edits the current user's profile in place.
//
// @Summary      Update the current user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/me [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), userID, ports.ProfileInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{User: toUserResponse(user)})
}
