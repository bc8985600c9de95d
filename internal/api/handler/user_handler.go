package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authmgr/auth-service/internal/api/metrics"
	"github.com/authmgr/auth-service/internal/core/domain"
	"github.com/authmgr/auth-service/internal/core/ports"
)

// UserHandler exposes the authenticated profile surface. The subject comes
// from the Auth middleware and is re-resolved against the store on every
// call, so a deleted account gets 401 even with an unexpired token.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the caller's own profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetSelf(c.Request().Context(), subject)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// UpdateMe applies a profile change and returns the updated profile.
//
// With PATCH, absent fields are left untouched. With PUT the request is a
// full replacement of the mutable fields, so absent ones are cleared.
// Username and password cannot change through this endpoint.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/users/me [patch]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	update := domain.ProfileUpdate{FirstName: req.FirstName, LastName: req.LastName}
	if c.Request().Method == http.MethodPut {
		empty := ""
		if update.FirstName == nil {
			update.FirstName = &empty
		}
		if update.LastName == nil {
			update.LastName = &empty
		}
	}

	user, err := h.userService.UpdateSelf(c.Request().Context(), subject, update)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// DeleteMe removes the caller's account.
//
// @Summary      Delete own account
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/me [delete]
func (h *UserHandler) DeleteMe(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteSelf(c.Request().Context(), subject); err != nil {
		return err
	}

	metrics.ProfileDeletesTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Protected is a probe confirming that bearer authentication works.
//
// @Summary      Authenticated probe
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  probeResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/protected [get]
func (h *UserHandler) Protected(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	// Existence is checked against the live store, not the token alone.
	if _, err := h.userService.GetSelf(c.Request().Context(), subject); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, probeResponse{OK: true})
}

func toProfileResponse(user *domain.User) profileResponse {
	return profileResponse{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
