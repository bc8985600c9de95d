package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authmgr/auth-service/internal/api/metrics"
	"github.com/authmgr/auth-service/internal/core/domain"
	"github.com/authmgr/auth-service/internal/core/ports"
)

// AuthHandler exposes the unauthenticated surface: register, login and token
// verify/refresh. All four answer 201 with a token envelope on success,
// matching the contract the service has always had.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and returns a token bound to it.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  fieldErrorsResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("validation_error").Inc()
		return err
	}

	token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, tokenResponse{Token: token})
}

func registerResult(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return "username_taken"
	case errors.As(err, &ve):
		return "validation_error"
	default:
		return "error"
	}
}

// Login authenticates username/password and returns a fresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password, c.RealIP())
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, tokenResponse{Token: token})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrRateLimited):
		return "rate_limited"
	default:
		return "error"
	}
}

// Verify checks a token and returns a fresh one for the same subject.
//
// @Summary      Verify a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Token to verify"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/verify [post]
func (h *AuthHandler) Verify(c echo.Context) error {
	return h.renew(c, "verify", h.authService.VerifyToken)
}

// Refresh renews a token. The contract is the same as Verify.
//
// @Summary      Refresh a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Token to refresh"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	return h.renew(c, "refresh", h.authService.RefreshToken)
}

func (h *AuthHandler) renew(c echo.Context, operation string, fn func(ctx context.Context, raw string) (string, error)) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := fn(c.Request().Context(), req.Token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			metrics.TokenRenewalsTotal.WithLabelValues(operation, "invalid_token").Inc()
		}
		return err
	}

	metrics.TokenRenewalsTotal.WithLabelValues(operation, "success").Inc()
	return c.JSON(http.StatusCreated, tokenResponse{Token: token})
}
