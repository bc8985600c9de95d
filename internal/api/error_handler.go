package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/authmgr/auth-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for non-field errors.
type errorResponse struct {
	Error string `json:"error"`
}

// fieldErrorsResponse maps each offending field to its messages, so one 400
// reports every problem at once.
type fieldErrorsResponse struct {
	Errors map[string][]string `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders ValidationError as a field-addressable 400.
//   - Maps known domain errors to deterministic HTTP status codes with
//     deliberately generic messages (credential and token failures never say
//     which part of the input was wrong).
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, fieldErrorsResponse{Errors: ve.Fields})
			return
		}

		if errors.Is(err, domain.ErrUsernameTaken) {
			_ = c.JSON(http.StatusBadRequest, fieldErrorsResponse{Errors: map[string][]string{
				"username": {"a user with that username already exists"},
			}})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Messages stay generic:
	// nothing reveals whether the username or the password was wrong, nor why
	// a token failed to decode.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "invalid credentials"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusBadRequest, "invalid token"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "too many login attempts"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
