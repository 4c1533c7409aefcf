package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spotterhq/spotter-api/internal/core/domain"
)

// errorResponse is the canonical envelope for single-message errors.
type errorResponse struct {
	Error string `json:"error"`
}

// errorsResponse lists every violated rule for validation and save failures.
type errorsResponse struct {
	Errors []string `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as a complete error list.
//   - Maps known domain errors to deterministic HTTP status codes.
//   - Logs unexpected errors internally without leaking details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, errorsResponse{Errors: ve.Errors})
			return
		}
		if errors.Is(err, domain.ErrSaveChallenge) || errors.Is(err, domain.ErrSaveWorkout) {
			msg := domain.ErrSaveChallenge.Error()
			if errors.Is(err, domain.ErrSaveWorkout) {
				msg = domain.ErrSaveWorkout.Error()
			}
			log.Error().Err(err).Str("path", c.Path()).Msg("storage failure")
			_ = c.JSON(http.StatusInternalServerError, errorsResponse{Errors: []string{msg}})
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

	switch {
	// 400 — malformed or disallowed input.
	case errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrEmailDomainNotAllowed),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrMissingToken),
		errors.Is(err, domain.ErrSelfFriendRequest):
		return http.StatusBadRequest, err.Error()

	// 401 — authentication failures use a uniform message.
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, domain.ErrInvalidToken.Error()

	// 404 — lookup misses.
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrWorkoutNotFound),
		errors.Is(err, domain.ErrChallengeNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrFriendshipNotFound),
		errors.Is(err, domain.ErrInvitationNotFound),
		errors.Is(err, domain.ErrLikeNotFound),
		errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, err.Error()

	// 409 — conflicts with existing state.
	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrAlreadyFriends),
		errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrReciprocalPending),
		errors.Is(err, domain.ErrDuplicateInvitation),
		errors.Is(err, domain.ErrAlreadyLiked):
		return http.StatusConflict, err.Error()

	// 502 — the AI collaborator failed; degrade, don't crash.
	case errors.Is(err, domain.ErrSuggestionUnavailable):
		return http.StatusBadGateway, domain.ErrSuggestionUnavailable.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
