package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<reason>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, "user not found"
	case errors.Is(err, domain.ErrChainNotFound):
		return http.StatusNotFound, "hotel chain not found"
	case errors.Is(err, domain.ErrHotelNotFound):
		return http.StatusNotFound, "hotel not found"
	case errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound, "room not found"
	case errors.Is(err, domain.ErrReservationNotFound):
		return http.StatusNotFound, "reservation not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "username already taken"
	case errors.Is(err, domain.ErrChainExists):
		return http.StatusConflict, "admin already owns a hotel chain"
	case errors.Is(err, domain.ErrDuplicateRoomName):
		return http.StatusConflict, "a room with this name already exists in the hotel"
	case errors.Is(err, domain.ErrRoomUnavailable):
		return http.StatusConflict, "room is no longer available"
	case errors.Is(err, domain.ErrNotReserved):
		return http.StatusBadRequest, "no reservation found for this room"
	case errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest, "rating must be between 1 and 5"
	case errors.Is(err, domain.ErrInvalidRoomType):
		return http.StatusBadRequest, "invalid room type"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
