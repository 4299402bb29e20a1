package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", domain.ErrUserNotFound, http.StatusUnauthorized},
		{"chain not found", domain.ErrChainNotFound, http.StatusNotFound},
		{"hotel not found", domain.ErrHotelNotFound, http.StatusNotFound},
		{"room not found", domain.ErrRoomNotFound, http.StatusNotFound},
		{"reservation not found", domain.ErrReservationNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"chain exists", domain.ErrChainExists, http.StatusConflict},
		{"duplicate room name", domain.ErrDuplicateRoomName, http.StatusConflict},
		{"room unavailable", domain.ErrRoomUnavailable, http.StatusConflict},
		{"not reserved", domain.ErrNotReserved, http.StatusBadRequest},
		{"invalid rating", domain.ErrInvalidRating, http.StatusBadRequest},
		{"invalid room type", domain.ErrInvalidRoomType, http.StatusBadRequest},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["message"] == "" {
				t.Fatalf("message envelope missing: %s", rec.Body.String())
			}
		})
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(echo.NewHTTPError(http.StatusTeapot, "short and stout"), c)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "short and stout" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(errors.New("disk exploded"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp["message"])
	}
}
