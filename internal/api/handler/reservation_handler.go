package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/api/metrics"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/ports"
)

// ReservationHandler handles HTTP requests for reserving rooms and rating
// completed stays.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// Reserve handles POST /reserve/:roomId.
// Reserving flips the room's availability; a room already taken yields 409.
//
// @Summary      Reserve a room
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        roomId  path      string          true  "Room id"
// @Param        body    body      reserveRequest  true  "Stay dates"
// @Success      201     {object}  reserveResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      409     {object}  map[string]string
// @Router       /reserve/{roomId} [post]
func (h *ReservationHandler) Reserve(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req reserveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reservation, err := h.service.Reserve(c.Request().Context(), ports.ReserveInput{
		UserID:    userID,
		RoomID:    c.Param("roomId"),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		if err == domain.ErrRoomUnavailable {
			metrics.ReservationConflictsTotal.Inc()
		}
		return err
	}

	metrics.ReservationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, reserveResponse{
		Reservation: reservation,
		Message:     "room reserved",
	})
}

// RateRoom handles POST /myspace/rate-review/:roomId.
// The caller must hold a reservation on the room.
//
// @Summary      Rate and review a reserved room
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        roomId  path      string             true  "Room id"
// @Param        body    body      rateReviewRequest  true  "Rating and optional review"
// @Success      200     {object}  messageResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /myspace/rate-review/{roomId} [post]
func (h *ReservationHandler) RateRoom(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req rateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	applied, err := h.service.RateRoom(c.Request().Context(), userID, c.Param("roomId"), req.Rating, req.Review)
	if err != nil {
		return err
	}

	if applied {
		metrics.RatingsSubmittedTotal.WithLabelValues(strconv.Itoa(req.Rating)).Inc()
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "rating recorded"})
}

// RateReservation handles POST /myspace/ratereview/:reservationId.
// Same as RateRoom but addressed by reservation id.
//
// @Summary      Rate and review through a reservation id
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        reservationId  path      string             true  "Reservation id"
// @Param        body           body      rateReviewRequest  true  "Rating and optional review"
// @Success      200            {object}  messageResponse
// @Failure      400            {object}  map[string]string
// @Failure      404            {object}  map[string]string
// @Router       /myspace/ratereview/{reservationId} [post]
func (h *ReservationHandler) RateReservation(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req rateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	applied, err := h.service.RateReservation(c.Request().Context(), userID, c.Param("reservationId"), req.Rating, req.Review)
	if err != nil {
		return err
	}

	if applied {
		metrics.RatingsSubmittedTotal.WithLabelValues(strconv.Itoa(req.Rating)).Inc()
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "rating recorded"})
}
