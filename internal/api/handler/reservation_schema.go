package handler

import (
	"time"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
)

// --- Request types ---

type reserveRequest struct {
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate"   validate:"required,gtfield=StartDate"`
}

type rateReviewRequest struct {
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
	Review string `json:"review"`
}

// --- Response types ---

type reserveResponse struct {
	Reservation *domain.Reservation `json:"reservation"`
	Message     string              `json:"message"`
}
