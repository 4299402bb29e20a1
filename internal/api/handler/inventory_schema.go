package handler

import (
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/ports"
)

// --- Request types ---

type roomRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=Suite Simple Double Deluxe"`
	// Available defaults to true when omitted.
	Available *bool    `json:"available"`
	Photos    []string `json:"photos"`
}

type hotelRequest struct {
	Name    string        `json:"name"    validate:"required"`
	City    string        `json:"city"    validate:"required"`
	Country string        `json:"country" validate:"required"`
	Photos  []string      `json:"photos"`
	Rooms   []roomRequest `json:"rooms"   validate:"dive"`
}

type createChainRequest struct {
	Name   string         `json:"name"   validate:"required"`
	Hotels []hotelRequest `json:"hotels" validate:"dive"`
}

type addHotelsRequest struct {
	Hotels []hotelRequest `json:"hotels" validate:"required,min=1,dive"`
}

// updateHotelRequest is a partial update: omitted fields keep their stored
// values.
type updateHotelRequest struct {
	Name    string   `json:"name"`
	City    string   `json:"city"`
	Country string   `json:"country"`
	Photos  []string `json:"photos"`
}

// updateRoomRequest is a partial update. Available is a pointer so a
// missing field is distinguishable from an explicit false.
type updateRoomRequest struct {
	Name      string   `json:"name"`
	Type      string   `json:"type" validate:"omitempty,oneof=Suite Simple Double Deluxe"`
	Available *bool    `json:"available"`
	Photos    []string `json:"photos"`
}

// --- Response types ---

type createChainResponse struct {
	Chain  *domain.Chain  `json:"chain"`
	Hotels []domain.Hotel `json:"hotels"`
}

type addHotelsResponse struct {
	Added   []domain.Hotel `json:"added"`
	Skipped []string       `json:"skipped"`
}

type hotelRoomsResponse struct {
	Hotel *domain.Hotel          `json:"hotel"`
	Rooms []ports.RoomDetailView `json:"rooms"`
}

type messageResponse struct {
	Message string `json:"message"`
}
