package handler

import (
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/ports"
)

// --- Request → Service input ---

func toRoomInput(r roomRequest) ports.RoomInput {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return ports.RoomInput{
		Name:      r.Name,
		Type:      r.Type,
		Available: available,
		Photos:    r.Photos,
	}
}

func toHotelInputs(hotels []hotelRequest) []ports.HotelInput {
	out := make([]ports.HotelInput, 0, len(hotels))
	for _, h := range hotels {
		rooms := make([]ports.RoomInput, 0, len(h.Rooms))
		for _, r := range h.Rooms {
			rooms = append(rooms, toRoomInput(r))
		}
		out = append(out, ports.HotelInput{
			Name:    h.Name,
			City:    h.City,
			Country: h.Country,
			Photos:  h.Photos,
			Rooms:   rooms,
		})
	}
	return out
}

func toUpdateHotelInput(req updateHotelRequest) ports.UpdateHotelInput {
	return ports.UpdateHotelInput{
		Name:    req.Name,
		City:    req.City,
		Country: req.Country,
		Photos:  req.Photos,
	}
}

func toUpdateRoomInput(req updateRoomRequest) ports.UpdateRoomInput {
	return ports.UpdateRoomInput{
		Name:      req.Name,
		Type:      req.Type,
		Available: req.Available,
		Photos:    req.Photos,
	}
}
