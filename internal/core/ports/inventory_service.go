package ports

import (
	"context"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
)

// RoomInput describes a room to create under a hotel.
type RoomInput struct {
	Name      string
	Type      string
	Available bool
	Photos    []string
}

// HotelInput describes a hotel (and its rooms) to create under a chain.
type HotelInput struct {
	Name    string
	City    string
	Country string
	Photos  []string
	Rooms   []RoomInput
}

// CreateChainInput carries the chain name and its initial hotels.
type CreateChainInput struct {
	Name   string
	Hotels []HotelInput
}

// UpdateHotelInput carries a partial hotel update: empty fields retain the
// previous values.
type UpdateHotelInput struct {
	Name    string
	City    string
	Country string
	Photos  []string
}

// UpdateRoomInput carries a partial room update. Available is a pointer so
// an absent field retains the stored flag.
type UpdateRoomInput struct {
	Name      string
	Type      string
	Available *bool
	Photos    []string
}

// AddHotelsResult reports hotels created and names skipped as duplicates.
type AddHotelsResult struct {
	Added   []domain.Hotel
	Skipped []string
}

// HotelRatingsView is the aggregate projection joining a hotel with its
// rooms' flattened reviews and the occurrence-weighted average rating.
type HotelRatingsView struct {
	Name          string   `json:"name"`
	ChainID       string   `json:"chain,omitempty"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	RoomCount     int      `json:"roomCount"`
	Reviews       []string `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
}

// RoomDetailView is the room projection surfacing the raw rating-count map
// and review sequence together with the parent hotel's fields.
type RoomDetailView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Available bool           `json:"available"`
	HotelName string         `json:"hotel"`
	City      string         `json:"city"`
	Country   string         `json:"country"`
	Ratings   map[string]int `json:"ratings"`
	Reviews   []string       `json:"reviews"`
}

// InventoryService defines chain/hotel/room management and the public
// catalog read models.
type InventoryService interface {
	CreateChain(ctx context.Context, adminID string, input CreateChainInput) (*domain.Chain, []domain.Hotel, error)
	AddHotelsToChain(ctx context.Context, adminID string, hotels []HotelInput) (*AddHotelsResult, error)
	UpdateHotel(ctx context.Context, adminID, hotelID string, input UpdateHotelInput) (*domain.Hotel, error)
	DeleteHotel(ctx context.Context, adminID, hotelID string) error
	MyHotels(ctx context.Context, adminID string) ([]domain.HotelWithRooms, error)

	AddRoom(ctx context.Context, adminID, hotelID string, input RoomInput) (*domain.Room, error)
	UpdateRoom(ctx context.Context, adminID, hotelID, roomID string, input UpdateRoomInput) (*domain.Room, error)
	DeleteRoom(ctx context.Context, adminID, hotelID, roomID string) error

	RoomsOfHotel(ctx context.Context, hotelID string) (*domain.Hotel, []domain.Room, error)
	HotelsWithRoomCount(ctx context.Context) ([]domain.HotelRoomCount, error)
	HotelsWithRatings(ctx context.Context) ([]HotelRatingsView, error)
	RoomsOfHotelWithRatings(ctx context.Context, hotelID string) (*domain.Hotel, []RoomDetailView, error)
	RoomWithRatings(ctx context.Context, roomID string) (*RoomDetailView, error)
	Search(ctx context.Context, criteria domain.HotelSearch) ([]domain.Hotel, error)
}
