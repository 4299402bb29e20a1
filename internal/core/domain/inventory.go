package domain

import "errors"

// RoomType is the enumerated category of a room.
type RoomType string

const (
	RoomSuite  RoomType = "Suite"
	RoomSimple RoomType = "Simple"
	RoomDouble RoomType = "Double"
	RoomDeluxe RoomType = "Deluxe"
)

// Valid reports whether t is one of the known room types.
func (t RoomType) Valid() bool {
	switch t {
	case RoomSuite, RoomSimple, RoomDouble, RoomDeluxe:
		return true
	}
	return false
}

var ErrChainExists = errors.New("admin already has a hotel chain")
var ErrChainNotFound = errors.New("hotel chain not found")
var ErrHotelNotFound = errors.New("hotel not found")
var ErrRoomNotFound = errors.New("room not found")
var ErrDuplicateRoomName = errors.New("a room with the same name already exists in this hotel")
var ErrInvalidRoomType = errors.New("invalid room type")

// Chain is a named group of hotels owned by exactly one admin.
// The one-chain-per-admin rule is enforced at creation time by the service,
// not by a store-level constraint.
type Chain struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	AdminID  string   `json:"admin_id"`
	HotelIDs []string `json:"hotel_ids"`
}

type Hotel struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ChainID   string   `json:"chain_id,omitempty"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Photos    []string `json:"photos,omitempty"`
	CreatedBy string   `json:"created_by"`
	RoomIDs   []string `json:"room_ids"`
}

// Room belongs to exactly one hotel. Available flips to false on
// reservation and never back: there is no checkout or cancel flow.
// Ratings maps a rating value ("1".."5") to its submission count.
type Room struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      RoomType       `json:"type"`
	Available bool           `json:"available"`
	HotelID   string         `json:"hotel_id"`
	Photos    []string       `json:"photos,omitempty"`
	Ratings   map[string]int `json:"ratings"`
	Reviews   []string       `json:"reviews"`
}

// HotelWithRooms joins a hotel with its populated room documents.
type HotelWithRooms struct {
	Hotel Hotel  `json:"hotel"`
	Rooms []Room `json:"rooms"`
}

// HotelRoomCount is the public aggregate projection of a hotel.
type HotelRoomCount struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Country   string `json:"country"`
	RoomCount int    `json:"roomCount"`
}

// HotelSearch carries the AND-combined exact-match search criteria.
// RoomType matches hotels having at least one room of that type.
type HotelSearch struct {
	ChainID  string
	City     string
	Country  string
	RoomType string
	Name     string
}
