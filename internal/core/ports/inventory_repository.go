package ports

import (
	"context"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
)

// InventoryRepository defines persistence for chains, hotels, and rooms.
// Ownership-scoped lookups return domain.ErrHotelNotFound /
// domain.ErrRoomNotFound when the document is absent or not owned.
type InventoryRepository interface {
	// Chains
	CreateChain(ctx context.Context, chain *domain.Chain) (*domain.Chain, error)
	ChainByAdmin(ctx context.Context, adminID string) (*domain.Chain, error)
	AddHotelToChain(ctx context.Context, chainID, hotelID string) error
	RemoveHotelFromChain(ctx context.Context, chainID, hotelID string) error

	// Hotels
	CreateHotel(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
	HotelByID(ctx context.Context, id string) (*domain.Hotel, error)
	HotelOwnedBy(ctx context.Context, id, adminID string) (*domain.Hotel, error)
	HotelNameInChain(ctx context.Context, chainID, name string) (bool, error)
	UpdateHotel(ctx context.Context, hotel *domain.Hotel) error
	DeleteHotel(ctx context.Context, id string) error
	HotelsByAdmin(ctx context.Context, adminID string) ([]domain.Hotel, error)
	Search(ctx context.Context, criteria domain.HotelSearch) ([]domain.Hotel, error)
	HotelsWithRoomCount(ctx context.Context) ([]domain.HotelRoomCount, error)
	// HotelsWithRooms joins every hotel with its populated rooms, for the
	// ratings aggregate read model.
	HotelsWithRooms(ctx context.Context) ([]domain.HotelWithRooms, error)

	// Rooms
	CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error)
	RoomByID(ctx context.Context, id string) (*domain.Room, error)
	RoomInHotel(ctx context.Context, roomID, hotelID string) (*domain.Room, error)
	RoomNameTaken(ctx context.Context, hotelID, name, excludeRoomID string) (bool, error)
	UpdateRoom(ctx context.Context, room *domain.Room) error
	AddRoomToHotel(ctx context.Context, hotelID, roomID string) error
	RemoveRoomFromHotel(ctx context.Context, hotelID, roomID string) error
	DeleteRoom(ctx context.Context, id string) error
	DeleteRoomsOfHotel(ctx context.Context, hotelID string) (int64, error)
	RoomsOfHotel(ctx context.Context, hotelID string) ([]domain.Room, error)

	// ReserveRoom atomically flips the availability flag: the write matches
	// only documents still marked available, so two racing reservations
	// cannot both succeed. Returns domain.ErrRoomUnavailable when the flag
	// is already down and domain.ErrRoomNotFound when the room is absent.
	ReserveRoom(ctx context.Context, roomID string) error

	// AddRating atomically increments the rating-count map at the rating key
	// and appends the review to the room's review sequence.
	AddRating(ctx context.Context, roomID string, rating int, review string) error
}
