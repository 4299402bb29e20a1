package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/ports"
)

// InventoryService implements chain/hotel/room management and the public
// catalog read models.
type InventoryService struct {
	repo   ports.InventoryRepository
	logger zerolog.Logger
}

func NewInventoryService(repo ports.InventoryRepository, logger zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, logger: logger}
}

// CreateChain creates the chain, then each hotel, then each hotel's rooms,
// wiring back-references as it goes. The sequence is not transactional: a
// failure midway leaves the earlier documents in place.
func (s *InventoryService) CreateChain(ctx context.Context, adminID string, input ports.CreateChainInput) (*domain.Chain, []domain.Hotel, error) {
	if _, err := s.repo.ChainByAdmin(ctx, adminID); err == nil {
		return nil, nil, domain.ErrChainExists
	} else if !errors.Is(err, domain.ErrChainNotFound) {
		return nil, nil, err
	}

	chain, err := s.repo.CreateChain(ctx, &domain.Chain{
		Name:    input.Name,
		AdminID: adminID,
	})
	if err != nil {
		return nil, nil, err
	}

	created := make([]domain.Hotel, 0, len(input.Hotels))
	for _, h := range input.Hotels {
		hotel, err := s.createHotelWithRooms(ctx, chain.ID, adminID, h)
		if err != nil {
			return nil, nil, err
		}
		created = append(created, *hotel)
	}

	s.logger.Info().
		Str("chain_id", chain.ID).
		Str("admin_id", adminID).
		Int("hotels", len(created)).
		Msg("hotel chain created")

	return chain, created, nil
}

// AddHotelsToChain adds hotels to the admin's chain, skipping (not failing)
// any hotel whose name already exists within the chain.
func (s *InventoryService) AddHotelsToChain(ctx context.Context, adminID string, hotels []ports.HotelInput) (*ports.AddHotelsResult, error) {
	chain, err := s.repo.ChainByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	result := &ports.AddHotelsResult{Added: []domain.Hotel{}, Skipped: []string{}}
	for _, h := range hotels {
		taken, err := s.repo.HotelNameInChain(ctx, chain.ID, h.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			result.Skipped = append(result.Skipped, h.Name)
			continue
		}

		hotel, err := s.createHotelWithRooms(ctx, chain.ID, adminID, h)
		if err != nil {
			return nil, err
		}
		result.Added = append(result.Added, *hotel)
	}

	s.logger.Info().
		Str("chain_id", chain.ID).
		Int("added", len(result.Added)).
		Int("skipped", len(result.Skipped)).
		Msg("hotels added to chain")

	return result, nil
}

func (s *InventoryService) createHotelWithRooms(ctx context.Context, chainID, adminID string, in ports.HotelInput) (*domain.Hotel, error) {
	hotel, err := s.repo.CreateHotel(ctx, &domain.Hotel{
		Name:      in.Name,
		ChainID:   chainID,
		City:      in.City,
		Country:   in.Country,
		Photos:    in.Photos,
		CreatedBy: adminID,
	})
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddHotelToChain(ctx, chainID, hotel.ID); err != nil {
		return nil, err
	}

	for _, r := range in.Rooms {
		room, err := s.addRoomToHotel(ctx, hotel.ID, r)
		if err != nil {
			return nil, err
		}
		hotel.RoomIDs = append(hotel.RoomIDs, room.ID)
	}
	return hotel, nil
}

func (s *InventoryService) addRoomToHotel(ctx context.Context, hotelID string, in ports.RoomInput) (*domain.Room, error) {
	roomType := domain.RoomType(in.Type)
	if !roomType.Valid() {
		return nil, domain.ErrInvalidRoomType
	}

	room, err := s.repo.CreateRoom(ctx, &domain.Room{
		Name:      in.Name,
		Type:      roomType,
		Available: in.Available,
		HotelID:   hotelID,
		Photos:    in.Photos,
		Ratings:   map[string]int{},
		Reviews:   []string{},
	})
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddRoomToHotel(ctx, hotelID, room.ID); err != nil {
		return nil, err
	}
	return room, nil
}

// UpdateHotel overwrites only supplied fields; empty fields retain the
// stored values.
func (s *InventoryService) UpdateHotel(ctx context.Context, adminID, hotelID string, input ports.UpdateHotelInput) (*domain.Hotel, error) {
	hotel, err := s.repo.HotelOwnedBy(ctx, hotelID, adminID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		hotel.Name = input.Name
	}
	if input.City != "" {
		hotel.City = input.City
	}
	if input.Country != "" {
		hotel.Country = input.Country
	}
	if input.Photos != nil {
		hotel.Photos = input.Photos
	}

	if err := s.repo.UpdateHotel(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// DeleteHotel cascades: all rooms under the hotel are removed before the
// hotel record itself, then the chain link is dropped.
func (s *InventoryService) DeleteHotel(ctx context.Context, adminID, hotelID string) error {
	hotel, err := s.repo.HotelOwnedBy(ctx, hotelID, adminID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteRoomsOfHotel(ctx, hotel.ID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteHotel(ctx, hotel.ID); err != nil {
		return err
	}
	if hotel.ChainID != "" {
		if err := s.repo.RemoveHotelFromChain(ctx, hotel.ChainID, hotel.ID); err != nil {
			s.logger.Warn().Err(err).Str("hotel_id", hotel.ID).Msg("failed to unlink hotel from chain")
		}
	}

	s.logger.Info().
		Str("hotel_id", hotel.ID).
		Int64("rooms_deleted", deleted).
		Msg("hotel deleted")

	return nil
}

func (s *InventoryService) MyHotels(ctx context.Context, adminID string) ([]domain.HotelWithRooms, error) {
	hotels, err := s.repo.HotelsByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.HotelWithRooms, 0, len(hotels))
	for _, h := range hotels {
		rooms, err := s.repo.RoomsOfHotel(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.HotelWithRooms{Hotel: h, Rooms: rooms})
	}
	return out, nil
}

func (s *InventoryService) AddRoom(ctx context.Context, adminID, hotelID string, input ports.RoomInput) (*domain.Room, error) {
	hotel, err := s.repo.HotelOwnedBy(ctx, hotelID, adminID)
	if err != nil {
		return nil, err
	}
	return s.addRoomToHotel(ctx, hotel.ID, input)
}

// UpdateRoom overwrites only supplied fields and rejects a new name that
// collides with another room of the same hotel.
func (s *InventoryService) UpdateRoom(ctx context.Context, adminID, hotelID, roomID string, input ports.UpdateRoomInput) (*domain.Room, error) {
	hotel, err := s.repo.HotelOwnedBy(ctx, hotelID, adminID)
	if err != nil {
		return nil, err
	}
	room, err := s.repo.RoomInHotel(ctx, roomID, hotel.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != room.Name {
		taken, err := s.repo.RoomNameTaken(ctx, hotel.ID, input.Name, room.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrDuplicateRoomName
		}
		room.Name = input.Name
	}
	if input.Type != "" {
		roomType := domain.RoomType(input.Type)
		if !roomType.Valid() {
			return nil, domain.ErrInvalidRoomType
		}
		room.Type = roomType
	}
	if input.Available != nil {
		room.Available = *input.Available
	}
	if input.Photos != nil {
		room.Photos = input.Photos
	}

	if err := s.repo.UpdateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *InventoryService) DeleteRoom(ctx context.Context, adminID, hotelID, roomID string) error {
	hotel, err := s.repo.HotelOwnedBy(ctx, hotelID, adminID)
	if err != nil {
		return err
	}
	room, err := s.repo.RoomInHotel(ctx, roomID, hotel.ID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteRoom(ctx, room.ID); err != nil {
		return err
	}
	return s.repo.RemoveRoomFromHotel(ctx, hotel.ID, room.ID)
}

func (s *InventoryService) RoomsOfHotel(ctx context.Context, hotelID string) (*domain.Hotel, []domain.Room, error) {
	hotel, err := s.repo.HotelByID(ctx, hotelID)
	if err != nil {
		return nil, nil, err
	}
	rooms, err := s.repo.RoomsOfHotel(ctx, hotel.ID)
	if err != nil {
		return nil, nil, err
	}
	return hotel, rooms, nil
}

func (s *InventoryService) HotelsWithRoomCount(ctx context.Context) ([]domain.HotelRoomCount, error) {
	return s.repo.HotelsWithRoomCount(ctx)
}

// HotelsWithRatings joins each hotel with its rooms, flattens the reviews,
// and computes the occurrence-weighted average over the rating-count maps.
func (s *InventoryService) HotelsWithRatings(ctx context.Context) ([]ports.HotelRatingsView, error) {
	joined, err := s.repo.HotelsWithRooms(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.HotelRatingsView, 0, len(joined))
	for _, hw := range joined {
		reviews := []string{}
		for _, r := range hw.Rooms {
			reviews = append(reviews, r.Reviews...)
		}
		views = append(views, ports.HotelRatingsView{
			Name:          hw.Hotel.Name,
			ChainID:       hw.Hotel.ChainID,
			City:          hw.Hotel.City,
			Country:       hw.Hotel.Country,
			RoomCount:     len(hw.Rooms),
			Reviews:       reviews,
			AverageRating: averageRating(hw.Rooms),
		})
	}
	return views, nil
}

func (s *InventoryService) RoomsOfHotelWithRatings(ctx context.Context, hotelID string) (*domain.Hotel, []ports.RoomDetailView, error) {
	hotel, rooms, err := s.RoomsOfHotel(ctx, hotelID)
	if err != nil {
		return nil, nil, err
	}

	views := make([]ports.RoomDetailView, 0, len(rooms))
	for _, r := range rooms {
		views = append(views, roomDetail(r, hotel))
	}
	return hotel, views, nil
}

func (s *InventoryService) RoomWithRatings(ctx context.Context, roomID string) (*ports.RoomDetailView, error) {
	room, err := s.repo.RoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	hotel, err := s.repo.HotelByID(ctx, room.HotelID)
	if err != nil {
		return nil, err
	}
	view := roomDetail(*room, hotel)
	return &view, nil
}

func (s *InventoryService) Search(ctx context.Context, criteria domain.HotelSearch) ([]domain.Hotel, error) {
	return s.repo.Search(ctx, criteria)
}

func roomDetail(room domain.Room, hotel *domain.Hotel) ports.RoomDetailView {
	ratings := room.Ratings
	if ratings == nil {
		ratings = map[string]int{}
	}
	reviews := room.Reviews
	if reviews == nil {
		reviews = []string{}
	}
	return ports.RoomDetailView{
		ID:        room.ID,
		Name:      room.Name,
		Type:      string(room.Type),
		Available: room.Available,
		HotelName: hotel.Name,
		City:      hotel.City,
		Country:   hotel.Country,
		Ratings:   ratings,
		Reviews:   reviews,
	}
}

// averageRating reduces the rooms' rating-count maps to a single mean:
// sum(value x count) / sum(count). A non-numeric key contributes 0 to the
// sum but its count still lands in the denominator. Zero submissions
// yields 0.
func averageRating(rooms []domain.Room) float64 {
	var total, count int
	for _, r := range rooms {
		for key, n := range r.Ratings {
			if n <= 0 {
				continue
			}
			value, err := strconv.Atoi(key)
			if err != nil {
				value = 0
			}
			total += value * n
			count += n
		}
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
