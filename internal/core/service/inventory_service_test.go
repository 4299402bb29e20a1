package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/ports"
)

// fakeInventoryRepo is an in-memory InventoryRepository for service tests.
type fakeInventoryRepo struct {
	seq    int
	chains map[string]*domain.Chain
	hotels map[string]*domain.Hotel
	rooms  map[string]*domain.Room
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{
		chains: map[string]*domain.Chain{},
		hotels: map[string]*domain.Hotel{},
		rooms:  map[string]*domain.Room{},
	}
}

func (f *fakeInventoryRepo) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeInventoryRepo) CreateChain(_ context.Context, chain *domain.Chain) (*domain.Chain, error) {
	c := *chain
	c.ID = f.nextID("chain")
	f.chains[c.ID] = &c
	out := c
	return &out, nil
}

func (f *fakeInventoryRepo) ChainByAdmin(_ context.Context, adminID string) (*domain.Chain, error) {
	for _, c := range f.chains {
		if c.AdminID == adminID {
			out := *c
			return &out, nil
		}
	}
	return nil, domain.ErrChainNotFound
}

func (f *fakeInventoryRepo) AddHotelToChain(_ context.Context, chainID, hotelID string) error {
	c, ok := f.chains[chainID]
	if !ok {
		return domain.ErrChainNotFound
	}
	c.HotelIDs = append(c.HotelIDs, hotelID)
	return nil
}

func (f *fakeInventoryRepo) RemoveHotelFromChain(_ context.Context, chainID, hotelID string) error {
	c, ok := f.chains[chainID]
	if !ok {
		return domain.ErrChainNotFound
	}
	kept := c.HotelIDs[:0]
	for _, id := range c.HotelIDs {
		if id != hotelID {
			kept = append(kept, id)
		}
	}
	c.HotelIDs = kept
	return nil
}

func (f *fakeInventoryRepo) CreateHotel(_ context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	h := *hotel
	h.ID = f.nextID("hotel")
	f.hotels[h.ID] = &h
	out := h
	return &out, nil
}

func (f *fakeInventoryRepo) HotelByID(_ context.Context, id string) (*domain.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, domain.ErrHotelNotFound
	}
	out := *h
	return &out, nil
}

func (f *fakeInventoryRepo) HotelOwnedBy(_ context.Context, id, adminID string) (*domain.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok || h.CreatedBy != adminID {
		return nil, domain.ErrHotelNotFound
	}
	out := *h
	return &out, nil
}

func (f *fakeInventoryRepo) HotelNameInChain(_ context.Context, chainID, name string) (bool, error) {
	for _, h := range f.hotels {
		if h.ChainID == chainID && h.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInventoryRepo) UpdateHotel(_ context.Context, hotel *domain.Hotel) error {
	if _, ok := f.hotels[hotel.ID]; !ok {
		return domain.ErrHotelNotFound
	}
	h := *hotel
	f.hotels[h.ID] = &h
	return nil
}

func (f *fakeInventoryRepo) DeleteHotel(_ context.Context, id string) error {
	if _, ok := f.hotels[id]; !ok {
		return domain.ErrHotelNotFound
	}
	delete(f.hotels, id)
	return nil
}

func (f *fakeInventoryRepo) HotelsByAdmin(_ context.Context, adminID string) ([]domain.Hotel, error) {
	out := []domain.Hotel{}
	for _, h := range f.hotels {
		if h.CreatedBy == adminID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) Search(_ context.Context, criteria domain.HotelSearch) ([]domain.Hotel, error) {
	out := []domain.Hotel{}
	for _, h := range f.hotels {
		if criteria.ChainID != "" && h.ChainID != criteria.ChainID {
			continue
		}
		if criteria.City != "" && h.City != criteria.City {
			continue
		}
		if criteria.Country != "" && h.Country != criteria.Country {
			continue
		}
		if criteria.Name != "" && h.Name != criteria.Name {
			continue
		}
		if criteria.RoomType != "" {
			match := false
			for _, r := range f.rooms {
				if r.HotelID == h.ID && string(r.Type) == criteria.RoomType {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, *h)
	}
	return out, nil
}

func (f *fakeInventoryRepo) HotelsWithRoomCount(_ context.Context) ([]domain.HotelRoomCount, error) {
	out := []domain.HotelRoomCount{}
	for _, h := range f.hotels {
		out = append(out, domain.HotelRoomCount{
			ID:        h.ID,
			Name:      h.Name,
			City:      h.City,
			Country:   h.Country,
			RoomCount: len(h.RoomIDs),
		})
	}
	return out, nil
}

func (f *fakeInventoryRepo) HotelsWithRooms(_ context.Context) ([]domain.HotelWithRooms, error) {
	out := []domain.HotelWithRooms{}
	for _, h := range f.hotels {
		rooms, _ := f.RoomsOfHotel(context.Background(), h.ID)
		out = append(out, domain.HotelWithRooms{Hotel: *h, Rooms: rooms})
	}
	return out, nil
}

func (f *fakeInventoryRepo) CreateRoom(_ context.Context, room *domain.Room) (*domain.Room, error) {
	r := *room
	r.ID = f.nextID("room")
	f.rooms[r.ID] = &r
	out := r
	return &out, nil
}

func (f *fakeInventoryRepo) RoomByID(_ context.Context, id string) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	out := *r
	return &out, nil
}

func (f *fakeInventoryRepo) RoomInHotel(_ context.Context, roomID, hotelID string) (*domain.Room, error) {
	r, ok := f.rooms[roomID]
	if !ok || r.HotelID != hotelID {
		return nil, domain.ErrRoomNotFound
	}
	out := *r
	return &out, nil
}

func (f *fakeInventoryRepo) RoomNameTaken(_ context.Context, hotelID, name, excludeRoomID string) (bool, error) {
	for _, r := range f.rooms {
		if r.HotelID == hotelID && r.Name == name && r.ID != excludeRoomID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInventoryRepo) UpdateRoom(_ context.Context, room *domain.Room) error {
	if _, ok := f.rooms[room.ID]; !ok {
		return domain.ErrRoomNotFound
	}
	r := *room
	f.rooms[r.ID] = &r
	return nil
}

func (f *fakeInventoryRepo) AddRoomToHotel(_ context.Context, hotelID, roomID string) error {
	h, ok := f.hotels[hotelID]
	if !ok {
		return domain.ErrHotelNotFound
	}
	h.RoomIDs = append(h.RoomIDs, roomID)
	return nil
}

func (f *fakeInventoryRepo) RemoveRoomFromHotel(_ context.Context, hotelID, roomID string) error {
	h, ok := f.hotels[hotelID]
	if !ok {
		return domain.ErrHotelNotFound
	}
	kept := h.RoomIDs[:0]
	for _, id := range h.RoomIDs {
		if id != roomID {
			kept = append(kept, id)
		}
	}
	h.RoomIDs = kept
	return nil
}

func (f *fakeInventoryRepo) DeleteRoom(_ context.Context, id string) error {
	if _, ok := f.rooms[id]; !ok {
		return domain.ErrRoomNotFound
	}
	delete(f.rooms, id)
	return nil
}

func (f *fakeInventoryRepo) DeleteRoomsOfHotel(_ context.Context, hotelID string) (int64, error) {
	var n int64
	for id, r := range f.rooms {
		if r.HotelID == hotelID {
			delete(f.rooms, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeInventoryRepo) RoomsOfHotel(_ context.Context, hotelID string) ([]domain.Room, error) {
	out := []domain.Room{}
	for _, r := range f.rooms {
		if r.HotelID == hotelID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) ReserveRoom(_ context.Context, roomID string) error {
	r, ok := f.rooms[roomID]
	if !ok {
		return domain.ErrRoomNotFound
	}
	if !r.Available {
		return domain.ErrRoomUnavailable
	}
	r.Available = false
	return nil
}

func (f *fakeInventoryRepo) AddRating(_ context.Context, roomID string, rating int, review string) error {
	r, ok := f.rooms[roomID]
	if !ok {
		return domain.ErrRoomNotFound
	}
	if r.Ratings == nil {
		r.Ratings = map[string]int{}
	}
	r.Ratings[fmt.Sprintf("%d", rating)]++
	if review != "" {
		r.Reviews = append(r.Reviews, review)
	}
	return nil
}

// --- Tests ---

func newInventoryService(repo ports.InventoryRepository) *InventoryService {
	return NewInventoryService(repo, zerolog.Nop())
}

func TestCreateChain_SecondChainRejected(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	if _, _, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{Name: "Grand"}); err != nil {
		t.Fatalf("first chain: %v", err)
	}

	_, _, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{Name: "Second"})
	if !errors.Is(err, domain.ErrChainExists) {
		t.Fatalf("expected ErrChainExists, got %v", err)
	}

	// A different admin is unaffected.
	if _, _, err := svc.CreateChain(ctx, "admin-2", ports.CreateChainInput{Name: "Other"}); err != nil {
		t.Fatalf("other admin chain: %v", err)
	}
}

func TestCreateChain_CreatesHotelsAndRooms(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	chain, hotels, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{
		Name: "Grand",
		Hotels: []ports.HotelInput{
			{
				Name: "Grand Paris", City: "Paris", Country: "France",
				Rooms: []ports.RoomInput{
					{Name: "101", Type: "Suite", Available: true},
					{Name: "102", Type: "Double", Available: true},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("create chain: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(hotels))
	}
	if len(hotels[0].RoomIDs) != 2 {
		t.Fatalf("expected 2 room ids on hotel, got %d", len(hotels[0].RoomIDs))
	}

	stored := repo.chains[chain.ID]
	if len(stored.HotelIDs) != 1 || stored.HotelIDs[0] != hotels[0].ID {
		t.Fatalf("hotel not linked to chain: %+v", stored.HotelIDs)
	}
	rooms, _ := repo.RoomsOfHotel(ctx, hotels[0].ID)
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms stored, got %d", len(rooms))
	}
}

func TestCreateChain_InvalidRoomType(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)

	_, _, err := svc.CreateChain(context.Background(), "admin-1", ports.CreateChainInput{
		Name: "Grand",
		Hotels: []ports.HotelInput{
			{Name: "H", City: "C", Country: "X", Rooms: []ports.RoomInput{{Name: "101", Type: "Penthouse"}}},
		},
	})
	if !errors.Is(err, domain.ErrInvalidRoomType) {
		t.Fatalf("expected ErrInvalidRoomType, got %v", err)
	}
}

func TestAddHotelsToChain_SkipsDuplicateNames(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	_, _, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{
		Name:   "Grand",
		Hotels: []ports.HotelInput{{Name: "Grand Paris", City: "Paris", Country: "France"}},
	})
	if err != nil {
		t.Fatalf("create chain: %v", err)
	}

	result, err := svc.AddHotelsToChain(ctx, "admin-1", []ports.HotelInput{
		{Name: "Grand Paris", City: "Paris", Country: "France"},
		{Name: "Grand Lyon", City: "Lyon", Country: "France"},
	})
	if err != nil {
		t.Fatalf("add hotels: %v", err)
	}
	if len(result.Added) != 1 || result.Added[0].Name != "Grand Lyon" {
		t.Fatalf("unexpected added set: %+v", result.Added)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "Grand Paris" {
		t.Fatalf("unexpected skipped set: %+v", result.Skipped)
	}
}

func TestAddHotelsToChain_NoChain(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)

	_, err := svc.AddHotelsToChain(context.Background(), "admin-1", []ports.HotelInput{{Name: "H"}})
	if !errors.Is(err, domain.ErrChainNotFound) {
		t.Fatalf("expected ErrChainNotFound, got %v", err)
	}
}

func TestUpdateHotel_EmptyFieldsRetained(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	_, hotels, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{
		Name:   "Grand",
		Hotels: []ports.HotelInput{{Name: "Grand Paris", City: "Paris", Country: "France"}},
	})
	if err != nil {
		t.Fatalf("create chain: %v", err)
	}

	updated, err := svc.UpdateHotel(ctx, "admin-1", hotels[0].ID, ports.UpdateHotelInput{City: "Marseille"})
	if err != nil {
		t.Fatalf("update hotel: %v", err)
	}
	if updated.City != "Marseille" {
		t.Fatalf("city not updated: %s", updated.City)
	}
	if updated.Name != "Grand Paris" || updated.Country != "France" {
		t.Fatalf("empty fields must retain stored values: %+v", updated)
	}
}

func TestUpdateHotel_NotOwned(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	_, hotels, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{
		Name:   "Grand",
		Hotels: []ports.HotelInput{{Name: "Grand Paris", City: "Paris", Country: "France"}},
	})
	if err != nil {
		t.Fatalf("create chain: %v", err)
	}

	_, err = svc.UpdateHotel(ctx, "admin-2", hotels[0].ID, ports.UpdateHotelInput{Name: "Stolen"})
	if !errors.Is(err, domain.ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound for foreign admin, got %v", err)
	}
}

func TestDeleteHotel_CascadesRoomsAndChainLink(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	chain, hotels, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{
		Name: "Grand",
		Hotels: []ports.HotelInput{
			{
				Name: "Grand Paris", City: "Paris", Country: "France",
				Rooms: []ports.RoomInput{
					{Name: "101", Type: "Suite", Available: true},
					{Name: "102", Type: "Simple", Available: true},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("create chain: %v", err)
	}

	if err := svc.DeleteHotel(ctx, "admin-1", hotels[0].ID); err != nil {
		t.Fatalf("delete hotel: %v", err)
	}

	if len(repo.hotels) != 0 {
		t.Fatalf("hotel not deleted")
	}
	if len(repo.rooms) != 0 {
		t.Fatalf("rooms not cascaded: %d left", len(repo.rooms))
	}
	if len(repo.chains[chain.ID].HotelIDs) != 0 {
		t.Fatalf("chain still references deleted hotel")
	}
}

func TestUpdateRoom_DuplicateNameRejected(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	_, hotels, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{
		Name: "Grand",
		Hotels: []ports.HotelInput{
			{
				Name: "Grand Paris", City: "Paris", Country: "France",
				Rooms: []ports.RoomInput{
					{Name: "101", Type: "Suite", Available: true},
					{Name: "102", Type: "Simple", Available: true},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("create chain: %v", err)
	}
	rooms, _ := repo.RoomsOfHotel(ctx, hotels[0].ID)
	var target domain.Room
	for _, r := range rooms {
		if r.Name == "102" {
			target = r
		}
	}

	_, err = svc.UpdateRoom(ctx, "admin-1", hotels[0].ID, target.ID, ports.UpdateRoomInput{Name: "101"})
	if !errors.Is(err, domain.ErrDuplicateRoomName) {
		t.Fatalf("expected ErrDuplicateRoomName, got %v", err)
	}

	// Keeping its own name is not a collision.
	if _, err := svc.UpdateRoom(ctx, "admin-1", hotels[0].ID, target.ID, ports.UpdateRoomInput{Name: "102"}); err != nil {
		t.Fatalf("same-name update must pass: %v", err)
	}
}

func TestUpdateRoom_AvailablePointerSemantics(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	_, hotels, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{
		Name: "Grand",
		Hotels: []ports.HotelInput{
			{Name: "Grand Paris", City: "Paris", Country: "France",
				Rooms: []ports.RoomInput{{Name: "101", Type: "Suite", Available: true}}},
		},
	})
	if err != nil {
		t.Fatalf("create chain: %v", err)
	}
	roomID := hotels[0].RoomIDs[0]

	// Absent pointer keeps the stored flag.
	room, err := svc.UpdateRoom(ctx, "admin-1", hotels[0].ID, roomID, ports.UpdateRoomInput{Type: "Deluxe"})
	if err != nil {
		t.Fatalf("update room: %v", err)
	}
	if !room.Available {
		t.Fatalf("nil Available must retain the stored flag")
	}
	if room.Type != domain.RoomDeluxe {
		t.Fatalf("type not updated: %s", room.Type)
	}

	// Explicit false flips it.
	off := false
	room, err = svc.UpdateRoom(ctx, "admin-1", hotels[0].ID, roomID, ports.UpdateRoomInput{Available: &off})
	if err != nil {
		t.Fatalf("update room: %v", err)
	}
	if room.Available {
		t.Fatalf("explicit false must flip the flag")
	}
}

func TestDeleteRoom_RemovesLinkFromHotel(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	_, hotels, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{
		Name: "Grand",
		Hotels: []ports.HotelInput{
			{Name: "Grand Paris", City: "Paris", Country: "France",
				Rooms: []ports.RoomInput{{Name: "101", Type: "Suite", Available: true}}},
		},
	})
	if err != nil {
		t.Fatalf("create chain: %v", err)
	}
	roomID := hotels[0].RoomIDs[0]

	if err := svc.DeleteRoom(ctx, "admin-1", hotels[0].ID, roomID); err != nil {
		t.Fatalf("delete room: %v", err)
	}
	if len(repo.rooms) != 0 {
		t.Fatalf("room still stored")
	}
	if len(repo.hotels[hotels[0].ID].RoomIDs) != 0 {
		t.Fatalf("hotel still references deleted room")
	}
}

func TestHotelsWithRoomCount_ProjectsNameLocationAndCount(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	_, _, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{
		Name: "Grand",
		Hotels: []ports.HotelInput{
			{Name: "H1", City: "Paris", Country: "France",
				Rooms: []ports.RoomInput{{Name: "R1", Type: "Suite", Available: true}}},
		},
	})
	if err != nil {
		t.Fatalf("create chain: %v", err)
	}

	counts, err := svc.HotelsWithRoomCount(ctx)
	if err != nil {
		t.Fatalf("hotels with room count: %v", err)
	}
	if len(counts) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(counts))
	}
	got := counts[0]
	if got.Name != "H1" || got.City != "Paris" || got.Country != "France" {
		t.Fatalf("unexpected projection: %+v", got)
	}
	if got.RoomCount != 1 {
		t.Fatalf("expected room count 1, got %d", got.RoomCount)
	}
}

func TestHotelsWithRatings_OccurrenceWeightedAverage(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	_, hotels, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{
		Name: "Grand",
		Hotels: []ports.HotelInput{
			{Name: "Grand Paris", City: "Paris", Country: "France",
				Rooms: []ports.RoomInput{
					{Name: "101", Type: "Suite", Available: true},
					{Name: "102", Type: "Double", Available: true},
				}},
		},
	})
	if err != nil {
		t.Fatalf("create chain: %v", err)
	}

	rooms, _ := repo.RoomsOfHotel(ctx, hotels[0].ID)
	// {5:2, 3:1} on one room and {4:1} on the other → (10+3+4)/4 = 4.25.
	repo.rooms[rooms[0].ID].Ratings = map[string]int{"5": 2, "3": 1}
	repo.rooms[rooms[0].ID].Reviews = []string{"great", "fine"}
	repo.rooms[rooms[1].ID].Ratings = map[string]int{"4": 1}
	repo.rooms[rooms[1].ID].Reviews = []string{"ok"}

	views, err := svc.HotelsWithRatings(ctx)
	if err != nil {
		t.Fatalf("hotels with ratings: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	v := views[0]
	if v.AverageRating != 4.25 {
		t.Fatalf("expected average 4.25, got %v", v.AverageRating)
	}
	if v.RoomCount != 2 {
		t.Fatalf("expected room count 2, got %d", v.RoomCount)
	}
	if len(v.Reviews) != 3 {
		t.Fatalf("expected 3 flattened reviews, got %d", len(v.Reviews))
	}
}

func TestAverageRating_NonNumericKeyCountsInDenominator(t *testing.T) {
	rooms := []domain.Room{
		{Ratings: map[string]int{"5": 1, "bogus": 1}},
	}
	// 5 from the numeric key, 0 from the bogus one, over 2 submissions.
	if got := averageRating(rooms); got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}
}

func TestAverageRating_NoSubmissions(t *testing.T) {
	if got := averageRating([]domain.Room{{Ratings: map[string]int{}}, {}}); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestSearch_RoomTypeNeedsMatchingRoom(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	_, _, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{
		Name: "Grand",
		Hotels: []ports.HotelInput{
			{Name: "Grand Paris", City: "Paris", Country: "France",
				Rooms: []ports.RoomInput{{Name: "101", Type: "Suite", Available: true}}},
			{Name: "Grand Lyon", City: "Lyon", Country: "France",
				Rooms: []ports.RoomInput{{Name: "201", Type: "Double", Available: true}}},
		},
	})
	if err != nil {
		t.Fatalf("create chain: %v", err)
	}

	hotels, err := svc.Search(ctx, domain.HotelSearch{Country: "France", RoomType: "Suite"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hotels) != 1 || hotels[0].Name != "Grand Paris" {
		t.Fatalf("unexpected search result: %+v", hotels)
	}
}

func TestRoomWithRatings_IncludesHotelLocation(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newInventoryService(repo)
	ctx := context.Background()

	_, hotels, err := svc.CreateChain(ctx, "admin-1", ports.CreateChainInput{
		Name: "Grand",
		Hotels: []ports.HotelInput{
			{Name: "Grand Paris", City: "Paris", Country: "France",
				Rooms: []ports.RoomInput{{Name: "101", Type: "Suite", Available: true}}},
		},
	})
	if err != nil {
		t.Fatalf("create chain: %v", err)
	}

	view, err := svc.RoomWithRatings(ctx, hotels[0].RoomIDs[0])
	if err != nil {
		t.Fatalf("room with ratings: %v", err)
	}
	if view.HotelName != "Grand Paris" || view.City != "Paris" || view.Country != "France" {
		t.Fatalf("hotel fields missing from room view: %+v", view)
	}
	if view.Ratings == nil || view.Reviews == nil {
		t.Fatalf("ratings/reviews must be non-nil for JSON rendering")
	}
}
