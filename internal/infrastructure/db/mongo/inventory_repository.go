package mongo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
)

const (
	chainsCollection = "chains"
	hotelsCollection = "hotels"
	roomsCollection  = "rooms"
)

// InventoryRepository implements ports.InventoryRepository on MongoDB.
type InventoryRepository struct {
	chains *mongo.Collection
	hotels *mongo.Collection
	rooms  *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{
		chains: db.Collection(chainsCollection),
		hotels: db.Collection(hotelsCollection),
		rooms:  db.Collection(roomsCollection),
	}
}

type chainDoc struct {
	ID     primitive.ObjectID   `bson:"_id,omitempty"`
	Name   string               `bson:"name"`
	Admin  primitive.ObjectID   `bson:"admin"`
	Hotels []primitive.ObjectID `bson:"hotels"`
}

type hotelDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Name      string               `bson:"name"`
	Chain     primitive.ObjectID   `bson:"chain,omitempty"`
	City      string               `bson:"city"`
	Country   string               `bson:"country"`
	Photos    []string             `bson:"photos"`
	CreatedBy primitive.ObjectID   `bson:"created_by"`
	Rooms     []primitive.ObjectID `bson:"rooms"`
}

type roomDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	Available bool               `bson:"available"`
	Hotel     primitive.ObjectID `bson:"hotel"`
	Photos    []string           `bson:"photos"`
	Ratings   map[string]int     `bson:"ratings"`
	Reviews   []string           `bson:"reviews"`
}

// --- Chains ---

func (r *InventoryRepository) CreateChain(ctx context.Context, chain *domain.Chain) (*domain.Chain, error) {
	admin, err := primitive.ObjectIDFromHex(chain.AdminID)
	if err != nil {
		return nil, fmt.Errorf("create chain: bad admin id: %w", err)
	}

	res, err := r.chains.InsertOne(ctx, chainDoc{
		Name:   chain.Name,
		Admin:  admin,
		Hotels: []primitive.ObjectID{},
	})
	if err != nil {
		return nil, fmt.Errorf("insert chain: %w", err)
	}

	created := *chain
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *InventoryRepository) ChainByAdmin(ctx context.Context, adminID string) (*domain.Chain, error) {
	admin, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return nil, domain.ErrChainNotFound
	}

	var doc chainDoc
	if err := r.chains.FindOne(ctx, bson.M{"admin": admin}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrChainNotFound
		}
		return nil, fmt.Errorf("find chain: %w", err)
	}
	return docToChain(doc), nil
}

func (r *InventoryRepository) AddHotelToChain(ctx context.Context, chainID, hotelID string) error {
	chain, hotel, err := twoIDs(chainID, hotelID, domain.ErrChainNotFound)
	if err != nil {
		return err
	}
	_, err = r.chains.UpdateOne(ctx, bson.M{"_id": chain}, bson.M{"$push": bson.M{"hotels": hotel}})
	return err
}

func (r *InventoryRepository) RemoveHotelFromChain(ctx context.Context, chainID, hotelID string) error {
	chain, hotel, err := twoIDs(chainID, hotelID, domain.ErrChainNotFound)
	if err != nil {
		return err
	}
	_, err = r.chains.UpdateOne(ctx, bson.M{"_id": chain}, bson.M{"$pull": bson.M{"hotels": hotel}})
	return err
}

// --- Hotels ---

func (r *InventoryRepository) CreateHotel(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	createdBy, err := primitive.ObjectIDFromHex(hotel.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("create hotel: bad creator id: %w", err)
	}

	doc := hotelDoc{
		Name:      hotel.Name,
		City:      hotel.City,
		Country:   hotel.Country,
		Photos:    hotel.Photos,
		CreatedBy: createdBy,
		Rooms:     []primitive.ObjectID{},
	}
	if hotel.ChainID != "" {
		chain, err := primitive.ObjectIDFromHex(hotel.ChainID)
		if err != nil {
			return nil, fmt.Errorf("create hotel: bad chain id: %w", err)
		}
		doc.Chain = chain
	}
	if doc.Photos == nil {
		doc.Photos = []string{}
	}

	res, err := r.hotels.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert hotel: %w", err)
	}

	created := *hotel
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *InventoryRepository) HotelByID(ctx context.Context, id string) (*domain.Hotel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrHotelNotFound
	}
	return r.findHotel(ctx, bson.M{"_id": oid})
}

func (r *InventoryRepository) HotelOwnedBy(ctx context.Context, id, adminID string) (*domain.Hotel, error) {
	oid, admin, err := twoIDs(id, adminID, domain.ErrHotelNotFound)
	if err != nil {
		return nil, err
	}
	return r.findHotel(ctx, bson.M{"_id": oid, "created_by": admin})
}

func (r *InventoryRepository) findHotel(ctx context.Context, filter bson.M) (*domain.Hotel, error) {
	var doc hotelDoc
	if err := r.hotels.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	return docToHotel(doc), nil
}

func (r *InventoryRepository) HotelNameInChain(ctx context.Context, chainID, name string) (bool, error) {
	chain, err := primitive.ObjectIDFromHex(chainID)
	if err != nil {
		return false, domain.ErrChainNotFound
	}

	n, err := r.hotels.CountDocuments(ctx, bson.M{"chain": chain, "name": name})
	if err != nil {
		return false, fmt.Errorf("count hotels: %w", err)
	}
	return n > 0, nil
}

func (r *InventoryRepository) UpdateHotel(ctx context.Context, hotel *domain.Hotel) error {
	oid, err := primitive.ObjectIDFromHex(hotel.ID)
	if err != nil {
		return domain.ErrHotelNotFound
	}

	photos := hotel.Photos
	if photos == nil {
		photos = []string{}
	}
	res, err := r.hotels.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":    hotel.Name,
		"city":    hotel.City,
		"country": hotel.Country,
		"photos":  photos,
	}})
	if err != nil {
		return fmt.Errorf("update hotel: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *InventoryRepository) DeleteHotel(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrHotelNotFound
	}

	res, err := r.hotels.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *InventoryRepository) HotelsByAdmin(ctx context.Context, adminID string) ([]domain.Hotel, error) {
	admin, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return []domain.Hotel{}, nil
	}
	return r.findHotels(ctx, bson.M{"created_by": admin})
}

func (r *InventoryRepository) Search(ctx context.Context, criteria domain.HotelSearch) ([]domain.Hotel, error) {
	match := bson.M{}
	if criteria.ChainID != "" {
		chain, err := primitive.ObjectIDFromHex(criteria.ChainID)
		if err != nil {
			return []domain.Hotel{}, nil
		}
		match["chain"] = chain
	}
	if criteria.City != "" {
		match["city"] = criteria.City
	}
	if criteria.Country != "" {
		match["country"] = criteria.Country
	}
	if criteria.Name != "" {
		match["name"] = criteria.Name
	}

	if criteria.RoomType == "" {
		return r.findHotels(ctx, match)
	}

	// The room-type criterion joins the rooms collection and keeps hotels
	// owning at least one room of the requested type.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         roomsCollection,
			"localField":   "rooms",
			"foreignField": "_id",
			"as":           "room_docs",
		}}},
		{{Key: "$match", Value: bson.M{"room_docs.type": criteria.RoomType}}},
	}

	cursor, err := r.hotels.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []hotelDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("search hotels: decode: %w", err)
	}
	return docsToHotels(docs), nil
}

func (r *InventoryRepository) findHotels(ctx context.Context, filter bson.M) ([]domain.Hotel, error) {
	cursor, err := r.hotels.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []hotelDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("find hotels: decode: %w", err)
	}
	return docsToHotels(docs), nil
}

func (r *InventoryRepository) HotelsWithRoomCount(ctx context.Context) ([]domain.HotelRoomCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.M{
			"name":      1,
			"city":      1,
			"country":   1,
			"roomCount": bson.M{"$size": "$rooms"},
		}}},
	}

	cursor, err := r.hotels.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("hotels with room count: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID        primitive.ObjectID `bson:"_id"`
		Name      string             `bson:"name"`
		City      string             `bson:"city"`
		Country   string             `bson:"country"`
		RoomCount int                `bson:"roomCount"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("hotels with room count: decode: %w", err)
	}

	out := make([]domain.HotelRoomCount, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.HotelRoomCount{
			ID:        d.ID.Hex(),
			Name:      d.Name,
			City:      d.City,
			Country:   d.Country,
			RoomCount: d.RoomCount,
		})
	}
	return out, nil
}

func (r *InventoryRepository) HotelsWithRooms(ctx context.Context) ([]domain.HotelWithRooms, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         roomsCollection,
			"localField":   "rooms",
			"foreignField": "_id",
			"as":           "room_docs",
		}}},
	}

	cursor, err := r.hotels.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("hotels with rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		hotelDoc `bson:",inline"`
		RoomDocs []roomDoc `bson:"room_docs"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("hotels with rooms: decode: %w", err)
	}

	out := make([]domain.HotelWithRooms, 0, len(docs))
	for _, d := range docs {
		rooms := make([]domain.Room, 0, len(d.RoomDocs))
		for _, rd := range d.RoomDocs {
			rooms = append(rooms, *docToRoom(rd))
		}
		out = append(out, domain.HotelWithRooms{Hotel: *docToHotel(d.hotelDoc), Rooms: rooms})
	}
	return out, nil
}

// --- Rooms ---

func (r *InventoryRepository) CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	hotel, err := primitive.ObjectIDFromHex(room.HotelID)
	if err != nil {
		return nil, domain.ErrHotelNotFound
	}

	doc := roomDoc{
		Name:      room.Name,
		Type:      string(room.Type),
		Available: room.Available,
		Hotel:     hotel,
		Photos:    room.Photos,
		Ratings:   room.Ratings,
		Reviews:   room.Reviews,
	}
	if doc.Photos == nil {
		doc.Photos = []string{}
	}
	if doc.Ratings == nil {
		doc.Ratings = map[string]int{}
	}
	if doc.Reviews == nil {
		doc.Reviews = []string{}
	}

	res, err := r.rooms.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert room: %w", err)
	}

	created := *room
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *InventoryRepository) RoomByID(ctx context.Context, id string) (*domain.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoomNotFound
	}
	return r.findRoom(ctx, bson.M{"_id": oid})
}

func (r *InventoryRepository) RoomInHotel(ctx context.Context, roomID, hotelID string) (*domain.Room, error) {
	room, hotel, err := twoIDs(roomID, hotelID, domain.ErrRoomNotFound)
	if err != nil {
		return nil, err
	}
	return r.findRoom(ctx, bson.M{"_id": room, "hotel": hotel})
}

func (r *InventoryRepository) findRoom(ctx context.Context, filter bson.M) (*domain.Room, error) {
	var doc roomDoc
	if err := r.rooms.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return docToRoom(doc), nil
}

func (r *InventoryRepository) RoomNameTaken(ctx context.Context, hotelID, name, excludeRoomID string) (bool, error) {
	hotel, err := primitive.ObjectIDFromHex(hotelID)
	if err != nil {
		return false, domain.ErrHotelNotFound
	}

	filter := bson.M{"hotel": hotel, "name": name}
	if excludeRoomID != "" {
		if exclude, err := primitive.ObjectIDFromHex(excludeRoomID); err == nil {
			filter["_id"] = bson.M{"$ne": exclude}
		}
	}

	n, err := r.rooms.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count rooms: %w", err)
	}
	return n > 0, nil
}

func (r *InventoryRepository) UpdateRoom(ctx context.Context, room *domain.Room) error {
	oid, err := primitive.ObjectIDFromHex(room.ID)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	photos := room.Photos
	if photos == nil {
		photos = []string{}
	}
	res, err := r.rooms.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":      room.Name,
		"type":      string(room.Type),
		"available": room.Available,
		"photos":    photos,
	}})
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *InventoryRepository) AddRoomToHotel(ctx context.Context, hotelID, roomID string) error {
	hotel, room, err := twoIDs(hotelID, roomID, domain.ErrHotelNotFound)
	if err != nil {
		return err
	}
	_, err = r.hotels.UpdateOne(ctx, bson.M{"_id": hotel}, bson.M{"$push": bson.M{"rooms": room}})
	return err
}

func (r *InventoryRepository) RemoveRoomFromHotel(ctx context.Context, hotelID, roomID string) error {
	hotel, room, err := twoIDs(hotelID, roomID, domain.ErrHotelNotFound)
	if err != nil {
		return err
	}
	_, err = r.hotels.UpdateOne(ctx, bson.M{"_id": hotel}, bson.M{"$pull": bson.M{"rooms": room}})
	return err
}

func (r *InventoryRepository) DeleteRoom(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	res, err := r.rooms.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *InventoryRepository) DeleteRoomsOfHotel(ctx context.Context, hotelID string) (int64, error) {
	hotel, err := primitive.ObjectIDFromHex(hotelID)
	if err != nil {
		return 0, domain.ErrHotelNotFound
	}

	res, err := r.rooms.DeleteMany(ctx, bson.M{"hotel": hotel})
	if err != nil {
		return 0, fmt.Errorf("delete rooms of hotel: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *InventoryRepository) RoomsOfHotel(ctx context.Context, hotelID string) ([]domain.Room, error) {
	hotel, err := primitive.ObjectIDFromHex(hotelID)
	if err != nil {
		return nil, domain.ErrHotelNotFound
	}

	cursor, err := r.rooms.Find(ctx, bson.M{"hotel": hotel})
	if err != nil {
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []roomDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("find rooms: decode: %w", err)
	}

	rooms := make([]domain.Room, 0, len(docs))
	for _, d := range docs {
		rooms = append(rooms, *docToRoom(d))
	}
	return rooms, nil
}

// ReserveRoom flips the availability flag with a single conditional write:
// the filter matches only while the room is still available, so the losing
// side of a race observes MatchedCount == 0.
func (r *InventoryRepository) ReserveRoom(ctx context.Context, roomID string) error {
	oid, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	res, err := r.rooms.UpdateOne(ctx,
		bson.M{"_id": oid, "available": true},
		bson.M{"$set": bson.M{"available": false}},
	)
	if err != nil {
		return fmt.Errorf("reserve room: %w", err)
	}
	if res.MatchedCount == 0 {
		n, err := r.rooms.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return fmt.Errorf("reserve room: %w", err)
		}
		if n == 0 {
			return domain.ErrRoomNotFound
		}
		return domain.ErrRoomUnavailable
	}
	return nil
}

func (r *InventoryRepository) AddRating(ctx context.Context, roomID string, rating int, review string) error {
	oid, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	update := bson.M{"$inc": bson.M{"ratings." + strconv.Itoa(rating): 1}}
	if review != "" {
		update["$push"] = bson.M{"reviews": review}
	}
	res, err := r.rooms.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("add rating: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes used by the hot paths.
func (r *InventoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.chains.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "admin", Value: 1}},
	}); err != nil {
		return err
	}
	if _, err := r.hotels.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "chain", Value: 1}, {Key: "name", Value: 1}}},
	}); err != nil {
		return err
	}
	_, err := r.rooms.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "hotel", Value: 1}},
	})
	return err
}

// --- Converters ---

func twoIDs(a, b string, notFound error) (primitive.ObjectID, primitive.ObjectID, error) {
	first, err := primitive.ObjectIDFromHex(a)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, notFound
	}
	second, err := primitive.ObjectIDFromHex(b)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, notFound
	}
	return first, second, nil
}

func docToChain(doc chainDoc) *domain.Chain {
	hotels := make([]string, 0, len(doc.Hotels))
	for _, h := range doc.Hotels {
		hotels = append(hotels, h.Hex())
	}
	return &domain.Chain{
		ID:       doc.ID.Hex(),
		Name:     doc.Name,
		AdminID:  doc.Admin.Hex(),
		HotelIDs: hotels,
	}
}

func docToHotel(doc hotelDoc) *domain.Hotel {
	rooms := make([]string, 0, len(doc.Rooms))
	for _, r := range doc.Rooms {
		rooms = append(rooms, r.Hex())
	}
	hotel := &domain.Hotel{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		City:      doc.City,
		Country:   doc.Country,
		Photos:    doc.Photos,
		CreatedBy: doc.CreatedBy.Hex(),
		RoomIDs:   rooms,
	}
	if !doc.Chain.IsZero() {
		hotel.ChainID = doc.Chain.Hex()
	}
	return hotel
}

func docsToHotels(docs []hotelDoc) []domain.Hotel {
	hotels := make([]domain.Hotel, 0, len(docs))
	for _, d := range docs {
		hotels = append(hotels, *docToHotel(d))
	}
	return hotels
}

func docToRoom(doc roomDoc) *domain.Room {
	ratings := doc.Ratings
	if ratings == nil {
		ratings = map[string]int{}
	}
	reviews := doc.Reviews
	if reviews == nil {
		reviews = []string{}
	}
	return &domain.Room{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Type:      domain.RoomType(doc.Type),
		Available: doc.Available,
		HotelID:   doc.Hotel.Hex(),
		Photos:    doc.Photos,
		Ratings:   ratings,
		Reviews:   reviews,
	}
}
