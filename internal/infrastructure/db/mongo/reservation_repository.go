package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
)

const reservationsCollection = "reservations"

// ReservationRepository implements ports.ReservationRepository on MongoDB.
type ReservationRepository struct {
	coll *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{coll: db.Collection(reservationsCollection)}
}

type reservationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user"`
	Room      primitive.ObjectID `bson:"room"`
	HotelName string             `bson:"hotel_name"`
	StartDate time.Time          `bson:"start_date"`
	EndDate   time.Time          `bson:"end_date"`
	Rating    *int               `bson:"rating,omitempty"`
	Review    string             `bson:"review,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	user, room, err := twoIDs(reservation.UserID, reservation.RoomID, domain.ErrReservationNotFound)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.InsertOne(ctx, reservationDoc{
		User:      user,
		Room:      room,
		HotelName: reservation.HotelName,
		StartDate: reservation.StartDate.UTC(),
		EndDate:   reservation.EndDate.UTC(),
		CreatedAt: reservation.CreatedAt.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	created := *reservation
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ReservationRepository) FindOwnedByUser(ctx context.Context, id, userID string) (*domain.Reservation, error) {
	oid, user, err := twoIDs(id, userID, domain.ErrNotReserved)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid, "user": user}, domain.ErrNotReserved)
}

func (r *ReservationRepository) FindByUserAndRoom(ctx context.Context, userID, roomID string) (*domain.Reservation, error) {
	user, room, err := twoIDs(userID, roomID, domain.ErrNotReserved)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"user": user, "room": room}, domain.ErrNotReserved)
}

func (r *ReservationRepository) findOne(ctx context.Context, filter bson.M, missing error) (*domain.Reservation, error) {
	var doc reservationDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, missing
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}

	return &domain.Reservation{
		ID:        doc.ID.Hex(),
		UserID:    doc.User.Hex(),
		RoomID:    doc.Room.Hex(),
		HotelName: doc.HotelName,
		StartDate: doc.StartDate,
		EndDate:   doc.EndDate,
		Rating:    doc.Rating,
		Review:    doc.Review,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (r *ReservationRepository) SetRating(ctx context.Context, id string, rating int, review string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReservationNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"rating": rating,
		"review": review,
	}})
	if err != nil {
		return fmt.Errorf("set reservation rating: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

// EnsureIndexes creates the user/room lookup index.
func (r *ReservationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "room", Value: 1}},
	})
	return err
}
