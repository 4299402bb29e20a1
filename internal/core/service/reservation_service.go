package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/ports"
)

// RatingDedup abstracts the idempotency store guarding rating submissions.
type RatingDedup interface {
	IsDuplicate(ctx context.Context, userID, roomID string) (bool, error)
	Mark(ctx context.Context, userID, roomID string) error
}

type reservationService struct {
	reservations ports.ReservationRepository
	inventory    ports.InventoryRepository
	dedup        RatingDedup
	summaries    ports.SummaryQueue
	log          zerolog.Logger
}

// NewReservationService returns a ReservationService implementation.
func NewReservationService(
	reservations ports.ReservationRepository,
	inventory ports.InventoryRepository,
	dedup RatingDedup,
	summaries ports.SummaryQueue,
	log zerolog.Logger,
) ports.ReservationService {
	return &reservationService{
		reservations: reservations,
		inventory:    inventory,
		dedup:        dedup,
		summaries:    summaries,
		log:          log,
	}
}

// Reserve creates a reservation and flips the room's availability flag.
// The flip is a single conditional write, so two racing reservations on the
// same room cannot both succeed; the loser gets domain.ErrRoomUnavailable.
func (s *reservationService) Reserve(ctx context.Context, in ports.ReserveInput) (*domain.Reservation, error) {
	room, err := s.inventory.RoomByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	hotel, err := s.inventory.HotelByID(ctx, room.HotelID)
	if err != nil {
		return nil, err
	}

	if err := s.inventory.ReserveRoom(ctx, room.ID); err != nil {
		return nil, err
	}

	reservation, err := s.reservations.Create(ctx, &domain.Reservation{
		UserID:    in.UserID,
		RoomID:    room.ID,
		HotelName: hotel.Name,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// The availability flag is already down but the ledger write failed.
		// No cross-document transaction: surface the error and leave the
		// partial state for operators.
		return nil, fmt.Errorf("reserve room: create reservation: %w", err)
	}

	s.summaries.Enqueue(ports.SummaryJob{
		Kind:    ports.SummaryReserved,
		UserID:  in.UserID,
		RoomID:  room.ID,
		HotelID: hotel.ID,
	})

	s.log.Info().
		Str("reservation_id", reservation.ID).
		Str("room_id", room.ID).
		Str("user_id", in.UserID).
		Msg("room reserved")

	return reservation, nil
}

// RateRoom records a rating against the caller's reservation on the room.
func (s *reservationService) RateRoom(ctx context.Context, userID, roomID string, rating int, review string) (bool, error) {
	reservation, err := s.reservations.FindByUserAndRoom(ctx, userID, roomID)
	if err != nil {
		return false, err
	}
	return s.applyRating(ctx, userID, reservation, rating, review)
}

// RateReservation records a rating resolved through a reservation id the
// caller owns.
func (s *reservationService) RateReservation(ctx context.Context, userID, reservationID string, rating int, review string) (bool, error) {
	reservation, err := s.reservations.FindOwnedByUser(ctx, reservationID, userID)
	if err != nil {
		return false, err
	}
	return s.applyRating(ctx, userID, reservation, rating, review)
}

func (s *reservationService) applyRating(ctx context.Context, userID string, reservation *domain.Reservation, rating int, review string) (bool, error) {
	if rating < 1 || rating > 5 {
		return false, domain.ErrInvalidRating
	}

	if _, err := s.inventory.RoomByID(ctx, reservation.RoomID); err != nil {
		return false, err
	}

	// Duplicate submissions inside the dedup window are skipped so a retry
	// cannot double-count. A dedup store failure is non-fatal.
	isDup, err := s.dedup.IsDuplicate(ctx, userID, reservation.RoomID)
	if err != nil {
		s.log.Warn().Err(err).Str("room_id", reservation.RoomID).Msg("rating dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("user_id", userID).Str("room_id", reservation.RoomID).Msg("duplicate rating submission skipped")
		return false, nil
	}

	if err := s.inventory.AddRating(ctx, reservation.RoomID, rating, review); err != nil {
		return false, fmt.Errorf("rate room: %w", err)
	}

	if err := s.reservations.SetRating(ctx, reservation.ID, rating, review); err != nil {
		s.log.Warn().Err(err).Str("reservation_id", reservation.ID).Msg("failed to record rating on reservation")
	}

	if markErr := s.dedup.Mark(ctx, userID, reservation.RoomID); markErr != nil {
		s.log.Warn().Err(markErr).Str("room_id", reservation.RoomID).Msg("failed to set rating dedup key")
	}

	s.summaries.Enqueue(ports.SummaryJob{
		Kind:   ports.SummaryRated,
		UserID: userID,
		RoomID: reservation.RoomID,
		Rating: rating,
		Review: review,
	})

	s.log.Info().
		Str("room_id", reservation.RoomID).
		Int("rating", rating).
		Msg("rating recorded")

	return true, nil
}
