package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamento/registry/internal/model"
	"casamento/registry/internal/repository"
)

// ReservationService drives the gift status machine:
// available --reserve--> reserved --cancel--> available.
// The purchased state is reachable only through owner edits.
type ReservationService interface {
	Reserve(ctx context.Context, guestID, itemID uuid.UUID) (*model.Reservation, error)
	Cancel(ctx context.Context, guestID, reservationID uuid.UUID) error
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
}

func NewReservationService(reservationRepo repository.ReservationRepository) ReservationService {
	return &reservationService{reservationRepo: reservationRepo}
}

func (s *reservationService) Reserve(ctx context.Context, guestID, itemID uuid.UUID) (*model.Reservation, error) {
	reservation, err := s.reservationRepo.Reserve(ctx, itemID, guestID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrItemNotFound
		case errors.Is(err, repository.ErrItemNotAvailable):
			return nil, ErrGiftNotAvailable
		}
		return nil, fmt.Errorf("reserve item: %w", err)
	}
	return reservation, nil
}

func (s *reservationService) Cancel(ctx context.Context, guestID, reservationID uuid.UUID) error {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReservationNotFound
		}
		return fmt.Errorf("load reservation: %w", err)
	}
	if reservation.GuestID != guestID {
		return ErrNotYourReservation
	}
	if err := s.reservationRepo.Release(ctx, reservation); err != nil {
		return fmt.Errorf("release reservation: %w", err)
	}
	return nil
}

var _ ReservationService = (*reservationService)(nil)
