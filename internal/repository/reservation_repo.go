package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"casamento/registry/internal/model"
)

// ErrItemNotAvailable is returned by Reserve when the gift item is no longer
// in the available state, including the case where a concurrent reservation
// won the race and tripped the unique index.
var ErrItemNotAvailable = errors.New("gift item not available")

type ReservationRepository interface {
	// Reserve atomically flips the item to reserved and inserts the
	// reservation row. Returns gorm.ErrRecordNotFound when the item does
	// not exist and ErrItemNotAvailable when it is not available.
	Reserve(ctx context.Context, itemID, guestID uuid.UUID) (*model.Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
	// Release deletes the reservation and, when the item still exists,
	// returns it to the available state.
	Release(ctx context.Context, reservation *model.Reservation) error
	ListByGuestForItems(ctx context.Context, guestID uuid.UUID, itemIDs []uuid.UUID) ([]model.Reservation, error)
}
