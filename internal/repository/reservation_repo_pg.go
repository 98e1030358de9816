package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamento/registry/internal/model"
)

type pgReservationRepository struct {
	db *gorm.DB
}

func NewPGReservationRepository(db *gorm.DB) ReservationRepository {
	return &pgReservationRepository{db: db}
}

func (r *pgReservationRepository) Reserve(ctx context.Context, itemID, guestID uuid.UUID) (*model.Reservation, error) {
	reservation := &model.Reservation{
		GiftItemID: itemID,
		GuestID:    guestID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Conditional update is the atomic step: only one writer can move
		// the row out of the available state.
		res := tx.Model(&model.GiftItem{}).
			Where("id = ? AND status = ?", itemID, model.GiftStatusAvailable).
			Updates(map[string]interface{}{
				"status":         model.GiftStatusReserved,
				"reserved_by_id": guestID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var item model.GiftItem
			if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
				return err
			}
			return ErrItemNotAvailable
		}

		if err := tx.Create(reservation).Error; err != nil {
			// The unique index on gift_item_id is the backstop for writers
			// that raced past the status check.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrItemNotAvailable
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

func (r *pgReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *pgReservationRepository) Release(ctx context.Context, reservation *model.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The item may have been deleted since the reservation was made;
		// releasing still removes the reservation row.
		err := tx.Model(&model.GiftItem{}).
			Where("id = ?", reservation.GiftItemID).
			Updates(map[string]interface{}{
				"status":         model.GiftStatusAvailable,
				"reserved_by_id": nil,
			}).Error
		if err != nil {
			return err
		}
		return tx.Delete(&model.Reservation{}, "id = ?", reservation.ID).Error
	})
}

func (r *pgReservationRepository) ListByGuestForItems(ctx context.Context, guestID uuid.UUID, itemIDs []uuid.UUID) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if len(itemIDs) == 0 {
		return reservations, nil
	}
	if err := r.db.WithContext(ctx).
		Where("guest_id = ? AND gift_item_id IN ?", guestID, itemIDs).
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}
