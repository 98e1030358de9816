package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamento/registry/internal/model"
)

type pgRsvpRepository struct {
	db *gorm.DB
}

func NewPGRsvpRepository(db *gorm.DB) RsvpRepository {
	return &pgRsvpRepository{db: db}
}

func (r *pgRsvpRepository) Create(ctx context.Context, rsvp *model.Rsvp) error {
	return r.db.WithContext(ctx).Create(rsvp).Error
}

func (r *pgRsvpRepository) Save(ctx context.Context, rsvp *model.Rsvp) error {
	return r.db.WithContext(ctx).Save(rsvp).Error
}

func (r *pgRsvpRepository) GetByListAndGuest(ctx context.Context, listID, guestID uuid.UUID) (*model.Rsvp, error) {
	var rsvp model.Rsvp
	if err := r.db.WithContext(ctx).
		First(&rsvp, "wedding_list_id = ? AND guest_id = ?", listID, guestID).Error; err != nil {
		return nil, err
	}
	return &rsvp, nil
}

func (r *pgRsvpRepository) ListByList(ctx context.Context, listID uuid.UUID) ([]model.Rsvp, error) {
	var rsvps []model.Rsvp
	if err := r.db.WithContext(ctx).
		Preload("Guest").
		Where("wedding_list_id = ?", listID).
		Order("created_at ASC").
		Find(&rsvps).Error; err != nil {
		return nil, err
	}
	return rsvps, nil
}

func (r *pgRsvpRepository) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]model.Rsvp, error) {
	var rsvps []model.Rsvp
	if err := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("created_at ASC").
		Find(&rsvps).Error; err != nil {
		return nil, err
	}
	return rsvps, nil
}
