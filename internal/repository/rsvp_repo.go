package repository

import (
	"context"

	"github.com/google/uuid"

	"casamento/registry/internal/model"
)

type RsvpRepository interface {
	Create(ctx context.Context, rsvp *model.Rsvp) error
	Save(ctx context.Context, rsvp *model.Rsvp) error
	GetByListAndGuest(ctx context.Context, listID, guestID uuid.UUID) (*model.Rsvp, error)
	ListByList(ctx context.Context, listID uuid.UUID) ([]model.Rsvp, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]model.Rsvp, error)
}
