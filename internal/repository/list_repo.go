package repository

import (
	"context"

	"github.com/google/uuid"

	"casamento/registry/internal/model"
)

type WeddingListRepository interface {
	Create(ctx context.Context, list *model.WeddingList) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.WeddingList, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.WeddingList, error)
	GetByShareableLink(ctx context.Context, link string) (*model.WeddingList, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.WeddingList, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.WeddingList, error)
	Save(ctx context.Context, list *model.WeddingList) error
	// Delete removes the list together with its items, reservations and RSVPs
	// in one transaction.
	Delete(ctx context.Context, list *model.WeddingList) error
}
