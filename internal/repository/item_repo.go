package repository

import (
	"context"

	"github.com/google/uuid"

	"casamento/registry/internal/model"
)

type GiftItemRepository interface {
	Create(ctx context.Context, item *model.GiftItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.GiftItem, error)
	GetByIDInList(ctx context.Context, id, listID uuid.UUID) (*model.GiftItem, error)
	// UpdateFields applies a partial update; only keys present in fields are touched.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}
