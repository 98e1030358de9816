package repository

import (
	"context"

	"casamento/registry/internal/model"
)

type CatalogRepository interface {
	ListTemplateItems(ctx context.Context) ([]model.TemplateGiftItem, error)
}
