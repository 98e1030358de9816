package repository

import (
	"context"

	"gorm.io/gorm"

	"casamento/registry/internal/model"
)

type pgCatalogRepository struct {
	db *gorm.DB
}

func NewPGCatalogRepository(db *gorm.DB) CatalogRepository {
	return &pgCatalogRepository{db: db}
}

func (r *pgCatalogRepository) ListTemplateItems(ctx context.Context) ([]model.TemplateGiftItem, error) {
	var items []model.TemplateGiftItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
