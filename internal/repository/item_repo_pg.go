package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamento/registry/internal/model"
)

type pgGiftItemRepository struct {
	db *gorm.DB
}

func NewPGGiftItemRepository(db *gorm.DB) GiftItemRepository {
	return &pgGiftItemRepository{db: db}
}

func (r *pgGiftItemRepository) Create(ctx context.Context, item *model.GiftItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pgGiftItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.GiftItem, error) {
	var item model.GiftItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pgGiftItemRepository) GetByIDInList(ctx context.Context, id, listID uuid.UUID) (*model.GiftItem, error) {
	var item model.GiftItem
	if err := r.db.WithContext(ctx).
		First(&item, "id = ? AND wedding_list_id = ?", id, listID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pgGiftItemRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.GiftItem{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *pgGiftItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gift_item_id = ?", id).
			Delete(&model.Reservation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.GiftItem{}, "id = ?", id).Error
	})
}
