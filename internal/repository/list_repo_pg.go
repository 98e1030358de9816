package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamento/registry/internal/model"
)

type pgWeddingListRepository struct {
	db *gorm.DB
}

func NewPGWeddingListRepository(db *gorm.DB) WeddingListRepository {
	return &pgWeddingListRepository{db: db}
}

func (r *pgWeddingListRepository) Create(ctx context.Context, list *model.WeddingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *pgWeddingListRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.WeddingList, error) {
	var list model.WeddingList
	if err := r.db.WithContext(ctx).First(&list, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *pgWeddingListRepository) GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.WeddingList, error) {
	var list model.WeddingList
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Items.ReservedBy").
		First(&list, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *pgWeddingListRepository) GetByShareableLink(ctx context.Context, link string) (*model.WeddingList, error) {
	var list model.WeddingList
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&list, "shareable_link = ?", link).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *pgWeddingListRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.WeddingList, error) {
	var lists []model.WeddingList
	if len(ids) == 0 {
		return lists, nil
	}
	if err := r.db.WithContext(ctx).Find(&lists, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *pgWeddingListRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.WeddingList, error) {
	var lists []model.WeddingList
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *pgWeddingListRepository) Save(ctx context.Context, list *model.WeddingList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

func (r *pgWeddingListRepository) Delete(ctx context.Context, list *model.WeddingList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		itemIDs := tx.Model(&model.GiftItem{}).
			Select("id").
			Where("wedding_list_id = ?", list.ID)
		if err := tx.Where("gift_item_id IN (?)", itemIDs).
			Delete(&model.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("wedding_list_id = ?", list.ID).
			Delete(&model.GiftItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("wedding_list_id = ?", list.ID).
			Delete(&model.Rsvp{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.WeddingList{}, "id = ?", list.ID).Error
	})
}
