package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamento/registry/internal/model"
	"casamento/registry/internal/repository"
	"casamento/registry/pkg/crypto"
)

type CreateListInput struct {
	Title        string
	Message      *string
	EventDate    *time.Time
	DeliveryInfo *string
}

// UpdateListInput carries a merge-patch: nil fields are left untouched.
type UpdateListInput struct {
	Title        *string
	Message      *string
	EventDate    *time.Time
	DeliveryInfo *string
}

// UpdateItemInput carries a merge-patch over a gift item. Status edits go
// through here deliberately: the couple can mark a gift purchased offline,
// outside the guest-facing reservation machine.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Status      *model.GiftStatus
}

type ListService interface {
	CreateList(ctx context.Context, ownerID uuid.UUID, in CreateListInput) (*model.WeddingList, error)
	MyLists(ctx context.Context, ownerID uuid.UUID) ([]model.WeddingList, error)
	UpdateList(ctx context.Context, ownerID, listID uuid.UUID, in UpdateListInput) (*model.WeddingList, error)
	RotateLink(ctx context.Context, ownerID, listID uuid.UUID) (*model.WeddingList, error)
	DeleteList(ctx context.Context, ownerID, listID uuid.UUID) error
	AddItem(ctx context.Context, ownerID, listID uuid.UUID, name string, description *string) (*model.GiftItem, error)
	UpdateItem(ctx context.Context, ownerID, listID, itemID uuid.UUID, in UpdateItemInput) (*model.GiftItem, error)
	DeleteItem(ctx context.Context, ownerID, listID, itemID uuid.UUID) error
}

type listService struct {
	listRepo repository.WeddingListRepository
	itemRepo repository.GiftItemRepository
}

func NewListService(listRepo repository.WeddingListRepository, itemRepo repository.GiftItemRepository) ListService {
	return &listService{listRepo: listRepo, itemRepo: itemRepo}
}

func (s *listService) CreateList(ctx context.Context, ownerID uuid.UUID, in CreateListInput) (*model.WeddingList, error) {
	link, err := crypto.GenerateShareableLink()
	if err != nil {
		return nil, fmt.Errorf("generate shareable link: %w", err)
	}

	list := &model.WeddingList{
		Title:         in.Title,
		Message:       in.Message,
		EventDate:     in.EventDate,
		DeliveryInfo:  in.DeliveryInfo,
		ShareableLink: link,
		OwnerID:       ownerID,
	}
	if err := s.listRepo.Create(ctx, list); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLinkCollision
		}
		return nil, fmt.Errorf("create list: %w", err)
	}
	return list, nil
}

func (s *listService) MyLists(ctx context.Context, ownerID uuid.UUID) ([]model.WeddingList, error) {
	return s.listRepo.ListByOwner(ctx, ownerID)
}

// ownedList reports ownership mismatch as plain not-found so a list's
// existence never leaks to non-owners.
func (s *listService) ownedList(ctx context.Context, ownerID, listID uuid.UUID) (*model.WeddingList, error) {
	list, err := s.listRepo.GetByIDAndOwner(ctx, listID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("load list: %w", err)
	}
	return list, nil
}

func (s *listService) UpdateList(ctx context.Context, ownerID, listID uuid.UUID, in UpdateListInput) (*model.WeddingList, error) {
	list, err := s.ownedList(ctx, ownerID, listID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		list.Title = *in.Title
	}
	if in.Message != nil {
		list.Message = in.Message
	}
	if in.EventDate != nil {
		list.EventDate = in.EventDate
	}
	if in.DeliveryInfo != nil {
		list.DeliveryInfo = in.DeliveryInfo
	}

	if err := s.listRepo.Save(ctx, list); err != nil {
		return nil, fmt.Errorf("update list: %w", err)
	}
	return list, nil
}

func (s *listService) RotateLink(ctx context.Context, ownerID, listID uuid.UUID) (*model.WeddingList, error) {
	list, err := s.ownedList(ctx, ownerID, listID)
	if err != nil {
		return nil, err
	}

	// Always rotate, even back to back: the old link must stop resolving
	// the moment a new one is issued.
	link, err := crypto.GenerateShareableLink()
	if err != nil {
		return nil, fmt.Errorf("generate shareable link: %w", err)
	}
	list.ShareableLink = link

	if err := s.listRepo.Save(ctx, list); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLinkCollision
		}
		return nil, fmt.Errorf("rotate link: %w", err)
	}
	return list, nil
}

func (s *listService) DeleteList(ctx context.Context, ownerID, listID uuid.UUID) error {
	list, err := s.ownedList(ctx, ownerID, listID)
	if err != nil {
		return err
	}
	if err := s.listRepo.Delete(ctx, list); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

func (s *listService) AddItem(ctx context.Context, ownerID, listID uuid.UUID, name string, description *string) (*model.GiftItem, error) {
	list, err := s.ownedList(ctx, ownerID, listID)
	if err != nil {
		return nil, err
	}

	item := &model.GiftItem{
		Name:          name,
		Description:   description,
		WeddingListID: list.ID,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

func (s *listService) ownedItem(ctx context.Context, ownerID, listID, itemID uuid.UUID) (*model.GiftItem, error) {
	list, err := s.ownedList(ctx, ownerID, listID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByIDInList(ctx, itemID, list.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("load item: %w", err)
	}
	return item, nil
}

func (s *listService) UpdateItem(ctx context.Context, ownerID, listID, itemID uuid.UUID, in UpdateItemInput) (*model.GiftItem, error) {
	item, err := s.ownedItem(ctx, ownerID, listID, itemID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
		item.Name = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
		item.Description = in.Description
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, ErrInvalidGiftStatus
		}
		fields["status"] = *in.Status
		item.Status = *in.Status
	}

	if err := s.itemRepo.UpdateFields(ctx, item.ID, fields); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

func (s *listService) DeleteItem(ctx context.Context, ownerID, listID, itemID uuid.UUID) error {
	item, err := s.ownedItem(ctx, ownerID, listID, itemID)
	if err != nil {
		return err
	}
	if err := s.itemRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

var _ ListService = (*listService)(nil)
