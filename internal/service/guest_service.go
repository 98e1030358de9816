package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamento/registry/internal/model"
	"casamento/registry/internal/repository"
)

type ListSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	ShareableLink string    `json:"shareable_link"`
}

type GuestEvent struct {
	Rsvp        model.Rsvp  `json:"rsvp"`
	WeddingList ListSummary `json:"wedding_list"`
}

type GuestDetails struct {
	UserID uuid.UUID    `json:"user_id"`
	Events []GuestEvent `json:"events"`
}

// GuestService is the guest-facing read surface: the shared list view and
// the guest's own event overview.
type GuestService interface {
	PublicList(ctx context.Context, guestID uuid.UUID, shareableLink string) (*model.WeddingList, error)
	MyDetails(ctx context.Context, guestID uuid.UUID) (*GuestDetails, error)
}

type guestService struct {
	listRepo        repository.WeddingListRepository
	reservationRepo repository.ReservationRepository
	rsvpRepo        repository.RsvpRepository
}

func NewGuestService(
	listRepo repository.WeddingListRepository,
	reservationRepo repository.ReservationRepository,
	rsvpRepo repository.RsvpRepository,
) GuestService {
	return &guestService{
		listRepo:        listRepo,
		reservationRepo: reservationRepo,
		rsvpRepo:        rsvpRepo,
	}
}

func (s *guestService) PublicList(ctx context.Context, guestID uuid.UUID, shareableLink string) (*model.WeddingList, error) {
	list, err := s.listRepo.GetByShareableLink(ctx, shareableLink)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("load list by link: %w", err)
	}

	// Annotate each item with the caller's own reservation so the client
	// can offer cancellation.
	itemIDs := make([]uuid.UUID, len(list.Items))
	for i, item := range list.Items {
		itemIDs[i] = item.ID
	}
	reservations, err := s.reservationRepo.ListByGuestForItems(ctx, guestID, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	byItem := make(map[uuid.UUID]uuid.UUID, len(reservations))
	for _, r := range reservations {
		byItem[r.GiftItemID] = r.ID
	}
	for i := range list.Items {
		if resID, ok := byItem[list.Items[i].ID]; ok {
			id := resID
			list.Items[i].MyReservationID = &id
		}
	}

	return list, nil
}

func (s *guestService) MyDetails(ctx context.Context, guestID uuid.UUID) (*GuestDetails, error) {
	rsvps, err := s.rsvpRepo.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("load rsvps: %w", err)
	}

	listIDs := make([]uuid.UUID, 0, len(rsvps))
	seen := make(map[uuid.UUID]struct{}, len(rsvps))
	for _, r := range rsvps {
		if _, ok := seen[r.WeddingListID]; !ok {
			seen[r.WeddingListID] = struct{}{}
			listIDs = append(listIDs, r.WeddingListID)
		}
	}
	lists, err := s.listRepo.GetByIDs(ctx, listIDs)
	if err != nil {
		return nil, fmt.Errorf("load lists: %w", err)
	}
	byID := make(map[uuid.UUID]model.WeddingList, len(lists))
	for _, l := range lists {
		byID[l.ID] = l
	}

	details := &GuestDetails{UserID: guestID, Events: []GuestEvent{}}
	for _, r := range rsvps {
		// RSVPs whose parent list is gone are silently skipped.
		list, ok := byID[r.WeddingListID]
		if !ok {
			continue
		}
		details.Events = append(details.Events, GuestEvent{
			Rsvp: r,
			WeddingList: ListSummary{
				ID:            list.ID,
				Title:         list.Title,
				ShareableLink: list.ShareableLink,
			},
		})
	}
	return details, nil
}

var _ GuestService = (*guestService)(nil)
