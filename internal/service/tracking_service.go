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

type TrackingGift struct {
	Gift           model.GiftItem `json:"gift"`
	ReservedByID   uuid.UUID      `json:"reserved_by_id"`
	ReservedByName string         `json:"reserved_by_name"`
}

// TrackingRsvpEntry is a display row: either a guest's own RSVP or one of
// its expanded companions. Companion entries carry a synthetic display id
// derived from the parent RSVP and token position; they are never persisted.
type TrackingRsvpEntry struct {
	ID               string           `json:"id"`
	GuestID          uuid.UUID        `json:"guest_id"`
	GuestName        string           `json:"guest_name"`
	Status           model.RsvpStatus `json:"status"`
	AdditionalGuests *string          `json:"additional_guests,omitempty"`
}

type TrackingReport struct {
	ListID uuid.UUID           `json:"list_id"`
	Gifts  []TrackingGift      `json:"gifts"`
	Rsvps  []TrackingRsvpEntry `json:"rsvps"`
}

// TrackingService builds the consolidated owner view over reserved gifts
// and attendance answers. Read-only.
type TrackingService interface {
	BuildReport(ctx context.Context, ownerID, listID uuid.UUID) (*TrackingReport, error)
}

type trackingService struct {
	listRepo repository.WeddingListRepository
	rsvpRepo repository.RsvpRepository
}

func NewTrackingService(listRepo repository.WeddingListRepository, rsvpRepo repository.RsvpRepository) TrackingService {
	return &trackingService{listRepo: listRepo, rsvpRepo: rsvpRepo}
}

func (s *trackingService) BuildReport(ctx context.Context, ownerID, listID uuid.UUID) (*TrackingReport, error) {
	list, err := s.listRepo.GetByIDAndOwner(ctx, listID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("load list: %w", err)
	}

	report := &TrackingReport{
		ListID: list.ID,
		Gifts:  []TrackingGift{},
		Rsvps:  []TrackingRsvpEntry{},
	}

	// Untouched available items stay out of the report.
	for _, item := range list.Items {
		if item.ReservedByID == nil {
			continue
		}
		entry := TrackingGift{Gift: item, ReservedByID: *item.ReservedByID}
		if item.ReservedBy != nil {
			entry.ReservedByName = item.ReservedBy.Username
		}
		report.Gifts = append(report.Gifts, entry)
	}

	rsvps, err := s.rsvpRepo.ListByList(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("load rsvps: %w", err)
	}
	for _, rsvp := range rsvps {
		report.Rsvps = append(report.Rsvps, TrackingRsvpEntry{
			ID:               rsvp.ID.String(),
			GuestID:          rsvp.GuestID,
			GuestName:        rsvp.Guest.Username,
			Status:           rsvp.Status,
			AdditionalGuests: rsvp.AdditionalGuests,
		})
		for idx, name := range splitCompanions(rsvp.AdditionalGuests) {
			report.Rsvps = append(report.Rsvps, TrackingRsvpEntry{
				ID:        fmt.Sprintf("%s#%d", rsvp.ID, idx),
				GuestID:   rsvp.GuestID,
				GuestName: name,
				Status:    rsvp.Status,
			})
		}
	}

	return report, nil
}

var _ TrackingService = (*trackingService)(nil)
