package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamento/registry/internal/model"
	"casamento/registry/internal/repository"
)

type RsvpService interface {
	// Submit upserts the guest's answer for the list: a resubmission
	// overwrites the existing row instead of creating a second one.
	Submit(ctx context.Context, guestID, listID uuid.UUID, status model.RsvpStatus, additionalGuests *string) (*model.Rsvp, error)
}

type rsvpService struct {
	listRepo repository.WeddingListRepository
	rsvpRepo repository.RsvpRepository
}

func NewRsvpService(listRepo repository.WeddingListRepository, rsvpRepo repository.RsvpRepository) RsvpService {
	return &rsvpService{listRepo: listRepo, rsvpRepo: rsvpRepo}
}

func (s *rsvpService) Submit(ctx context.Context, guestID, listID uuid.UUID, status model.RsvpStatus, additionalGuests *string) (*model.Rsvp, error) {
	if !status.Valid() {
		return nil, ErrInvalidRsvpStatus
	}

	if _, err := s.listRepo.GetByID(ctx, listID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("load list: %w", err)
	}

	existing, err := s.rsvpRepo.GetByListAndGuest(ctx, listID, guestID)
	switch {
	case err == nil:
		existing.Status = status
		existing.AdditionalGuests = additionalGuests
		if err := s.rsvpRepo.Save(ctx, existing); err != nil {
			return nil, fmt.Errorf("update rsvp: %w", err)
		}
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		rsvp := &model.Rsvp{
			WeddingListID:    listID,
			GuestID:          guestID,
			Status:           status,
			AdditionalGuests: additionalGuests,
		}
		if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
			return nil, fmt.Errorf("create rsvp: %w", err)
		}
		return rsvp, nil
	default:
		return nil, fmt.Errorf("load rsvp: %w", err)
	}
}

// splitCompanions parses the free-text companion field: comma-separated
// names, trimmed, empties dropped.
func splitCompanions(additionalGuests *string) []string {
	if additionalGuests == nil {
		return nil
	}
	var names []string
	for _, tok := range strings.Split(*additionalGuests, ",") {
		if name := strings.TrimSpace(tok); name != "" {
			names = append(names, name)
		}
	}
	return names
}

var _ RsvpService = (*rsvpService)(nil)
