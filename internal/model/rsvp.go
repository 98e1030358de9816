package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RsvpStatus string

const (
	RsvpStatusPending   RsvpStatus = "pending"
	RsvpStatusConfirmed RsvpStatus = "confirmed"
	RsvpStatusDeclined  RsvpStatus = "declined"
)

func (s RsvpStatus) Valid() bool {
	switch s {
	case RsvpStatusPending, RsvpStatusConfirmed, RsvpStatusDeclined:
		return true
	}
	return false
}

// Rsvp holds one attendance answer per (wedding list, guest) pair.
// AdditionalGuests is free text, comma-separated companion names; companions
// are expanded at read time and never stored as rows of their own.
type Rsvp struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	WeddingListID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_rsvp_list_guest" json:"wedding_list_id"`
	GuestID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_rsvp_list_guest" json:"guest_id"`
	Status           RsvpStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	AdditionalGuests *string    `gorm:"type:text" json:"additional_guests,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	WeddingList WeddingList `gorm:"foreignKey:WeddingListID" json:"-"`
	Guest       User        `gorm:"foreignKey:GuestID" json:"-"`
}

func (Rsvp) TableName() string { return "rsvps" }

func (r *Rsvp) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
