package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GiftStatus string

const (
	GiftStatusAvailable GiftStatus = "available"
	GiftStatusReserved  GiftStatus = "reserved"
	GiftStatusPurchased GiftStatus = "purchased"
)

func (s GiftStatus) Valid() bool {
	switch s {
	case GiftStatusAvailable, GiftStatusReserved, GiftStatusPurchased:
		return true
	}
	return false
}

// GiftItem status and reserved-by are mutated through the reservation
// service only; owner edits touch name, description and the offline
// purchased flag.
type GiftItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"type:varchar(256);not null" json:"name"`
	Description   *string    `gorm:"type:text" json:"description,omitempty"`
	WeddingListID uuid.UUID  `gorm:"type:uuid;not null;index" json:"wedding_list_id"`
	Status        GiftStatus `gorm:"type:varchar(16);not null;default:'available'" json:"status"`
	ReservedByID  *uuid.UUID `gorm:"type:uuid" json:"reserved_by_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// MyReservationID is filled at read time on the guest-facing list view
	// with the calling guest's own reservation, when one exists.
	MyReservationID *uuid.UUID `gorm:"-" json:"my_reservation_id,omitempty"`

	WeddingList WeddingList `gorm:"foreignKey:WeddingListID" json:"-"`
	ReservedBy  *User       `gorm:"foreignKey:ReservedByID" json:"-"`
}

func (GiftItem) TableName() string { return "gift_items" }

func (g *GiftItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
