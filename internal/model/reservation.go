package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation links a guest to a reserved gift item. The unique index on
// gift_item_id is the authoritative guard against two guests holding the
// same gift; the status check in the service is only the fast path.
type Reservation struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GiftItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_reservation_gift_item" json:"gift_item_id"`
	GuestID    uuid.UUID `gorm:"type:uuid;not null;index" json:"guest_id"`
	CreatedAt  time.Time `json:"created_at"`

	Guest User `gorm:"foreignKey:GuestID" json:"-"`
}

func (Reservation) TableName() string { return "reservations" }

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
