package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeddingList struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string     `gorm:"type:varchar(256);not null" json:"title"`
	Message       *string    `gorm:"type:text" json:"message,omitempty"`
	EventDate     *time.Time `json:"event_date,omitempty"`
	DeliveryInfo  *string    `gorm:"type:text" json:"delivery_info,omitempty"`
	ShareableLink string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"shareable_link"`
	OwnerID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Owner User       `gorm:"foreignKey:OwnerID" json:"-"`
	Items []GiftItem `gorm:"foreignKey:WeddingListID" json:"items,omitempty"`
	Rsvps []Rsvp     `gorm:"foreignKey:WeddingListID" json:"rsvps,omitempty"`
}

func (WeddingList) TableName() string { return "wedding_lists" }

func (l *WeddingList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
