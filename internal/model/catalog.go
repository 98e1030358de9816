package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category and TemplateGiftItem form the static suggestion catalog couples
// browse when building a list. Rows are seeded out of band; this service
// only reads them.
type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`

	TemplateItems []TemplateGiftItem `gorm:"foreignKey:CategoryID" json:"template_items,omitempty"`
}

func (Category) TableName() string { return "categories" }

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type TemplateGiftItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(256);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}

func (TemplateGiftItem) TableName() string { return "template_gift_items" }

func (t *TemplateGiftItem) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
