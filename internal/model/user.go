package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	// RoleCasal is the couple that owns and manages wedding lists.
	RoleCasal UserRole = "CASAL"
	// RoleConvidado is a guest that views shared lists, reserves gifts and RSVPs.
	RoleConvidado UserRole = "CONVIDADO"
)

func (r UserRole) Valid() bool {
	return r == RoleCasal || r == RoleConvidado
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(128);not null" json:"username"`
	Email        string    `gorm:"type:varchar(256);not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(128);not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(16);not null;default:'CASAL'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	WeddingLists []WeddingList `gorm:"foreignKey:OwnerID" json:"wedding_lists,omitempty"`
	Rsvps        []Rsvp        `gorm:"foreignKey:GuestID" json:"rsvps,omitempty"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
