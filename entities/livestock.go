package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Livestock is a group of animals of one type.
type Livestock struct {
	ID        string        `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string        `gorm:"index;not null" json:"userId"`
	Type      LivestockType `gorm:"not null" json:"type"`
	Count     int           `gorm:"not null" json:"count"`
	CreatedAt time.Time     `json:"-"`
	UpdatedAt time.Time     `json:"-"`
}

// TableName keeps the singular table name the original schema used.
func (Livestock) TableName() string { return "livestock" }

func (l *Livestock) BeforeCreate(*gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
