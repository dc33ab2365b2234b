package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Field is a cultivated land parcel. Coordinates and area are kept as the
// decimal strings the client sent so they round-trip unchanged.
type Field struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"index;not null" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	Latitude  string    `gorm:"not null" json:"latitude"`
	Longitude string    `gorm:"not null" json:"longitude"`
	Area      string    `gorm:"not null" json:"area"` // hectares
	CropType  CropType  `gorm:"not null" json:"cropType"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (f *Field) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
