package models

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type        string     `gorm:"type:varchar(50);not null"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Message     string     `gorm:"type:text;not null"`
	Read        bool       `gorm:"not null;default:false"`
	RelatedItem *uuid.UUID `gorm:"type:uuid"`
	ItemKind    string     `gorm:"type:varchar(50)"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
}
