package models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content     string    `gorm:"type:text;not null"`
	Read        bool      `gorm:"not null;default:false"`
	Attachments string    `gorm:"type:text"` // JSON array of URLs
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}
