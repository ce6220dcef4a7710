package models

import (
	"time"

	"github.com/google/uuid"
)

type Goal struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	MentorshipID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Deadline     *time.Time
	Status       string `gorm:"type:varchar(20);not null"`
	Progress     int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
