package models

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MentorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MenteeID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Topic       string    `gorm:"type:varchar(255);not null"`
	StartTime   time.Time `gorm:"not null;index"`
	EndTime     time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null"`
	Notes       string    `gorm:"type:text"`
	MeetingLink string    `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
