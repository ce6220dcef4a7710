package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Opportunity struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	MentorID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text;not null"`
	Requirements    string    `gorm:"type:text"`
	ApplicationLink string    `gorm:"type:varchar(512)"`
	Deadline        *time.Time
	Status          string `gorm:"type:varchar(20);not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
