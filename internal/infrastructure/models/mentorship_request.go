package models

import (
	"time"

	"github.com/google/uuid"
)

// MentorshipRequest carries a composite unique index on (mentor_id,
// mentee_id): duplicate prevention happens at the storage layer, not in
// application code.
type MentorshipRequest struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	MentorID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_requests_mentor_mentee"`
	MenteeID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_requests_mentor_mentee"`
	OpportunityID *uuid.UUID `gorm:"type:uuid"`
	Message       string     `gorm:"type:text;not null"`
	Status        string     `gorm:"type:varchar(20);not null;index"`
	Notes         string     `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
