package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// OpportunityStatus represents the status of an opportunity posting.
type OpportunityStatus string

const (
	OpportunityStatusOpen   OpportunityStatus = "open"
	OpportunityStatusClosed OpportunityStatus = "closed"
)

// Opportunity is a posting owned by a mentor.
type Opportunity struct {
	ID              uuid.UUID         `json:"id"`
	MentorID        uuid.UUID         `json:"mentorId"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Requirements    null.String       `json:"requirements,omitempty"`
	ApplicationLink null.String       `json:"applicationLink,omitempty"`
	Deadline        null.Time         `json:"deadline,omitempty"`
	Status          OpportunityStatus `json:"status"`
	Mentor          *UserSummary      `json:"mentor,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// CreateOpportunityInput is the body of a create-opportunity call.
type CreateOpportunityInput struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description" binding:"required"`
	Requirements    string     `json:"requirements"`
	ApplicationLink string     `json:"applicationLink"`
	Deadline        *time.Time `json:"deadline"`
}

// UpdateOpportunityInput is the body of an update-opportunity call. Nil
// fields are left untouched.
type UpdateOpportunityInput struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Requirements    *string    `json:"requirements,omitempty"`
	ApplicationLink *string    `json:"applicationLink,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	Status          *string    `json:"status,omitempty"`
}

// OpportunitySearch holds catalog search filters.
type OpportunitySearch struct {
	Title         string `form:"title"`
	OnlyOpen      bool   `form:"open"`
	DeadlineAfter *time.Time
}
