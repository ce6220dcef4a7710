package entities

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the status of a mentorship request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// Terminal reports whether the status admits no further transitions.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// MentorshipRequest tracks a connection request from a mentee to a mentor.
// At most one request exists per (mentor, mentee) pair; the pending state
// transitions exactly once to accepted or rejected.
type MentorshipRequest struct {
	ID            uuid.UUID     `json:"id"`
	MentorID      uuid.UUID     `json:"mentorId"`
	MenteeID      uuid.UUID     `json:"menteeId"`
	OpportunityID *uuid.UUID    `json:"opportunityId,omitempty"`
	Message       string        `json:"message"`
	Status        RequestStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	Mentor        *UserSummary  `json:"mentor,omitempty"`
	Mentee        *UserSummary  `json:"mentee,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// CreateRequestInput is the body of a create-request call.
type CreateRequestInput struct {
	Message       string     `json:"message" binding:"required"`
	OpportunityID *uuid.UUID `json:"opportunityId,omitempty"`
}
