package entities

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the status of a mentorship session.
type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// Session is a scheduled meeting between a mentor and a mentee.
type Session struct {
	ID          uuid.UUID     `json:"id"`
	MentorID    uuid.UUID     `json:"mentorId"`
	MenteeID    uuid.UUID     `json:"menteeId"`
	Topic       string        `json:"topic"`
	StartTime   time.Time     `json:"startTime"`
	EndTime     time.Time     `json:"endTime"`
	Status      SessionStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	MeetingLink string        `json:"meetingLink,omitempty"`
	Mentor      *UserSummary  `json:"mentor,omitempty"`
	Mentee      *UserSummary  `json:"mentee,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// CreateSessionInput is the body of a create-session call.
type CreateSessionInput struct {
	MentorID    uuid.UUID `json:"mentorId" binding:"required"`
	MenteeID    uuid.UUID `json:"menteeId" binding:"required"`
	Topic       string    `json:"topic" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	MeetingLink string    `json:"meetingLink"`
}
