package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// GoalStatus represents the status of a mentorship goal.
type GoalStatus string

const (
	GoalStatusPending    GoalStatus = "pending"
	GoalStatusInProgress GoalStatus = "in-progress"
	GoalStatusCompleted  GoalStatus = "completed"
)

// Goal is a tracked objective attached to an accepted mentorship.
type Goal struct {
	ID           uuid.UUID   `json:"id"`
	MentorshipID uuid.UUID   `json:"mentorshipId"`
	Title        string      `json:"title"`
	Description  null.String `json:"description,omitempty"`
	Deadline     null.Time   `json:"deadline,omitempty"`
	Status       GoalStatus  `json:"status"`
	Progress     int         `json:"progress"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// CreateGoalInput is the body of a create-goal call.
type CreateGoalInput struct {
	MentorshipID uuid.UUID  `json:"mentorshipId" binding:"required"`
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	Deadline     *time.Time `json:"deadline"`
}

// UpdateGoalInput is the body of an update-goal call.
type UpdateGoalInput struct {
	Status   *string `json:"status,omitempty" binding:"omitempty,oneof=pending in-progress completed"`
	Progress *int    `json:"progress,omitempty" binding:"omitempty,min=0,max=100"`
}
