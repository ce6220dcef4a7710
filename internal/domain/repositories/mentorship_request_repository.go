package repositories

import (
	"context"

	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
)

// MentorshipRequestRepository defines mentorship request data operations.
//
// Create relies on a storage-level unique index on (mentor_id, mentee_id)
// and reports a duplicate as errors.ErrAlreadyExists. UpdateStatusIfPending
// is a conditional update guarded by the pending status: it reports
// errors.ErrNotFound when no pending row was updated, leaving the caller to
// distinguish a missing request from one already in a terminal state.
type MentorshipRequestRepository interface {
	Create(ctx context.Context, request *entities.MentorshipRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MentorshipRequest, error)
	ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entities.MentorshipRequest, error)
	ListByMentee(ctx context.Context, menteeID uuid.UUID) ([]*entities.MentorshipRequest, error)
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entities.RequestStatus, notes string) error
	HasAccepted(ctx context.Context, mentorID, menteeID uuid.UUID) (bool, error)
	ListAcceptedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
