package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/domain/repositories"
	"scholars-connect.backend/internal/metrics"
)

// MentorshipUsecase handles the mentorship request lifecycle
type MentorshipUsecase struct {
	requestRepo      repositories.MentorshipRequestRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	publisher        Publisher
}

// NewMentorshipUsecase creates a new mentorship usecase
func NewMentorshipUsecase(
	requestRepo repositories.MentorshipRequestRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	publisher Publisher,
) *MentorshipUsecase {
	return &MentorshipUsecase{
		requestRepo:      requestRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

// CreateRequest sends a mentorship request from a mentee to a mentor.
// Duplicate prevention is the storage layer's job: the insert hits the
// (mentor, mentee) unique index and a duplicate maps to a conflict, so
// concurrent submissions cannot both succeed.
func (u *MentorshipUsecase) CreateRequest(ctx context.Context, menteeID, mentorID uuid.UUID, input *entities.CreateRequestInput) (*entities.MentorshipRequest, error) {
	if menteeID == mentorID {
		return nil, domainerrors.BadRequest("cannot send a mentorship request to yourself")
	}

	mentee, err := u.userRepo.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	if mentee.Role == entities.UserRoleMentor {
		return nil, domainerrors.Forbidden("mentors cannot send mentorship requests")
	}

	mentor, err := u.userRepo.GetByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("mentor not found")
		}
		return nil, err
	}
	if mentor.Role != entities.UserRoleMentor {
		return nil, domainerrors.BadRequest("user is not a mentor")
	}

	request := &entities.MentorshipRequest{
		ID:            uuid.New(),
		MentorID:      mentorID,
		MenteeID:      menteeID,
		OpportunityID: input.OpportunityID,
		Message:       input.Message,
		Status:        entities.RequestStatusPending,
	}

	if err := u.requestRepo.Create(ctx, request); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("a request to this mentor already exists")
		}
		return nil, err
	}

	metrics.IncRequestCreated()

	reqID := request.ID
	dispatchNotification(ctx, u.notificationRepo, u.publisher, &entities.Notification{
		RecipientID: mentorID,
		Type:        entities.NotificationNewRequest,
		Title:       "New mentorship request",
		Message:     fmt.Sprintf("%s sent you a mentorship request", mentee.Name),
		RelatedItem: &reqID,
		ItemKind:    entities.ItemKindRequest,
	})

	request.Mentor = mentor.Summary()
	request.Mentee = mentee.Summary()
	return request, nil
}

// ListIncoming lists requests addressed to a mentor, newest first.
func (u *MentorshipUsecase) ListIncoming(ctx context.Context, mentorID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	requests, err := u.requestRepo.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	u.attachParties(ctx, requests)
	return requests, nil
}

// ListOutgoing lists requests a mentee has sent, newest first.
func (u *MentorshipUsecase) ListOutgoing(ctx context.Context, menteeID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	requests, err := u.requestRepo.ListByMentee(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	u.attachParties(ctx, requests)
	return requests, nil
}

// Accept moves a pending request to accepted and writes the mentor's
// contact disclosure into its notes.
func (u *MentorshipUsecase) Accept(ctx context.Context, requestID, mentorID uuid.UUID) (*entities.MentorshipRequest, error) {
	return u.decide(ctx, requestID, mentorID, entities.RequestStatusAccepted)
}

// Reject moves a pending request to rejected.
func (u *MentorshipUsecase) Reject(ctx context.Context, requestID, mentorID uuid.UUID) (*entities.MentorshipRequest, error) {
	return u.decide(ctx, requestID, mentorID, entities.RequestStatusRejected)
}

// decide performs the guarded pending-to-terminal transition. The update is
// conditional on the pending status, so of two concurrent decisions exactly
// one sees a row change; the loser re-reads and reports the state that beat
// it.
func (u *MentorshipUsecase) decide(ctx context.Context, requestID, mentorID uuid.UUID, status entities.RequestStatus) (*entities.MentorshipRequest, error) {
	request, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("mentorship request not found")
		}
		return nil, err
	}
	if request.MentorID != mentorID {
		return nil, domainerrors.Forbidden("request is addressed to another mentor")
	}

	notes := ""
	if status == entities.RequestStatusAccepted {
		mentor, err := u.userRepo.GetByID(ctx, mentorID)
		if err != nil {
			return nil, err
		}
		notes = SynthesizeDisclosure(mentor.Contact)
		if notes == "" {
			notes = "Your mentor has not shared contact details yet."
		}
	}

	if err := u.requestRepo.UpdateStatusIfPending(ctx, requestID, status, notes); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, u.terminalConflict(ctx, requestID)
		}
		return nil, err
	}

	metrics.IncRequestDecision(string(status))

	request.Status = status
	request.Notes = notes

	title := "Request accepted"
	body := "Your mentorship request was accepted"
	if status == entities.RequestStatusRejected {
		title = "Request declined"
		body = "Your mentorship request was declined"
	}
	reqID := request.ID
	dispatchNotification(ctx, u.notificationRepo, u.publisher, &entities.Notification{
		RecipientID: request.MenteeID,
		Type:        entities.NotificationRequestUpdate,
		Title:       title,
		Message:     body,
		RelatedItem: &reqID,
		ItemKind:    entities.ItemKindRequest,
	})

	return request, nil
}

// terminalConflict re-reads a request that refused a transition and names
// the state that won.
func (u *MentorshipUsecase) terminalConflict(ctx context.Context, requestID uuid.UUID) error {
	current, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("mentorship request not found")
		}
		return err
	}
	return domainerrors.Conflict(fmt.Sprintf("request already %s", current.Status))
}

// attachParties joins user summaries onto requests. Lookups are best
// effort; a missing party leaves the summary nil.
func (u *MentorshipUsecase) attachParties(ctx context.Context, requests []*entities.MentorshipRequest) {
	cache := make(map[uuid.UUID]*entities.UserSummary)
	lookup := func(id uuid.UUID) *entities.UserSummary {
		if s, ok := cache[id]; ok {
			return s
		}
		user, err := u.userRepo.GetByID(ctx, id)
		if err != nil {
			cache[id] = nil
			return nil
		}
		cache[id] = user.Summary()
		return cache[id]
	}

	for _, r := range requests {
		r.Mentor = lookup(r.MentorID)
		r.Mentee = lookup(r.MenteeID)
	}
}
