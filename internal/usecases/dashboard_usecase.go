package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/domain/repositories"
)

// DashboardStats aggregates the numbers shown on a user's landing page.
type DashboardStats struct {
	ActiveMentors     int64 `json:"activeMentors"`
	Opportunities     int64 `json:"opportunities"`
	Messages          int64 `json:"messages"`
	ActiveMentorships int   `json:"activeMentorships"`
}

// DashboardUsecase aggregates stats, sessions and goals
type DashboardUsecase struct {
	userRepo        repositories.UserRepository
	opportunityRepo repositories.OpportunityRepository
	messageRepo     repositories.MessageRepository
	requestRepo     repositories.MentorshipRequestRepository
	sessionRepo     repositories.SessionRepository
	goalRepo        repositories.GoalRepository
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(
	userRepo repositories.UserRepository,
	opportunityRepo repositories.OpportunityRepository,
	messageRepo repositories.MessageRepository,
	requestRepo repositories.MentorshipRequestRepository,
	sessionRepo repositories.SessionRepository,
	goalRepo repositories.GoalRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		userRepo:        userRepo,
		opportunityRepo: opportunityRepo,
		messageRepo:     messageRepo,
		requestRepo:     requestRepo,
		sessionRepo:     sessionRepo,
		goalRepo:        goalRepo,
	}
}

// Stats computes dashboard numbers for a user. Mentors see their own
// opportunity count, mentees the whole catalog.
func (u *DashboardUsecase) Stats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, err
	}

	stats := &DashboardStats{}

	if stats.ActiveMentors, err = u.userRepo.CountByRole(ctx, entities.UserRoleMentor); err != nil {
		return nil, err
	}

	var mentorFilter *uuid.UUID
	if user.Role == entities.UserRoleMentor {
		mentorFilter = &user.ID
	}
	if stats.Opportunities, err = u.opportunityRepo.Count(ctx, mentorFilter); err != nil {
		return nil, err
	}

	if stats.Messages, err = u.messageRepo.CountForUser(ctx, userID); err != nil {
		return nil, err
	}

	accepted, err := u.requestRepo.ListAcceptedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.ActiveMentorships = len(accepted)

	return stats, nil
}

// UpcomingSessions lists the user's scheduled sessions, soonest first.
func (u *DashboardUsecase) UpcomingSessions(ctx context.Context, userID uuid.UUID) ([]*entities.Session, error) {
	return u.sessionRepo.ListUpcoming(ctx, userID, time.Now())
}

// CreateSession schedules a session. The caller must be one of the two
// parties and the pair must hold an accepted mentorship.
func (u *DashboardUsecase) CreateSession(ctx context.Context, callerID uuid.UUID, input *entities.CreateSessionInput) (*entities.Session, error) {
	if callerID != input.MentorID && callerID != input.MenteeID {
		return nil, domainerrors.Forbidden("sessions can only be scheduled by a participant")
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, domainerrors.BadRequest("session end must be after its start")
	}

	accepted, err := u.requestRepo.HasAccepted(ctx, input.MentorID, input.MenteeID)
	if err != nil {
		return nil, err
	}
	if !accepted {
		return nil, domainerrors.Forbidden("no accepted mentorship between these users")
	}

	session := &entities.Session{
		ID:          uuid.New(),
		MentorID:    input.MentorID,
		MenteeID:    input.MenteeID,
		Topic:       input.Topic,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Status:      entities.SessionStatusScheduled,
		MeetingLink: input.MeetingLink,
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Goals lists goals across the user's accepted mentorships.
func (u *DashboardUsecase) Goals(ctx context.Context, userID uuid.UUID) ([]*entities.Goal, error) {
	mentorshipIDs, err := u.requestRepo.ListAcceptedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.goalRepo.ListByMentorships(ctx, mentorshipIDs)
}

// CreateGoal attaches a goal to one of the caller's accepted mentorships.
func (u *DashboardUsecase) CreateGoal(ctx context.Context, callerID uuid.UUID, input *entities.CreateGoalInput) (*entities.Goal, error) {
	request, err := u.requestRepo.GetByID(ctx, input.MentorshipID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("mentorship not found")
		}
		return nil, err
	}
	if request.Status != entities.RequestStatusAccepted {
		return nil, domainerrors.BadRequest("goals require an accepted mentorship")
	}
	if request.MentorID != callerID && request.MenteeID != callerID {
		return nil, domainerrors.Forbidden("goal can only be created by a participant")
	}

	goal := &entities.Goal{
		ID:           uuid.New(),
		MentorshipID: input.MentorshipID,
		Title:        input.Title,
		Description:  null.NewString(input.Description, input.Description != ""),
		Status:       entities.GoalStatusPending,
	}
	if input.Deadline != nil {
		goal.Deadline = null.TimeFrom(*input.Deadline)
	}

	if err := u.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateGoal updates status or progress of a goal on one of the caller's
// mentorships. Completing a goal pins progress to 100.
func (u *DashboardUsecase) UpdateGoal(ctx context.Context, goalID, callerID uuid.UUID, input *entities.UpdateGoalInput) (*entities.Goal, error) {
	goal, err := u.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("goal not found")
		}
		return nil, err
	}

	request, err := u.requestRepo.GetByID(ctx, goal.MentorshipID)
	if err != nil {
		return nil, err
	}
	if request.MentorID != callerID && request.MenteeID != callerID {
		return nil, domainerrors.Forbidden("goal belongs to another mentorship")
	}

	if input.Status != nil {
		goal.Status = entities.GoalStatus(*input.Status)
	}
	if input.Progress != nil {
		goal.Progress = *input.Progress
	}
	if goal.Status == entities.GoalStatusCompleted {
		goal.Progress = 100
	}

	if err := u.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}
