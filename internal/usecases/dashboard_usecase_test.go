package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/usecases"
)

type dashboardFixture struct {
	userRepo    *MockUserRepository
	oppRepo     *MockOpportunityRepository
	messageRepo *MockMessageRepository
	requestRepo *MockMentorshipRequestRepository
	sessionRepo *MockSessionRepository
	goalRepo    *MockGoalRepository
	uc          *usecases.DashboardUsecase
}

func newDashboardFixture() *dashboardFixture {
	f := &dashboardFixture{
		userRepo:    new(MockUserRepository),
		oppRepo:     new(MockOpportunityRepository),
		messageRepo: new(MockMessageRepository),
		requestRepo: new(MockMentorshipRequestRepository),
		sessionRepo: new(MockSessionRepository),
		goalRepo:    new(MockGoalRepository),
	}
	f.uc = usecases.NewDashboardUsecase(f.userRepo, f.oppRepo, f.messageRepo, f.requestRepo, f.sessionRepo, f.goalRepo)
	return f
}

func TestDashboardUsecase_Stats_MentorSeesOwnOpportunities(t *testing.T) {
	f := newDashboardFixture()
	mentorID := uuid.New()

	f.userRepo.On("GetByID", mock.Anything, mentorID).Return(mentorUser(mentorID), nil)
	f.userRepo.On("CountByRole", mock.Anything, entities.UserRoleMentor).Return(int64(7), nil)
	f.oppRepo.On("Count", mock.Anything, &mentorID).Return(int64(3), nil)
	f.messageRepo.On("CountForUser", mock.Anything, mentorID).Return(int64(12), nil)
	f.requestRepo.On("ListAcceptedIDs", mock.Anything, mentorID).Return([]uuid.UUID{uuid.New(), uuid.New()}, nil)

	stats, err := f.uc.Stats(context.Background(), mentorID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.ActiveMentors)
	assert.Equal(t, int64(3), stats.Opportunities)
	assert.Equal(t, int64(12), stats.Messages)
	assert.Equal(t, 2, stats.ActiveMentorships)
}

func TestDashboardUsecase_Stats_MenteeSeesCatalog(t *testing.T) {
	f := newDashboardFixture()
	menteeID := uuid.New()

	f.userRepo.On("GetByID", mock.Anything, menteeID).Return(menteeUser(menteeID), nil)
	f.userRepo.On("CountByRole", mock.Anything, entities.UserRoleMentor).Return(int64(7), nil)
	f.oppRepo.On("Count", mock.Anything, (*uuid.UUID)(nil)).Return(int64(40), nil)
	f.messageRepo.On("CountForUser", mock.Anything, menteeID).Return(int64(0), nil)
	f.requestRepo.On("ListAcceptedIDs", mock.Anything, menteeID).Return([]uuid.UUID{}, nil)

	stats, err := f.uc.Stats(context.Background(), menteeID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), stats.Opportunities)
	assert.Equal(t, 0, stats.ActiveMentorships)
}

func TestDashboardUsecase_CreateSession_RequiresAcceptedMentorship(t *testing.T) {
	f := newDashboardFixture()
	mentorID, menteeID := uuid.New(), uuid.New()
	start := time.Now().Add(24 * time.Hour)

	input := &entities.CreateSessionInput{
		MentorID:  mentorID,
		MenteeID:  menteeID,
		Topic:     "thesis review",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}

	f.requestRepo.On("HasAccepted", mock.Anything, mentorID, menteeID).Return(false, nil).Once()
	_, err := f.uc.CreateSession(context.Background(), mentorID, input)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	f.requestRepo.On("HasAccepted", mock.Anything, mentorID, menteeID).Return(true, nil).Once()
	f.sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Session")).Return(nil)
	session, err := f.uc.CreateSession(context.Background(), mentorID, input)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusScheduled, session.Status)
}

func TestDashboardUsecase_CreateSession_OutsiderForbidden(t *testing.T) {
	f := newDashboardFixture()

	_, err := f.uc.CreateSession(context.Background(), uuid.New(), &entities.CreateSessionInput{
		MentorID:  uuid.New(),
		MenteeID:  uuid.New(),
		Topic:     "x",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDashboardUsecase_CreateSession_BadTimes(t *testing.T) {
	f := newDashboardFixture()
	mentorID := uuid.New()
	start := time.Now()

	_, err := f.uc.CreateSession(context.Background(), mentorID, &entities.CreateSessionInput{
		MentorID:  mentorID,
		MenteeID:  uuid.New(),
		Topic:     "x",
		StartTime: start,
		EndTime:   start,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestDashboardUsecase_CreateGoal(t *testing.T) {
	f := newDashboardFixture()
	mentorID, menteeID, mentorshipID := uuid.New(), uuid.New(), uuid.New()

	accepted := &entities.MentorshipRequest{
		ID: mentorshipID, MentorID: mentorID, MenteeID: menteeID, Status: entities.RequestStatusAccepted,
	}
	f.requestRepo.On("GetByID", mock.Anything, mentorshipID).Return(accepted, nil)

	_, err := f.uc.CreateGoal(context.Background(), uuid.New(), &entities.CreateGoalInput{
		MentorshipID: mentorshipID, Title: "publish paper",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	f.goalRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Goal")).Return(nil)
	goal, err := f.uc.CreateGoal(context.Background(), menteeID, &entities.CreateGoalInput{
		MentorshipID: mentorshipID, Title: "publish paper",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.GoalStatusPending, goal.Status)
}

func TestDashboardUsecase_CreateGoal_PendingMentorship(t *testing.T) {
	f := newDashboardFixture()
	mentorshipID := uuid.New()

	f.requestRepo.On("GetByID", mock.Anything, mentorshipID).Return(&entities.MentorshipRequest{
		ID: mentorshipID, MentorID: uuid.New(), MenteeID: uuid.New(), Status: entities.RequestStatusPending,
	}, nil)

	_, err := f.uc.CreateGoal(context.Background(), uuid.New(), &entities.CreateGoalInput{
		MentorshipID: mentorshipID, Title: "x",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestDashboardUsecase_UpdateGoal_CompletePinsProgress(t *testing.T) {
	f := newDashboardFixture()
	goalID, mentorshipID, menteeID := uuid.New(), uuid.New(), uuid.New()

	f.goalRepo.On("GetByID", mock.Anything, goalID).Return(&entities.Goal{
		ID: goalID, MentorshipID: mentorshipID, Status: entities.GoalStatusInProgress, Progress: 60,
	}, nil)
	f.requestRepo.On("GetByID", mock.Anything, mentorshipID).Return(&entities.MentorshipRequest{
		ID: mentorshipID, MentorID: uuid.New(), MenteeID: menteeID, Status: entities.RequestStatusAccepted,
	}, nil)
	f.goalRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	status := "completed"
	goal, err := f.uc.UpdateGoal(context.Background(), goalID, menteeID, &entities.UpdateGoalInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entities.GoalStatusCompleted, goal.Status)
	assert.Equal(t, 100, goal.Progress)
}

func TestDashboardUsecase_Goals(t *testing.T) {
	f := newDashboardFixture()
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New()}

	f.requestRepo.On("ListAcceptedIDs", mock.Anything, userID).Return(ids, nil)
	f.goalRepo.On("ListByMentorships", mock.Anything, ids).Return([]*entities.Goal{
		{ID: uuid.New(), MentorshipID: ids[0]},
	}, nil)

	goals, err := f.uc.Goals(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, goals, 1)
}

func TestDashboardUsecase_UpcomingSessions(t *testing.T) {
	f := newDashboardFixture()
	userID := uuid.New()

	f.sessionRepo.On("ListUpcoming", mock.Anything, userID, mock.AnythingOfType("time.Time")).Return([]*entities.Session{
		{ID: uuid.New(), MentorID: userID},
	}, nil)

	sessions, err := f.uc.UpcomingSessions(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}
