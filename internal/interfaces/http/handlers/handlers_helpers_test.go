package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/infrastructure/relay"
	"scholars-connect.backend/internal/interfaces/http/middleware"
)

// authAs injects an authenticated user id the way AuthMiddleware would.
func authAs(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, id)
		c.Next()
	}
}

type userRepoStub struct {
	createFn      func(ctx context.Context, user *entities.User) error
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn  func(ctx context.Context, email string) (*entities.User, error)
	updateFn      func(ctx context.Context, user *entities.User) error
	listMentorsFn func(ctx context.Context, search string) ([]*entities.User, error)
	countByRoleFn func(ctx context.Context, role entities.UserRole) (int64, error)
	updatePasswFn func(ctx context.Context, id uuid.UUID, hash string) error
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(ctx context.Context, user *entities.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	if s.updatePasswFn != nil {
		return s.updatePasswFn(ctx, id, hash)
	}
	return nil
}

func (s *userRepoStub) ListMentors(ctx context.Context, search string) ([]*entities.User, error) {
	if s.listMentorsFn != nil {
		return s.listMentorsFn(ctx, search)
	}
	return []*entities.User{}, nil
}

func (s *userRepoStub) CountByRole(ctx context.Context, role entities.UserRole) (int64, error) {
	if s.countByRoleFn != nil {
		return s.countByRoleFn(ctx, role)
	}
	return 0, nil
}

type requestRepoStub struct {
	createFn          func(ctx context.Context, request *entities.MentorshipRequest) error
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*entities.MentorshipRequest, error)
	listByMentorFn    func(ctx context.Context, mentorID uuid.UUID) ([]*entities.MentorshipRequest, error)
	listByMenteeFn    func(ctx context.Context, menteeID uuid.UUID) ([]*entities.MentorshipRequest, error)
	updateIfPendingFn func(ctx context.Context, id uuid.UUID, status entities.RequestStatus, notes string) error
	hasAcceptedFn     func(ctx context.Context, mentorID, menteeID uuid.UUID) (bool, error)
	listAcceptedFn    func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

func (s *requestRepoStub) Create(ctx context.Context, request *entities.MentorshipRequest) error {
	if s.createFn != nil {
		return s.createFn(ctx, request)
	}
	return nil
}

func (s *requestRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.MentorshipRequest, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *requestRepoStub) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	if s.listByMentorFn != nil {
		return s.listByMentorFn(ctx, mentorID)
	}
	return []*entities.MentorshipRequest{}, nil
}

func (s *requestRepoStub) ListByMentee(ctx context.Context, menteeID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	if s.listByMenteeFn != nil {
		return s.listByMenteeFn(ctx, menteeID)
	}
	return []*entities.MentorshipRequest{}, nil
}

func (s *requestRepoStub) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entities.RequestStatus, notes string) error {
	if s.updateIfPendingFn != nil {
		return s.updateIfPendingFn(ctx, id, status, notes)
	}
	return nil
}

func (s *requestRepoStub) HasAccepted(ctx context.Context, mentorID, menteeID uuid.UUID) (bool, error) {
	if s.hasAcceptedFn != nil {
		return s.hasAcceptedFn(ctx, mentorID, menteeID)
	}
	return false, nil
}

func (s *requestRepoStub) ListAcceptedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if s.listAcceptedFn != nil {
		return s.listAcceptedFn(ctx, userID)
	}
	return []uuid.UUID{}, nil
}

type opportunityRepoStub struct {
	createFn       func(ctx context.Context, opp *entities.Opportunity) error
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entities.Opportunity, error)
	listFn         func(ctx context.Context, search entities.OpportunitySearch, limit, offset int) ([]*entities.Opportunity, int64, error)
	listByMentorFn func(ctx context.Context, mentorID uuid.UUID) ([]*entities.Opportunity, error)
	updateFn       func(ctx context.Context, opp *entities.Opportunity) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	countFn        func(ctx context.Context, mentorID *uuid.UUID) (int64, error)
}

func (s *opportunityRepoStub) Create(ctx context.Context, opp *entities.Opportunity) error {
	if s.createFn != nil {
		return s.createFn(ctx, opp)
	}
	return nil
}

func (s *opportunityRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Opportunity, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *opportunityRepoStub) List(ctx context.Context, search entities.OpportunitySearch, limit, offset int) ([]*entities.Opportunity, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, search, limit, offset)
	}
	return []*entities.Opportunity{}, 0, nil
}

func (s *opportunityRepoStub) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entities.Opportunity, error) {
	if s.listByMentorFn != nil {
		return s.listByMentorFn(ctx, mentorID)
	}
	return []*entities.Opportunity{}, nil
}

func (s *opportunityRepoStub) Update(ctx context.Context, opp *entities.Opportunity) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, opp)
	}
	return nil
}

func (s *opportunityRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *opportunityRepoStub) Count(ctx context.Context, mentorID *uuid.UUID) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx, mentorID)
	}
	return 0, nil
}

func (s *opportunityRepoStub) GetOpenPastDeadline(ctx context.Context, now time.Time, limit int) ([]*entities.Opportunity, error) {
	return []*entities.Opportunity{}, nil
}

func (s *opportunityRepoStub) CloseExpired(ctx context.Context, ids []uuid.UUID) error {
	return nil
}

type messageRepoStub struct {
	createFn          func(ctx context.Context, msg *entities.Message) error
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*entities.Message, error)
	getConversationFn func(ctx context.Context, userA, userB uuid.UUID) ([]*entities.Message, error)
	listLatestFn      func(ctx context.Context, userID uuid.UUID) ([]*entities.Message, error)
	markReadFn        func(ctx context.Context, id uuid.UUID) error
	countForUserFn    func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (s *messageRepoStub) Create(ctx context.Context, msg *entities.Message) error {
	if s.createFn != nil {
		return s.createFn(ctx, msg)
	}
	return nil
}

func (s *messageRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Message, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *messageRepoStub) GetConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entities.Message, error) {
	if s.getConversationFn != nil {
		return s.getConversationFn(ctx, userA, userB)
	}
	return []*entities.Message{}, nil
}

func (s *messageRepoStub) ListLatestPerPeer(ctx context.Context, userID uuid.UUID) ([]*entities.Message, error) {
	if s.listLatestFn != nil {
		return s.listLatestFn(ctx, userID)
	}
	return []*entities.Message{}, nil
}

func (s *messageRepoStub) MarkRead(ctx context.Context, id uuid.UUID) error {
	if s.markReadFn != nil {
		return s.markReadFn(ctx, id)
	}
	return nil
}

func (s *messageRepoStub) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if s.countForUserFn != nil {
		return s.countForUserFn(ctx, userID)
	}
	return 0, nil
}

type notificationRepoStub struct {
	createFn      func(ctx context.Context, n *entities.Notification) error
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*entities.Notification, error)
	listFn        func(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entities.Notification, error)
	markReadFn    func(ctx context.Context, id uuid.UUID) error
	markAllReadFn func(ctx context.Context, recipientID uuid.UUID) error
}

func (s *notificationRepoStub) Create(ctx context.Context, n *entities.Notification) error {
	if s.createFn != nil {
		return s.createFn(ctx, n)
	}
	return nil
}

func (s *notificationRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *notificationRepoStub) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entities.Notification, error) {
	if s.listFn != nil {
		return s.listFn(ctx, recipientID, limit)
	}
	return []*entities.Notification{}, nil
}

func (s *notificationRepoStub) MarkRead(ctx context.Context, id uuid.UUID) error {
	if s.markReadFn != nil {
		return s.markReadFn(ctx, id)
	}
	return nil
}

func (s *notificationRepoStub) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	if s.markAllReadFn != nil {
		return s.markAllReadFn(ctx, recipientID)
	}
	return nil
}

type sessionRepoStub struct {
	createFn       func(ctx context.Context, sess *entities.Session) error
	listUpcomingFn func(ctx context.Context, userID uuid.UUID, after time.Time) ([]*entities.Session, error)
}

func (s *sessionRepoStub) Create(ctx context.Context, sess *entities.Session) error {
	if s.createFn != nil {
		return s.createFn(ctx, sess)
	}
	return nil
}

func (s *sessionRepoStub) ListUpcoming(ctx context.Context, userID uuid.UUID, after time.Time) ([]*entities.Session, error) {
	if s.listUpcomingFn != nil {
		return s.listUpcomingFn(ctx, userID, after)
	}
	return []*entities.Session{}, nil
}

type goalRepoStub struct {
	createFn func(ctx context.Context, g *entities.Goal) error
	getFn    func(ctx context.Context, id uuid.UUID) (*entities.Goal, error)
	listFn   func(ctx context.Context, mentorshipIDs []uuid.UUID) ([]*entities.Goal, error)
	updateFn func(ctx context.Context, g *entities.Goal) error
}

func (s *goalRepoStub) Create(ctx context.Context, g *entities.Goal) error {
	if s.createFn != nil {
		return s.createFn(ctx, g)
	}
	return nil
}

func (s *goalRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Goal, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *goalRepoStub) ListByMentorships(ctx context.Context, mentorshipIDs []uuid.UUID) ([]*entities.Goal, error) {
	if s.listFn != nil {
		return s.listFn(ctx, mentorshipIDs)
	}
	return []*entities.Goal{}, nil
}

func (s *goalRepoStub) Update(ctx context.Context, g *entities.Goal) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, g)
	}
	return nil
}

type publisherStub struct {
	publishFn func(ctx context.Context, userID uuid.UUID, event relay.Event) error
}

func (s *publisherStub) Publish(ctx context.Context, userID uuid.UUID, event relay.Event) error {
	if s.publishFn != nil {
		return s.publishFn(ctx, userID, event)
	}
	return nil
}
