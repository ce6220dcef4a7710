package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"scholars-connect.backend/internal/domain/entities"
	"scholars-connect.backend/internal/infrastructure/relay"
	"scholars-connect.backend/pkg/logger"
)

const sweepBatchSize = 100

type opportunitySweepRepo interface {
	GetOpenPastDeadline(ctx context.Context, now time.Time, limit int) ([]*entities.Opportunity, error)
	CloseExpired(ctx context.Context, ids []uuid.UUID) error
}

type notificationStore interface {
	Create(ctx context.Context, n *entities.Notification) error
}

type eventPublisher interface {
	Publish(ctx context.Context, userID uuid.UUID, event relay.Event) error
}

// OpportunityDeadlineJob closes open opportunities whose deadline has
// passed and tells the owning mentor about each closure.
type OpportunityDeadlineJob struct {
	opportunities opportunitySweepRepo
	notifications notificationStore
	publisher     eventPublisher
	interval      time.Duration
	stop          chan struct{}
}

func NewOpportunityDeadlineJob(opportunities opportunitySweepRepo, notifications notificationStore, publisher eventPublisher, interval time.Duration) *OpportunityDeadlineJob {
	return &OpportunityDeadlineJob{
		opportunities: opportunities,
		notifications: notifications,
		publisher:     publisher,
		interval:      interval,
		stop:          make(chan struct{}),
	}
}

func (j *OpportunityDeadlineJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting opportunity deadline job")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "opportunity deadline job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "opportunity deadline job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *OpportunityDeadlineJob) Stop() {
	close(j.stop)
}

func (j *OpportunityDeadlineJob) sweep(ctx context.Context) {
	due, err := j.opportunities.GetOpenPastDeadline(ctx, time.Now(), sweepBatchSize)
	if err != nil {
		logger.Error(ctx, "fetching expired opportunities", zap.Error(err))
		return
	}
	if len(due) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(due))
	for _, opp := range due {
		ids = append(ids, opp.ID)
	}

	if err := j.opportunities.CloseExpired(ctx, ids); err != nil {
		logger.Error(ctx, "closing expired opportunities", zap.Error(err))
		return
	}

	for _, opp := range due {
		oppID := opp.ID
		n := &entities.Notification{
			ID:          uuid.New(),
			RecipientID: opp.MentorID,
			Type:        entities.NotificationOpportunityDeadline,
			Title:       "Opportunity closed",
			Message:     fmt.Sprintf("The deadline for %q has passed and it is now closed", opp.Title),
			RelatedItem: &oppID,
			ItemKind:    entities.ItemKindOpportunity,
		}
		if err := j.notifications.Create(ctx, n); err != nil {
			logger.Error(ctx, "storing deadline notification", zap.Error(err), zap.String("opportunity_id", opp.ID.String()))
			continue
		}
		if j.publisher != nil {
			if err := j.publisher.Publish(ctx, opp.MentorID, relay.Event{
				Type:        n.Type,
				Title:       n.Title,
				Message:     n.Message,
				RelatedItem: n.RelatedItem,
				ItemKind:    n.ItemKind,
			}); err != nil {
				logger.Warn(ctx, "relaying deadline notification", zap.Error(err), zap.String("opportunity_id", opp.ID.String()))
			}
		}
	}

	logger.Info(ctx, "closed expired opportunities", zap.Int("count", len(due)))
}
