package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"scholars-connect.backend/internal/domain/entities"
	"scholars-connect.backend/internal/domain/repositories"
	"scholars-connect.backend/internal/infrastructure/relay"
	"scholars-connect.backend/pkg/logger"
)

// Publisher relays notification events to connected clients.
type Publisher interface {
	Publish(ctx context.Context, userID uuid.UUID, event relay.Event) error
}

// dispatchNotification stores a notification and relays it. Best effort on
// both legs: a failure is logged and never surfaces to the caller, so a
// broken relay cannot roll back or delay the business operation that
// triggered it.
func dispatchNotification(ctx context.Context, repo repositories.NotificationRepository, publisher Publisher, n *entities.Notification) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if err := repo.Create(ctx, n); err != nil {
		logger.Warn(ctx, "storing notification", zap.Error(err), zap.String("recipient_id", n.RecipientID.String()))
		return
	}
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, n.RecipientID, relay.Event{
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		RelatedItem: n.RelatedItem,
		ItemKind:    n.ItemKind,
	}); err != nil {
		logger.Warn(ctx, "relaying notification", zap.Error(err), zap.String("recipient_id", n.RecipientID.String()))
	}
}
