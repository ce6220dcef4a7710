package repositories

import (
	"context"

	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
)

// NotificationRepository defines stored notification operations
type NotificationRepository interface {
	Create(ctx context.Context, n *entities.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error
}
