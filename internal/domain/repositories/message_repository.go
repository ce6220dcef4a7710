package repositories

import (
	"context"

	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
)

// MessageRepository defines chat message data operations
type MessageRepository interface {
	Create(ctx context.Context, msg *entities.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Message, error)
	GetConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entities.Message, error)
	ListLatestPerPeer(ctx context.Context, userID uuid.UUID) ([]*entities.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	CountForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
