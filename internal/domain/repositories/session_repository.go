package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
)

// SessionRepository defines mentorship session operations
type SessionRepository interface {
	Create(ctx context.Context, s *entities.Session) error
	ListUpcoming(ctx context.Context, userID uuid.UUID, after time.Time) ([]*entities.Session, error)
}
