package repositories

import (
	"context"

	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
)

// GoalRepository defines mentorship goal operations
type GoalRepository interface {
	Create(ctx context.Context, g *entities.Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Goal, error)
	ListByMentorships(ctx context.Context, mentorshipIDs []uuid.UUID) ([]*entities.Goal, error)
	Update(ctx context.Context, g *entities.Goal) error
}
