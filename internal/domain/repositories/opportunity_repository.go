package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
)

// OpportunityRepository defines opportunity catalog operations
type OpportunityRepository interface {
	Create(ctx context.Context, opp *entities.Opportunity) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Opportunity, error)
	List(ctx context.Context, search entities.OpportunitySearch, limit, offset int) ([]*entities.Opportunity, int64, error)
	ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entities.Opportunity, error)
	Update(ctx context.Context, opp *entities.Opportunity) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, mentorID *uuid.UUID) (int64, error)
	GetOpenPastDeadline(ctx context.Context, now time.Time, limit int) ([]*entities.Opportunity, error)
	CloseExpired(ctx context.Context, ids []uuid.UUID) error
}
