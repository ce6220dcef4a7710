package repositories

import (
	"context"

	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	ListMentors(ctx context.Context, search string) ([]*entities.User, error)
	CountByRole(ctx context.Context, role entities.UserRole) (int64, error)
}
