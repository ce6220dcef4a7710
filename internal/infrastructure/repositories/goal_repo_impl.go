package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/infrastructure/models"
)

// GoalRepositoryImpl implements GoalRepository
type GoalRepositoryImpl struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepositoryImpl {
	return &GoalRepositoryImpl{db: db}
}

func (r *GoalRepositoryImpl) Create(ctx context.Context, g *entities.Goal) error {
	m := &models.Goal{
		ID:           g.ID,
		MentorshipID: g.MentorshipID,
		Title:        g.Title,
		Description:  g.Description.String,
		Status:       string(g.Status),
		Progress:     g.Progress,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if g.Deadline.Valid {
		t := g.Deadline.Time
		m.Deadline = &t
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *GoalRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Goal, error) {
	var m models.Goal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *GoalRepositoryImpl) ListByMentorships(ctx context.Context, mentorshipIDs []uuid.UUID) ([]*entities.Goal, error) {
	if len(mentorshipIDs) == 0 {
		return nil, nil
	}

	var ms []models.Goal
	if err := r.db.WithContext(ctx).
		Where("mentorship_id IN ?", mentorshipIDs).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	var goals []*entities.Goal
	for _, m := range ms {
		model := m
		goals = append(goals, r.toEntity(&model))
	}
	return goals, nil
}

func (r *GoalRepositoryImpl) Update(ctx context.Context, g *entities.Goal) error {
	result := r.db.WithContext(ctx).Model(&models.Goal{}).
		Where("id = ?", g.ID).
		Updates(map[string]interface{}{
			"status":     string(g.Status),
			"progress":   g.Progress,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *GoalRepositoryImpl) toEntity(m *models.Goal) *entities.Goal {
	g := &entities.Goal{
		ID:           m.ID,
		MentorshipID: m.MentorshipID,
		Title:        m.Title,
		Description:  null.NewString(m.Description, m.Description != ""),
		Status:       entities.GoalStatus(m.Status),
		Progress:     m.Progress,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Deadline != nil {
		g.Deadline = null.TimeFrom(*m.Deadline)
	}
	return g
}
