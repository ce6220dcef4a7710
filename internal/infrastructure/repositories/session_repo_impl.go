package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scholars-connect.backend/internal/domain/entities"
	"scholars-connect.backend/internal/infrastructure/models"
)

// SessionRepositoryImpl implements SessionRepository
type SessionRepositoryImpl struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepositoryImpl {
	return &SessionRepositoryImpl{db: db}
}

func (r *SessionRepositoryImpl) Create(ctx context.Context, s *entities.Session) error {
	m := &models.Session{
		ID:          s.ID,
		MentorID:    s.MentorID,
		MenteeID:    s.MenteeID,
		Topic:       s.Topic,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Status:      string(s.Status),
		Notes:       s.Notes,
		MeetingLink: s.MeetingLink,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListUpcoming returns scheduled sessions the user is party to, soonest
// first.
func (r *SessionRepositoryImpl) ListUpcoming(ctx context.Context, userID uuid.UUID, after time.Time) ([]*entities.Session, error) {
	var ms []models.Session
	if err := r.db.WithContext(ctx).
		Where("(mentor_id = ? OR mentee_id = ?) AND start_time > ? AND status = ?",
			userID, userID, after, entities.SessionStatusScheduled).
		Order("start_time ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	var sessions []*entities.Session
	for _, m := range ms {
		model := m
		sessions = append(sessions, r.toEntity(&model))
	}
	return sessions, nil
}

func (r *SessionRepositoryImpl) toEntity(m *models.Session) *entities.Session {
	return &entities.Session{
		ID:          m.ID,
		MentorID:    m.MentorID,
		MenteeID:    m.MenteeID,
		Topic:       m.Topic,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Status:      entities.SessionStatus(m.Status),
		Notes:       m.Notes,
		MeetingLink: m.MeetingLink,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
