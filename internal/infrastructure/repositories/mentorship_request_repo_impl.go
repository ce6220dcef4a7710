package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/infrastructure/models"
)

// MentorshipRequestRepositoryImpl implements MentorshipRequestRepository
type MentorshipRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewMentorshipRequestRepository(db *gorm.DB) *MentorshipRequestRepositoryImpl {
	return &MentorshipRequestRepositoryImpl{db: db}
}

// Create inserts a request. The (mentor_id, mentee_id) unique index makes
// concurrent duplicate submissions lose the race at the database, so there
// is no check-then-insert window here.
func (r *MentorshipRequestRepositoryImpl) Create(ctx context.Context, request *entities.MentorshipRequest) error {
	m := &models.MentorshipRequest{
		ID:            request.ID,
		MentorID:      request.MentorID,
		MenteeID:      request.MenteeID,
		OpportunityID: request.OpportunityID,
		Message:       request.Message,
		Status:        string(request.Status),
		Notes:         request.Notes,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *MentorshipRequestRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.MentorshipRequest, error) {
	var m models.MentorshipRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *MentorshipRequestRepositoryImpl) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	return r.list(ctx, "mentor_id = ?", mentorID)
}

func (r *MentorshipRequestRepositoryImpl) ListByMentee(ctx context.Context, menteeID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	return r.list(ctx, "mentee_id = ?", menteeID)
}

func (r *MentorshipRequestRepositoryImpl) list(ctx context.Context, cond string, arg interface{}) ([]*entities.MentorshipRequest, error) {
	var ms []models.MentorshipRequest
	if err := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	var requests []*entities.MentorshipRequest
	for _, m := range ms {
		model := m
		requests = append(requests, r.toEntity(&model))
	}
	return requests, nil
}

// UpdateStatusIfPending is a compare-and-set on the status column. The
// WHERE clause pins the pending state, so two concurrent decisions cannot
// both see RowsAffected > 0.
func (r *MentorshipRequestRepositoryImpl) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entities.RequestStatus, notes string) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if notes != "" {
		updates["notes"] = notes
	}

	result := r.db.WithContext(ctx).Model(&models.MentorshipRequest{}).
		Where("id = ? AND status = ?", id, entities.RequestStatusPending).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// HasAccepted reports whether an accepted request links the pair, in
// either role direction.
func (r *MentorshipRequestRepositoryImpl) HasAccepted(ctx context.Context, mentorID, menteeID uuid.UUID) (bool, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.MentorshipRequest{}).
		Where("mentor_id = ? AND mentee_id = ? AND status = ?", mentorID, menteeID, entities.RequestStatusAccepted).
		Count(&total).Error; err != nil {
		return false, err
	}
	return total > 0, nil
}

// ListAcceptedIDs returns the ids of accepted requests the user is party to
func (r *MentorshipRequestRepositoryImpl) ListAcceptedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ms []models.MentorshipRequest
	if err := r.db.WithContext(ctx).
		Select("id").
		Where("(mentor_id = ? OR mentee_id = ?) AND status = ?", userID, userID, entities.RequestStatusAccepted).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (r *MentorshipRequestRepositoryImpl) toEntity(m *models.MentorshipRequest) *entities.MentorshipRequest {
	return &entities.MentorshipRequest{
		ID:            m.ID,
		MentorID:      m.MentorID,
		MenteeID:      m.MenteeID,
		OpportunityID: m.OpportunityID,
		Message:       m.Message,
		Status:        entities.RequestStatus(m.Status),
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
