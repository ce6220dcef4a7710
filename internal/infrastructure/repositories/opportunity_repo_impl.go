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

// OpportunityRepositoryImpl implements OpportunityRepository
type OpportunityRepositoryImpl struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepositoryImpl {
	return &OpportunityRepositoryImpl{db: db}
}

func (r *OpportunityRepositoryImpl) Create(ctx context.Context, opp *entities.Opportunity) error {
	m := &models.Opportunity{
		ID:              opp.ID,
		MentorID:        opp.MentorID,
		Title:           opp.Title,
		Description:     opp.Description,
		Requirements:    opp.Requirements.String,
		ApplicationLink: opp.ApplicationLink.String,
		Status:          string(opp.Status),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if opp.Deadline.Valid {
		t := opp.Deadline.Time
		m.Deadline = &t
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *OpportunityRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Opportunity, error) {
	var m models.Opportunity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns a page of the catalog with the total match count.
func (r *OpportunityRepositoryImpl) List(ctx context.Context, search entities.OpportunitySearch, limit, offset int) ([]*entities.Opportunity, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Opportunity{})
	if search.Title != "" {
		query = query.Where("title LIKE ?", "%"+search.Title+"%")
	}
	if search.OnlyOpen {
		query = query.Where("status = ?", entities.OpportunityStatusOpen)
	}
	if search.DeadlineAfter != nil {
		query = query.Where("deadline IS NULL OR deadline > ?", *search.DeadlineAfter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Opportunity
	if err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	var opps []*entities.Opportunity
	for _, m := range ms {
		model := m
		opps = append(opps, r.toEntity(&model))
	}
	return opps, total, nil
}

func (r *OpportunityRepositoryImpl) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entities.Opportunity, error) {
	var ms []models.Opportunity
	if err := r.db.WithContext(ctx).
		Where("mentor_id = ?", mentorID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	var opps []*entities.Opportunity
	for _, m := range ms {
		model := m
		opps = append(opps, r.toEntity(&model))
	}
	return opps, nil
}

func (r *OpportunityRepositoryImpl) Update(ctx context.Context, opp *entities.Opportunity) error {
	updates := map[string]interface{}{
		"title":            opp.Title,
		"description":      opp.Description,
		"requirements":     opp.Requirements.String,
		"application_link": opp.ApplicationLink.String,
		"status":           string(opp.Status),
		"updated_at":       time.Now(),
	}
	if opp.Deadline.Valid {
		updates["deadline"] = opp.Deadline.Time
	} else {
		updates["deadline"] = nil
	}

	result := r.db.WithContext(ctx).Model(&models.Opportunity{}).
		Where("id = ?", opp.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *OpportunityRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Opportunity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *OpportunityRepositoryImpl) Count(ctx context.Context, mentorID *uuid.UUID) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Opportunity{})
	if mentorID != nil {
		query = query.Where("mentor_id = ?", *mentorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetOpenPastDeadline finds open postings whose deadline has passed, for
// the background sweeper.
func (r *OpportunityRepositoryImpl) GetOpenPastDeadline(ctx context.Context, now time.Time, limit int) ([]*entities.Opportunity, error) {
	var ms []models.Opportunity
	if err := r.db.WithContext(ctx).
		Where("status = ? AND deadline IS NOT NULL AND deadline < ?", entities.OpportunityStatusOpen, now).
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	var opps []*entities.Opportunity
	for _, m := range ms {
		model := m
		opps = append(opps, r.toEntity(&model))
	}
	return opps, nil
}

func (r *OpportunityRepositoryImpl) CloseExpired(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Opportunity{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     entities.OpportunityStatusClosed,
			"updated_at": time.Now(),
		}).Error
}

func (r *OpportunityRepositoryImpl) toEntity(m *models.Opportunity) *entities.Opportunity {
	opp := &entities.Opportunity{
		ID:              m.ID,
		MentorID:        m.MentorID,
		Title:           m.Title,
		Description:     m.Description,
		Requirements:    null.NewString(m.Requirements, m.Requirements != ""),
		ApplicationLink: null.NewString(m.ApplicationLink, m.ApplicationLink != ""),
		Status:          entities.OpportunityStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Deadline != nil {
		opp.Deadline = null.TimeFrom(*m.Deadline)
	}
	return opp
}
