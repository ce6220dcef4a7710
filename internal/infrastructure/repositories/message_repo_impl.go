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

// MessageRepositoryImpl implements MessageRepository
type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepositoryImpl {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, msg *entities.Message) error {
	m := &models.Message{
		ID:          msg.ID,
		SenderID:    msg.SenderID,
		RecipientID: msg.RecipientID,
		Content:     msg.Content,
		Read:        msg.Read,
		Attachments: encodeStrings(msg.Attachments),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MessageRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Message, error) {
	var m models.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetConversation returns the full exchange between two users in
// chronological order.
func (r *MessageRepositoryImpl) GetConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entities.Message, error) {
	var ms []models.Message
	if err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	var msgs []*entities.Message
	for _, m := range ms {
		model := m
		msgs = append(msgs, r.toEntity(&model))
	}
	return msgs, nil
}

// ListLatestPerPeer returns, for every peer the user has exchanged messages
// with, the most recent message. Newest conversations come first.
func (r *MessageRepositoryImpl) ListLatestPerPeer(ctx context.Context, userID uuid.UUID) ([]*entities.Message, error) {
	var ms []models.Message
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool)
	var latest []*entities.Message
	for _, m := range ms {
		peer := m.SenderID
		if peer == userID {
			peer = m.RecipientID
		}
		if seen[peer] {
			continue
		}
		seen[peer] = true
		model := m
		latest = append(latest, r.toEntity(&model))
	}
	return latest, nil
}

func (r *MessageRepositoryImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"read":       true,
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

func (r *MessageRepositoryImpl) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *MessageRepositoryImpl) toEntity(m *models.Message) *entities.Message {
	return &entities.Message{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		Read:        m.Read,
		Attachments: decodeStrings(m.Attachments),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
