package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/domain/repositories"
)

const notificationPageSize = 50

// NotificationUsecase handles stored notifications
type NotificationUsecase struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notificationRepo repositories.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notificationRepo: notificationRepo}
}

// List returns the user's latest notifications, newest first.
func (u *NotificationUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.Notification, error) {
	return u.notificationRepo.ListByRecipient(ctx, userID, notificationPageSize)
}

// MarkRead marks one notification read. Only the recipient may do so.
func (u *NotificationUsecase) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	n, err := u.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("notification not found")
		}
		return err
	}
	if n.RecipientID != userID {
		return domainerrors.Forbidden("notification belongs to another user")
	}
	return u.notificationRepo.MarkRead(ctx, notificationID)
}

// MarkAllRead marks every unread notification of the user read.
func (u *NotificationUsecase) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return u.notificationRepo.MarkAllRead(ctx, userID)
}
