package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/domain/repositories"
	"scholars-connect.backend/internal/metrics"
)

// MessageUsecase handles chat messages between connected users
type MessageUsecase struct {
	messageRepo      repositories.MessageRepository
	userRepo         repositories.UserRepository
	requestRepo      repositories.MentorshipRequestRepository
	notificationRepo repositories.NotificationRepository
	publisher        Publisher
}

// NewMessageUsecase creates a new message usecase
func NewMessageUsecase(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	requestRepo repositories.MentorshipRequestRepository,
	notificationRepo repositories.NotificationRepository,
	publisher Publisher,
) *MessageUsecase {
	return &MessageUsecase{
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		requestRepo:      requestRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

// Send delivers a message. The pair must be connected through an accepted
// mentorship request, in either role direction.
func (u *MessageUsecase) Send(ctx context.Context, senderID uuid.UUID, input *entities.SendMessageInput) (*entities.Message, error) {
	if senderID == input.RecipientID {
		return nil, domainerrors.BadRequest("cannot send a message to yourself")
	}

	sender, err := u.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	if _, err := u.userRepo.GetByID(ctx, input.RecipientID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("recipient not found")
		}
		return nil, err
	}

	connected, err := u.connected(ctx, senderID, input.RecipientID)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, domainerrors.Forbidden("no accepted mentorship connects you to this user")
	}

	msg := &entities.Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: input.RecipientID,
		Content:     input.Content,
		Attachments: input.Attachments,
	}
	if err := u.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	metrics.IncMessageSent()

	msgID := msg.ID
	dispatchNotification(ctx, u.notificationRepo, u.publisher, &entities.Notification{
		RecipientID: input.RecipientID,
		Type:        entities.NotificationNewMessage,
		Title:       "New message",
		Message:     fmt.Sprintf("%s sent you a message", sender.Name),
		RelatedItem: &msgID,
		ItemKind:    entities.ItemKindMessage,
	})

	msg.Sender = sender.Summary()
	return msg, nil
}

// GetConversation returns the exchange between the caller and a peer in
// chronological order.
func (u *MessageUsecase) GetConversation(ctx context.Context, userID, peerID uuid.UUID) ([]*entities.Message, error) {
	return u.messageRepo.GetConversation(ctx, userID, peerID)
}

// ListConversations returns the caller's conversations, each represented
// by the peer and the latest message.
func (u *MessageUsecase) ListConversations(ctx context.Context, userID uuid.UUID) ([]*entities.Conversation, error) {
	latest, err := u.messageRepo.ListLatestPerPeer(ctx, userID)
	if err != nil {
		return nil, err
	}

	var conversations []*entities.Conversation
	for _, msg := range latest {
		peerID := msg.SenderID
		if peerID == userID {
			peerID = msg.RecipientID
		}
		conv := &entities.Conversation{LastMessage: msg}
		if peer, err := u.userRepo.GetByID(ctx, peerID); err == nil {
			conv.Peer = peer.Summary()
		}
		conversations = append(conversations, conv)
	}
	return conversations, nil
}

// MarkRead marks a message read. Only the recipient may do so.
func (u *MessageUsecase) MarkRead(ctx context.Context, messageID, userID uuid.UUID) error {
	msg, err := u.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("message not found")
		}
		return err
	}
	if msg.RecipientID != userID {
		return domainerrors.Forbidden("only the recipient can mark a message read")
	}
	return u.messageRepo.MarkRead(ctx, messageID)
}

// connected reports whether an accepted request links the pair in either
// direction.
func (u *MessageUsecase) connected(ctx context.Context, a, b uuid.UUID) (bool, error) {
	ok, err := u.requestRepo.HasAccepted(ctx, a, b)
	if err != nil || ok {
		return ok, err
	}
	return u.requestRepo.HasAccepted(ctx, b, a)
}
