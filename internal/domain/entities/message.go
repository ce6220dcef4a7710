package entities

import (
	"time"

	"github.com/google/uuid"
)

// Message is a chat message between two users.
type Message struct {
	ID          uuid.UUID    `json:"id"`
	SenderID    uuid.UUID    `json:"senderId"`
	RecipientID uuid.UUID    `json:"recipientId"`
	Content     string       `json:"content"`
	Read        bool         `json:"read"`
	Attachments []string     `json:"attachments,omitempty"`
	Sender      *UserSummary `json:"sender,omitempty"`
	Recipient   *UserSummary `json:"recipient,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// SendMessageInput is the body of a send-message call.
type SendMessageInput struct {
	RecipientID uuid.UUID `json:"recipientId" binding:"required"`
	Content     string    `json:"content" binding:"required"`
	Attachments []string  `json:"attachments"`
}

// Conversation pairs a peer with the latest message exchanged with them.
type Conversation struct {
	Peer        *UserSummary `json:"peer"`
	LastMessage *Message     `json:"lastMessage"`
}
