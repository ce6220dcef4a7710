package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType represents the kind of event a notification describes.
type NotificationType string

const (
	NotificationOpportunityDeadline NotificationType = "opportunity_deadline"
	NotificationNewRequest          NotificationType = "new_request"
	NotificationRequestUpdate       NotificationType = "request_update"
	NotificationNewMessage          NotificationType = "new_message"
)

// NotificationItemKind names the record a notification points at.
type NotificationItemKind string

const (
	ItemKindOpportunity NotificationItemKind = "opportunity"
	ItemKindRequest     NotificationItemKind = "mentorship_request"
	ItemKindMessage     NotificationItemKind = "message"
)

// Notification is a stored event addressed to a user.
type Notification struct {
	ID          uuid.UUID            `json:"id"`
	RecipientID uuid.UUID            `json:"recipientId"`
	Type        NotificationType     `json:"type"`
	Title       string               `json:"title"`
	Message     string               `json:"message"`
	Read        bool                 `json:"read"`
	RelatedItem *uuid.UUID           `json:"relatedItem,omitempty"`
	ItemKind    NotificationItemKind `json:"itemKind,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}
