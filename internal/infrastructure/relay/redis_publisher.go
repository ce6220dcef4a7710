package relay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
	"scholars-connect.backend/pkg/redis"
)

// Event is the wire form of a relayed notification. Connected clients
// subscribe to their own user channel and render these directly.
type Event struct {
	Type        entities.NotificationType     `json:"type"`
	Title       string                        `json:"title"`
	Message     string                        `json:"message"`
	RelatedItem *uuid.UUID                    `json:"relatedItem,omitempty"`
	ItemKind    entities.NotificationItemKind `json:"itemKind,omitempty"`
}

// RedisPublisher relays notification events over Redis pub/sub.
type RedisPublisher struct{}

func NewRedisPublisher() *RedisPublisher {
	return &RedisPublisher{}
}

// UserChannel returns the pub/sub channel for a user.
func UserChannel(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s", userID)
}

// Publish sends an event to the user's channel. Delivery is best effort:
// a user without an active subscriber simply misses the live event and
// catches up from stored notifications.
func (p *RedisPublisher) Publish(ctx context.Context, userID uuid.UUID, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return redis.Publish(ctx, UserChannel(userID), payload)
}
