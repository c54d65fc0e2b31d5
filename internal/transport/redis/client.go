package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nickolaylk/TicTacToe-assignment/internal/entity"
	"github.com/redis/go-redis/v9"
)

// Publisher sends move events to spectators over Redis Pub/Sub. Nothing is stored.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// MovesChannel - returns the Pub/Sub channel of a match.
func MovesChannel(gameID string) string {
	return "match:" + gameID + ":moves"
}

// Publish - publishes the event on the match channel.
func (that *Publisher) Publish(ctx context.Context, event *entity.MoveEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal move event: %w", err)
	}

	if err = that.client.Publish(ctx, MovesChannel(event.GameID), eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish move event: %w", err)
	}

	return nil
}
