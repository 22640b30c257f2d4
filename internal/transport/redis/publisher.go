package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var ErrEmptyChannel = errors.New("redis channel name is empty")

type publisherClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Close() error
}

// Publisher - pushes every game snapshot to a Redis pub/sub channel. Nothing is stored.
type Publisher struct {
	logger  *slog.Logger
	client  publisherClient
	channel string
}

// Connect - dials Redis and makes sure it answers before the publisher is used.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return conn, nil
}

func NewPublisher(logger *slog.Logger, client publisherClient, channel string) (*Publisher, error) {
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	return &Publisher{
		logger:  logger.With("component", "redis-publisher", "channel", channel),
		client:  client,
		channel: channel,
	}, nil
}

func (that *Publisher) Publish(ctx context.Context, snapshot entity.Snapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, snapshotJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}

	return nil
}

// Listener - adapts the publisher to the engine's subscription callback. Failures are logged, not returned.
func (that *Publisher) Listener(ctx context.Context) func(entity.Snapshot) {
	return func(snapshot entity.Snapshot) {
		if err := that.Publish(ctx, snapshot); err != nil {
			that.logger.Error("could not publish snapshot", "gameID", snapshot.ID, "version", snapshot.Version, "error", err)
		}
	}
}

func (that *Publisher) Close() error {
	if err := that.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}

// Subscribe - decodes snapshots published on the channel until ctx is done.
func Subscribe(ctx context.Context, client *redis.Client, channel string) (<-chan entity.Snapshot, error) {
	pubsub := client.Subscribe(ctx, channel)

	// wait for the subscription to be confirmed so no message published afterwards is lost
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	snapshots := make(chan entity.Snapshot)

	go func() {
		defer close(snapshots)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case message, ok := <-messages:
				if !ok {
					return
				}

				var snapshot entity.Snapshot
				if err := json.Unmarshal([]byte(message.Payload), &snapshot); err != nil {
					continue
				}

				select {
				case snapshots <- snapshot:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return snapshots, nil
}
