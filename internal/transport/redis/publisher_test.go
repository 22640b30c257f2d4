package redis

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	mockedRedis "github.com/rocketscienceinc/tictactoe-solo/mocks/redis"
	"github.com/rocketscienceinc/tictactoe-solo/testing/suite"
)

var errRedisDown = errors.New("redis down")

func TestPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("Publishes the snapshot as JSON on the channel", func(t *testing.T) {
		// Given: a client that accepts the publish
		client := mockedRedis.NewMockpublisherClient(t)
		publisher, err := NewPublisher(suite.NewLogger(), client, "games")
		require.NoError(t, err)

		snapshot := entity.Snapshot{ID: "g1", Outcome: entity.Draw, Version: 3}

		var published []byte
		client.EXPECT().
			Publish(mock.Anything, "games", mock.Anything).
			Run(func(_ context.Context, _ string, message interface{}) {
				published = message.([]byte)
			}).
			Return(goredis.NewIntResult(1, nil)).
			Once()

		// When: the snapshot is published
		err = publisher.Publish(ctx, snapshot)

		// Then: the payload decodes back to the same snapshot
		require.NoError(t, err)

		var decoded entity.Snapshot
		require.NoError(t, json.Unmarshal(published, &decoded))
		assert.Equal(t, snapshot, decoded)
	})

	t.Run("Returns the client error", func(t *testing.T) {
		// Given: a client that fails
		client := mockedRedis.NewMockpublisherClient(t)
		publisher, err := NewPublisher(suite.NewLogger(), client, "games")
		require.NoError(t, err)

		client.EXPECT().
			Publish(mock.Anything, "games", mock.Anything).
			Return(goredis.NewIntResult(0, errRedisDown)).
			Once()

		// When: publishing
		err = publisher.Publish(ctx, entity.Snapshot{})

		// Then: the error is wrapped and returned
		require.ErrorIs(t, err, errRedisDown)
	})

	t.Run("Listener swallows errors", func(t *testing.T) {
		client := mockedRedis.NewMockpublisherClient(t)
		publisher, err := NewPublisher(suite.NewLogger(), client, "games")
		require.NoError(t, err)

		client.EXPECT().
			Publish(mock.Anything, "games", mock.Anything).
			Return(goredis.NewIntResult(0, errRedisDown)).
			Once()

		assert.NotPanics(t, func() { publisher.Listener(ctx)(entity.Snapshot{}) })
	})

	t.Run("Empty channel is rejected", func(t *testing.T) {
		_, err := NewPublisher(suite.NewLogger(), mockedRedis.NewMockpublisherClient(t), "")

		assert.ErrorIs(t, err, ErrEmptyChannel)
	})

	t.Run("Close closes the client", func(t *testing.T) {
		client := mockedRedis.NewMockpublisherClient(t)
		publisher, err := NewPublisher(suite.NewLogger(), client, "games")
		require.NoError(t, err)

		client.EXPECT().Close().Return(nil).Once()

		assert.NoError(t, publisher.Close())
	})
}

func TestPublisher_EngineRoundTrip(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a subscriber and an engine publishing to the same channel
	snapshots, err := Subscribe(ctx, st.Redis, "tictactoe:test")
	require.NoError(t, err)

	client, err := Connect(ctx, st.RedisAddr)
	require.NoError(t, err)

	publisher, err := NewPublisher(st.Logger, client, "tictactoe:test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Close() })

	scheduler := suite.NewManualScheduler()
	engine := usecase.NewGameEngine(st.Logger, usecase.EngineConfig{Difficulty: entity.Hard}, tictactoe.NewBot(rand.NewPCG(1, 1)), scheduler)
	engine.Subscribe(publisher.Listener(ctx))

	// When: a game starts and the first moves are played
	require.NoError(t, engine.StartGame())
	require.NoError(t, engine.SubmitHumanMove(0))
	scheduler.RunPending()

	// Then: the subscriber sees the three snapshots in order
	var received []entity.Snapshot
	for len(received) < 3 {
		select {
		case snapshot := <-snapshots:
			received = append(received, snapshot)
		case <-time.After(10 * time.Second):
			t.Fatalf("received only %d snapshots", len(received))
		}
	}

	assert.True(t, received[0].Started)
	assert.True(t, received[1].BoardLocked)
	require.NotNil(t, received[2].Board[entity.CenterCell])
	assert.Equal(t, entity.Computer, received[2].Board[entity.CenterCell].Player)
	assert.Equal(t, engine.Snapshot(), received[2])
}
