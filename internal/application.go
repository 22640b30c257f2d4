package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solo/transport/rest"
	"github.com/rocketscienceinc/tictactoe-solo/transport/tui"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownUI    = errors.New("unknown ui")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.UI == config.UIWatch {
		return watch(ctx, logger, conf)
	}

	difficulty, err := entity.ParseDifficulty(conf.Game.Difficulty)
	if err != nil {
		return fmt.Errorf("invalid game difficulty: %w", err)
	}

	bot := tictactoe.NewBot(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	engine := usecase.NewGameEngine(logger, usecase.EngineConfig{
		Difficulty:    difficulty,
		ComputerDelay: conf.Game.ComputerDelay,
	}, bot, usecase.TimerScheduler{})

	if conf.Redis.Enabled {
		publisher, closePublisher, err := newPublisher(ctx, logger, conf.Redis)
		if err != nil {
			return err
		}
		defer closePublisher()

		unsubscribe := engine.Subscribe(publisher.Listener(ctx))
		defer unsubscribe()

		log.Info("Publishing game changes to redis", "channel", conf.Redis.Channel)
	}

	switch conf.UI {
	case config.UITerminal:
		if err = tui.Run(ctx, logger, engine, conf.Game.HumanMark); err != nil {
			return fmt.Errorf("terminal ui error: %w", err)
		}
		return nil
	case config.UIHTTP:
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err = rest.Start(ctx, logger, conf.HTTPPort, engine); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		log.Info("Application context canceled, shutting down")
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUI, conf.UI)
	}
}

func newPublisher(ctx context.Context, logger *slog.Logger, conf config.Redis) (*redis.Publisher, func(), error) {
	redisAddrString := conf.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	client, err := redis.Connect(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	publisher, err := redis.NewPublisher(logger, client, conf.Channel)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("could not create redis publisher: %w", err)
	}

	closePublisher := func() {
		if err := publisher.Close(); err != nil {
			logger.Error("could not close redis publisher", "error", err)
		}
	}

	return publisher, closePublisher, nil
}

// watch - logs every snapshot another process publishes until ctx is cancelled.
func watch(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "watch", "channel", conf.Redis.Channel)

	client, err := redis.Connect(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis: %w", err)
	}

	defer func() {
		if err = client.Close(); err != nil {
			log.Error("could not close redis client", "error", err)
		}
	}()

	snapshots, err := redis.Subscribe(ctx, client, conf.Redis.Channel)
	if err != nil {
		return err
	}

	marks := tui.NewMarks(conf.Game.HumanMark)

	log.Info("Watching games")

	for snapshot := range snapshots {
		log.Info("game changed",
			"gameID", snapshot.ID,
			"version", snapshot.Version,
			"outcome", snapshot.Outcome,
			"started", snapshot.Started,
			"board", tui.PlainBoard(snapshot.Board, marks),
		)
	}

	return nil
}
