package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - wires the game routes over the engine.
func NewRouter(logger *slog.Logger, engine gameEngine) http.Handler {
	h := &handlers{
		logger: logger.With("component", "rest"),
		engine: engine,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ping", h.ping)
	r.Route("/game", func(r chi.Router) {
		r.Get("/", h.getGame)
		r.Post("/start", h.startGame)
		r.Post("/stop", h.stopGame)
		r.Post("/reset", h.resetGame)
		r.Put("/difficulty", h.setDifficulty)
		r.Post("/moves", h.submitMove)
	})

	return r
}

// Start - serves the API until ctx is cancelled.
func Start(ctx context.Context, logger *slog.Logger, port string, engine gameEngine) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(logger, engine),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down http server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
