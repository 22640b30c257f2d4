package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type gameEngine interface {
	StartGame() error
	StopGame() error
	ResetGame()
	SetDifficulty(difficulty entity.Difficulty) error
	SubmitHumanMove(cell int) error
	Snapshot() entity.Snapshot
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type difficultyRequest struct {
	Difficulty *entity.Difficulty `json:"difficulty"`
}

type errorResponse struct {
	Error string           `json:"error"`
	Game  *entity.Snapshot `json:"game,omitempty"`
}

type handlers struct {
	logger *slog.Logger
	engine gameEngine
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) getGame(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.engine.Snapshot())
}

func (that *handlers) startGame(w http.ResponseWriter, _ *http.Request) {
	that.respond(w, that.engine.StartGame())
}

func (that *handlers) stopGame(w http.ResponseWriter, _ *http.Request) {
	that.respond(w, that.engine.StopGame())
}

func (that *handlers) resetGame(w http.ResponseWriter, _ *http.Request) {
	that.engine.ResetGame()
	that.respond(w, nil)
}

func (that *handlers) setDifficulty(w http.ResponseWriter, r *http.Request) {
	var req difficultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid difficulty: " + err.Error()})
		return
	}

	if req.Difficulty == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be {\"difficulty\": easy|medium|hard}"})
		return
	}

	that.respond(w, that.engine.SetDifficulty(*req.Difficulty))
}

func (that *handlers) submitMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be {\"cell\": 0-8}"})
		return
	}

	that.respond(w, that.engine.SubmitHumanMove(*req.Cell))
}

// respond - the snapshot on success, otherwise the rejection with the unchanged snapshot.
func (that *handlers) respond(w http.ResponseWriter, err error) {
	snapshot := that.engine.Snapshot()

	if err == nil {
		that.writeJSON(w, http.StatusOK, snapshot)
		return
	}

	that.writeJSON(w, statusFor(err), errorResponse{Error: err.Error(), Game: &snapshot})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidCell), errors.Is(err, entity.ErrUnknownDifficulty):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrBoardLocked),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrGameAlreadyStarted),
		errors.Is(err, apperror.ErrGameInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
