package usecase

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const DefaultComputerDelay = 500 * time.Millisecond

type moveStrategy interface {
	ComputerMove(board entity.Board, difficulty entity.Difficulty) (int, error)
}

type scheduler interface {
	Schedule(delay time.Duration, task func()) (cancel func())
}

type EngineConfig struct {
	Difficulty    entity.Difficulty
	ComputerDelay time.Duration
}

// session - the single mutable game aggregate. Guarded by GameEngine.mu.
type session struct {
	id          string
	board       entity.Board
	difficulty  entity.Difficulty
	started     bool
	boardLocked bool
	outcome     entity.Outcome
	version     uint64
}

type listener struct {
	id uint64
	fn func(entity.Snapshot)
}

// GameEngine owns one game session against the computer. Human moves are applied
// synchronously; the computer answers through the scheduler while the board stays locked.
type GameEngine struct {
	logger    *slog.Logger
	strategy  moveStrategy
	scheduler scheduler
	delay     time.Duration

	mu          sync.Mutex
	session     session
	generation  uint64
	replySeq    uint64
	cancelReply func()

	listenersMu    sync.Mutex
	listeners      []listener
	nextListenerID uint64
}

func NewGameEngine(logger *slog.Logger, conf EngineConfig, strategy moveStrategy, scheduler scheduler) *GameEngine {
	return &GameEngine{
		logger:    logger.With("component", "engine"),
		strategy:  strategy,
		scheduler: scheduler,
		delay:     conf.ComputerDelay,

		session: session{
			id:         uuid.NewString(),
			difficulty: conf.Difficulty,
		},
	}
}

// StartGame - begins a fresh game on an empty board.
func (that *GameEngine) StartGame() error {
	that.mu.Lock()

	if that.session.started {
		that.mu.Unlock()
		return apperror.ErrGameAlreadyStarted
	}

	that.resetLocked()
	that.session.id = uuid.NewString()
	that.session.started = true
	snapshot := that.commitLocked()

	that.mu.Unlock()

	that.logger.Info("game started", "gameID", snapshot.ID, "difficulty", snapshot.Difficulty)
	that.notify(snapshot)

	return nil
}

// StopGame - ends the running game and clears the board.
func (that *GameEngine) StopGame() error {
	that.mu.Lock()

	if !that.session.started {
		that.mu.Unlock()
		return apperror.ErrGameIsNotStarted
	}

	that.resetLocked()
	that.session.started = false
	snapshot := that.commitLocked()

	that.mu.Unlock()

	that.logger.Info("game stopped", "gameID", snapshot.ID)
	that.notify(snapshot)

	return nil
}

// ResetGame - clears the board and the outcome. Difficulty and the started flag are kept.
func (that *GameEngine) ResetGame() {
	that.mu.Lock()

	that.resetLocked()
	snapshot := that.commitLocked()

	that.mu.Unlock()

	that.logger.Debug("game reset", "gameID", snapshot.ID)
	that.notify(snapshot)
}

// SetDifficulty - only allowed while no game is running.
func (that *GameEngine) SetDifficulty(difficulty entity.Difficulty) error {
	if !difficulty.IsValid() {
		return fmt.Errorf("%w: %d", entity.ErrUnknownDifficulty, int(difficulty))
	}

	that.mu.Lock()

	if that.session.started {
		that.mu.Unlock()
		return apperror.ErrGameInProgress
	}

	that.session.difficulty = difficulty
	snapshot := that.commitLocked()

	that.mu.Unlock()

	that.logger.Info("difficulty changed", "difficulty", difficulty)
	that.notify(snapshot)

	return nil
}

// SubmitHumanMove - plays the human's mark. A rejected move returns an error and leaves the session untouched.
func (that *GameEngine) SubmitHumanMove(cell int) error {
	log := that.logger.With("method", "SubmitHumanMove", "cell", cell)

	that.mu.Lock()

	if err := that.checkHumanMoveLocked(cell); err != nil {
		that.mu.Unlock()
		log.Debug("move rejected", "error", err)
		return err
	}

	if err := that.session.board.Place(entity.Human, cell); err != nil {
		that.mu.Unlock()
		log.Debug("move rejected", "error", err)
		return fmt.Errorf("failed to place human move: %w", err)
	}

	needReply := that.evaluateLocked(entity.Human)
	if needReply {
		that.session.boardLocked = true
		that.replySeq++
	}

	generation, reply := that.generation, that.replySeq
	snapshot := that.commitLocked()

	that.mu.Unlock()

	log.Info("human moved", "gameID", snapshot.ID, "outcome", snapshot.Outcome)
	that.notify(snapshot)

	if needReply {
		that.scheduleReply(generation, reply)
	}

	return nil
}

// Snapshot - current state of the session.
func (that *GameEngine) Snapshot() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshotLocked()
}

// Subscribe - the listener receives a snapshot after every change. Call the returned func to stop.
func (that *GameEngine) Subscribe(fn func(entity.Snapshot)) (unsubscribe func()) {
	that.listenersMu.Lock()
	that.nextListenerID++
	id := that.nextListenerID
	that.listeners = append(that.listeners, listener{id: id, fn: fn})
	that.listenersMu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			that.listenersMu.Lock()
			defer that.listenersMu.Unlock()

			for i, l := range that.listeners {
				if l.id == id {
					that.listeners = append(that.listeners[:i:i], that.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (that *GameEngine) checkHumanMoveLocked(cell int) error {
	switch {
	case !entity.IsValidCell(cell):
		return fmt.Errorf("%w: cell %d", entity.ErrInvalidCell, cell)
	case that.session.outcome.IsTerminal():
		return apperror.ErrGameFinished
	case !that.session.started:
		return apperror.ErrGameIsNotStarted
	case that.session.boardLocked:
		return apperror.ErrBoardLocked
	case that.session.board.IsOccupied(cell):
		return apperror.ErrCellOccupied
	default:
		return nil
	}
}

// evaluateLocked - settles the outcome after the player's move. Returns true when the game goes on.
func (that *GameEngine) evaluateLocked(player entity.Player) bool {
	switch {
	case that.session.board.HasWon(player):
		that.session.outcome = entity.WinFor(player)
	case that.session.board.IsFull():
		that.session.outcome = entity.Draw
	default:
		return true
	}

	that.session.started = false

	return false
}

// scheduleReply - keeps the cancel func only while this reply is the one still awaited.
func (that *GameEngine) scheduleReply(generation, reply uint64) {
	cancel := that.scheduler.Schedule(that.delay, func() {
		that.playComputerMove(generation)
	})

	that.mu.Lock()
	defer that.mu.Unlock()

	if generation != that.generation {
		// the session was reset before the reply could be tracked
		cancel()
		return
	}

	if reply != that.replySeq || !that.session.boardLocked {
		// already played, or a newer reply owns the slot
		return
	}

	that.cancelReply = cancel
}

func (that *GameEngine) playComputerMove(generation uint64) {
	log := that.logger.With("method", "playComputerMove")

	that.mu.Lock()

	if generation != that.generation || !that.session.started || !that.session.boardLocked {
		that.mu.Unlock()
		log.Debug("stale computer reply discarded")
		return
	}

	that.cancelReply = nil

	cell, err := that.strategy.ComputerMove(that.session.board, that.session.difficulty)
	if err == nil {
		err = that.session.board.Place(entity.Computer, cell)
	}

	if err != nil {
		that.session.boardLocked = false
		snapshot := that.commitLocked()
		that.mu.Unlock()

		log.Error("computer failed to make turn", "error", err)
		that.notify(snapshot)
		return
	}

	that.session.boardLocked = false
	that.evaluateLocked(entity.Computer)
	snapshot := that.commitLocked()

	that.mu.Unlock()

	log.Info("computer moved", "gameID", snapshot.ID, "cell", cell, "outcome", snapshot.Outcome)
	that.notify(snapshot)
}

// resetLocked - empties the board and drops any computer reply still in flight.
func (that *GameEngine) resetLocked() {
	that.generation++

	if that.cancelReply != nil {
		that.cancelReply()
		that.cancelReply = nil
	}

	that.session.board = entity.Board{}
	that.session.outcome = entity.Ongoing
	that.session.boardLocked = false
}

func (that *GameEngine) commitLocked() entity.Snapshot {
	that.session.version++

	return that.snapshotLocked()
}

func (that *GameEngine) snapshotLocked() entity.Snapshot {
	return entity.Snapshot{
		ID:          that.session.id,
		Board:       that.session.board.Clone(),
		Outcome:     that.session.outcome,
		Difficulty:  that.session.difficulty,
		Started:     that.session.started,
		BoardLocked: that.session.boardLocked,
		Version:     that.session.version,
	}
}

func (that *GameEngine) notify(snapshot entity.Snapshot) {
	that.listenersMu.Lock()
	listeners := make([]listener, len(that.listeners))
	copy(listeners, that.listeners)
	that.listenersMu.Unlock()

	for _, l := range listeners {
		l.fn(snapshot)
	}
}
