package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

const (
	BoardSize  = 9
	CenterCell = 4
)

var (
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrUnknownOutcome = errors.New("unknown game outcome")

	// WinCombos - rows, then columns, then diagonals. The computer policy relies on this order.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

type Outcome int

const (
	Ongoing Outcome = iota
	HumanWin
	ComputerWin
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Ongoing:
		return "ongoing"
	case HumanWin:
		return "human_win"
	case ComputerWin:
		return "computer_win"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", int(that))
	}
}

// IsTerminal - true once the game has been won or drawn.
func (that Outcome) IsTerminal() bool {
	return that == HumanWin || that == ComputerWin || that == Draw
}

func (that Outcome) MarshalText() ([]byte, error) {
	if that < Ongoing || that > Draw {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOutcome, int(that))
	}
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "ongoing":
		*that = Ongoing
	case "human_win":
		*that = HumanWin
	case "computer_win":
		*that = ComputerWin
	case "draw":
		*that = Draw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, text)
	}
	return nil
}

// WinFor - the outcome reached when the given player completes a line.
func WinFor(player Player) Outcome {
	if player == Human {
		return HumanWin
	}
	return ComputerWin
}

// Board - nil slots are empty cells.
type Board [BoardSize]*Move

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

func (that *Board) IsOccupied(cell int) bool {
	return IsValidCell(cell) && that[cell] != nil
}

// Place - puts a move for the player on an empty cell.
func (that *Board) Place(player Player, cell int) error {
	if !IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.IsOccupied(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = &Move{Player: player, CellIndex: cell}

	return nil
}

func (that *Board) OwnedBy(cell int, player Player) bool {
	return IsValidCell(cell) && that[cell] != nil && that[cell].Player == player
}

func (that *Board) HasWon(player Player) bool {
	for _, combo := range WinCombos {
		if that.OwnedBy(combo[0], player) && that.OwnedBy(combo[1], player) && that.OwnedBy(combo[2], player) {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, move := range that {
		if move == nil {
			return false
		}
	}

	return true
}

// IsDraw - a full board on which nobody has a line.
func (that *Board) IsDraw() bool {
	return that.IsFull() && !that.HasWon(Human) && !that.HasWon(Computer)
}

func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, move := range that {
		if move == nil {
			cells = append(cells, i)
		}
	}

	return cells
}

// Clone - copies every move so the result shares nothing with the receiver.
func (that *Board) Clone() Board {
	var board Board
	for i, move := range that {
		if move != nil {
			copied := *move
			board[i] = &copied
		}
	}

	return board
}

// Snapshot - a read-only view of a game session handed to presentation layers.
type Snapshot struct {
	ID          string     `json:"id"`
	Board       Board      `json:"board"`
	Outcome     Outcome    `json:"outcome"`
	Difficulty  Difficulty `json:"difficulty"`
	Started     bool       `json:"started"`
	BoardLocked bool       `json:"board_locked"`
	Version     uint64     `json:"version"`
}
