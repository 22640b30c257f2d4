package tictactoe

import (
	"errors"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Bot - picks the computer's cell. Higher difficulties unlock more rules of the ladder:
// win if possible, block the human, take the center, then play a random empty cell.
type Bot struct {
	rand *rand.Rand
}

func NewBot(source rand.Source) *Bot {
	return &Bot{
		rand: rand.New(source), //nolint: gosec // move choice does not need a secure source
	}
}

func (that *Bot) ComputerMove(board entity.Board, difficulty entity.Difficulty) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	if difficulty >= entity.Medium {
		if cell, ok := completingCell(&board, entity.Computer); ok {
			return cell, nil
		}

		if cell, ok := completingCell(&board, entity.Human); ok {
			return cell, nil
		}
	}

	if difficulty >= entity.Hard && !board.IsOccupied(entity.CenterCell) {
		return entity.CenterCell, nil
	}

	return availableCells[that.rand.IntN(len(availableCells))], nil
}

// completingCell - the empty third cell of the first combo where the player already holds two.
func completingCell(board *entity.Board, player entity.Player) (int, bool) {
	for _, combo := range entity.WinCombos {
		owned := 0
		free := -1

		for _, cell := range combo {
			switch {
			case board.OwnedBy(cell, player):
				owned++
			case !board.IsOccupied(cell):
				free = cell
			}
		}

		if owned == 2 && free != -1 {
			return free, true
		}
	}

	return 0, false
}
