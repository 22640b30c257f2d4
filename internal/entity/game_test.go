package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardOf - builds a board from a 9-char layout: 'X' human, 'O' computer, anything else empty.
func boardOf(t *testing.T, layout string) Board {
	t.Helper()
	require.Len(t, layout, BoardSize)

	var board Board
	for i, r := range layout {
		switch r {
		case 'X':
			require.NoError(t, board.Place(Human, i))
		case 'O':
			require.NoError(t, board.Place(Computer, i))
		}
	}

	return board
}

func TestBoard_HasWon(t *testing.T) {
	t.Run("Empty board has no winner", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// Then: nobody has won
		assert.False(t, board.HasWon(Human))
		assert.False(t, board.HasWon(Computer))
	})

	t.Run("Every win pattern is detected for both players", func(t *testing.T) {
		for _, combo := range WinCombos {
			for _, player := range []Player{Human, Computer} {
				// Given: a board with only the pattern filled by the player
				var board Board
				for _, cell := range combo {
					require.NoError(t, board.Place(player, cell))
				}

				// Then: the player has won and the opponent has not
				assert.True(t, board.HasWon(player), "combo %v player %s", combo, player)
				assert.False(t, board.HasWon(player.Opponent()), "combo %v player %s", combo, player)
			}
		}
	})

	t.Run("Mixed line is not a win", func(t *testing.T) {
		// Given: a top row split between players
		board := boardOf(t, "XXO......")

		// Then: nobody has won
		assert.False(t, board.HasWon(Human))
		assert.False(t, board.HasWon(Computer))
	})

	t.Run("Column win for computer", func(t *testing.T) {
		// Given: the computer owns the middle column
		board := boardOf(t, "XOX.O..O.")

		// Then: the computer has won
		assert.True(t, board.HasWon(Computer))
		assert.False(t, board.HasWon(Human))
	})
}

func TestBoard_IsDraw(t *testing.T) {
	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a full board with no winner
		board := boardOf(t, "XOXXOOOXX")

		// Then: it is a draw
		assert.True(t, board.IsFull())
		assert.True(t, board.IsDraw())
	})

	t.Run("Full board with a line is not a draw", func(t *testing.T) {
		// Given: a full board where the human owns the top row
		board := boardOf(t, "XXXOOXXOO")

		// Then: it is a win, never a draw
		assert.True(t, board.IsFull())
		assert.True(t, board.HasWon(Human))
		assert.False(t, board.IsDraw())
	})

	t.Run("Board with empty cells is not a draw", func(t *testing.T) {
		// Given: an unfinished board
		board := boardOf(t, "XO.......")

		// Then: it is not a draw
		assert.False(t, board.IsDraw())
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places a move carrying its own index", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: the human plays cell 5
		err := board.Place(Human, 5)

		// Then: the move sits at index 5 and knows it
		require.NoError(t, err)
		require.NotNil(t, board[5])
		assert.Equal(t, Move{Player: Human, CellIndex: 5}, *board[5])
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell 0 is taken
		board := boardOf(t, "X........")

		// When: the computer tries the same cell
		err := board.Place(Computer, 0)

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, Human, board[0].Player)
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		var board Board

		assert.ErrorIs(t, board.Place(Human, -1), ErrInvalidCell)
		assert.ErrorIs(t, board.Place(Human, 9), ErrInvalidCell)
	})
}

func TestBoard_OutOfRangeCells(t *testing.T) {
	// Given: a full board
	board := boardOf(t, "XOXXOOOXX")

	for _, cell := range []int{-1, BoardSize, 100} {
		// Then: cells off the board are neither occupied nor owned
		assert.False(t, board.IsOccupied(cell), "cell %d", cell)
		assert.False(t, board.OwnedBy(cell, Human), "cell %d", cell)
		assert.False(t, board.OwnedBy(cell, Computer), "cell %d", cell)
	}
}

func TestBoard_EmptyCellsAndClone(t *testing.T) {
	// Given: a board with a few moves
	board := boardOf(t, "X...O...X")

	// Then: only the untouched cells are empty
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, board.EmptyCells())

	// When: the board is cloned and the clone is changed
	clone := board.Clone()
	clone[0].Player = Computer
	require.NoError(t, clone.Place(Human, 1))

	// Then: the original is untouched
	assert.Equal(t, Human, board[0].Player)
	assert.Nil(t, board[1])
}

func TestSnapshot_JSON(t *testing.T) {
	// Given: a snapshot of a finished game
	snapshot := Snapshot{
		ID:         "game-1",
		Board:      boardOf(t, "XXX.OO..."),
		Outcome:    HumanWin,
		Difficulty: Hard,
		Version:    7,
	}

	// When: it is encoded
	data, err := json.Marshal(snapshot)
	require.NoError(t, err)

	// Then: enums are written as text and empty cells as null
	assert.Contains(t, string(data), `"outcome":"human_win"`)
	assert.Contains(t, string(data), `"difficulty":"hard"`)
	assert.Contains(t, string(data), `{"player":"human","cell":0}`)
	assert.Contains(t, string(data), `null`)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, snapshot, decoded)
}

func TestParseDifficulty(t *testing.T) {
	for input, expected := range map[string]Difficulty{"easy": Easy, "Medium": Medium, " hard ": Hard} {
		difficulty, err := ParseDifficulty(input)
		require.NoError(t, err)
		assert.Equal(t, expected, difficulty)
	}

	_, err := ParseDifficulty("impossible")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestOutcome_IsTerminal(t *testing.T) {
	assert.False(t, Ongoing.IsTerminal())
	assert.True(t, HumanWin.IsTerminal())
	assert.True(t, ComputerWin.IsTerminal())
	assert.True(t, Draw.IsTerminal())
	assert.Equal(t, HumanWin, WinFor(Human))
	assert.Equal(t, ComputerWin, WinFor(Computer))
}
