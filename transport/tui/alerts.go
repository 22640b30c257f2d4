package tui

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type Alert struct {
	Title   string
	Message string
	Button  string
}

var alerts = map[entity.Outcome]Alert{
	entity.HumanWin:    {Title: "You win", Message: "You are so smart.", Button: "Hell yeah!"},
	entity.ComputerWin: {Title: "You lost", Message: "You are so loser.", Button: "Play again"},
	entity.Draw:        {Title: "Draw", Message: "Nice game.", Button: "Try again"},
}

// AlertFor - the dialog shown for a finished game. Ongoing games have none.
func AlertFor(outcome entity.Outcome) (Alert, bool) {
	alert, ok := alerts[outcome]
	return alert, ok
}

// Marks - glyphs drawn for each side.
type Marks struct {
	Human    string
	Computer string
}

// NewMarks - the human picks X or O, the computer gets the other one.
func NewMarks(humanMark string) Marks {
	if strings.EqualFold(strings.TrimSpace(humanMark), "O") {
		return Marks{Human: "O", Computer: "X"}
	}
	return Marks{Human: "X", Computer: "O"}
}

func (that Marks) For(player entity.Player) string {
	if player == entity.Human {
		return that.Human
	}
	return that.Computer
}

// PlainBoard - the board as unstyled text, rows separated by newlines.
func PlainBoard(board entity.Board, marks Marks) string {
	var b strings.Builder

	for row := range 3 {
		for col := range 3 {
			mark := " "
			if move := board[row*3+col]; move != nil {
				mark = marks.For(move.Player)
			}

			b.WriteString(mark)
			if col < 2 {
				b.WriteString("|")
			}
		}

		if row < 2 {
			b.WriteString("\n-+-+-\n")
		}
	}

	return b.String()
}
