package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownPlayer = errors.New("unknown player")

type Player int

const (
	Human Player = iota + 1
	Computer
)

func (that Player) String() string {
	switch that {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("player(%d)", int(that))
	}
}

// Opponent - returns the other side of the board.
func (that Player) Opponent() Player {
	if that == Human {
		return Computer
	}
	return Human
}

func (that Player) MarshalText() ([]byte, error) {
	switch that {
	case Human, Computer:
		return []byte(that.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, int(that))
	}
}

func (that *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "human":
		*that = Human
	case "computer":
		*that = Computer
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, text)
	}
	return nil
}

// Move is a mark placed on the board. It is never modified after placement.
type Move struct {
	Player    Player `json:"player"`
	CellIndex int    `json:"cell"`
}
