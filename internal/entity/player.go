package entity

import "strconv"

// Mark is the signed value a player leaves in a cell. Opposing marks cancel
// out when a line is summed.
type Mark int8

const (
	EmptyCell Mark = 0
	MarkX     Mark = 1
	MarkO     Mark = -1
)

type Player int

const (
	NoPlayer  Player = 0
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Mark returns the cell value placed by the player.
func (that Player) Mark() Mark {
	switch that {
	case PlayerOne:
		return MarkX
	case PlayerTwo:
		return MarkO
	default:
		return EmptyCell
	}
}

func (that Player) Opponent() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (that Player) String() string {
	return strconv.Itoa(int(that))
}
