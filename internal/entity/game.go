package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type Status string

const (
	StatusFinished Status = "finished"
	StatusOngoing  Status = "ongoing"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 5

	rowAlphabet = "abcde"
)

// Position addresses a cell by zero-based row and column.
type Position struct {
	Row int
	Col int
}

// Outcome is the result of checking the board. The zero value means the game goes on.
type Outcome struct {
	Winner Player
	Draw   bool
}

func (that Outcome) IsTerminal() bool {
	return that.Winner != NoPlayer || that.Draw
}

type Game struct {
	ID        string
	Size      int
	Board     [][]Mark
	Turn      Player
	MovesLeft int
	Status    Status
	Winner    Player
}

// ValidateBoardSize - checks that the board size is supported.
func ValidateBoardSize(size int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	return nil
}

func NewGame(size int) (*Game, error) {
	if err := ValidateBoardSize(size); err != nil {
		return nil, err
	}

	board := make([][]Mark, size)
	for i := range board {
		board[i] = make([]Mark, size)
	}

	return &Game{
		ID:        uuid.NewString(),
		Size:      size,
		Board:     board,
		Turn:      PlayerOne,
		MovesLeft: size * size,
		Status:    StatusOngoing,
	}, nil
}

// RowLetters returns the letters that name the board rows, one per row.
func (that *Game) RowLetters() string {
	return rowAlphabet[:that.Size]
}

func (that *Game) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < that.Size && pos.Col >= 0 && pos.Col < that.Size
}

func (that *Game) Cell(pos Position) Mark {
	return that.Board[pos.Row][pos.Col]
}

func (that *Game) UpdateGameState(outcome Outcome) {
	switch {
	// one player wins
	case outcome.Winner != NoPlayer:
		that.Winner = outcome.Winner
		that.Status = StatusFinished
	// no moves left
	case outcome.Draw:
		that.Winner = NoPlayer
		that.Status = StatusFinished
	// game continue
	default:
		that.Turn = that.Turn.Opponent()
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	return nil
}
