package tictactoe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const coordinateLength = 2

var (
	ErrMalformedMove    = errors.New("move must be a row letter followed by a column digit")
	ErrUnknownRow       = errors.New("unknown row letter")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrInvalidCell      = errors.New("invalid cell position")
)

// GameController owns a single game and is the only thing that mutates it.
type GameController struct {
	game *entity.Game
}

func NewGameController(game *entity.Game) *GameController {
	return &GameController{
		game: game,
	}
}

func (that *GameController) Game() *entity.Game {
	return that.game
}

// MakeTurn - validates the move typed by the current player, applies it and
// advances the game. A rejected move leaves the game untouched.
func (that *GameController) MakeTurn(input string) (entity.Outcome, error) {
	pos, err := that.ValidateMove(input)
	if err != nil {
		return entity.Outcome{}, err
	}

	if err = that.ApplyMove(pos); err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to apply move: %w", err)
	}

	outcome := that.CheckOutcome()
	that.game.UpdateGameState(outcome)

	return outcome, nil
}

// ValidateMove - parses a coordinate such as "b2" and checks it targets an empty cell.
func (that *GameController) ValidateMove(input string) (entity.Position, error) {
	if err := that.game.ConfirmOngoingState(); err != nil {
		return entity.Position{}, err
	}

	input = strings.ToLower(input)
	if len(input) != coordinateLength {
		return entity.Position{}, invalidMove(ErrMalformedMove, input)
	}

	row := strings.IndexByte(that.game.RowLetters(), input[0])
	if row < 0 {
		return entity.Position{}, invalidMove(ErrUnknownRow, input)
	}

	col, err := strconv.Atoi(input[1:])
	if err != nil || col < 1 || col > that.game.Size {
		return entity.Position{}, invalidMove(ErrColumnOutOfRange, input)
	}

	pos := entity.Position{Row: row, Col: col - 1}
	if that.game.Cell(pos) != entity.EmptyCell {
		return entity.Position{}, invalidMove(apperror.ErrCellOccupied, input)
	}

	return pos, nil
}

// ApplyMove - places the current player's mark. The position is expected to be validated.
func (that *GameController) ApplyMove(pos entity.Position) error {
	if err := that.game.ConfirmOngoingState(); err != nil {
		return err
	}

	if !that.game.Contains(pos) {
		return fmt.Errorf("%w: %+v", ErrInvalidCell, pos)
	}

	if that.game.Cell(pos) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.game.Board[pos.Row][pos.Col] = that.game.Turn.Mark()
	that.game.MovesLeft--

	return nil
}

// CheckOutcome - sums every line of the board. A line adding up to +size or
// -size can only be filled by one player, because opposite marks cancel.
func (that *GameController) CheckOutcome() entity.Outcome {
	size := that.game.Size
	target := size * int(entity.MarkX)

	for _, sum := range lineSums(that.game.Board) {
		switch sum {
		case target:
			return entity.Outcome{Winner: entity.PlayerOne}
		case -target:
			return entity.Outcome{Winner: entity.PlayerTwo}
		}
	}

	if that.game.MovesLeft == 0 {
		return entity.Outcome{Draw: true}
	}

	return entity.Outcome{}
}

// lineSums returns the sums of all rows, then all columns, then both diagonals.
func lineSums(board [][]entity.Mark) []int {
	size := len(board)
	sums := make([]int, 2*size+2)
	mainDiagonal, antiDiagonal := 2*size, 2*size+1

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			value := int(board[i][j])
			sums[i] += value
			sums[size+j] += value
		}
		sums[mainDiagonal] += int(board[i][i])
		sums[antiDiagonal] += int(board[i][size-1-i])
	}

	return sums
}

func invalidMove(reason error, input string) error {
	return fmt.Errorf("%w %q: %w", apperror.ErrInvalidMove, input, reason)
}
