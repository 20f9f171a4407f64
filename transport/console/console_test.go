package console

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(logger, strings.NewReader(input), out, NewBoardRenderer(false)), out
}

func TestConsole_AskBoardSize(t *testing.T) {
	t.Run("Accepts a size in range", func(t *testing.T) {
		// Given: the player types 4
		console, out := newConsole("4\n")

		// When: the board size is requested
		size, err := console.AskBoardSize()

		// Then: 4 is returned after a single prompt
		require.NoError(t, err)
		assert.Equal(t, 4, size)
		assert.Equal(t, sizePrompt+"\n", out.String())
	})

	t.Run("Re-prompts on out of range and non-integer input", func(t *testing.T) {
		// Given: the player types invalid sizes before a valid one
		console, out := newConsole("2\n6\nabc\n\n 5 \n")

		// When: the board size is requested
		size, err := console.AskBoardSize()

		// Then: every rejected answer triggers a new prompt
		require.NoError(t, err)
		assert.Equal(t, 5, size)
		assert.Equal(t, 5, strings.Count(out.String(), sizePrompt))
	})

	t.Run("Fails when input ends", func(t *testing.T) {
		console, _ := newConsole("7\n")

		_, err := console.AskBoardSize()

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestParseBoardSize(t *testing.T) {
	_, err := parseBoardSize("three")
	require.ErrorIs(t, err, apperror.ErrNotANumber)

	_, err = parseBoardSize("9")
	require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)

	size, err := parseBoardSize("3")
	require.NoError(t, err)
	assert.Equal(t, 3, size)
}

func TestConsole_PromptMove(t *testing.T) {
	// Given: a new game on player two's turn
	console, out := newConsole("")
	game, err := entity.NewGame(3)
	require.NoError(t, err)
	game.Turn = entity.PlayerTwo

	// When: the move is prompted
	console.PromptMove(game)

	// Then: the prompt comes first, followed by the board
	expected := "Make your move Player 2:\n" + NewBoardRenderer(false).Render(game)
	assert.Equal(t, expected, out.String())
}

func TestConsole_ReadMove(t *testing.T) {
	console, _ := newConsole("a1\r\nb2\n")

	move, err := console.ReadMove()
	require.NoError(t, err)
	assert.Equal(t, "a1", move)

	move, err = console.ReadMove()
	require.NoError(t, err)
	assert.Equal(t, "b2", move)

	_, err = console.ReadMove()
	require.ErrorIs(t, err, apperror.ErrInputClosed)
}

func TestConsole_RejectMove(t *testing.T) {
	console, out := newConsole("")

	console.RejectMove("z9")

	assert.Equal(t, "Invalid input \"z9\", plz try again\n", out.String())
}

func TestConsole_ReportOutcome(t *testing.T) {
	game, err := entity.NewGame(3)
	require.NoError(t, err)
	board := NewBoardRenderer(false).Render(game)

	t.Run("Win", func(t *testing.T) {
		console, out := newConsole("")

		console.ReportOutcome(game, entity.Outcome{Winner: entity.PlayerOne})

		assert.Equal(t, board+"\nPlayer 1 wins!\n", out.String())
	})

	t.Run("Draw", func(t *testing.T) {
		console, out := newConsole("")

		console.ReportOutcome(game, entity.Outcome{Draw: true})

		assert.Equal(t, board+"\nNo moves left, all lose. Game over.\n", out.String())
	})
}

func TestConsole_ReadMove_LongLines(t *testing.T) {
	t.Run("Returns a line longer than any read buffer in one piece", func(t *testing.T) {
		// Given: a line of 70000 characters followed by a regular move
		long := strings.Repeat("a", 70000)
		console, _ := newConsole(long + "\nb2\n")

		// When: two moves are read
		first, err := console.ReadMove()
		require.NoError(t, err)
		second, err := console.ReadMove()
		require.NoError(t, err)

		// Then: the long line comes back whole and the next line is intact
		assert.Equal(t, long, first)
		assert.Equal(t, "b2", second)
	})

	t.Run("Returns a last line without a newline", func(t *testing.T) {
		console, _ := newConsole("c3")

		move, err := console.ReadMove()
		require.NoError(t, err)
		assert.Equal(t, "c3", move)

		_, err = console.ReadMove()
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}
