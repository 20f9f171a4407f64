package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	sizePrompt = "Plz enter matrix size between 3 and 5:"
	drawReport = "No moves left, all lose. Game over."
)

// Console is the line-based player interface: it prints prompts and boards
// to out and reads one line of input per request.
type Console struct {
	logger   *slog.Logger
	reader   *bufio.Reader
	out      io.Writer
	renderer *BoardRenderer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, renderer *BoardRenderer) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		reader:   bufio.NewReader(in),
		out:      out,
		renderer: renderer,
	}
}

// AskBoardSize - prompts until a supported board size is entered.
func (that *Console) AskBoardSize() (int, error) {
	log := that.logger.With("method", "AskBoardSize")

	for {
		fmt.Fprintln(that.out, sizePrompt)

		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		size, err := parseBoardSize(line)
		if err != nil {
			log.Debug("board size rejected", "input", line, "error", err)
			continue
		}

		return size, nil
	}
}

// PromptMove - announces whose turn it is and shows the board.
func (that *Console) PromptMove(game *entity.Game) {
	fmt.Fprintf(that.out, "Make your move Player %s:\n", game.Turn)
	that.RenderBoard(game)
}

func (that *Console) ReadMove() (string, error) {
	return that.readLine()
}

func (that *Console) RejectMove(input string) {
	fmt.Fprintf(that.out, "Invalid input \"%s\", plz try again\n", input)
}

func (that *Console) RenderBoard(game *entity.Game) {
	fmt.Fprint(that.out, that.renderer.Render(game))
}

// ReportOutcome - shows the final board followed by the result.
func (that *Console) ReportOutcome(game *entity.Game, outcome entity.Outcome) {
	that.RenderBoard(game)

	if outcome.Winner != entity.NoPlayer {
		fmt.Fprintf(that.out, "\nPlayer %s wins!\n", outcome.Winner)
		return
	}

	fmt.Fprintln(that.out, "\n"+drawReport)
}

// readLine - returns the next line without its terminator. Lines have no
// length limit, so oversized input reaches validation and is rejected there.
func (that *Console) readLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", apperror.ErrInputClosed
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func parseBoardSize(input string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrNotANumber, input)
	}

	if err = entity.ValidateBoardSize(size); err != nil {
		return 0, err
	}

	return size, nil
}
