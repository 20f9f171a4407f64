package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - asks for the board size and plays one game on the given input and output.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	playerConsole := console.New(logger, in, out, console.NewBoardRenderer(conf.Colors))

	size := conf.BoardSize
	if !conf.HasBoardSize() {
		var err error
		if size, err = playerConsole.AskBoardSize(); err != nil {
			return handleInputErr(log, err)
		}
	}

	game, err := entity.NewGame(size)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	gameController := tictactoe.NewGameController(game)
	gameLoop := usecase.NewGameLoop(logger, gameController, playerConsole)

	if _, err = gameLoop.Run(); err != nil {
		return handleInputErr(log, err)
	}

	return nil
}

// handleInputErr - running out of input is how the players quit, not a failure.
func handleInputErr(log *slog.Logger, err error) error {
	if errors.Is(err, apperror.ErrInputClosed) {
		log.Info("Input closed, shutting down")
		return nil
	}

	return fmt.Errorf("game failed: %w", err)
}
