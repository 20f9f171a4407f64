package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type gameController interface {
	Game() *entity.Game
	MakeTurn(input string) (entity.Outcome, error)
}

type playerConsole interface {
	PromptMove(game *entity.Game)
	ReadMove() (string, error)
	RejectMove(input string)
	ReportOutcome(game *entity.Game, outcome entity.Outcome)
}

// GameLoop drives one game from the first move to a win or a draw.
type GameLoop struct {
	logger     *slog.Logger
	controller gameController
	console    playerConsole
}

func NewGameLoop(logger *slog.Logger, controller gameController, console playerConsole) *GameLoop {
	return &GameLoop{
		logger: logger.With("component", "game_loop"),

		controller: controller,
		console:    console,
	}
}

// Run - plays turns until the game ends and reports the result.
func (that *GameLoop) Run() (entity.Outcome, error) {
	game := that.controller.Game()
	log := that.logger.With("game_id", game.ID, "size", game.Size)

	log.Info("game started")

	for {
		outcome, err := that.playTurn(log, game)
		if err != nil {
			return entity.Outcome{}, err
		}

		if outcome.IsTerminal() {
			that.console.ReportOutcome(game, outcome)
			log.Info("game finished", "winner", outcome.Winner, "draw", outcome.Draw)

			return outcome, nil
		}
	}
}

// playTurn - shows the board to the current player and reads moves until one is accepted.
func (that *GameLoop) playTurn(log *slog.Logger, game *entity.Game) (entity.Outcome, error) {
	player := game.Turn
	that.console.PromptMove(game)

	for {
		input, err := that.console.ReadMove()
		if err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to read move of player %s: %w", player, err)
		}

		outcome, err := that.controller.MakeTurn(input)
		if errors.Is(err, apperror.ErrInvalidMove) {
			log.Debug("move rejected", "player", player, "input", input, "error", err)
			that.console.RejectMove(input)

			continue
		}

		if err != nil {
			return entity.Outcome{}, fmt.Errorf("failed make turn: %w", err)
		}

		log.Debug("move accepted", "player", player, "move", input, "moves_left", game.MovesLeft)

		return outcome, nil
	}
}
