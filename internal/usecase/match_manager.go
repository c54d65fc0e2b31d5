package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nickolaylk/TicTacToe-assignment/internal/apperror"
	"github.com/nickolaylk/TicTacToe-assignment/internal/entity"
)

type publisherDep interface {
	Publish(ctx context.Context, event *entity.MoveEvent) error
}

type moveSourceDep interface {
	Next(ctx context.Context, prompt string) (entity.Move, error)
}

// NopPublisher drops every event. It stands in when the spectator feed is off.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *entity.MoveEvent) error {
	return nil
}

type MatchManager struct {
	logger    *slog.Logger
	publisher publisherDep
	out       io.Writer
}

func NewMatchManager(logger *slog.Logger, publisher publisherDep, out io.Writer) *MatchManager {
	return &MatchManager{
		logger: logger,

		publisher: publisher,
		out:       out,
	}
}

// Play - runs the match until the source runs dry, the game is won or the board is full.
func (that *MatchManager) Play(ctx context.Context, game *entity.Game, source moveSourceDep) error {
	log := that.logger.With("method", "Play", "game_id", game.ID)

	if err := that.printOpening(game); err != nil {
		return err
	}

	for game.IsInProgress() && !game.Board.IsFull() {
		move, err := source.Next(ctx, prompt(game))
		if errors.Is(err, io.EOF) {
			log.Info("no more moves")
			break
		}

		if errors.Is(err, apperror.ErrMalformedMove) {
			log.Warn("malformed move skipped", "error", err)
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to get next move: %w", err)
		}

		if err = that.makeMove(ctx, game, move); err != nil {
			return err
		}
	}

	return that.printClosing(game)
}

func (that *MatchManager) makeMove(ctx context.Context, game *entity.Game, move entity.Move) error {
	log := that.logger.With("method", "makeMove", "game_id", game.ID, "row", move.Row, "column", move.Column)

	player, _ := game.ActivePlayer()

	result, err := game.NextMove(move.Row, move.Column)
	if errors.Is(err, apperror.ErrOutOfBounds) {
		log.Warn("move out of bounds skipped", "error", err)
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to make move: %w", err)
	}

	if result != entity.Accepted {
		log.Info("move rejected", "player", player.Name, "result", result)
		return nil
	}

	log.Info("move accepted", "player", player.Name, "sign", player.Sign, "status", game.Status)

	that.publish(ctx, game)

	return nil
}

// publish - sends the last move to spectators. Failures never stop the match.
func (that *MatchManager) publish(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "publish", "game_id", game.ID)

	event, ok := entity.NewMoveEvent(game)
	if !ok {
		return
	}

	if err := that.publisher.Publish(ctx, event); err != nil {
		log.Error("failed to publish move event", "error", err)
	}
}

func (that *MatchManager) printOpening(game *entity.Game) error {
	if err := game.Board.Print(that.out); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(that.out, game.Status); err != nil {
		return fmt.Errorf("failed to print status: %w", err)
	}

	return game.PrintSummary(that.out)
}

func (that *MatchManager) printClosing(game *entity.Game) error {
	if err := game.Board.Print(that.out); err != nil {
		return err
	}

	return game.PrintSummary(that.out)
}

func prompt(game *entity.Game) string {
	player, ok := game.ActivePlayer()
	if !ok {
		return ""
	}

	return fmt.Sprintf("%s(%s) row column: ", player.Name, player.Sign)
}
