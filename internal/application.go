package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nickolaylk/TicTacToe-assignment/internal/config"
	"github.com/nickolaylk/TicTacToe-assignment/internal/entity"
	"github.com/nickolaylk/TicTacToe-assignment/internal/pkg"
	"github.com/nickolaylk/TicTacToe-assignment/internal/repository/storage"
	"github.com/nickolaylk/TicTacToe-assignment/internal/transport/console"
	"github.com/nickolaylk/TicTacToe-assignment/internal/transport/redis"
	"github.com/nickolaylk/TicTacToe-assignment/internal/usecase"
)

var ErrUnknownMode = errors.New("unknown mode")

type moveSource interface {
	Next(ctx context.Context, prompt string) (entity.Move, error)
}

type publisher interface {
	Publish(ctx context.Context, event *entity.MoveEvent) error
}

// RunApp - runs one match on the process's standard streams until it ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - builds the game from conf and plays it, reading moves from in when interactive.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	game, err := newGame(conf)
	if err != nil {
		return err
	}

	log.Info("Game created", "game_id", game.ID, "rows", game.Board.Rows, "columns", game.Board.Columns, "win_length", game.WinLength())

	source, err := newMoveSource(conf, in, out)
	if err != nil {
		return err
	}

	feed, closeFeed, err := newPublisher(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeFeed()

	manager := usecase.NewMatchManager(logger, feed, out)

	err = manager.Play(ctx, game, source)
	if errors.Is(err, context.Canceled) {
		log.Info("Match interrupted", "game_id", game.ID)
		return nil
	}

	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	log.Info("Match finished", "game_id", game.ID, "status", game.Status)

	return nil
}

func newGame(conf *config.Config) (*entity.Game, error) {
	game, err := entity.NewGame(pkg.GenerateGameID(), conf.Board.Rows, conf.Board.Columns)
	if err != nil {
		return nil, fmt.Errorf("invalid board config: %w", err)
	}

	for _, p := range conf.Players {
		if err = game.AddPlayer(entity.NewPlayer(p.Name, entity.Sign(p.Sign))); err != nil {
			return nil, fmt.Errorf("invalid players config: %w", err)
		}
	}

	return game, nil
}

func newMoveSource(conf *config.Config, in io.Reader, out io.Writer) (moveSource, error) {
	if conf.IsInteractive() {
		return console.NewReaderSource(in, out), nil
	}

	if conf.Mode != config.ModeScript {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}

	moves := make([]entity.Move, 0, len(conf.Moves))
	for _, m := range conf.Moves {
		moves = append(moves, entity.Move{Row: m.Row, Column: m.Column})
	}

	return console.NewScriptSource(moves), nil
}

// newPublisher - connects the spectator feed when it is enabled.
func newPublisher(ctx context.Context, log *slog.Logger, conf *config.Config) (publisher, func(), error) {
	if !conf.FeedEnabled {
		return usecase.NopPublisher{}, func() {}, nil
	}

	client, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to spectator feed: %w", err)
	}

	log.Info("Spectator feed enabled", "addr", conf.Redis.GetRedisAddr())

	closeFeed := func() {
		if err := client.Close(); err != nil {
			log.Error("could not close redis client", "error", err)
		}
	}

	return redis.NewPublisher(client), closeFeed, nil
}
