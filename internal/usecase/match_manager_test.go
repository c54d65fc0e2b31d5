package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/nickolaylk/TicTacToe-assignment/internal/apperror"
	"github.com/nickolaylk/TicTacToe-assignment/internal/entity"
	"github.com/nickolaylk/TicTacToe-assignment/internal/transport/console"
	mockedUseCase "github.com/nickolaylk/TicTacToe-assignment/mocks/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestGame(t *testing.T) *entity.Game {
	t.Helper()

	game, err := entity.NewGame("g1", 3, 3)
	require.NoError(t, err)
	require.NoError(t, game.AddPlayer(entity.NewPlayer("John Doe", "x")))
	require.NoError(t, game.AddPlayer(entity.NewPlayer("Jason Bourne", "o")))

	return game
}

// scriptedMoves returns a Next implementation that hands out moves in order, then io.EOF.
func scriptedMoves(moves ...entity.Move) func(context.Context, string) (entity.Move, error) {
	next := 0
	return func(context.Context, string) (entity.Move, error) {
		if next >= len(moves) {
			return entity.Move{}, io.EOF
		}
		move := moves[next]
		next++
		return move, nil
	}
}

func TestMatchManager_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays the scripted match to a win and prints the summary", func(t *testing.T) {
		// Given: a publisher that records events and the 3x3 script with a repeated cell and a trailing move
		mockPublisher := mockedUseCase.NewMockpublisherDep(t)
		var events []*entity.MoveEvent
		mockPublisher.EXPECT().
			Publish(mock.Anything, mock.AnythingOfType("*entity.MoveEvent")).
			Run(func(_ context.Context, event *entity.MoveEvent) {
				events = append(events, event)
			}).
			Return(nil).
			Times(5)

		var out strings.Builder
		manager := NewMatchManager(newTestLogger(), mockPublisher, &out)
		game := newTestGame(t)
		source := console.NewScriptSource([]entity.Move{
			{Row: 0, Column: 0}, {Row: 0, Column: 0}, {Row: 1, Column: 1}, {Row: 0, Column: 2},
			{Row: 2, Column: 2}, {Row: 0, Column: 1}, {Row: 2, Column: 1},
		})

		// When: the match is played
		err := manager.Play(ctx, game, source)

		// Then: X wins, every accepted move is published and the output matches the console format
		require.NoError(t, err)
		assert.True(t, game.IsCompleted())

		require.Len(t, events, 5)
		assert.Equal(t, &entity.MoveEvent{
			GameID: "g1",
			Player: "John Doe",
			Sign:   "x",
			Row:    0,
			Column: 1,
			Status: entity.StatusCompleted,
			Winner: "John Doe",
		}, events[4])

		expected := "|___|___|___|\n|___|___|___|\n|___|___|___|\n" +
			"InProgress\n" +
			"Game is in progress\n" +
			"|_x_|_x_|_x_|\n|___|_o_|___|\n|___|___|_o_|\n" +
			"John Doe won!\n" +
			"+--History--------------------------------------+\n" +
			"John Doe(x): row:0 ; column:0\n" +
			"Jason Bourne(o): row:1 ; column:1\n" +
			"John Doe(x): row:0 ; column:2\n" +
			"Jason Bourne(o): row:2 ; column:2\n" +
			"John Doe(x): row:0 ; column:1\n" +
			"+-----------------------------------------------+\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Prompts the active player", func(t *testing.T) {
		// Given: a source expecting X's prompt, then O's
		mockPublisher := mockedUseCase.NewMockpublisherDep(t)
		mockPublisher.EXPECT().
			Publish(mock.Anything, mock.Anything).
			Return(nil).
			Once()

		mockSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockSource.EXPECT().
			Next(mock.Anything, "John Doe(x) row column: ").
			Return(entity.Move{Row: 1, Column: 1}, nil).
			Once()
		mockSource.EXPECT().
			Next(mock.Anything, "Jason Bourne(o) row column: ").
			Return(entity.Move{}, io.EOF).
			Once()

		manager := NewMatchManager(newTestLogger(), mockPublisher, io.Discard)

		// When: the match is played
		err := manager.Play(ctx, newTestGame(t), mockSource)

		// Then: the match ends cleanly when input runs out
		require.NoError(t, err)
	})

	t.Run("Publish failures do not stop the match", func(t *testing.T) {
		// Given: a publisher that always fails
		mockPublisher := mockedUseCase.NewMockpublisherDep(t)
		mockPublisher.EXPECT().
			Publish(mock.Anything, mock.Anything).
			Return(errRedisDown).
			Times(5)

		mockSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockSource.EXPECT().
			Next(mock.Anything, mock.Anything).
			RunAndReturn(scriptedMoves(
				entity.Move{Row: 0, Column: 0}, entity.Move{Row: 1, Column: 0},
				entity.Move{Row: 0, Column: 1}, entity.Move{Row: 1, Column: 1},
				entity.Move{Row: 0, Column: 2},
			)).
			Times(5)

		manager := NewMatchManager(newTestLogger(), mockPublisher, io.Discard)
		game := newTestGame(t)

		// When: the match is played
		err := manager.Play(ctx, game, mockSource)

		// Then: the game still finishes
		require.NoError(t, err)
		assert.True(t, game.IsCompleted())
	})

	t.Run("Malformed and out of bounds moves are skipped", func(t *testing.T) {
		// Given: a source producing a bad line, an off-board move, then EOF
		mockPublisher := mockedUseCase.NewMockpublisherDep(t)

		mockSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockSource.EXPECT().
			Next(mock.Anything, mock.Anything).
			Return(entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrMalformedMove, "abc")).
			Once()
		mockSource.EXPECT().
			Next(mock.Anything, mock.Anything).
			Return(entity.Move{Row: 5, Column: 5}, nil).
			Once()
		mockSource.EXPECT().
			Next(mock.Anything, mock.Anything).
			Return(entity.Move{}, io.EOF).
			Once()

		manager := NewMatchManager(newTestLogger(), mockPublisher, io.Discard)
		game := newTestGame(t)

		// When: the match is played
		err := manager.Play(ctx, game, mockSource)

		// Then: nothing is played or published
		require.NoError(t, err)
		assert.Empty(t, game.History())
		assert.True(t, game.IsInProgress())
	})

	t.Run("Stops once the board is full", func(t *testing.T) {
		// Given: nine moves that fill the board without a chain
		mockPublisher := mockedUseCase.NewMockpublisherDep(t)
		mockPublisher.EXPECT().
			Publish(mock.Anything, mock.Anything).
			Return(nil).
			Times(9)

		mockSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockSource.EXPECT().
			Next(mock.Anything, mock.Anything).
			RunAndReturn(scriptedMoves(
				entity.Move{Row: 0, Column: 0}, entity.Move{Row: 0, Column: 1}, entity.Move{Row: 0, Column: 2},
				entity.Move{Row: 1, Column: 1}, entity.Move{Row: 1, Column: 0}, entity.Move{Row: 1, Column: 2},
				entity.Move{Row: 2, Column: 1}, entity.Move{Row: 2, Column: 0}, entity.Move{Row: 2, Column: 2},
				entity.Move{Row: 0, Column: 0},
			)).
			Times(9)

		var out strings.Builder
		manager := NewMatchManager(newTestLogger(), mockPublisher, &out)
		game := newTestGame(t)

		// When: the match is played
		err := manager.Play(ctx, game, mockSource)

		// Then: the loop ends without a winner
		require.NoError(t, err)
		assert.True(t, game.Board.IsFull())
		assert.True(t, game.IsInProgress())
		assert.Contains(t, out.String(), "Game is in progress\n+--History")
	})

	t.Run("Source errors abort the match", func(t *testing.T) {
		// Given: a source whose context was cancelled
		mockPublisher := mockedUseCase.NewMockpublisherDep(t)

		mockSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockSource.EXPECT().
			Next(mock.Anything, mock.Anything).
			Return(entity.Move{}, context.Canceled).
			Once()

		manager := NewMatchManager(newTestLogger(), mockPublisher, io.Discard)

		// When: the match is played
		err := manager.Play(ctx, newTestGame(t), mockSource)

		// Then: the cancellation is returned
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Game without players fails on the first move", func(t *testing.T) {
		mockPublisher := mockedUseCase.NewMockpublisherDep(t)

		mockSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockSource.EXPECT().
			Next(mock.Anything, "").
			Return(entity.Move{Row: 0, Column: 0}, nil).
			Once()

		game, err := entity.NewGame("g2", 3, 3)
		require.NoError(t, err)

		err = NewMatchManager(newTestLogger(), mockPublisher, io.Discard).Play(ctx, game, mockSource)

		require.ErrorIs(t, err, apperror.ErrNoPlayers)
	})
}

func TestNopPublisher_Publish(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), &entity.MoveEvent{}))
}
