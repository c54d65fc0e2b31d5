package console

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/nickolaylk/TicTacToe-assignment/internal/apperror"
	"github.com/nickolaylk/TicTacToe-assignment/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptSource_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("Replays moves then reports EOF", func(t *testing.T) {
		// Given: a script with two moves
		source := NewScriptSource([]entity.Move{{Row: 0, Column: 0}, {Row: 1, Column: 2}})

		// When: moves are pulled
		first, err := source.Next(ctx, "")
		require.NoError(t, err)
		second, err := source.Next(ctx, "")
		require.NoError(t, err)
		_, err = source.Next(ctx, "")

		// Then: they come back in order and the script ends with io.EOF
		assert.Equal(t, entity.Move{Row: 0, Column: 0}, first)
		assert.Equal(t, entity.Move{Row: 1, Column: 2}, second)
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Cancelled context stops the script", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		source := NewScriptSource([]entity.Move{{Row: 0, Column: 0}})
		_, err := source.Next(cancelled, "")

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestReaderSource_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("Prompts and parses each line", func(t *testing.T) {
		// Given: input with a valid line, a bad line and a comma separated line
		var out strings.Builder
		source := NewReaderSource(strings.NewReader("1 2\nabc\n0,1\n"), &out)

		// When: three moves are read
		first, err := source.Next(ctx, "x> ")
		require.NoError(t, err)

		_, err = source.Next(ctx, "o> ")
		require.ErrorIs(t, err, apperror.ErrMalformedMove)

		third, err := source.Next(ctx, "o> ")
		require.NoError(t, err)

		_, err = source.Next(ctx, "x> ")

		// Then: moves are parsed, prompts written, and input ends with io.EOF
		assert.Equal(t, entity.Move{Row: 1, Column: 2}, first)
		assert.Equal(t, entity.Move{Row: 0, Column: 1}, third)
		require.ErrorIs(t, err, io.EOF)
		assert.Equal(t, "x> o> o> x> ", out.String())
	})
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		line    string
		want    entity.Move
		wantErr bool
	}{
		{line: "0 0", want: entity.Move{Row: 0, Column: 0}},
		{line: "  2   1 ", want: entity.Move{Row: 2, Column: 1}},
		{line: "2,1", want: entity.Move{Row: 2, Column: 1}},
		{line: "-1 4", want: entity.Move{Row: -1, Column: 4}},
		{line: "", wantErr: true},
		{line: "1", wantErr: true},
		{line: "1 2 3", wantErr: true},
		{line: "a 1", wantErr: true},
		{line: "1 b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseMove(tt.line)

			if tt.wantErr {
				require.ErrorIs(t, err, apperror.ErrMalformedMove)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
