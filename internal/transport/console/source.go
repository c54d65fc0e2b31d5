package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/nickolaylk/TicTacToe-assignment/internal/apperror"
	"github.com/nickolaylk/TicTacToe-assignment/internal/entity"
)

// ScriptSource replays a fixed list of moves.
type ScriptSource struct {
	moves []entity.Move
	next  int
}

func NewScriptSource(moves []entity.Move) *ScriptSource {
	return &ScriptSource{moves: moves}
}

func (that *ScriptSource) Next(ctx context.Context, _ string) (entity.Move, error) {
	if err := ctx.Err(); err != nil {
		return entity.Move{}, err
	}

	if that.next >= len(that.moves) {
		return entity.Move{}, io.EOF
	}

	move := that.moves[that.next]
	that.next++

	return move, nil
}

type scanResult struct {
	line string
	err  error
}

// ReaderSource reads "row column" lines, writing a prompt before each one.
type ReaderSource struct {
	out   io.Writer
	in    io.Reader
	once  sync.Once
	lines chan scanResult
}

func NewReaderSource(in io.Reader, out io.Writer) *ReaderSource {
	return &ReaderSource{
		in:    in,
		out:   out,
		lines: make(chan scanResult),
	}
}

// Next - prompts and waits for one line. Malformed lines return apperror.ErrMalformedMove,
// the end of input returns io.EOF.
func (that *ReaderSource) Next(ctx context.Context, prompt string) (entity.Move, error) {
	that.once.Do(func() {
		go that.scan()
	})

	if prompt != "" {
		if _, err := io.WriteString(that.out, prompt); err != nil {
			return entity.Move{}, fmt.Errorf("failed to write prompt: %w", err)
		}
	}

	select {
	case <-ctx.Done():
		return entity.Move{}, ctx.Err()
	case res, ok := <-that.lines:
		if !ok {
			return entity.Move{}, io.EOF
		}
		if res.err != nil {
			return entity.Move{}, fmt.Errorf("failed to read move: %w", res.err)
		}

		return ParseMove(res.line)
	}
}

// scan feeds lines to Next. It may stay blocked on the reader after the match ends.
func (that *ReaderSource) scan() {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		that.lines <- scanResult{line: scanner.Text()}
	}

	if err := scanner.Err(); err != nil {
		that.lines <- scanResult{err: err}
	}
}

// ParseMove parses "row column"; a comma may separate the two numbers.
func ParseMove(line string) (entity.Move, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrMalformedMove, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row %q", apperror.ErrMalformedMove, fields[0])
	}

	column, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: column %q", apperror.ErrMalformedMove, fields[1])
	}

	return entity.Move{Row: row, Column: column}, nil
}
