package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/desertthunder/abook/internal/models"
	"github.com/desertthunder/abook/internal/shared"
	"github.com/urfave/cli/v3"
)

const maxLineLength = 64 * 1024

var errLineTooLong = fmt.Errorf("%w: input line longer than %d bytes", shared.ErrValidation, maxLineLength)

// REPL runs the interactive assistant: the book is loaded once, every line is dispatched as a command
// and the book is saved when the user types close or exit, or input ends.
func (r *Runner) REPL(ctx context.Context, cmd *cli.Command) error {
	return r.interact(ctx)
}

// interact saves the book even when the conversation stops because output failed.
func (r *Runner) interact(ctx context.Context) error {
	book, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load address book: %w", err)
	}
	r.logger.Info("address book loaded", "contacts", book.Len())

	outputErr := r.converse(ctx, book)
	if outputErr == nil {
		outputErr = r.writeLine("Good bye!")
	}
	if outputErr != nil {
		r.logger.Error("failed to write output", "error", outputErr)
	}

	if err := r.store.Save(book); err != nil {
		return fmt.Errorf("failed to save address book: %w", err)
	}
	r.logger.Info("address book saved", "contacts", book.Len())
	return outputErr
}

// converse reads and dispatches commands until close, exit, end of input or cancellation.
// Only output failures are returned; rejected commands are reported to the user.
func (r *Runner) converse(ctx context.Context, book *models.AddressBook) error {
	if err := r.writeLine("Welcome to the assistant bot!"); err != nil {
		return err
	}

	reader := bufio.NewReader(r.input)
	for ctx.Err() == nil {
		if err := r.writePlain("Enter a command: "); err != nil {
			return err
		}

		line, err := readLine(reader)
		if errors.Is(err, errLineTooLong) {
			r.logger.Debug("input rejected", "error", err)
			if err := r.writeLine("%s", describeError(err)); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.logger.Error("failed to read input", "error", err)
			}
			return nil
		}

		name, args := parseInput(line)
		if name == "" {
			continue
		}
		if name == "close" || name == "exit" {
			return nil
		}

		if _, err := r.dispatch(book, name, args); err != nil {
			r.logger.Debug("command rejected", "command", name, "error", err)
			if err := r.writeLine("%s", describeError(err)); err != nil {
				return err
			}
		}
	}
	return nil
}

// readLine returns the next line without its line ending. A line longer than maxLineLength
// is consumed whole and reported as errLineTooLong.
func readLine(reader *bufio.Reader) (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := reader.ReadLine()
		if err != nil {
			return "", err
		}
		if !tooLong {
			if len(line)+len(chunk) > maxLineLength {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", errLineTooLong
	}
	return string(line), nil
}

// parseInput splits a line into a lower-cased command name and its arguments.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
