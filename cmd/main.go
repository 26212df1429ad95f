package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/desertthunder/abook/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})
	app := rootCommand(runner)

	if err := app.Run(context.Background(), os.Args); err != nil {
		if isUserError(err) {
			fmt.Fprintln(os.Stderr, describeError(err))
			os.Exit(1)
		}
		runner.logger.Fatalf("application error: %v", err)
	}
}

// isUserError reports whether err was caused by the user's input rather than the environment.
// Storage failures never are, even when they wrap a validation error from reading stored data.
func isUserError(err error) bool {
	if errors.Is(err, shared.ErrStorage) {
		return false
	}
	for _, target := range []error{shared.ErrValidation, shared.ErrNotFound, shared.ErrInvalidArgument, shared.ErrUnknownCommand} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
