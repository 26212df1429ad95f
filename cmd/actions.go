package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/abook/internal/formatter"
	"github.com/desertthunder/abook/internal/repositories"
	"github.com/desertthunder/abook/internal/shared"
	"github.com/urfave/cli/v3"
)

// configure loads the configuration named by --config, applies flag overrides and builds the store.
//
// A missing config file means defaults; an unreadable or invalid one is reported and defaults are used.
func (r *Runner) configure(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		config, err := shared.LoadConfig(configPath)
		if err != nil {
			r.logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
		} else {
			r.config = config
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		r.logger.Warn("cannot access config file, using defaults", "path", configPath, "error", err)
	}

	if db := cmd.String("db"); db != "" {
		r.config.Storage.Path = db
	}

	level, err := shared.ParseLogLevel(r.config.Log.Level)
	if err != nil {
		level = log.WarnLevel
	}
	if cmd.Bool("verbose") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)

	if r.store == nil {
		r.store = repositories.NewBookRepository(r.config.Storage)
	}

	r.logger.Debug("configured", "storage", r.config.Storage.Path)
	return ctx, nil
}

// oneShot loads the book, runs a single named command with the positional arguments and
// saves the book when the command changed it.
func (r *Runner) oneShot(name string) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		book, err := r.store.Load()
		if err != nil {
			return fmt.Errorf("failed to load address book: %w", err)
		}

		args := cmd.Args().Slice()
		c, ok := lookupCommand(name)
		if ok && c.json != nil && cmd.Bool("json") {
			if err := c.checkArgs(args); err != nil {
				return err
			}
			return r.writeJSON(c.json(r, book), cmd.Bool("pretty"))
		}

		c, err = r.dispatch(book, name, args)
		if err != nil {
			return err
		}

		if c.mutates {
			logger := shared.WithLogger(r.logger, "command", name)
			if err := r.store.Save(book); err != nil {
				return fmt.Errorf("failed to save address book: %w", err)
			}
			logger.Info("address book saved", "contacts", book.Len())
		}
		return nil
	}
}

// Export writes the whole address book to a file in the requested format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	book, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load address book: %w", err)
	}

	path, err := formatter.WriteExport(book, format, cmd.String("output"), r.now())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.logger.Info("address book exported", "format", format, "path", path)
	return r.writeLine("✓ Exported %d contacts to %s", book.Len(), path)
}
