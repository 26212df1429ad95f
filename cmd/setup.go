package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/abook/internal/repositories"
	"github.com/desertthunder/abook/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates the configuration file from the embedded template when missing, then initializes the database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err != nil {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using current settings", "error", err)
		} else {
			r.logger.Info("config file created", "path", configPath)
			r.writeLine("✓ Config file created: %s", configPath)
		}
	}

	r.logger.Info("initializing database", "path", r.config.Storage.Path)

	repo := repositories.NewBookRepository(r.config.Storage)
	if err := repo.Init(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	r.logger.Infof("setup complete for database: %v", repo.Path())
	return r.writeLine("✓ Database ready: %s", repo.Path())
}
