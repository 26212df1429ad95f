// submodule cmd contains command definitions
package main

import (
	"fmt"
	"strings"

	"github.com/desertthunder/abook/internal/formatter"
	"github.com/urfave/cli/v3"
)

// rootCommand builds the application; without a subcommand it starts the interactive assistant.
func rootCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "abook",
		Usage:   "Keep contacts and birthdays, and see who to congratulate this week",
		Version: "0.3.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Path to the address book database (overrides storage.path)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Before:   r.configure,
		Action:   r.REPL,
		Commands: r.register(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{replCommand(r)}
	for _, c := range bookCommands() {
		if c.name == "hello" || c.name == "help" {
			continue
		}
		commands = append(commands, bookSubcommand(r, c))
	}

	for _, fn := range [](func(*Runner) *cli.Command){
		exportCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// replCommand starts the interactive assistant explicitly.
func replCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "repl",
		Aliases: []string{"shell"},
		Usage:   "Start the interactive assistant (default)",
		Action:  r.REPL,
	}
}

// bookSubcommand exposes a single address book operation as a one-shot subcommand.
func bookSubcommand(r *Runner, c bookCommand) *cli.Command {
	cmd := &cli.Command{
		Name:      c.name,
		Usage:     c.usage,
		ArgsUsage: argsUsage(c),
		Action:    r.oneShot(c.name),
	}
	if c.json != nil {
		cmd.Flags = []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		}
	}
	return cmd
}

func argsUsage(c bookCommand) string {
	params := make([]string, len(c.params))
	for i, p := range c.params {
		params[i] = "<" + p + ">"
	}
	return strings.Join(params, " ")
}

// exportCommand writes the address book to a file
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the address book to CSV, Markdown, JSON or plain text",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   fmt.Sprintf("Export format (%s)", formatNames()),
				Value:   "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: addressbook.<format>)",
			},
		},
		Action: r.Export,
	}
}

func formatNames() string {
	names := make([]string, len(formatter.Formats))
	for i, f := range formatter.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// setupCommand creates the configuration file and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create config.toml if missing and initialize the database",
		Action: r.Setup,
	}
}

// tuiCommand returns the top-level TUI command for browsing contacts.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Browse contacts and upcoming birthdays in a terminal UI",
		Action:  r.TUI,
	}
}
