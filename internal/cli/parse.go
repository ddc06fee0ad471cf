package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Utility-Gods/bmichart/internal/app"
	"github.com/Utility-Gods/bmichart/internal/db"
)

// Commands accepted as the first positional argument. An empty command runs
// the calculator session.
const (
	CommandSession = ""
	CommandSetup   = "setup"
	CommandTiers   = "tiers"
	CommandVersion = "version"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the config, the
// command to run, whether the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, string, bool, error) {
	flagSet := flag.NewFlagSet("bmichart", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
bmichart - calculate, chart and explain a patient's BMI.

Usage:
  bmichart [options] [COMMAND]

Commands:
  (none)    Run the interactive calculator.
  setup     Change stored preferences.
  tiers     Browse the BMI status tiers and their advice.
  version   Print the version.

Options:
`)
		flagSet.PrintDefaults()
	}

	dbFlag := flagSet.String("db", "", "Path to the settings database. Defaults to ~/.config/bmichart/bmichart.db.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable coloured chart output.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, "", true, nil
		}
		return nil, "", false, &ExitError{Code: 2, Message: err.Error()}
	}

	command := CommandSession
	switch flagSet.NArg() {
	case 0:
	case 1:
		command = flagSet.Arg(0)
	default:
		return nil, "", false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}

	switch command {
	case CommandSession, CommandSetup, CommandTiers, CommandVersion:
	default:
		return nil, "", false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", command)}
	}

	dbPath := *dbFlag
	if dbPath == "" {
		var err error
		dbPath, err = db.DefaultPath()
		if err != nil {
			slog.Debug("No default settings path.", "error", err)
		}
	}

	config, err := app.NewConfig(app.Config{
		DBPath:   dbPath,
		LogLevel: strings.ToLower(*logLevelFlag),
		NoColor:  *noColorFlag,
	})
	if err != nil {
		return nil, "", false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, command, false, nil
}
