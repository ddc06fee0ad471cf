package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Utility-Gods/bmichart/internal/app"
	"github.com/Utility-Gods/bmichart/internal/cli"
	"github.com/Utility-Gods/bmichart/internal/prompt"
	"github.com/Utility-Gods/bmichart/internal/reference"
	"github.com/Utility-Gods/bmichart/internal/setup"
	"github.com/Utility-Gods/bmichart/internal/version"
)

func main() {
	// Use a minimal logger until the app configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run parses args and dispatches to the requested command.
func run(stdin, stdout *os.File, stderr io.Writer, args []string) error {
	cfg, command, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	switch command {
	case cli.CommandVersion:
		fmt.Fprintln(stdout, version.VersionInfo())
		return nil
	case cli.CommandTiers:
		return reference.Run(stdin, stdout)
	}

	myApp := app.NewApp(cfg, stdout, stderr)
	defer myApp.Close()

	if command == cli.CommandSetup {
		if err := setup.RunSetup(myApp); err != nil {
			return fmt.Errorf("setup failed: %w", err)
		}
		return nil
	}

	return cli.NewSession(myApp, prompt.ForTerminal(stdin, stdout)).Run()
}
