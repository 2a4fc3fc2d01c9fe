// SPDX-License-Identifier: MIT

// Command labyrinth generates balanced multi-player mazes and validates
// hand-edited levels.
//
// Usage:
//
//	labyrinth generate [-size n] [-players k] [-seed s] [-config file.hcl]
//	labyrinth validate [-file level.txt] [-paths]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	var err error
	switch args[0] {
	case "generate":
		err = runGenerate(args[1:], stdout, stderr)
	case "validate":
		err = runValidate(args[1:], stdin, stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return 0
	default:
		err = &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", args[0])}
	}
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(stderr, exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintln(stderr, "error:", err)
	return 1
}

func usage(w io.Writer) {
	fmt.Fprint(w, `
labyrinth - balanced maze generator and level validator.

Usage:
  labyrinth generate [options]   carve a maze and place players
  labyrinth validate [options]   check a level layout

Run "labyrinth <command> -h" for the options of a command.
`)
}

// newLogger builds the slog logger selected by level and format.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
