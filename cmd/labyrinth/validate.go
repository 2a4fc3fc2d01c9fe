// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/simplehardware/labyrinth/grid"
	"github.com/simplehardware/labyrinth/validate"
)

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "-", "Level layout to check; - reads stdin.")
	paths := fs.Bool("paths", false, "Also check that every start reaches its finish.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2}
	}

	var (
		raw []byte
		err error
	)
	if *file == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(*file)
	}
	if err != nil {
		return fmt.Errorf("read layout: %w", err)
	}

	b, err := grid.Parse(normalizeLayout(string(raw)))
	if err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("parse layout: %v", err)}
	}

	res := validate.Validate(b)
	if *paths {
		for _, msg := range validate.CheckStartsReachFinishes(b) {
			res.AddError(msg)
		}
	}
	fmt.Fprintln(stdout, res)
	if !res.Valid() {
		return &ExitError{Code: 1}
	}
	return nil
}

// normalizeLayout accepts rows separated by newlines as well as slashes.
// Only line breaks are trimmed: trailing spaces are floor cells.
func normalizeLayout(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.Trim(s, "\n")
	return strings.ReplaceAll(s, "\n", grid.RowSeparator)
}
