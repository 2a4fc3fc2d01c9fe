// SPDX-License-Identifier: MIT

package validate

import "strings"

// Result is the report produced by Validate. A Result is valid until the
// first error is added; warnings never affect validity.
type Result struct {
	errors   []string
	warnings []string
}

// NewResult returns an empty, valid report.
func NewResult() *Result {
	return &Result{}
}

// AddError records a fatal rule violation.
func (r *Result) AddError(msg string) {
	r.errors = append(r.errors, msg)
}

// AddWarning records a non-fatal concern.
func (r *Result) AddWarning(msg string) {
	r.warnings = append(r.warnings, msg)
}

// Valid reports whether no error was recorded.
func (r *Result) Valid() bool {
	return len(r.errors) == 0
}

// Errors returns a copy of the errors in the order they were found.
func (r *Result) Errors() []string {
	return append([]string(nil), r.errors...)
}

// Warnings returns a copy of the warnings in the order they were found.
func (r *Result) Warnings() []string {
	return append([]string(nil), r.warnings...)
}

// String renders the report one message per line, errors first.
func (r *Result) String() string {
	if r.Valid() && len(r.warnings) == 0 {
		return "valid"
	}
	var sb strings.Builder
	if r.Valid() {
		sb.WriteString("valid")
	} else {
		sb.WriteString("invalid")
	}
	for _, e := range r.errors {
		sb.WriteString("\nerror: ")
		sb.WriteString(e)
	}
	for _, w := range r.warnings {
		sb.WriteString("\nwarning: ")
		sb.WriteString(w)
	}
	return sb.String()
}
