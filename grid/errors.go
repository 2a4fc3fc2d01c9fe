// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrEmptyLayout indicates the text layout contains no rows.
	ErrEmptyLayout = errors.New("grid: layout must have at least one row")
	// ErrNonSquare indicates the layout is not n rows of n cells.
	ErrNonSquare = errors.New("grid: layout must be square")
	// ErrMalformedRow indicates a row that is not a sequence of two-character cells.
	ErrMalformedRow = errors.New("grid: row must hold two characters per cell")
)
