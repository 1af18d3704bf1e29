// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Every sentinel wraps step.ErrConfiguration, so callers that only care
// about the error class can test errors.Is(err, step.ErrConfiguration).

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/step"
)

var (
	// ErrTooSmall indicates a size parameter (rows, cols, n, maxValue) below 1.
	ErrTooSmall = fmt.Errorf("%w: builder: parameter too small", step.ErrConfiguration)

	// ErrBadOption indicates an unparsable textual option value.
	ErrBadOption = fmt.Errorf("%w: builder: bad option value", step.ErrConfiguration)

	// ErrEmptyPattern indicates a text/pattern pair with no pattern.
	ErrEmptyPattern = fmt.Errorf("%w: builder: pattern is empty", step.ErrConfiguration)
)
