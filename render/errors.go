// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrUnknownKind indicates a command whose Kind is not one of the Kind constants.
	ErrUnknownKind = errors.New("render: unknown command kind")

	// ErrBadCommand indicates a command with missing points or invalid parameters.
	ErrBadCommand = errors.New("render: malformed command")

	// ErrBadCanvas indicates a non-positive logical canvas size.
	ErrBadCanvas = errors.New("render: canvas size must be > 0")
)
