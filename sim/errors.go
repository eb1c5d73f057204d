// SPDX-License-Identifier: MIT
// Package sim: sentinel error set.
// Apply validates every event against the control it names before touching
// state; callers match the sentinels below via errors.Is.

package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSim indicates a name missing from the registry.
	ErrUnknownSim = errors.New("sim: unknown visualization")

	// ErrUnknownControl indicates an event naming a control the
	// visualization does not have.
	ErrUnknownControl = errors.New("sim: unknown control")

	// ErrBadValue indicates an out-of-range, off-step or non-finite slider
	// value, an unknown select option, a non-boolean checkbox value, or a
	// button seed that is not a non-negative integer.
	ErrBadValue = errors.New("sim: bad control value")
)

// simErrorf wraps err with a visualization name, preserving it via %w.
func simErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
