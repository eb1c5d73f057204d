// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/microsim/render"
)

// ControlKind names the widget a Control stands for.
type ControlKind string

// Control kinds.
const (
	Slider   ControlKind = "slider"
	Button   ControlKind = "button"
	Select   ControlKind = "select"
	Checkbox ControlKind = "checkbox"
)

// stepTol is the slack allowed when checking that a slider value sits on a step.
const stepTol = 1e-6

// Control describes one widget. Min, Max and Step apply to sliders, Options
// to selects. Default is the value (or option index) the widget starts at.
type Control struct {
	Name    string
	Kind    ControlKind
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Default float64
	Options []string
}

// Event is what a widget callback emits. Sliders and checkboxes (0 or 1)
// carry Value, selects carry Option, buttons carry a seed in Value that
// randomizing buttons use and the rest ignore.
type Event struct {
	Control string
	Value   float64
	Option  string
}

// Reading is one labelled result. Text is set for categorical results
// (status, orientation) and Value for numeric ones.
type Reading struct {
	Label string
	Value float64
	Text  string
}

// String formats r as "label=value" or "label=text".
func (r Reading) String() string {
	if r.Text != "" {
		return r.Label + "=" + r.Text
	}

	return r.Label + "=" + num(r.Value, 4)
}

// Sim is one visualization state. Apply never mutates the receiver: it
// returns the next state, or an error and no state.
type Sim interface {
	Name() string
	Controls() []Control
	Apply(e Event) (Sim, error)
	Render() *render.List
	Readout() []Reading
}

// check validates e against c.
func (c Control) check(e Event) error {
	v := e.Value
	switch c.Kind {
	case Slider:
		if math.IsNaN(v) || v < c.Min || v > c.Max {
			return fmt.Errorf("%s=%v outside [%v,%v]: %w", c.Name, v, c.Min, c.Max, ErrBadValue)
		}
		if c.Step > 0 {
			k := (v - c.Min) / c.Step
			if math.Abs(k-math.Round(k)) > stepTol {
				return fmt.Errorf("%s=%v not a multiple of step %v: %w", c.Name, v, c.Step, ErrBadValue)
			}
		}
	case Button:
		if v < 0 || v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxUint32 {
			return fmt.Errorf("%s seed %v: %w", c.Name, v, ErrBadValue)
		}
	case Select:
		if !slices.Contains(c.Options, e.Option) {
			return fmt.Errorf("%s option %q: %w", c.Name, e.Option, ErrBadValue)
		}
	case Checkbox:
		if v != 0 && v != 1 {
			return fmt.Errorf("%s=%v not 0 or 1: %w", c.Name, v, ErrBadValue)
		}
	}

	return nil
}

// resolve finds the control e names among s's controls and validates e.
func resolve(s Sim, e Event) (Control, error) {
	for _, c := range s.Controls() {
		if c.Name == e.Control {
			if err := c.check(e); err != nil {
				return c, simErrorf(s.Name(), err)
			}
			return c, nil
		}
	}

	return Control{}, simErrorf(s.Name(), fmt.Errorf("%q: %w", e.Control, ErrUnknownControl))
}
