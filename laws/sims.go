// SPDX-License-Identifier: MIT

package laws

import (
	"bytes"
	"fmt"
	"math"
	"math/rand/v2"
	"reflect"

	"github.com/katalvlaran/microsim/render"
	"github.com/katalvlaran/microsim/sim"
)

// eventsPerSim is how many random events each sim law applies.
const eventsPerSim = 3

// randomSim builds a random visualization.
func randomSim(rng *rand.Rand, eps float64) (sim.Sim, error) {
	names := sim.Names()
	return sim.New(names[rng.IntN(len(names))], sim.WithSingularEpsilon(eps))
}

// randomEvent draws a valid event for c.
func randomEvent(rng *rand.Rand, c sim.Control) sim.Event {
	e := sim.Event{Control: c.Name}
	switch c.Kind {
	case sim.Slider:
		if c.Step > 0 {
			steps := int(math.Round((c.Max - c.Min) / c.Step))
			e.Value = math.Min(c.Min+float64(rng.IntN(steps+1))*c.Step, c.Max)
		} else {
			e.Value = c.Min + rng.Float64()*(c.Max-c.Min)
		}
	case sim.Button:
		e.Value = float64(rng.IntN(1 << 16))
	case sim.Select:
		e.Option = c.Options[rng.IntN(len(c.Options))]
	case sim.Checkbox:
		e.Value = float64(rng.IntN(2))
	}

	return e
}

// snapshot captures everything observable about s.
func snapshot(s sim.Sim) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprint(&buf, s.Readout())
	if err := render.Encode(&buf, s.Render(), false); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func simPurity(rng *rand.Rand, eps float64) error {
	s, err := randomSim(rng, eps)
	if err != nil {
		return err
	}
	for range eventsPerSim {
		ctrls := s.Controls()
		e := randomEvent(rng, ctrls[rng.IntN(len(ctrls))])
		before, err := snapshot(s)
		if err != nil {
			return err
		}
		next, err := s.Apply(e)
		if err != nil {
			return err
		}
		after, err := snapshot(s)
		if err != nil {
			return err
		}
		if !bytes.Equal(before, after) {
			return violation("%s: Apply(%+v) changed the receiver", s.Name(), e)
		}
		s = next
	}

	return nil
}

func renderRoundTrip(rng *rand.Rand, eps float64) error {
	s, err := randomSim(rng, eps)
	if err != nil {
		return err
	}
	ctrls := s.Controls()
	if s, err = s.Apply(randomEvent(rng, ctrls[rng.IntN(len(ctrls))])); err != nil {
		return err
	}
	want := s.Render()
	compressed := rng.IntN(2) == 1

	var buf bytes.Buffer
	if err = render.Encode(&buf, want, compressed); err != nil {
		return err
	}
	got, err := render.Decode(&buf)
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(got, want) {
		return violation("%s: render list changed in a round trip (compressed=%v)", s.Name(), compressed)
	}

	return nil
}
