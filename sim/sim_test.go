// SPDX-License-Identifier: MIT
package sim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/microsim/render"
	"github.com/katalvlaran/microsim/sim"
)

// reading returns the reading with the given label or fails the test.
func reading(t *testing.T, s sim.Sim, label string) sim.Reading {
	t.Helper()
	for _, r := range s.Readout() {
		if r.Label == label {
			return r
		}
	}
	require.Failf(t, "missing reading", "%s has no %q", s.Name(), label)
	return sim.Reading{}
}

// apply runs events in order and fails on the first error.
func apply(t *testing.T, s sim.Sim, events ...sim.Event) sim.Sim {
	t.Helper()
	for _, e := range events {
		next, err := s.Apply(e)
		require.NoError(t, err, "event %+v", e)
		s = next
	}
	return s
}

func mustNew(t *testing.T, name string, opts ...sim.Option) sim.Sim {
	t.Helper()
	s, err := sim.New(name, opts...)
	require.NoError(t, err)
	return s
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	names := sim.Names()
	require.Equal(t, []string{
		"det2", "inverse", "detprops", "basicops", "rotation",
		"similarity", "signedarea", "symmetric", "lora",
		"sarrus", "matrixmul",
	}, names)

	_, err := sim.New("nope")
	require.ErrorIs(t, err, sim.ErrUnknownSim)
}

// TestEverySim_ControlsRenderAndPurity drives every control of every
// visualization once and checks the previous state is left untouched.
func TestEverySim_ControlsRenderAndPurity(t *testing.T) {
	t.Parallel()

	for _, name := range sim.Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := mustNew(t, name)
			require.Equal(t, name, s.Name())
			require.NotEmpty(t, s.Controls())
			require.NotEmpty(t, s.Readout())
			require.NoError(t, s.Render().Validate())

			for _, c := range s.Controls() {
				e := sim.Event{Control: c.Name, Value: c.Default}
				switch c.Kind {
				case sim.Select:
					e.Option = c.Options[len(c.Options)-1]
				case sim.Button:
					e.Value = 42
				case sim.Slider:
					e.Value = c.Max
				}

				beforeRead := s.Readout()
				beforeDraw := s.Render()
				next, err := s.Apply(e)
				require.NoError(t, err, "control %s", c.Name)
				require.Equal(t, beforeRead, s.Readout(), "receiver mutated by %s", c.Name)
				require.Equal(t, beforeDraw, s.Render(), "receiver mutated by %s", c.Name)
				require.NoError(t, next.Render().Validate())
				s = next
			}
		})
	}
}

func TestApply_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sim   string
		event sim.Event
		want  error
	}{
		{"det2", sim.Event{Control: "e", Value: 1}, sim.ErrUnknownControl},
		{"det2", sim.Event{Control: "a", Value: 11}, sim.ErrBadValue},
		{"det2", sim.Event{Control: "a", Value: math.NaN()}, sim.ErrBadValue},
		{"det2", sim.Event{Control: "a", Value: 0.05}, sim.ErrBadValue},
		{"det2", sim.Event{Control: "random", Value: -1}, sim.ErrBadValue},
		{"det2", sim.Event{Control: "random", Value: 1.5}, sim.ErrBadValue},
		{"basicops", sim.Event{Control: "operation", Option: "division"}, sim.ErrBadValue},
		{"rotation", sim.Event{Control: "circle", Value: 2}, sim.ErrBadValue},
		{"lora", sim.Event{Control: "dim", Value: 20}, sim.ErrBadValue},
		{"lora", sim.Event{Control: "rank", Value: 0}, sim.ErrBadValue},
		{"sarrus", sim.Event{Control: "example", Option: "upper"}, sim.ErrBadValue},
		{"matrixmul", sim.Event{Control: "shape_a", Option: "4x4"}, sim.ErrBadValue},
		{"matrixmul", sim.Event{Control: "cols_b", Option: "1"}, sim.ErrBadValue},
	}
	for _, tc := range cases {
		s := mustNew(t, tc.sim)
		next, err := s.Apply(tc.event)
		require.ErrorIs(t, err, tc.want, "%s %+v", tc.sim, tc.event)
		require.Nil(t, next)
	}
}

func TestDet2(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "det2")
	require.Equal(t, 10.0, reading(t, s, "det").Value)
	require.Equal(t, 10.0, reading(t, s, "area").Value)
	require.Equal(t, "preserves orientation", reading(t, s, "orientation").Text)

	s = apply(t, s, sim.Event{Control: "a", Value: -3})
	require.Equal(t, -14.0, reading(t, s, "det").Value)
	require.Equal(t, 14.0, reading(t, s, "area").Value)
	require.Equal(t, "reverses orientation", reading(t, s, "orientation").Text)

	s = apply(t, s, sim.Event{Control: "singular"})
	require.Equal(t, 0.0, reading(t, s, "det").Value)
	require.Equal(t, "singular", reading(t, s, "orientation").Text)

	s = apply(t, s, sim.Event{Control: "identity"})
	require.Equal(t, 1.0, reading(t, s, "det").Value)
}

func TestDet2_RandomIsReproducible(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "det2")
	a := apply(t, s, sim.Event{Control: "random", Value: 7})
	b := apply(t, s, sim.Event{Control: "random", Value: 7})
	require.Equal(t, a.Readout(), b.Readout())
	require.Equal(t, a.Render(), b.Render())
}

func TestInverse(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "inverse")
	require.Equal(t, 1.0, reading(t, s, "det").Value)
	require.Equal(t, "invertible", reading(t, s, "status").Text)
	require.InDelta(t, 1.0, reading(t, s, "inv11").Value, 1e-12)
	require.InDelta(t, -1.0, reading(t, s, "inv12").Value, 1e-12)
	require.InDelta(t, -1.0, reading(t, s, "inv21").Value, 1e-12)
	require.InDelta(t, 2.0, reading(t, s, "inv22").Value, 1e-12)
	require.LessOrEqual(t, reading(t, s, "residual").Value, 1e-9)

	// det = 1 - factor along the path toward row2 = 2·row1.
	near := apply(t, s, sim.Event{Control: "singularity", Value: 0.95})
	require.InDelta(t, 0.05, reading(t, near, "det").Value, 1e-9)
	require.Equal(t, "near-singular", reading(t, near, "status").Text)

	sing := apply(t, s, sim.Event{Control: "singularity", Value: 1})
	require.Equal(t, "singular", reading(t, sing, "status").Text)
	for _, r := range sing.Readout() {
		require.NotEqual(t, "inv11", r.Label, "no inverse for a singular matrix")
	}

	sing = apply(t, s, sim.Event{Control: "singular", Value: 3})
	require.Equal(t, "singular", reading(t, sing, "status").Text)
}

func TestInverse_RandomIsWellConditioned(t *testing.T) {
	t.Parallel()

	s := apply(t, mustNew(t, "inverse"),
		sim.Event{Control: "singularity", Value: 1},
		sim.Event{Control: "random", Value: 11},
	)
	require.GreaterOrEqual(t, math.Abs(reading(t, s, "det").Value), 0.5)
	require.LessOrEqual(t, reading(t, s, "residual").Value, 1e-9)
}

func TestInverse_SingularEpsilonOption(t *testing.T) {
	t.Parallel()

	// |det| = 0.05 is invertible by default and singular under eps = 0.1.
	e := sim.Event{Control: "singularity", Value: 0.95}
	loose := apply(t, mustNew(t, "inverse", sim.WithSingularEpsilon(0.1)), e)
	require.Equal(t, "singular", reading(t, loose, "status").Text)

	// The tightest threshold still refuses to invert det = 0.
	tight := apply(t, mustNew(t, "inverse", sim.WithSingularEpsilon(1e-300)),
		sim.Event{Control: "singularity", Value: 1})
	require.Equal(t, 0.0, reading(t, tight, "det").Value)
	require.Equal(t, "singular", reading(t, tight, "status").Text)
	for _, r := range tight.Readout() {
		require.False(t, math.IsNaN(r.Value) || math.IsInf(r.Value, 0), "%s", r)
	}

	require.Panics(t, func() { sim.WithSingularEpsilon(0) })
}

func TestDetProps(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "detprops")
	require.Equal(t, 5.0, reading(t, s, "det").Value)
	require.Equal(t, 5.0, reading(t, s, "det_modified").Value)

	cases := []struct {
		events []sim.Event
		want   float64
	}{
		{[]sim.Event{{Control: "swap"}}, -5},
		{[]sim.Event{{Control: "scale"}}, 10},
		{[]sim.Event{{Control: "k", Value: -1.5}, {Control: "scale"}}, -7.5},
		{[]sim.Event{{Control: "addrow"}}, 5},
		{[]sim.Event{{Control: "k", Value: 3}, {Control: "addrow"}}, 5},
		{[]sim.Event{{Control: "transpose"}}, 5},
	}
	for _, tc := range cases {
		got := apply(t, s, tc.events...)
		require.InDelta(t, tc.want, reading(t, got, "det_modified").Value, 1e-12, "%+v", tc.events)
		require.Equal(t, 5.0, reading(t, got, "det").Value)
	}

	// Operations apply to the original, not to the previous result.
	twice := apply(t, s, sim.Event{Control: "swap"}, sim.Event{Control: "swap"})
	require.Equal(t, -5.0, reading(t, twice, "det_modified").Value)

	reset := apply(t, twice, sim.Event{Control: "reset"})
	require.Equal(t, "none", reading(t, reset, "op").Text)
	require.Equal(t, 5.0, reading(t, reset, "det_modified").Value)
}

func TestBasicOps(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "basicops")
	one := apply(t, s, sim.Event{Control: "operation", Option: "scalar"}, sim.Event{Control: "scalar", Value: 1})
	two := apply(t, one, sim.Event{Control: "scalar", Value: 2})
	zero := apply(t, one, sim.Event{Control: "scalar", Value: 0})
	for _, r := range one.Readout() {
		if r.Label == "revealed" {
			continue
		}
		require.Equal(t, 2*r.Value, reading(t, two, r.Label).Value)
		require.Equal(t, 0.0, reading(t, zero, r.Label).Value)
		require.GreaterOrEqual(t, r.Value, -5.0)
		require.Less(t, r.Value, 6.0)
	}

	// Ten steps reveal all nine cells and wrap back to none.
	for i := 1; i <= 9; i++ {
		s = apply(t, s, sim.Event{Control: "step"})
		require.Equal(t, float64(i), reading(t, s, "revealed").Value)
	}
	s = apply(t, s, sim.Event{Control: "step"})
	require.Equal(t, 0.0, reading(t, s, "revealed").Value)
}

func TestRotation(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "rotation")
	for _, a := range []float64{-360, -90, 0, 45, 90, 137, 360} {
		got := apply(t, s, sim.Event{Control: "angle", Value: a})
		require.InDelta(t, 1.0, reading(t, got, "det").Value, 1e-12, "angle %v", a)
	}
	q := apply(t, s, sim.Event{Control: "angle", Value: 90}, sim.Event{Control: "shape", Option: "triangle"})
	require.InDelta(t, 0.0, reading(t, q, "cos").Value, 1e-12)
	require.InDelta(t, 1.0, reading(t, q, "sin").Value, 1e-12)
}

func TestSimilarity_Reference(t *testing.T) {
	t.Parallel()

	s := apply(t, mustNew(t, "similarity"),
		sim.Event{Control: "ux", Value: 3}, sim.Event{Control: "uy", Value: 4},
		sim.Event{Control: "vx", Value: 0}, sim.Event{Control: "vy", Value: 5},
	)
	require.InDelta(t, 20.0, reading(t, s, "dot").Value, 1e-12)
	require.InDelta(t, 5.0, reading(t, s, "norm_u").Value, 1e-12)
	require.InDelta(t, 5.0, reading(t, s, "norm_v").Value, 1e-12)
	require.InDelta(t, 0.8, reading(t, s, "cosine").Value, 1e-12)
	require.InDelta(t, math.Sqrt(10), reading(t, s, "distance").Value, 1e-12)

	zero := apply(t, s, sim.Event{Control: "ux", Value: 0}, sim.Event{Control: "uy", Value: 0})
	require.Equal(t, 0.0, reading(t, zero, "cosine").Value)
	require.Equal(t, 0.0, reading(t, zero, "angle_deg").Value)
	require.NoError(t, zero.Render().Validate())
}

func TestSimilarity_Weighted(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "similarity")
	for _, r := range s.Readout() {
		require.NotEqual(t, "inner_w", r.Label, "standard mode has no weighted readings")
	}

	diag := apply(t, s, sim.Event{Control: "product", Option: "diagonal"})
	require.InDelta(t, reading(t, diag, "dot").Value, reading(t, diag, "inner_w").Value, 1e-12, "W = I")

	diag = apply(t, diag, sim.Event{Control: "w11", Value: 2})
	// u = (3,1), v = (1,2): 2·3·1 + 1·1·2.
	require.InDelta(t, 8.0, reading(t, diag, "inner_w").Value, 1e-12)

	// w12 = 1 would make W singular; it is clamped below √(w11·w22).
	gen := apply(t, s,
		sim.Event{Control: "product", Option: "general"},
		sim.Event{Control: "w12", Value: 1},
	)
	// W = [[1, .98], [.98, 1]]: 3 + .98·(3·2 + 1·1) + 2.
	require.InDelta(t, 5+0.98*7, reading(t, gen, "inner_w").Value, 1e-9)
	require.GreaterOrEqual(t, reading(t, gen, "cauchy_schwarz_slack").Value, 0.0)
	require.NoError(t, gen.Render().Validate())
}

// The plot square is min(0.6·width, height-60) and the unit ball is
// centred in it, so the ball's centre tracks the canvas size.
func TestSimilarity_PlotFollowsCanvas(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		w, h, side float64
	}{
		{300, 400, 180},
		{500, 400, 300},
		{1000, 400, 340},
	} {
		l := mustNew(t, "similarity", sim.WithCanvas(tc.w, tc.h)).Render()
		require.NoError(t, l.Validate())
		require.Equal(t, tc.w, l.Width)

		var ball []f64.Vec2
		for _, c := range l.Commands {
			if c.Kind == render.KindPolygon {
				ball = c.Points
				break
			}
		}
		require.NotEmpty(t, ball, "unit ball")
		var cx, cy float64
		for _, p := range ball {
			cx += p[0]
			cy += p[1]
		}
		n := float64(len(ball))
		require.InDelta(t, 10+tc.side/2, cx/n, 1e-9, "canvas %vx%v", tc.w, tc.h)
		require.InDelta(t, 45+tc.side/2, cy/n, 1e-9, "canvas %vx%v", tc.w, tc.h)
	}
}

func TestSignedArea(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "signedarea")
	require.Equal(t, 3.0, reading(t, s, "signed_area").Value)
	require.Equal(t, "counterclockwise", reading(t, s, "orientation").Text)

	cw := apply(t, s,
		sim.Event{Control: "ux", Value: 1}, sim.Event{Control: "uy", Value: 2},
		sim.Event{Control: "vx", Value: 2}, sim.Event{Control: "vy", Value: 1},
	)
	require.Equal(t, -3.0, reading(t, cw, "signed_area").Value)
	require.Equal(t, 3.0, reading(t, cw, "area").Value)
	require.Equal(t, "clockwise", reading(t, cw, "orientation").Text)

	par := apply(t, cw, sim.Event{Control: "vx", Value: 2}, sim.Event{Control: "vy", Value: 4})
	require.Equal(t, "parallel", reading(t, par, "orientation").Text)

	back := apply(t, par, sim.Event{Control: "reset"})
	require.Equal(t, s.Readout(), back.Readout())
}

func TestSymmetric(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "symmetric")
	require.Equal(t, 6.0, reading(t, s, "size").Value)
	require.Equal(t, 1.0, reading(t, s, "symmetric").Value)
	require.Equal(t, 1.0, reading(t, s, "transpose_equal").Value)
	require.Equal(t, 21.0, reading(t, s, "independent").Value)

	for seed := 0.0; seed < 5; seed++ {
		got := apply(t, s, sim.Event{Control: "random", Value: seed}, sim.Event{Control: "size", Value: 10})
		require.Equal(t, 1.0, reading(t, got, "symmetric").Value)
		require.Equal(t, 55.0, reading(t, got, "independent").Value)
		require.Equal(t, 100.0, reading(t, got, "entries").Value)
	}
}

func TestLoRA(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "lora")
	require.Equal(t, 1024.0, reading(t, s, "full_params").Value)
	require.Equal(t, 256.0, reading(t, s, "lora_params").Value)
	require.InDelta(t, 75.0, reading(t, s, "savings_pct").Value, 1e-12)
	require.Equal(t, 4.0, reading(t, s, "rank_delta").Value)

	wide := apply(t, s, sim.Event{Control: "dim", Value: 16}, sim.Event{Control: "rank", Value: 16})
	require.InDelta(t, -100.0, reading(t, wide, "savings_pct").Value, 1e-12)
	require.LessOrEqual(t, reading(t, wide, "rank_delta").Value, 16.0)
	require.NoError(t, wide.Render().Validate())

	big := apply(t, s, sim.Event{Control: "dim", Value: 64}, sim.Event{Control: "rank", Value: 8})
	require.Equal(t, 4096.0, reading(t, big, "full_params").Value)
	require.Equal(t, 1024.0, reading(t, big, "lora_params").Value)
	require.LessOrEqual(t, reading(t, big, "rank_delta").Value, 8.0)
}

func TestSarrus(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "sarrus")
	require.Equal(t, 225.0, reading(t, s, "down_sum").Value)
	require.Equal(t, 225.0, reading(t, s, "up_sum").Value)
	require.Equal(t, 0.0, reading(t, s, "det").Value)
	require.Equal(t, "singular", reading(t, s, "status").Text)
	require.Equal(t, 45.0, reading(t, s, "down1").Value)
	require.Equal(t, 105.0, reading(t, s, "up1").Value)

	rot := apply(t, s, sim.Event{Control: "example", Option: "rotation"})
	require.Equal(t, 1.0, reading(t, rot, "det").Value)
	require.Equal(t, -1.0, reading(t, rot, "up_sum").Value)
	require.Equal(t, "invertible", reading(t, rot, "status").Text)

	for i := 1; i <= 7; i++ {
		rot = apply(t, rot, sim.Event{Control: "step"})
		require.Equal(t, float64(i), reading(t, rot, "step").Value)
		require.NoError(t, rot.Render().Validate())
	}
	rot = apply(t, rot, sim.Event{Control: "step"})
	require.Equal(t, 0.0, reading(t, rot, "step").Value)

	for _, seed := range []float64{1, 7, 300} {
		r := apply(t, s, sim.Event{Control: "random", Value: seed})
		require.Equal(t,
			reading(t, r, "down_sum").Value-reading(t, r, "up_sum").Value,
			reading(t, r, "det").Value, "seed %v", seed)
	}
}

func TestMatrixMul(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "matrixmul")
	require.Equal(t, "2x3 * 3x2", reading(t, s, "shape").Text)
	require.Equal(t, 12.0, reading(t, s, "multiplications").Value)
	require.Equal(t, 8.0, reading(t, s, "additions").Value)
	require.Equal(t, "c11", reading(t, s, "entry").Text)
	require.Equal(t, 0.0, reading(t, s, "running_sum").Value)

	order := []string{"c11", "c12", "c21", "c22"}
	for e, name := range order {
		for k := 0; k < 3; k++ {
			require.Equal(t, name, reading(t, s, "entry").Text)
			if k == 2 {
				last := reading(t, s, name).Value - reading(t, s, "running_sum").Value
				require.GreaterOrEqual(t, last, 1.0, "entry %d", e)
				require.LessOrEqual(t, last, 25.0, "entry %d", e)
			}
			s = apply(t, s, sim.Event{Control: "step"})
			require.NoError(t, s.Render().Validate())
		}
	}
	require.Equal(t, "complete", reading(t, s, "entry").Text)
	require.Equal(t, 12.0, reading(t, s, "step").Value)

	s = apply(t, s, sim.Event{Control: "step"})
	require.Equal(t, 0.0, reading(t, s, "step").Value)

	big := apply(t, s,
		sim.Event{Control: "shape_a", Option: "3x3"},
		sim.Event{Control: "cols_b", Option: "3"},
	)
	require.Equal(t, 27.0, reading(t, big, "multiplications").Value)
	require.Equal(t, 18.0, reading(t, big, "additions").Value)
	for _, r := range big.Readout() {
		if len(r.Label) == 3 && r.Label[0] == 'c' {
			require.GreaterOrEqual(t, r.Value, 3.0, r.Label)
			require.LessOrEqual(t, r.Value, 75.0, r.Label)
		}
	}
	big = apply(t, big, sim.Event{Control: "step"}, sim.Event{Control: "reset"})
	require.Equal(t, 0.0, reading(t, big, "step").Value)

	a := apply(t, s, sim.Event{Control: "random", Value: 5})
	b := apply(t, s, sim.Event{Control: "random", Value: 5})
	require.Equal(t, a.Readout(), b.Readout())
}

func TestOptions(t *testing.T) {
	t.Parallel()

	s := mustNew(t, "det2", sim.WithCanvas(800, 600))
	l := s.Render()
	require.Equal(t, 800.0, l.Width)
	require.Equal(t, 600.0, l.Height)

	require.Panics(t, func() { sim.WithCanvas(0, 10) })
	require.Panics(t, func() { sim.WithCanvas(10, math.Inf(1)) })
	require.Panics(t, func() { sim.WithSingularEpsilon(-1) })
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"det2 det=10.0000 area=10.0000 orientation=preserves orientation",
		sim.Describe(mustNew(t, "det2")))
}
