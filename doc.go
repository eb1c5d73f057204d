// Package microsim is a set of small interactive visualizations for
// linear algebra: determinants, inverses, row operations, rotations,
// inner products, symmetric matrices and low-rank (LoRA) updates.
//
// What is inside?
//
//	matrix/   dense kernel: Det2/Det3/Det, Inverse2/Inverse, row ops, random generators
//	vector/   2-D helpers: dot, norm, cosine, angle, projection, signed area, weighted products
//	render/   backend-neutral draw command lists, palette, JSON (+zstd) encoding
//	sim/      the visualizations: controls, immutable Apply, Render, Readout
//	laws/     randomized algebraic law checks over the kernel and every sim
//	config/   JSON configuration for the command
//	logger/   process-wide zap logger
//	cmd/microsim  list, render, check and sample-config commands
//
// Every visualization is a value. Apply validates an event against the
// control it names and returns a new value; the receiver is never touched.
//
//	s, _ := sim.New("det2")
//	s, _ = s.Apply(sim.Event{Control: "a", Value: 1})
//	fmt.Println(sim.Describe(s)) // det2 det=2.0000 area=2.0000 orientation=preserves orientation
//
// Rendering produces a *render.List that any surface can replay; the
// vgsurface subpackage writes SVG and PNG through gonum/plot.
package microsim
