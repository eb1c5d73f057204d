// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"strings"
)

type entry struct {
	name  string
	build func(frame) (Sim, error)
}

// catalog lists every visualization in presentation order.
var catalog = []entry{
	{"det2", newDet2},
	{"inverse", newInverse},
	{"detprops", newDetProps},
	{"basicops", newBasicOps},
	{"rotation", newRotation},
	{"similarity", newSimilarity},
	{"signedarea", newSignedArea},
	{"symmetric", newSymmetric},
	{"lora", newLoRA},
	{"sarrus", newSarrus},
	{"matrixmul", newMatrixMul},
}

// Names returns the registered visualization names in presentation order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, e := range catalog {
		out[i] = e.name
	}

	return out
}

// New returns the initial state of the named visualization.
//
// Errors:
//   - ErrUnknownSim.
func New(name string, opts ...Option) (Sim, error) {
	for _, e := range catalog {
		if e.name == name {
			o := gatherOptions(opts...)
			return e.build(frame{w: o.width, h: o.height, eps: o.singularEps})
		}
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownSim)
}

// Describe prints s's name and readout on one line, for logs.
func Describe(s Sim) string {
	var b strings.Builder
	b.WriteString(s.Name())
	for _, r := range s.Readout() {
		b.WriteByte(' ')
		b.WriteString(r.String())
	}

	return b.String()
}
