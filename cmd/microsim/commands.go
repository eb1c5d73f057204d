// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/katalvlaran/microsim/config"
	"github.com/katalvlaran/microsim/laws"
	"github.com/katalvlaran/microsim/logger"
	"github.com/katalvlaran/microsim/render"
	"github.com/katalvlaran/microsim/render/vgsurface"
	"github.com/katalvlaran/microsim/sim"
)

// Output formats accepted by render -format.
const (
	formatSVG  = "svg"
	formatPNG  = "png"
	formatJSON = "json"
	formatZstd = "json.zst"
)

// list prints every registered visualization with its controls.
func list(w io.Writer) error {
	for _, name := range sim.Names() {
		s, err := sim.New(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, name)
		for _, c := range s.Controls() {
			switch c.Kind {
			case sim.Slider:
				fmt.Fprintf(w, "  %-12s %-8s %g..%g step %g (default %g)\n", c.Name, c.Kind, c.Min, c.Max, c.Step, c.Default)
			case sim.Select:
				fmt.Fprintf(w, "  %-12s %-8s %s\n", c.Name, c.Kind, strings.Join(c.Options, "|"))
			default:
				fmt.Fprintf(w, "  %-12s %s\n", c.Name, c.Kind)
			}
		}
	}

	return nil
}

// setFlags collects repeated -set control=value arguments in order.
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("want control=value, got %q", v)
	}
	*s = append(*s, v)
	return nil
}

// events turns the collected assignments into events for s. Select
// controls take the value verbatim; everything else must parse as a number.
func (s setFlags) events(target sim.Sim) ([]sim.Event, error) {
	kinds := make(map[string]sim.ControlKind)
	for _, c := range target.Controls() {
		kinds[c.Name] = c.Kind
	}

	events := make([]sim.Event, 0, len(s))
	for _, kv := range s {
		name, value, _ := strings.Cut(kv, "=")
		if kinds[name] == sim.Select {
			events = append(events, sim.Event{Control: name, Option: value})
			continue
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("-set %s: %w", kv, errUsage)
		}
		events = append(events, sim.Event{Control: name, Value: f})
	}

	return events, nil
}

func renderCmd(cfg config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var sets setFlags
	name := fs.String("sim", "", "Visualization to render (see list).")
	out := fs.String("out", "", "Output file; \"-\" writes to stdout. Defaults to <output_dir>/<sim>.<format>.")
	format := fs.String("format", formatSVG, "Output format: svg, png, json or json.zst.")
	fs.Var(&sets, "set", "Control assignment control=value; repeatable, applied in order.")
	if err := fs.Parse(args); err != nil {
		return errors.Join(errUsage, err)
	}
	if *name == "" {
		return fmt.Errorf("-sim is required: %w", errUsage)
	}
	switch *format {
	case formatSVG, formatPNG, formatJSON, formatZstd:
	default:
		return fmt.Errorf("unknown format %q: %w", *format, errUsage)
	}

	s, err := sim.New(*name, cfg.SimOptions()...)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	events, err := sets.events(s)
	if err != nil {
		return err
	}
	for _, e := range events {
		logger.Sugar().Debugf("%s: apply %s value=%g option=%q", s.Name(), e.Control, e.Value, e.Option)
		if s, err = s.Apply(e); err != nil {
			return err
		}
	}

	for _, r := range s.Readout() {
		fmt.Fprintln(stdout, r)
	}

	path := *out
	if path == "" {
		path = filepath.Join(cfg.OutputDir, s.Name()+"."+*format)
	}
	if path == "-" {
		return write(stdout, s.Render(), *format)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Join(errors.New("could not create output directory"), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Join(fmt.Errorf("could not create %q", path), err)
	}
	if err = write(f, s.Render(), *format); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Join(fmt.Errorf("could not write %q", path), err)
	}
	logger.Sugar().Infof("rendered %s to %s", s.Name(), path)

	return nil
}

func write(w io.Writer, l *render.List, format string) error {
	switch format {
	case formatPNG:
		return vgsurface.WritePNG(w, l)
	case formatJSON:
		return render.Encode(w, l, false)
	case formatZstd:
		return render.Encode(w, l, true)
	default:
		return vgsurface.WriteSVG(w, l)
	}
}

func check(cfg config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", cfg.Check.Iterations, "Random iterations per law.")
	seed := fs.Uint64("seed", cfg.Check.Seed, "Seed for the random generator.")
	quiet := fs.Bool("quiet", false, "Hide the progress bar.")
	if err := fs.Parse(args); err != nil {
		return errors.Join(errUsage, err)
	}
	if *n <= 0 {
		return fmt.Errorf("-n must be positive: %w", errUsage)
	}

	tick := func() {}
	if !*quiet {
		bar := progressbar.NewOptions64(int64(*n),
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("checking laws"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
		tick = func() { _ = bar.Add(1) }
	}

	logger.Sugar().Infof("checking %d laws, %d iterations, seed %d", len(laws.All()), *n, *seed)
	checked, err := laws.Run(*n, *seed, cfg.Kernel.SingularEpsilon, tick)
	if err != nil {
		return fmt.Errorf("after %d checks: %w", checked, err)
	}
	fmt.Fprintf(stdout, "ok: %d checks passed (seed %d)\n", checked, *seed)

	return nil
}
