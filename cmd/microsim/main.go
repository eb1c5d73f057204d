// SPDX-License-Identifier: MIT

// Command microsim lists, drives and renders the linear algebra
// visualizations, and sweeps the kernel laws over random input.
//
// Usage:
//
//	microsim [-config FILE] list
//	microsim [-config FILE] render -sim NAME [-set control=value ...] [-out FILE] [-format svg|png|json|json.zst]
//	microsim [-config FILE] check [-n N] [-seed S]
//	microsim sample-config [-out FILE]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/microsim/config"
	"github.com/katalvlaran/microsim/logger"
)

const (
	defaultConfigPath = "microsim.json"

	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks command-line mistakes; they exit with exitUsage.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("microsim", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("config", defaultConfigPath, "JSON configuration file; missing means defaults.")
	global.Usage = func() {
		fmt.Fprintln(stderr, "usage: microsim [-config FILE] list|render|check|sample-config [flags]")
		global.PrintDefaults()
	}
	if err := global.Parse(args); err != nil {
		return exitUsage
	}
	if global.NArg() == 0 {
		global.Usage()
		return exitUsage
	}
	cmd, rest := global.Arg(0), global.Args()[1:]

	// sample-config must work even when the current config is broken.
	if cmd == "sample-config" {
		return report(stderr, sampleConfig(rest, stdout, stderr))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
	if err = logger.Init(cfg.LogLevel.Zap()); err != nil {
		fmt.Fprintln(stderr, "error: init logger:", err)
		return exitError
	}
	defer logger.Sync()
	logger.Sugar().Debugf("config loaded from %s", *configPath)

	switch cmd {
	case "list":
		err = list(stdout)
	case "render":
		err = renderCmd(cfg, rest, stdout, stderr)
	case "check":
		err = check(cfg, rest, stdout, stderr)
	default:
		err = fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
	if err != nil && !errors.Is(err, errUsage) {
		logger.Sugar().Errorf("%s failed: %v", cmd, err)
	}

	return report(stderr, err)
}

// report prints err and maps it to an exit code.
func report(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitUsage
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
}

func sampleConfig(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sample-config", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", defaultConfigPath, "Where to write the sample configuration.")
	if err := fs.Parse(args); err != nil {
		return errors.Join(errUsage, err)
	}
	if err := config.CreateSample(*out); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "wrote", *out)
	return nil
}
