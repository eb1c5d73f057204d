// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/microsim/config"
	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/sim"
)

func TestParseConfig_PartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	c, err := config.ParseConfig([]byte(`{"log_level":"debug","canvas":{"width":640,"height":480}}`))
	require.NoError(t, err)
	require.Equal(t, config.LogLevelDebug, c.LogLevel)
	require.Equal(t, 640.0, c.Canvas.Width)
	require.Equal(t, 480.0, c.Canvas.Height)
	require.Equal(t, matrix.DefaultSingularEpsilon, c.Kernel.SingularEpsilon)
	require.Equal(t, config.Default().Check, c.Check)
}

func TestParseConfig_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.ParseConfig([]byte(`{`))
	require.ErrorContains(t, err, "unmarshal config")

	_, err = config.ParseConfig([]byte(`{"canvas":{"width":0,"height":10},"kernel":{"singular_epsilon":-1},"check":{"iterations":0},"log_level":"loud"}`))
	require.Error(t, err)
	for _, part := range []string{"invalid config", "canvas", "singular_epsilon", "iterations", "log_level"} {
		require.ErrorContains(t, err, part)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c, err := config.Load(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)

	path := filepath.Join(dir, "sample.json")
	require.NoError(t, config.CreateSample(path))
	c, err = config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "./renders", c.OutputDir)
	require.Equal(t, config.LogLevelInfo, c.LogLevel)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	_, err = config.Load(dir) // a directory cannot be read as a file
	require.ErrorContains(t, err, "could not read config file")
}

func TestLogLevel_Zap(t *testing.T) {
	t.Parallel()

	cases := map[config.LogLevel]zap.AtomicLevel{
		config.LogLevelDebug: zap.NewAtomicLevelAt(zap.DebugLevel),
		"trace":              zap.NewAtomicLevelAt(zap.DebugLevel),
		config.LogLevelInfo:  zap.NewAtomicLevelAt(zap.InfoLevel),
		"warning":            zap.NewAtomicLevelAt(zap.WarnLevel),
		config.LogLevelError: zap.NewAtomicLevelAt(zap.ErrorLevel),
		"bogus":              zap.NewAtomicLevelAt(zap.ErrorLevel),
	}
	for lvl, want := range cases {
		require.Equal(t, want.Level(), lvl.Zap().Level(), "level %s", lvl)
	}
	require.True(t, config.LogLevel("notice").Valid())
	require.False(t, config.LogLevel("bogus").Valid())
}

func TestSimOptions(t *testing.T) {
	t.Parallel()

	c := config.Default()
	c.Canvas.Width = 320
	s, err := sim.New("signedarea", c.SimOptions()...)
	require.NoError(t, err)
	require.Equal(t, 320.0, s.Render().Width)
}
