// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/microsim/config"
	"github.com/katalvlaran/microsim/render"
)

// exec runs the command line against a config path that does not exist,
// so defaults apply unless the test writes one.
func exec(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "absent.json")
	var out, errOut bytes.Buffer
	code = run(append([]string{"-config", cfg}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestList(t *testing.T) {
	code, out, _ := exec(t, "list")
	require.Equal(t, exitOK, code)
	for _, want := range []string{"det2", "lora", "singularity", "addition|scalar"} {
		require.Contains(t, out, want)
	}
}

func TestRender_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "det2.json")
	code, out, errOut := exec(t, "render", "-sim", "det2", "-set", "a=1", "-format", "json", "-out", path)
	require.Equal(t, exitOK, code, errOut)
	require.Contains(t, out, "det=2.0000")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	l, err := render.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 500.0, l.Width)
	require.NotZero(t, l.Len())
}

func TestRender_Stdout(t *testing.T) {
	code, out, _ := exec(t, "render", "-sim", "similarity", "-set", "product=diagonal", "-out", "-")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "inner_w=")
	require.Contains(t, out, "<svg")
}

func TestRender_DefaultPathUsesOutputDir(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "microsim.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"output_dir":"`+filepath.ToSlash(filepath.Join(dir, "out"))+`"}`), 0o600))

	var out, errOut bytes.Buffer
	code := run([]string{"-config", cfgPath, "render", "-sim", "rotation", "-format", "json.zst"}, &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())
	_, err := os.Stat(filepath.Join(dir, "out", "rotation.json.zst"))
	require.NoError(t, err)
}

func TestRender_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"missing sim":   {"render"},
		"unknown sim":   {"render", "-sim", "nope"},
		"bad format":    {"render", "-sim", "det2", "-format", "gif"},
		"bad set":       {"render", "-sim", "det2", "-set", "a"},
		"non-numeric":   {"render", "-sim", "det2", "-set", "a=x"},
		"no command":    {},
		"unknown cmd":   {"frobnicate"},
		"bad check arg": {"check", "-n", "0"},
	}
	for name, args := range cases {
		code, _, errOut := exec(t, args...)
		require.Equal(t, exitUsage, code, "%s: %s", name, errOut)
	}
}

func TestRender_ApplyError(t *testing.T) {
	code, _, errOut := exec(t, "render", "-sim", "det2", "-set", "a=99", "-out", "-")
	require.Equal(t, exitError, code)
	require.Contains(t, errOut, "error:")
}

func TestCheck(t *testing.T) {
	code, out, errOut := exec(t, "check", "-n", "5", "-seed", "3", "-quiet")
	require.Equal(t, exitOK, code, errOut)
	require.Contains(t, out, "ok: 45 checks passed (seed 3)")
}

func TestSampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	var out, errOut bytes.Buffer
	require.Equal(t, exitOK, run([]string{"sample-config", "-out", path}, &out, &errOut))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "./renders", cfg.OutputDir)
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"canvas":{"width":-1}}`), 0o600))

	var out, errOut bytes.Buffer
	require.Equal(t, exitError, run([]string{"-config", path, "list"}, &out, &errOut))
	require.Contains(t, errOut.String(), "invalid config")
}
