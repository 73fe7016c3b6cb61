package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/unitx/pkg/core/config"
	"github.com/msto63/unitx/pkg/core/version"
)

// execute runs the root command with fresh flag values
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgFile, verbose, unitsDimension = "", false, ""
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "unitx v"+version.CLI+"\n") {
		t.Errorf("version output = %q", out)
	}
	if !strings.Contains(out, "Foundation: v"+version.Foundation) {
		t.Errorf("version output missing foundation version: %q", out)
	}
}

func TestUnitsCommand(t *testing.T) {
	out, _, err := execute(t, "units")
	if err != nil {
		t.Fatalf("units error = %v", err)
	}
	for _, want := range []string{"SI units", "metre", "kilometre per hour", "Ω", "µF"} {
		if !strings.Contains(out, want) {
			t.Errorf("units output missing %q", want)
		}
	}
}

func TestUnitsCommand_Dimension(t *testing.T) {
	out, _, err := execute(t, "units", "--dimension", "Voltage")
	if err != nil {
		t.Fatalf("units error = %v", err)
	}
	if !strings.Contains(out, "SI units of voltage") || !strings.Contains(out, "pV") {
		t.Errorf("units output = %q", out)
	}
	if strings.Contains(out, "metre") {
		t.Errorf("units --dimension voltage lists lengths: %q", out)
	}
	if !strings.Contains(out, "5 units") {
		t.Errorf("units output missing count: %q", out)
	}
}

func TestUnitsCommand_UnknownDimension(t *testing.T) {
	_, _, err := execute(t, "units", "-d", "colour")
	if err == nil || !strings.Contains(err.Error(), "unknown quantity kind") {
		t.Errorf("units -d colour error = %v", err)
	}
}

func TestExamplesCommand(t *testing.T) {
	out, _, err := execute(t, "examples", "hello")
	if err != nil {
		t.Fatalf("examples error = %v", err)
	}
	if !strings.Contains(out, "220 km / 2 h = 110 km/h") {
		t.Errorf("examples hello output = %q", out)
	}
}

func TestExamplesCommand_All(t *testing.T) {
	out, _, err := execute(t, "examples", "all")
	if err != nil {
		t.Fatalf("examples error = %v", err)
	}
	for _, header := range []string{"== BOX ==", "== CAPACITOR ==", "== HELLO ==", "== RESPONSE =="} {
		if !strings.Contains(out, header) {
			t.Errorf("examples all output missing %q", header)
		}
	}
}

func TestExamplesCommand_InvalidArgs(t *testing.T) {
	if _, _, err := execute(t, "examples"); err == nil {
		t.Error("examples without a name should fail")
	}
	if _, _, err := execute(t, "examples", "rocket"); err == nil {
		t.Error("examples with an unknown name should fail")
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unitx.yaml")
	content := "output:\n  notation: f\n  precision: 1\nexamples:\n  hello:\n    distance_km: 100\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "--config", path, "examples", "hello")
	if err != nil {
		t.Fatalf("examples error = %v", err)
	}
	if !strings.Contains(out, "100.0 km / 2.0 h = 50.0 km/h") {
		t.Errorf("examples hello output = %q", out)
	}
}

func TestConfigFlag_Missing(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.toml"), "version")
	if err == nil {
		t.Error("missing config file should fail")
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, errOut, err := execute(t, "--verbose", "examples", "box")
	if err != nil {
		t.Fatalf("examples error = %v", err)
	}
	if !strings.Contains(errOut, "configuration loaded") {
		t.Errorf("stderr = %q, want debug logs", errOut)
	}
}
