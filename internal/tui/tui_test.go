package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/msto63/unitx/foundation/units/si"
)

func TestUnitRows(t *testing.T) {
	rows := UnitRows(si.ByKind("velocity"))

	want := [][]string{
		{"velocity", "metre per second", "m/s", "L·T⁻¹", "1"},
		{"velocity", "kilometre per hour", "km/h", "L·T⁻¹", "5/18"},
		{"velocity", "mile per hour", "mi/h", "L·T⁻¹", "1397/3125"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("UnitRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderUnits(t *testing.T) {
	var buf bytes.Buffer
	theme := NewTheme(&buf, true)

	out := theme.RenderUnits(si.ByKind("length"))

	for _, want := range []string{"KIND", "SYMBOL", "kilometre", "km", "201168/125"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderUnits() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("RenderUnits() with noColor contains escape sequences:\n%q", out)
	}
	if got := strings.Count(out, "\n"); got < len(si.ByKind("length"))+3 {
		t.Errorf("RenderUnits() has %d lines", got)
	}
}

func TestTheme_Render(t *testing.T) {
	var buf bytes.Buffer
	theme := NewTheme(&buf, true)

	if got := theme.RenderTitle("Units"); got != "Units" {
		t.Errorf("RenderTitle() = %q", got)
	}
	if got := theme.RenderError("boom"); got != "Error: boom" {
		t.Errorf("RenderError() = %q", got)
	}
	if got := theme.RenderHelp("try --help"); got != "try --help" {
		t.Errorf("RenderHelp() = %q", got)
	}
}
