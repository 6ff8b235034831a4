package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-whack/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hi")
	s.DrawTextColor(0, 1, "mole", core.ColorBrown)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "hi") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "mole") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorRed; c <= core.ColorBrown; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("color %d has no palette entry", c)
		}
	}
}
