package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-lines/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score")
	s.DrawTextColored(6, 0, "●●", core.ColorRed)
	s.DrawTextColored(0, 1, "Next", core.ColorGray)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	if lines[0] != "Score ●●    " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Next        " {
		t.Errorf("line 1 = %q", lines[1])
	}
}
