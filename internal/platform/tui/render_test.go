package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-mazechase/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, 'M', core.ColorRed)
	s.SetColored(3, 0, 'M', core.ColorPink)
	s.DrawTextColored(0, 1, "··", core.ColorWhite)

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "abMM  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "··    " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
