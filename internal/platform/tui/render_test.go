package tui

import (
	"regexp"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 3)
	for x := 0; x < 6; x++ {
		s.Set(x, 0, '#')
		s.Set(x, 2, '#')
	}
	s.Set(0, 1, '#')
	s.Set(5, 1, '#')
	s.Set(1, 1, '*')
	s.Set(2, 1, '*')
	s.Set(4, 1, '@')

	got := ansiSeq.ReplaceAllString(RenderScreen(s, core.NewPalette('#', '*', '@')), "")
	if got != s.String() {
		t.Errorf("RenderScreen() text = %q, expected %q", got, s.String())
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	s := core.NewScreen(4, 2)
	got := ansiSeq.ReplaceAllString(RenderScreen(s, nil), "")
	if got != "    \n    " {
		t.Errorf("RenderScreen() = %q, expected two blank rows", got)
	}
}
