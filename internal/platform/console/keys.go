package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ActionForKey translates a tcell key to a game action.
// r is only consulted for tcell.KeyRune.
func ActionForKey(key tcell.Key, r rune) core.Action {
	switch key {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		return actionForRune(r)
	}
	return core.ActionNone
}

func actionForRune(r rune) core.Action {
	switch r {
	case 'w', 'W', 'k':
		return core.ActionUp
	case 's', 'S', 'j':
		return core.ActionDown
	case 'a', 'A', 'h':
		return core.ActionLeft
	case 'd', 'D', 'l':
		return core.ActionRight
	case 'p', 'P', ' ':
		return core.ActionPause
	case 'r', 'R':
		return core.ActionRestart
	case 'q', 'Q':
		return core.ActionQuit
	}
	return core.ActionNone
}
