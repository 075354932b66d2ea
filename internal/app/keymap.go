package app

import (
	"github.com/dshills/candle/internal/engine/cursor"
	"github.com/dshills/candle/internal/renderer/backend"
)

// QuitKey is the control chord that ends the session.
const QuitKey = 'q'

// CommandForEvent maps a terminal key event to a navigation command.
// Keys with no binding, and non-key events, map to CommandNone.
func CommandForEvent(ev backend.Event) cursor.Command {
	if ev.Type != backend.EventKey {
		return cursor.CommandNone
	}

	switch ev.Key {
	case backend.KeyCtrl:
		if ev.Rune == QuitKey {
			return cursor.CommandQuit
		}
	case backend.KeyUp:
		return cursor.CommandUp
	case backend.KeyDown:
		return cursor.CommandDown
	case backend.KeyLeft:
		return cursor.CommandLeft
	case backend.KeyRight:
		return cursor.CommandRight
	case backend.KeyPageUp:
		return cursor.CommandPageUp
	case backend.KeyPageDown:
		return cursor.CommandPageDown
	case backend.KeyHome:
		return cursor.CommandHome
	case backend.KeyEnd:
		return cursor.CommandEnd
	}
	return cursor.CommandNone
}
