package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a play action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "p", "esc":
		return core.ActionPause, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapMouse folds a mouse event into the touch state. Only the left button
// counts as a finger; positions are screen cells. Returns false for events
// that do not affect the touch.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, touch *core.Touch) bool {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		touch.Pressed = true
	case tea.MouseActionMotion:
		// Cell motion reports drags; plain hover only arrives with all-motion tracking.
		if msg.Button != tea.MouseButtonLeft && !touch.Pressed {
			return false
		}
	case tea.MouseActionRelease:
		if !touch.Pressed {
			return false
		}
		touch.Pressed = false
	default:
		return false
	}
	touch.X, touch.Y = msg.X, msg.Y
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionCredits
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "c":
		return MenuActionCredits
	}
	return MenuActionNone
}
