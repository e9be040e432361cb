package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/handheld-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to console actions.
// Arrows, WASD and hjkl all drive the four buttons; space is a second Up so
// Flappy can be played with one thumb.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a console action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "up", "w", "k", " ":
		return core.ActionUp, false
	case "down", "s", "j":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is a console selector command derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionPrev
	MenuActionNext
	MenuActionPlay
	MenuActionPlayLast
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a selector action: left and right
// cycle, down or enter plays the selection, up replays the last game.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if msg.String() == "tab" {
		return MenuActionScoreboard
	}

	action, isQuit := km.MapKey(msg)
	if isQuit {
		return MenuActionQuit
	}
	switch action {
	case core.ActionLeft:
		return MenuActionPrev
	case core.ActionRight:
		return MenuActionNext
	case core.ActionDown, core.ActionConfirm:
		return MenuActionPlay
	case core.ActionUp:
		return MenuActionPlayLast
	}
	return MenuActionNone
}
