package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-whack/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. Digit keys 1-9 choose a
// cell directly and are returned as cell (0-based) with ActionNone;
// cell is -1 for every other key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, cell int, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, -1, true
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return core.ActionNone, int(key[0] - '1'), false
	}

	switch key {
	case "w", "up":
		return core.ActionUp, -1, false
	case "s", "down":
		return core.ActionDown, -1, false
	case "a", "left":
		return core.ActionLeft, -1, false
	case "d", "right":
		return core.ActionRight, -1, false
	case "enter", " ":
		return core.ActionConfirm, -1, false
	case "tab":
		return core.ActionDifficulty, -1, false
	case "b", "esc":
		return core.ActionBack, -1, false
	case "r":
		return core.ActionRestart, -1, false
	}

	return core.ActionNone, -1, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, cell, isQuit := km.MapKey(msg)
	if cell >= 0 {
		frame.SelectCell(cell)
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button press as a click.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Click(core.Point{X: msg.X, Y: msg.Y})
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
