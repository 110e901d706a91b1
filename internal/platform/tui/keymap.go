package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ticket-rush/internal/core"
)

// Binding describes what one physical key means: which player it belongs
// to, which action it maps to, and whether it is level-triggered (movement,
// kept alive across key-repeat) or edge-triggered (fires once per press).
type Binding struct {
	Player core.PlayerID
	Action core.Action
	Held   bool
}

// KeyMapper translates Bubble Tea key messages to per-player game actions.
// Both players share one keyboard: WASD+E for the Reader, arrows+Enter for
// the Compiler, digits for answer options.
type KeyMapper struct {
	bindings map[string]Binding
}

// NewKeyMapper creates a key mapper with the default two-player bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]Binding{
		// Player 1 (Reader)
		"w": {core.Player1, core.ActionUp, true},
		"s": {core.Player1, core.ActionDown, true},
		"a": {core.Player1, core.ActionLeft, true},
		"d": {core.Player1, core.ActionRight, true},
		"e": {core.Player1, core.ActionInteract, false},

		// Player 2 (Compiler)
		"up":    {core.Player2, core.ActionUp, true},
		"down":  {core.Player2, core.ActionDown, true},
		"left":  {core.Player2, core.ActionLeft, true},
		"right": {core.Player2, core.ActionRight, true},
		"enter": {core.Player2, core.ActionInteract, false},
		"1":     {core.Player2, core.ActionOption1, false},
		"2":     {core.Player2, core.ActionOption2, false},
		"3":     {core.Player2, core.ActionOption3, false},
		"4":     {core.Player2, core.ActionOption4, false},

		// Session control
		" ": {core.Player1, core.ActionStart, false},
		"r": {core.Player1, core.ActionStart, false},
		"c": {core.Player1, core.ActionChaos, false},
	}}
}

// Lookup resolves a key message to its binding.
func (km *KeyMapper) Lookup(msg tea.KeyMsg) (Binding, bool) {
	b, ok := km.bindings[msg.String()]
	return b, ok
}

// IsQuit reports whether the key message is a quit request.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}
