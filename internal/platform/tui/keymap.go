package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lines/internal/core"
)

// GameKeyMap defines the key bindings used while a board is on screen.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	NewGame key.Binding
	Restart key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel, k.NewGame, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Cancel},
		{k.NewGame, k.Restart, k.Pause, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/l", "cursor right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick/drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc", "put back"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     GameKeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultGameKeyMap())
}

// NewKeyMapperWith creates a key mapper for custom bindings.
func NewKeyMapperWith(keys GameKeyMap) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		bindings: []actionBinding{
			{keys.Up, core.ActionUp},
			{keys.Down, core.ActionDown},
			{keys.Left, core.ActionLeft},
			{keys.Right, core.ActionRight},
			{keys.Confirm, core.ActionConfirm},
			{keys.Cancel, core.ActionCancel},
			{keys.NewGame, core.ActionNewGame},
			{keys.Restart, core.ActionRestart},
			{keys.Pause, core.ActionPause},
		},
	}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() GameKeyMap { return km.keys }

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse message to a pointer event. Only the left
// button and plain motion are used.
func MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMove
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Kind = core.PointerPress
	case tea.MouseActionRelease:
		ev.Kind = core.PointerRelease
	default:
		return ev, false
	}
	return ev, true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MenuKeyMap defines the key bindings for the game picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(keys MenuKeyMap, msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, keys.Quit):
		return MenuActionQuit
	case key.Matches(msg, keys.Up):
		return MenuActionUp
	case key.Matches(msg, keys.Down):
		return MenuActionDown
	case key.Matches(msg, keys.Select):
		return MenuActionSelect
	case key.Matches(msg, keys.Scores):
		return MenuActionScoreboard
	}
	return MenuActionNone
}
