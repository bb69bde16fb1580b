package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionConfirm        // Enter, Space - pick up or drop a piece
	ActionCancel         // Esc, X - put the picked piece back
	ActionNewGame        // N - abandon the current board
	ActionRestart        // R - restart after game over
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionNewGame:
		return "NewGame"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes mouse events.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerPress
	PointerRelease
)

// PointerEvent is a mouse event in screen cell coordinates.
type PointerEvent struct {
	X, Y int
	Kind PointerKind
}

// InputFrame collects the input of one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Pointer holds mouse events in arrival order.
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a mouse event. Consecutive moves collapse into the
// latest one.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	if n := len(f.Pointer); n > 0 && ev.Kind == PointerMove && f.Pointer[n-1].Kind == PointerMove {
		f.Pointer[n-1] = ev
		return
	}
	f.Pointer = append(f.Pointer, ev)
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointer) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}
