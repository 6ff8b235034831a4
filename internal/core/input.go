package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move the cursor up
	ActionDown              // S, Down arrow - move the cursor down
	ActionLeft              // A, Left arrow - move the cursor left
	ActionRight             // D, Right arrow - move the cursor right
	ActionConfirm           // Enter, Space - whack the cell under the cursor
	ActionBack              // B, Escape - leave the game for the setup menu
	ActionRestart           // R key - start a new round
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionDifficulty        // Tab - cycle difficulty during a round
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
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionDifficulty:
		return "Difficulty"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input received between two frames: semantic
// actions, cells chosen directly by number, and mouse clicks in screen
// coordinates. Cells and clicks keep their arrival order.
type InputFrame struct {
	Actions map[Action]bool
	Cells   []int
	Clicks  []Point
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

// SelectCell queues a direct selection of cell id.
func (f *InputFrame) SelectCell(id int) {
	f.Cells = append(f.Cells, id)
}

// Click queues a mouse click at p.
func (f *InputFrame) Click(p Point) {
	f.Clicks = append(f.Clicks, p)
}

// Empty reports whether the frame carries no input.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Cells) == 0 && len(f.Clicks) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Cells = f.Cells[:0]
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Cells = append([]int(nil), f.Cells...)
	clone.Clicks = append([]Point(nil), f.Clicks...)
	return clone
}
