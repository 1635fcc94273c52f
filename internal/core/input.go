package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - shift piece left
	ActionRight           // D, Right arrow - shift piece right
	ActionRotate          // W, Up arrow - rotate clockwise
	ActionSoftDrop        // S, Down arrow - one row down
	ActionHardDrop        // Space - drop until the piece locks
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:     "None",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionRotate:   "Rotate",
	ActionSoftDrop: "SoftDrop",
	ActionHardDrop: "HardDrop",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionRestart:  "Restart",
	ActionQuit:     "Quit",
	ActionPause:    "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the player's input during one simulation tick.
// Key presses arriving between two ticks accumulate here; a key pressed
// twice before the tick fires is counted twice so fast taps are not lost.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one occurrence of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
