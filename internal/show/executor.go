package show

// ExecutorButtonMode enumerates button behaviors; Go is the only mode
// presently defined (§3.5).
type ExecutorButtonMode int

const (
	ExecutorButtonModeGo ExecutorButtonMode = iota
)

// ExecutorButton is the button half of an executor's front panel: a
// mode and its current Released/Pressed state.
type ExecutorButton struct {
	Mode    ExecutorButtonMode
	Pressed bool
}

// ExecutorFaderMode enumerates fader behaviors; Master is the only
// mode presently defined (§3.5).
type ExecutorFaderMode int

const (
	ExecutorFaderModeMaster ExecutorFaderMode = iota
)

// ExecutorFader is the fader half of an executor's front panel: a
// mode and its current level in [0,1].
type ExecutorFader struct {
	Mode  ExecutorFaderMode
	Level float64
}

// Executor is a playback head: it references a sequence (optionally),
// carries a cursor into that sequence advanced on a Go button edge,
// and scales its contribution by its fader's Master level (§4.7).
type Executor struct {
	ID         ExecutorId
	Name       string
	SequenceID *SequenceId
	Button     ExecutorButton
	Fader      ExecutorFader
	cursor     int
}

// NewExecutor constructs an executor with no sequence, a released Go
// button, and a Master fader at zero.
func NewExecutor(id ExecutorId, name string) *Executor {
	return &Executor{ID: id, Name: name}
}

// SetSequence points the executor at a sequence (or clears it,
// passing nil), resetting the cursor to zero.
func (e *Executor) SetSequence(id *SequenceId) {
	e.SequenceID = id
	e.cursor = 0
}

// Press transitions the button to Pressed; if it was previously
// Released and the mode is Go, it returns true to signal a Go edge
// that the caller (C7) must use to advance the cursor.
func (e *Executor) Press() (goEdge bool) {
	wasReleased := !e.Button.Pressed
	e.Button.Pressed = true
	return wasReleased && e.Button.Mode == ExecutorButtonModeGo
}

// Release transitions the button to Released.
func (e *Executor) Release() {
	e.Button.Pressed = false
}

// Advance moves the cursor to the next cue in the referenced
// sequence, wrapping to zero past the end. length is the sequence's
// cue count; a zero-length sequence leaves the cursor at zero.
func (e *Executor) Advance(length int) {
	if length <= 0 {
		e.cursor = 0
		return
	}
	e.cursor = (e.cursor + 1) % length
}

// Cursor returns the executor's current position in its sequence.
func (e *Executor) Cursor() int {
	return e.cursor
}

// SetLevel sets the Master fader level, clamping into [0,1].
func (e *Executor) SetLevel(level float64) {
	switch {
	case level < 0:
		level = 0
	case level > 1:
		level = 1
	}
	e.Fader.Level = level
}
