package breakout

// Cue is a discrete sound event emitted by a tick.
type Cue string

const (
	CueWall    Cue = "wall"
	CuePaddle  Cue = "paddle"
	CueBrick   Cue = "brick"
	CueBreak   Cue = "break"
	CueSpeedUp Cue = "speedup"
	CueItem    Cue = "item"
)

// AudioSink receives cues after each tick. Implementations decide whether to
// make a sound; they must not block.
type AudioSink interface {
	Play(c Cue)
}

// Status is the externally displayed round status.
type Status struct {
	Level int
	Lives int
	Balls int
}

// StatusSink receives the status whenever it changes.
type StatusSink interface {
	StatusChanged(s Status)
}

// AudioFunc adapts a function to AudioSink.
type AudioFunc func(c Cue)

// Play calls f(c).
func (f AudioFunc) Play(c Cue) { f(c) }

// StatusFunc adapts a function to StatusSink.
type StatusFunc func(s Status)

// StatusChanged calls f(s).
func (f StatusFunc) StatusChanged(s Status) { f(s) }
