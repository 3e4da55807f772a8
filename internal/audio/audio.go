// Package audio plays the game's sound cues as short square-wave beeps
// through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/brickfall/internal/games/breakout"
)

const (
	sampleRate = beep.SampleRate(44100)

	// CueDuration is the length of every cue tone.
	CueDuration = 80 * time.Millisecond

	// DefaultVolume is the amplitude of a new player's tones, in [0, 1].
	DefaultVolume = 0.2
)

var (
	mu          sync.Mutex
	initialized bool
)

// Init initializes the speaker. Safe to call more than once and from
// several goroutines.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return err
	}
	initialized = true
	return nil
}

// Close shuts down the speaker.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// frequencies maps each cue to a tone in Hz.
var frequencies = map[breakout.Cue]float64{
	breakout.CuePaddle:  700,
	breakout.CueWall:    500,
	breakout.CueBrick:   600,
	breakout.CueBreak:   400,
	breakout.CueSpeedUp: 900,
	breakout.CueItem:    800,
}

// Frequency returns the tone for a cue; unknown cues get 600 Hz.
func Frequency(c breakout.Cue) float64 {
	if f, ok := frequencies[c]; ok {
		return f
	}
	return 600
}

// Player is a breakout.AudioSink. A muted player, or one used before Init
// succeeded, stays silent.
type Player struct {
	muted  bool
	volume float64
}

// NewPlayer creates a player at DefaultVolume.
func NewPlayer(muted bool) *Player {
	return &Player{muted: muted, volume: DefaultVolume}
}

func ready() bool {
	mu.Lock()
	defer mu.Unlock()
	return initialized
}

// Play starts the tone for c without blocking.
func (p *Player) Play(c breakout.Cue) {
	if p.muted || p.volume <= 0 || !ready() {
		return
	}
	speaker.Play(squareWave(Frequency(c), CueDuration, p.volume))
}

// Volume returns the tone amplitude in [0, 1].
func (p *Player) Volume() float64 {
	return p.volume
}

// SetVolume sets the tone amplitude, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	p.volume = math.Max(0, math.Min(1, v))
}

// Muted reports whether the player is silent.
func (p *Player) Muted() bool {
	return p.muted
}

// SetMuted turns sound off or on.
func (p *Player) SetMuted(m bool) {
	p.muted = m
}

// squareWave generates a square wave tone of amplitude vol.
func squareWave(freq float64, duration time.Duration, vol float64) beep.Streamer {
	remaining := sampleRate.N(duration)
	phase := 0.0
	step := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, i > 0
			}
			val := vol
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += step
			remaining--
		}
		return len(samples), true
	})
}
