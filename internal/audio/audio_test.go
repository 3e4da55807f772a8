package audio

import (
	"math"
	"sync"
	"testing"

	"github.com/vovakirdan/brickfall/internal/games/breakout"
)

func TestFrequency(t *testing.T) {
	tests := []struct {
		cue  breakout.Cue
		want float64
	}{
		{breakout.CuePaddle, 700},
		{breakout.CueWall, 500},
		{breakout.CueBrick, 600},
		{breakout.CueBreak, 400},
		{breakout.CueSpeedUp, 900},
		{breakout.CueItem, 800},
		{breakout.Cue("other"), 600},
	}

	for _, tt := range tests {
		if got := Frequency(tt.cue); got != tt.want {
			t.Errorf("Frequency(%s) = %v, want %v", tt.cue, got, tt.want)
		}
	}
}

func TestSquareWaveLength(t *testing.T) {
	s := squareWave(500, CueDuration, DefaultVolume)
	buf := make([][2]float64, 512)

	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			if smp[0] != DefaultVolume && smp[0] != -DefaultVolume {
				t.Fatalf("Unexpected sample %v", smp[0])
			}
		}
		if !ok {
			break
		}
	}

	if want := sampleRate.N(CueDuration); total != want {
		t.Errorf("Streamed %d samples, want %d", total, want)
	}
}

func TestPlayerSilentWithoutSpeaker(t *testing.T) {
	p := NewPlayer(false)
	// Must not panic or block before Init.
	p.Play(breakout.CuePaddle)

	p.SetMuted(true)
	if !p.Muted() {
		t.Error("Expected muted")
	}
	p.Play(breakout.CueWall)
}

func TestPlayerVolume(t *testing.T) {
	p := NewPlayer(false)
	if p.Volume() != DefaultVolume {
		t.Errorf("New player volume = %v, want %v", p.Volume(), DefaultVolume)
	}

	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{3, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		p.SetVolume(tt.in)
		if got := p.Volume(); got != tt.want {
			t.Errorf("SetVolume(%v) -> %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSquareWaveAmplitude(t *testing.T) {
	buf := make([][2]float64, 64)
	n, _ := squareWave(440, CueDuration, 0.7).Stream(buf)
	for _, smp := range buf[:n] {
		if math.Abs(smp[0]) != 0.7 || smp[0] != smp[1] {
			t.Fatalf("Unexpected sample %v", smp)
		}
	}
}

func TestInitConcurrentClose(t *testing.T) {
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ready()
		}()
	}
	wg.Wait()
	Close()
	if ready() {
		t.Error("Close should leave the speaker uninitialized")
	}
}

var _ breakout.AudioSink = (*Player)(nil)
