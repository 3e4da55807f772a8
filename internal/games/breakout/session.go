package breakout

import (
	"math"

	"github.com/vovakirdan/brickfall/internal/config"
)

// State is the round state.
type State int

const (
	StateReady State = iota
	StateRunning
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// spawnLift is how far above the viewport bottom a new ball appears.
const spawnLift = 42

// Session is one round of play: it owns the paddle, balls, bricks and items
// and advances them one tick at a time. A Session is not safe for
// concurrent use.
type Session struct {
	cfg    config.Config
	width  float64
	height float64
	rng    RNG
	ramp   SpeedRamp

	audio      AudioSink
	status     StatusSink
	lastStatus Status
	statusSent bool

	state      State
	level      int
	lives      int
	maxLives   int
	elapsed    float64
	boost      float64
	prevTier   int
	multiplier float64

	paddle *Paddle
	balls  []*Ball
	bricks []*Brick
	items  *ItemEngine
}

// Option configures a Session.
type Option func(*Session)

// WithAudio sets the sink that receives cues after each tick.
func WithAudio(a AudioSink) Option {
	return func(s *Session) { s.audio = a }
}

// WithStatus sets the sink that receives status changes.
func WithStatus(st StatusSink) Option {
	return func(s *Session) { s.status = st }
}

// NewSession creates a round in the Ready state for a width x height viewport.
func NewSession(cfg config.Config, width, height float64, rng RNG, opts ...Option) *Session {
	if rng == nil {
		rng = NewSimpleRNG(1)
	}
	s := &Session{
		width:  math.Max(width, 1),
		height: math.Max(height, 1),
		rng:    rng,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Apply(cfg)
	return s
}

// Apply replaces the configuration and reinitializes the round.
func (s *Session) Apply(cfg config.Config) {
	s.cfg = cfg.Sanitize()
	s.ramp = NewSpeedRamp(s.cfg.SpeedRamp)
	s.Restart()
}

// Restart runs full round initialization: lives, level, boost and timers are
// reset, the level is regenerated and a single ball is spawned.
func (s *Session) Restart() {
	pc := s.cfg.Paddle
	s.maxLives = s.cfg.Gameplay.Lives
	s.lives = s.maxLives
	s.level = s.cfg.Gameplay.StartLevel
	s.paddle = NewPaddle(s.width, s.height, pc.Width, pc.Height, pc.Speed, pc.BottomOffset, pc.MinWidth, pc.MaxWidth)
	s.items = NewItemEngine(s.cfg.Items, s.rng)
	s.generateLevel()
	s.resetBallAndTimers()
	s.state = StateReady
	s.pushStatus()
}

// Step advances the round by dt seconds and returns the cues it produced.
// dt is clamped to MaxDT. In Ready a start press begins play on the same
// tick; in GameOver it restarts the round.
func (s *Session) Step(in Input, dt float64) []Cue {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	dt = math.Min(dt, s.cfg.Gameplay.MaxDT)

	switch s.state {
	case StateReady:
		if in.StartPressed {
			s.state = StateRunning
		}
	case StateGameOver:
		if in.StartPressed {
			s.Restart()
		}
		return nil
	}

	var cues []Cue
	if s.state == StateRunning && dt > 0 {
		cues = s.update(in, dt)
	}
	s.dispatch(cues)
	return cues
}

func (s *Session) update(in Input, dt float64) []Cue {
	var cues []Cue

	s.paddle.Update(dt, in)
	s.elapsed += dt

	s.items.Pass.Tick(dt)

	cleared := s.Cleared()
	if tier := s.ramp.Tier(cleared, s.elapsed); tier > s.prevTier {
		cues = append(cues, CueSpeedUp)
		s.prevTier = tier
	}
	s.multiplier = s.ramp.Multiplier(cleared, s.elapsed, s.boost)
	speed := s.cfg.Ball.BaseSpeed * s.multiplier

	passing := s.items.Pass.Active()
	for _, b := range s.balls {
		b.PassThrough = passing
		Renormalize(b, speed)
		b.Move(dt)
		for range ReflectWalls(b, s.width) {
			cues = append(cues, CueWall)
		}
		if BouncePaddle(b, s.paddle, s.cfg.Bounce) {
			cues = append(cues, CuePaddle)
		}
	}

	for _, b := range s.balls {
		for _, br := range s.bricks {
			hit, destroyed := ResolveBrick(b, br)
			switch {
			case destroyed:
				cues = append(cues, CueBreak)
				s.items.MaybeDrop(br)
			case hit:
				cues = append(cues, CueBrick)
			}
		}
	}

	for _, t := range s.items.Update(dt, s.paddle, s.height) {
		cues = append(cues, s.applyItem(t)...)
	}

	kept := s.balls[:0]
	for _, b := range s.balls {
		if b.Y+b.R <= s.height {
			kept = append(kept, b)
		}
	}
	clear(s.balls[len(kept):])
	s.balls = kept

	if len(s.balls) == 0 {
		s.lives--
		if s.lives <= 0 {
			s.lives = 0
			s.state = StateGameOver
			return cues
		}
		s.resetBallAndTimers()
		s.state = StateReady
	}

	if len(s.bricks) > 0 && s.AliveBricks() == 0 {
		s.level = min(s.level+1, s.cfg.Gameplay.MaxLevel)
		s.generateLevel()
		s.resetBallAndTimers()
		s.state = StateReady
	}

	return cues
}

func (s *Session) applyItem(t ItemType) []Cue {
	ic := s.cfg.Items
	cues := []Cue{CueItem}
	switch t {
	case ItemMultiball:
		if len(s.balls) > 0 {
			base := s.balls[0]
			s.balls = append(s.balls, base.Clone(-ic.MultiballSpread), base.Clone(ic.MultiballSpread))
		}
	case ItemWiden:
		s.paddle.Resize(ic.WidthDelta)
	case ItemShrink:
		s.paddle.Resize(-ic.WidthDelta)
	case ItemSpeedUp:
		s.boost = math.Min(s.boost+ic.BoostDelta, s.cfg.SpeedRamp.MaxMultiplier)
		cues = append(cues, CueSpeedUp)
	case ItemSpeedDown:
		s.boost = math.Max(s.boost-ic.BoostDelta, s.cfg.SpeedRamp.BoostFloor)
	case ItemPassThrough:
		s.items.Pass.Start(ic.PassThroughDuration)
		active := s.items.Pass.Active()
		for _, b := range s.balls {
			b.PassThrough = active
		}
	}
	return cues
}

func (s *Session) generateLevel() {
	s.bricks = Generate(s.level, s.width, s.height, s.cfg.Brick, s.rng)
}

// resetBallAndTimers recenters the paddle (keeping its width), clears boost,
// elapsed time, pass-through and items, and spawns one ball.
func (s *Session) resetBallAndTimers() {
	s.paddle.Center()
	s.boost = 1
	s.elapsed = 0
	s.items.Reset()
	s.prevTier = s.ramp.Tier(s.Cleared(), 0)
	s.multiplier = s.ramp.Multiplier(s.Cleared(), 0, s.boost)
	s.spawnBall()
}

// spawnBall places a single ball above the paddle heading up at a random
// angle in [-60, -30] degrees.
func (s *Session) spawnBall() {
	angle := -math.Pi/3 + s.rng.Float64()*math.Pi/6
	b := NewBall(s.width/2, s.height-spawnLift, s.cfg.Ball.Radius, angle, s.cfg.Ball.BaseSpeed)
	s.balls = []*Ball{b}
}

func (s *Session) dispatch(cues []Cue) {
	if s.audio != nil {
		for _, c := range cues {
			s.audio.Play(c)
		}
	}
	s.pushStatus()
}

func (s *Session) pushStatus() {
	if s.status == nil {
		return
	}
	st := s.Status()
	if s.statusSent && st == s.lastStatus {
		return
	}
	s.lastStatus = st
	s.statusSent = true
	s.status.StatusChanged(st)
}

// Cleared returns the fraction of the level's bricks destroyed, in [0, 1].
func (s *Session) Cleared() float64 {
	return 1 - float64(s.AliveBricks())/float64(max(1, len(s.bricks)))
}

// AliveBricks returns the number of bricks still standing.
func (s *Session) AliveBricks() int {
	n := 0
	for _, br := range s.bricks {
		if br.Alive {
			n++
		}
	}
	return n
}

// Status returns the level, lives and live ball count.
func (s *Session) Status() Status {
	return Status{Level: s.level, Lives: s.lives, Balls: len(s.balls)}
}

// State returns the round state.
func (s *Session) State() State { return s.state }

// Level returns the current level number.
func (s *Session) Level() int { return s.level }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Config returns the sanitized configuration in use.
func (s *Session) Config() config.Config { return s.cfg }

// Multiplier returns the speed multiplier applied on the last running tick.
func (s *Session) Multiplier() float64 { return s.multiplier }

// Size returns the viewport dimensions.
func (s *Session) Size() (float64, float64) { return s.width, s.height }
