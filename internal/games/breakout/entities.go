// Package breakout implements the brick breaker simulation: entities, level
// generation, speed ramp, collision engine, power-up items and the session
// state machine. It has no terminal or audio dependencies; hosts drive it
// through Session.Step and read back a Frame.
package breakout

import (
	"math"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Ball is a moving circle. Velocity is in pixels per second.
type Ball struct {
	X, Y        float64 // Center
	R           float64
	VX, VY      float64
	PassThrough bool // Damages bricks without bouncing off them
}

// NewBall creates a ball at (x, y) heading along angle (radians) at speed.
func NewBall(x, y, r, angle, speed float64) *Ball {
	return &Ball{
		X:  x,
		Y:  y,
		R:  r,
		VX: math.Cos(angle) * speed,
		VY: math.Sin(angle) * speed,
	}
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Heading returns the direction of travel in radians.
func (b *Ball) Heading() float64 {
	return math.Atan2(b.VY, b.VX)
}

// Move advances the ball by its velocity over dt seconds.
func (b *Ball) Move(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Clone returns a copy rotated by angle radians, keeping speed and pass-through.
func (b *Ball) Clone(angle float64) *Ball {
	cs, sn := math.Cos(angle), math.Sin(angle)
	return &Ball{
		X:           b.X,
		Y:           b.Y,
		R:           b.R,
		VX:          b.VX*cs - b.VY*sn,
		VY:          b.VX*sn + b.VY*cs,
		PassThrough: b.PassThrough,
	}
}

// Paddle is the player's bat. Y is fixed near the viewport bottom.
type Paddle struct {
	X, Y     float64 // Top-left corner
	W, H     float64
	Speed    float64 // Keyboard movement speed (pixels/second)
	VX       float64 // Horizontal velocity over the last tick
	MinW     float64
	MaxW     float64
	viewport float64
}

// NewPaddle creates a paddle centered horizontally in a viewport.
func NewPaddle(viewportW, viewportH, w, h, speed, bottomOffset, minW, maxW float64) *Paddle {
	p := &Paddle{
		Y:        viewportH - bottomOffset,
		W:        w,
		H:        h,
		Speed:    speed,
		MinW:     minW,
		MaxW:     maxW,
		viewport: viewportW,
	}
	p.ClampWidth()
	p.Center()
	return p
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.W/2
}

// Box returns the paddle rectangle.
func (p *Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Center moves the paddle to the middle of the viewport and stops it.
func (p *Paddle) Center() {
	p.X = (p.viewport - p.W) / 2
	p.VX = 0
	p.clampX()
}

// Resize changes the width by delta, keeping it within [MinW, MaxW].
func (p *Paddle) Resize(delta float64) {
	p.W += delta
	p.ClampWidth()
	p.clampX()
}

// ClampWidth forces the width into [MinW, MaxW]. Calling it twice is a no-op.
func (p *Paddle) ClampWidth() {
	p.W = core.ClampF(p.W, p.MinW, p.MaxW)
}

// Update moves the paddle from keyboard and pointer input and records the
// resulting velocity.
func (p *Paddle) Update(dt float64, in Input) {
	oldX := p.X
	if in.MoveLeft {
		p.X -= p.Speed * dt
	}
	if in.MoveRight {
		p.X += p.Speed * dt
	}
	p.X += in.PointerVX * dt
	p.clampX()
	p.VX = (p.X - oldX) / math.Max(dt, minDT)
}

func (p *Paddle) clampX() {
	p.X = core.ClampF(p.X, 0, math.Max(0, p.viewport-p.W))
}

// Brick is a destructible rectangle. Alive is true exactly while HP > 0.
type Brick struct {
	X, Y, W, H float64
	HP         int
	MaxHP      int
	Alive      bool
	ColorIndex int    // Index into Palette
	Color      string // Display color, cosmetic only
}

// NewBrick creates a live brick with the given strength.
func NewBrick(x, y, w, h float64, hp int) *Brick {
	hp = max(hp, 1)
	return &Brick{X: x, Y: y, W: w, H: h, HP: hp, MaxHP: hp, Alive: true}
}

// Box returns the brick rectangle.
func (b *Brick) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Hit applies one point of damage. Dead bricks are never revived.
// Returns true if this hit destroyed the brick.
func (b *Brick) Hit() bool {
	if !b.Alive {
		return false
	}
	b.HP--
	if b.HP <= 0 {
		b.HP = 0
		b.Alive = false
		return true
	}
	return false
}

// HPRatio returns remaining strength in [0, 1].
func (b *Brick) HPRatio() float64 {
	if b.MaxHP <= 0 {
		return 0
	}
	return float64(b.HP) / float64(b.MaxHP)
}

// Input is the per-tick input snapshot.
type Input struct {
	MoveLeft     bool
	MoveRight    bool
	PointerVX    float64 // Pointer drag velocity (pixels/second)
	StartPressed bool    // Edge-triggered: true only on the tick it was pressed
}
