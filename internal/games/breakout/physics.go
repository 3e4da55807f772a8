package breakout

import (
	"math"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

// minDT keeps velocity derivations finite on zero-length ticks.
const minDT = 1e-6

// Renormalize rescales the ball velocity to the given speed, keeping heading.
// A zero-length velocity falls back to heading (1, 0).
func Renormalize(b *Ball, speed float64) {
	mag := b.Speed()
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		b.VX, b.VY = speed, 0
		return
	}
	k := speed / mag
	b.VX *= k
	b.VY *= k
}

// ReflectWalls keeps the ball inside the left, right and top walls.
// There is no floor. Returns the number of reflections applied.
func ReflectWalls(b *Ball, width float64) int {
	events := 0
	if b.X < b.R {
		b.X = b.R
		b.VX = -b.VX
		events++
	} else if b.X > width-b.R {
		b.X = width - b.R
		b.VX = -b.VX
		events++
	}
	if b.Y < b.R {
		b.Y = b.R
		b.VY = -b.VY
		events++
	}
	return events
}

// BouncePaddle reflects a descending ball off the paddle top.
// Returns true if the ball bounced.
func BouncePaddle(b *Ball, p *Paddle, bc config.BounceConfig) bool {
	if b.VY <= 0 {
		return false
	}
	if b.Y+b.R < p.Y || b.Y-b.R > p.Y+p.H {
		return false
	}
	if b.X < p.X || b.X > p.X+p.W {
		return false
	}

	speed := b.Speed()
	rel := 0.0
	if p.W > 0 {
		rel = core.ClampF((b.X-p.CenterX())/(p.W/2), -1, 1)
	}
	b.Y = p.Y - b.R

	if bc.Policy == config.BounceNudge {
		b.VY = -math.Abs(b.VY)
		b.VX += rel * bc.Nudge
		Renormalize(b, speed)
		return true
	}

	norm := math.Max(bc.VelocityNormalizer, minDT)
	delta := rel*core.Deg2Rad(bc.MaxDeflectDeg) +
		core.ClampF(p.VX/norm, -1, 1)*core.Deg2Rad(bc.PaddleInfluenceDeg)

	minDelta := core.Deg2Rad(bc.MinDeflectDeg)
	if math.Abs(delta) < minDelta {
		delta = core.SignOrPositive(delta) * minDelta
	}

	heading := -math.Pi/2 + delta
	b.VX = math.Cos(heading) * speed
	b.VY = math.Sin(heading) * speed
	return true
}

// CircleRectHit reports whether the ball overlaps the box, using the closest
// point of the box to the ball center.
func CircleRectHit(b *Ball, box core.Box) bool {
	cx, cy := box.ClosestPoint(b.X, b.Y)
	dx, dy := b.X-cx, b.Y-cy
	return dx*dx+dy*dy <= b.R*b.R
}

// ResolveBrick handles a ball against one brick. On contact the brick takes
// one point of damage; unless the ball passes through, the axis with the
// smaller penetration is reflected (ties reflect vx).
func ResolveBrick(b *Ball, br *Brick) (hit, destroyed bool) {
	if !br.Alive || !CircleRectHit(b, br.Box()) {
		return false, false
	}

	if !b.PassThrough {
		penX := math.Min(b.X+b.R-br.X, br.X+br.W-(b.X-b.R))
		penY := math.Min(b.Y+b.R-br.Y, br.Y+br.H-(b.Y-b.R))
		if penX <= penY {
			b.VX = -b.VX
		} else {
			b.VY = -b.VY
		}
	}

	return true, br.Hit()
}
