package breakout

import (
	"github.com/vovakirdan/brickfall/internal/config"
)

// ItemType identifies a power-up.
type ItemType int

const (
	ItemMultiball ItemType = iota
	ItemWiden
	ItemShrink
	ItemSpeedUp
	ItemSpeedDown
	ItemPassThrough
)

// ItemTypes lists every power-up in drop order.
var ItemTypes = []ItemType{ItemMultiball, ItemWiden, ItemShrink, ItemSpeedUp, ItemSpeedDown, ItemPassThrough}

// Glyph returns the single letter drawn on the falling item.
func (t ItemType) Glyph() rune {
	switch t {
	case ItemMultiball:
		return 'M'
	case ItemWiden:
		return 'L'
	case ItemShrink:
		return 'S'
	case ItemSpeedUp:
		return 'U'
	case ItemSpeedDown:
		return 'D'
	case ItemPassThrough:
		return 'B'
	default:
		return '?'
	}
}

// String returns a human-readable item name.
func (t ItemType) String() string {
	switch t {
	case ItemMultiball:
		return "multiball"
	case ItemWiden:
		return "widen"
	case ItemShrink:
		return "shrink"
	case ItemSpeedUp:
		return "speed-up"
	case ItemSpeedDown:
		return "speed-down"
	case ItemPassThrough:
		return "pass-through"
	default:
		return "unknown"
	}
}

// Item is a falling power-up centered at (X, Y).
type Item struct {
	X, Y      float64
	Size      float64
	FallSpeed float64
	Type      ItemType
}

// Update moves the item down.
func (it *Item) Update(dt float64) {
	it.Y += it.FallSpeed * dt
}

// Touches reports whether the item center is over the paddle and its
// vertical extent overlaps the paddle.
func (it *Item) Touches(p *Paddle) bool {
	half := it.Size / 2
	withinX := it.X >= p.X && it.X <= p.X+p.W
	withinY := it.Y+half >= p.Y && it.Y-half <= p.Y+p.H
	return withinX && withinY
}

// PassTimer is the single pass-through countdown of a round.
type PassTimer struct {
	remaining float64
}

// Start (re)starts the countdown. Re-triggering refreshes, never stacks.
func (t *PassTimer) Start(duration float64) {
	t.remaining = max(duration, 0)
}

// Tick advances the countdown and reports whether it expired during this call.
func (t *PassTimer) Tick(dt float64) (expired bool) {
	if t.remaining <= 0 {
		return false
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.remaining = 0
		return true
	}
	return false
}

// Active reports whether pass-through is in effect.
func (t *PassTimer) Active() bool {
	return t.remaining > 0
}

// Remaining returns the seconds left, zero when inactive.
func (t *PassTimer) Remaining() float64 {
	return t.remaining
}

// Stop cancels the countdown.
func (t *PassTimer) Stop() {
	t.remaining = 0
}

// ItemEngine owns falling items and the pass-through timer.
type ItemEngine struct {
	cfg   config.ItemsConfig
	rng   RNG
	items []*Item
	Pass  PassTimer
}

// NewItemEngine creates an engine with the given item settings.
func NewItemEngine(cfg config.ItemsConfig, rng RNG) *ItemEngine {
	return &ItemEngine{cfg: cfg, rng: rng}
}

// MaybeDrop rolls for a drop from a destroyed brick. The item spawns at the
// brick center with a uniformly chosen type. Returns nil when nothing drops.
func (e *ItemEngine) MaybeDrop(br *Brick) *Item {
	if e.rng.Float64() >= e.cfg.DropChance {
		return nil
	}
	cx, cy := br.Box().Center()
	it := &Item{
		X:         cx,
		Y:         cy,
		Size:      e.cfg.Size,
		FallSpeed: e.cfg.FallSpeed,
		Type:      ItemTypes[intn(e.rng, len(ItemTypes))],
	}
	e.items = append(e.items, it)
	return it
}

// Update moves items, removes those caught by the paddle or fallen below
// viewportH + size, and returns the caught types in order.
func (e *ItemEngine) Update(dt float64, p *Paddle, viewportH float64) []ItemType {
	var caught []ItemType
	kept := e.items[:0]
	for _, it := range e.items {
		it.Update(dt)
		if it.Touches(p) {
			caught = append(caught, it.Type)
			continue
		}
		if it.Y < viewportH+it.Size {
			kept = append(kept, it)
		}
	}
	clear(e.items[len(kept):])
	e.items = kept
	return caught
}

// Items returns the falling items. The slice is owned by the engine.
func (e *ItemEngine) Items() []*Item {
	return e.items
}

// Reset drops all falling items and stops pass-through.
func (e *ItemEngine) Reset() {
	e.items = nil
	e.Pass.Stop()
}
