package breakout

// BrickView is a drawable brick.
type BrickView struct {
	X, Y, W, H float64
	HP, MaxHP  int
	HPRatio    float64
	Color      string
}

// Frame is everything a renderer needs for one tick. It holds copies; the
// renderer may keep it after the session advances.
type Frame struct {
	Width, Height float64
	State         State
	Level         int
	Lives         int
	MaxLives      int
	Balls         []Ball
	Paddle        Paddle
	Bricks        []BrickView // Live bricks only
	Items         []Item
	PassRemaining float64 // Seconds of pass-through left, zero when inactive
	Multiplier    float64
}

// Frame returns the drawable state of the round.
func (s *Session) Frame() Frame {
	f := Frame{
		Width:         s.width,
		Height:        s.height,
		State:         s.state,
		Level:         s.level,
		Lives:         s.lives,
		MaxLives:      s.maxLives,
		Paddle:        *s.paddle,
		PassRemaining: s.items.Pass.Remaining(),
		Multiplier:    s.multiplier,
		Balls:         make([]Ball, 0, len(s.balls)),
		Bricks:        make([]BrickView, 0, len(s.bricks)),
		Items:         make([]Item, 0, len(s.items.Items())),
	}
	for _, b := range s.balls {
		f.Balls = append(f.Balls, *b)
	}
	for _, br := range s.bricks {
		if !br.Alive {
			continue
		}
		f.Bricks = append(f.Bricks, BrickView{
			X: br.X, Y: br.Y, W: br.W, H: br.H,
			HP: br.HP, MaxHP: br.MaxHP,
			HPRatio: br.HPRatio(),
			Color:   br.Color,
		})
	}
	for _, it := range s.items.Items() {
		f.Items = append(f.Items, *it)
	}
	return f
}
