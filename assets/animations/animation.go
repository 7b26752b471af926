package animations

// Clip advances through an ordered list of sheet frames. Each tick adds Speed
// to an accumulator; once it reaches 1 the clip moves one frame.
type Clip struct {
	Frames []int
	Speed  float64
	Loop   bool

	accumulator float64
	index       int
	done        bool
}

func NewClip(frames []int, speed float64, loop bool) *Clip {
	if len(frames) == 0 {
		frames = []int{0}
	}
	return &Clip{
		Frames: frames,
		Speed:  speed,
		Loop:   loop,
	}
}

// Advance moves the clip forward by one tick. It returns true on the tick a
// non-looping clip reaches its end; later ticks hold the last frame and
// return false.
func (c *Clip) Advance() bool {
	if c.Speed <= 0 {
		c.index = 0
		return false
	}
	if c.done {
		return false
	}

	c.accumulator += c.Speed
	if c.accumulator < 1 {
		return false
	}
	c.accumulator = 0
	c.index++

	if c.index < len(c.Frames) {
		return false
	}
	if c.Loop {
		c.index = 0
		return false
	}
	c.index = len(c.Frames) - 1
	c.done = true
	return true
}

// Index is the position inside Frames.
func (c *Clip) Index() int {
	return c.index
}

// Frame is the sheet frame currently shown.
func (c *Clip) Frame() int {
	return c.Frames[c.index]
}

// Done reports whether a non-looping clip has finished.
func (c *Clip) Done() bool {
	return c.done
}

func (c *Clip) Restart() {
	c.index = 0
	c.accumulator = 0
	c.done = false
}
