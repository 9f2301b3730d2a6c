package flappy

// Flash is the white wash shown for a few ticks after a death.
type Flash struct {
	armed   bool
	counter int
	frames  int
}

// NewFlash creates a disarmed flash lasting the given number of ticks.
func NewFlash(frames int) Flash {
	return Flash{frames: frames}
}

// Arm (re)starts the flash.
func (f *Flash) Arm() {
	if f.frames <= 0 {
		return
	}
	f.armed = true
	f.counter = 0
}

// Visible reports whether the wash should be drawn this tick.
func (f Flash) Visible() bool {
	return f.armed
}

// Advance counts one shown tick and disarms after the last one.
func (f *Flash) Advance() {
	if !f.armed {
		return
	}
	f.counter++
	if f.counter >= f.frames {
		f.armed = false
	}
}

// Ground is the endlessly scrolling base strip.
type Ground struct {
	offset float64
	width  float64
	speed  float64
}

// NewGround creates a ground strip wrapping every width units.
func NewGround(width, speed float64) Ground {
	return Ground{width: width, speed: speed}
}

// Advance scrolls the strip by one tick and wraps it.
func (g *Ground) Advance() {
	g.offset -= g.speed
	if g.offset <= -g.width {
		g.offset += g.width
	}
}

// Offset returns the x position of the first tile, in (-width, 0].
func (g Ground) Offset() float64 {
	return g.offset
}
