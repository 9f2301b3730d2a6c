package flappy

import "strconv"

// Glyph is one digit of a rendered number and its left edge.
type Glyph struct {
	Digit int
	X     int
}

// DigitLayout places the digits of n so the whole number is horizontally
// centered in a field fieldW wide. widthOf reports the pixel width of a digit.
func DigitLayout(n int, widthOf func(digit int) int, fieldW int) []Glyph {
	if n < 0 {
		n = 0
	}
	digits := strconv.Itoa(n)

	total := 0
	for _, r := range digits {
		total += widthOf(int(r - '0'))
	}

	x := (fieldW - total) / 2
	glyphs := make([]Glyph, 0, len(digits))
	for _, r := range digits {
		d := int(r - '0')
		glyphs = append(glyphs, Glyph{Digit: d, X: x})
		x += widthOf(d)
	}
	return glyphs
}
