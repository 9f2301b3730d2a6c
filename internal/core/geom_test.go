package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal edges collide",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching vertical edges collide",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "just apart",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10.01, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectAnchors(t *testing.T) {
	c := RectFromCenter(50, 256, 34, 24)
	if c.X != 33 || c.Y != 244 {
		t.Errorf("RectFromCenter origin = (%v, %v), expected (33, 244)", c.X, c.Y)
	}
	if c.CenterX() != 50 || c.CenterY() != 256 {
		t.Errorf("RectFromCenter center = (%v, %v), expected (50, 256)", c.CenterX(), c.CenterY())
	}

	top := RectFromMidTop(338, 300, 52, 320)
	if top.Y != 300 || top.CenterX() != 338 {
		t.Errorf("RectFromMidTop = %+v", top)
	}

	bottom := RectFromMidBottom(338, 150, 52, 320)
	if bottom.Bottom() != 150 || bottom.CenterX() != 338 {
		t.Errorf("RectFromMidBottom = %+v", bottom)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	moved := r.Translate(-2, 3)
	if moved.X != 3 || moved.Y != 13 || moved.W != 20 || moved.H != 15 {
		t.Errorf("Translate() = %+v", moved)
	}
	if r.X != 5 {
		t.Error("Translate must not modify the receiver")
	}
}
