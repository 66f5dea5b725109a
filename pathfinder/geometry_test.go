package pathfinder

import (
	"math"
	"testing"
)

func TestBoxContains(t *testing.T) {
	t.Parallel()

	box := NewBox(0, 2, 0, 1)
	testCases := map[string]struct {
		point    Point
		expected bool
	}{
		"interior":     {Point{1, 0.5}, true},
		"left-edge":    {Point{0, 0.5}, true},
		"top-right":    {Point{2, 1}, true},
		"bottom-left":  {Point{0, 0}, true},
		"right-of-box": {Point{2.0001, 0.5}, false},
		"below-box":    {Point{1, -0.1}, false},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := box.Contains(tc.point); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.point, got, tc.expected)
			}
		})
	}
}

func TestBoxTouches(t *testing.T) {
	t.Parallel()

	base := NewBox(0, 1, 0, 1)
	testCases := map[string]struct {
		other    Box
		expected bool
	}{
		"shared-edge":   {NewBox(1, 2, 0, 1), true},
		"shared-corner": {NewBox(1, 2, 1, 2), true},
		"overlapping":   {NewBox(0.5, 1.5, 0.5, 1.5), true},
		"contained":     {NewBox(0.2, 0.4, 0.2, 0.4), true},
		"gap-on-x":      {NewBox(1.1, 2, 0, 1), false},
		"gap-on-y":      {NewBox(0, 1, 1.5, 2), false},
		"x-only":        {NewBox(0, 1, 5, 6), false},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := base.Touches(tc.other); got != tc.expected {
				t.Errorf("Touches(%v) = %v, expected %v", tc.other, got, tc.expected)
			}
			if got := tc.other.Touches(base); got != tc.expected {
				t.Errorf("reverse Touches(%v) = %v, expected %v", tc.other, got, tc.expected)
			}
		})
	}
}

func TestBoxClamp(t *testing.T) {
	t.Parallel()

	box := NewBox(1, 2, 0, 1)
	testCases := map[string]struct {
		point    Point
		expected Point
	}{
		"inside":     {Point{1.5, 0.5}, Point{1.5, 0.5}},
		"left":       {Point{0.2, 0.5}, Point{1, 0.5}},
		"above-left": {Point{0.2, 3}, Point{1, 1}},
		"below":      {Point{1.7, -4}, Point{1.7, 0}},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := box.Clamp(tc.point)
			if got != tc.expected {
				t.Errorf("Clamp(%v) = %v, expected %v", tc.point, got, tc.expected)
			}
			if !box.Contains(got) {
				t.Errorf("clamped point %v escaped %v", got, box)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	t.Parallel()

	got := Point{0, 0}.Distance(Point{3, 4})
	if math.Abs(got-5) > 1e-12 {
		t.Errorf("expected 5, got %v", got)
	}
	if d := (Point{1, 1}).Distance(Point{1, 1}); d != 0 {
		t.Errorf("expected 0, got %v", d)
	}
}
