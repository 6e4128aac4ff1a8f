package types

import "testing"

func TestPointLess(t *testing.T) {
	tests := []struct {
		a, b Point
		want bool
	}{
		{Point{1, 5}, Point{2, 0}, true},
		{Point{2, 0}, Point{1, 5}, false},
		{Point{3, 1}, Point{3, 2}, true},
		{Point{3, 2}, Point{3, 2}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%v.Less(%v): expected %v, got %v", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestManhattan(t *testing.T) {
	if d := (Point{1, 1}).Manhattan(Point{4, -3}); d != 7 {
		t.Errorf("Expected distance 7, got %d", d)
	}
}

func TestDirectionVectorsAndOpposites(t *testing.T) {
	for _, d := range Cardinals {
		v := d.Vector()
		o := d.Opposite().Vector()
		if v.X+o.X != 0 || v.Y+o.Y != 0 {
			t.Errorf("%v and its opposite do not cancel: %v %v", d, v, o)
		}
		if Between(Point{}, v) != d {
			t.Errorf("Between(origin, %v) expected %v, got %v", v, d, Between(Point{}, v))
		}
	}
	if None.Vector() != (Point{}) {
		t.Errorf("Expected zero vector for None, got %v", None.Vector())
	}
	if Between(Point{2, 2}, Point{2, 2}) != None {
		t.Error("Expected None for equal points")
	}
}

func TestPerpendicular(t *testing.T) {
	if got := Right.Perpendicular(); got != [2]Direction{Up, Down} {
		t.Errorf("Expected [UP DOWN], got %v", got)
	}
	if got := Up.Perpendicular(); got != [2]Direction{Left, Right} {
		t.Errorf("Expected [LEFT RIGHT], got %v", got)
	}
}
