package core

import (
	"math"
	"testing"
)

func TestVec2Dist(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 3, Y: 4}

	if d := a.Dist(b); math.Abs(d-5.0) > 1e-9 {
		t.Errorf("Dist = %f, expected 5.0", d)
	}
	if d := a.DistSq(b); math.Abs(d-25.0) > 1e-9 {
		t.Errorf("DistSq = %f, expected 25.0", d)
	}
	if d := a.Dist(a); d != 0 {
		t.Errorf("Dist to self = %f, expected 0", d)
	}
}

func TestVec2Cell(t *testing.T) {
	cases := []struct {
		v        Vec2
		wantX    int
		wantY    int
	}{
		{Vec2{X: 0, Y: 0}, 0, 0},
		{Vec2{X: 2.4, Y: 2.6}, 2, 3},
		{Vec2{X: -0.4, Y: -0.6}, 0, -1},
	}

	for _, c := range cases {
		gx, gy := c.v.Cell()
		if gx != c.wantX || gy != c.wantY {
			t.Errorf("Cell(%v) = (%d, %d), expected (%d, %d)", c.v, gx, gy, c.wantX, c.wantY)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should not change in-range value")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp should raise below-min value to min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should lower above-max value to max")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min is wrong")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max is wrong")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs is wrong")
	}
}
