package geom

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(-2, 6).Midpoint(Pt(4, -2)), Pt(1, 2))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointTranslateRoundTrip(t *testing.T) {
	for _, p := range []Point{Pt(0, 0), Pt(3.5, -2.25), Pt(-1e6, 1e-6)} {
		for _, v := range []Vec2{Vec(0, 0), Vec(7.125, -1.5), Vec(0.1, 0.2)} {
			got := p.Translate(v).Translate(v.Negate())
			diff(t, p, got, approx)
		}
	}
}

func TestPointTranslateAlong(t *testing.T) {
	ref := Line{Pt(1, 1), Pt(4, 5)}
	diff(t, Pt(6, 8), Pt(0, 0).TranslateAlong(ref, 10), approx)
	diff(t, Pt(-3, -4), Pt(0, 0).TranslateAlong(ref, -5), approx)

	degenerate := Line{Pt(2, 2), Pt(2, 2)}
	if got := Pt(7, 9).TranslateAlong(degenerate, 10); got != Pt(7, 9) {
		t.Errorf("got %s, want the point unchanged", got)
	}
}

func TestPointRotate(t *testing.T) {
	const epsilon = 1e-9
	center := Pt(-3, 7)
	for _, p := range []Point{Pt(0, 0), Pt(12.5, -4), Pt(-3, 7)} {
		assertNear(t, p.Rotate(center, 0), p, epsilon)
		assertNear(t, p.Rotate(center, 360), p, epsilon)
		assertNear(t, p.Rotate(center, -720), p, epsilon)
		assertNear(t, p.Rotate(center, 90).Rotate(center, -90), p, epsilon)
	}

	assertNear(t, Pt(2, 1).Rotate(Pt(1, 1), 90), Pt(1, 2), epsilon)
	assertNear(t, Pt(2, 1).Rotate(Pt(1, 1), 180), Pt(0, 1), epsilon)
	assertNear(t, Pt(1, 0).Rotate(Pt(0, 0), 45), Pt(math.Sqrt2/2, math.Sqrt2/2), epsilon)
}

func TestPerpendicularFoot(t *testing.T) {
	xAxis := Line{Pt(0, 0), Pt(10, 0)}
	diff(t, Pt(3, 0), Pt(3, 4).PerpendicularFoot(xAxis))
	// The line is infinite, so the foot may lie beyond the segment.
	diff(t, Pt(-5, 0), Pt(-5, 2).PerpendicularFoot(xAxis))

	diag := Line{Pt(0, 0), Pt(1, 1)}
	diff(t, Pt(2, 2), Pt(4, 0).PerpendicularFoot(diag), approx)
}

func TestDegenerateProjectionFallbacks(t *testing.T) {
	// The foot falls back to the query point, the projection to the line's
	// start point. Both fallbacks are deliberate.
	degenerate := Line{Pt(1, 1), Pt(1, 1)}
	pt := Pt(5, 5)
	diff(t, pt, pt.PerpendicularFoot(degenerate))
	diff(t, Pt(1, 1), pt.Project(degenerate))
	diff(t, Line{pt, pt}, pt.PerpendicularTo(degenerate))
	if d := pt.DistanceToLine(degenerate); d != 0 {
		t.Errorf("got distance %v to a degenerate line, want 0", d)
	}
}

func TestProject(t *testing.T) {
	l := Line{Pt(0, 2), Pt(10, 2)}
	diff(t, Pt(7, 2), Pt(7, -3).Project(l), approx)
	diff(t, Pt(3, 2), Pt(7, -3).PerpendicularFoot(Line{Pt(3, 0), Pt(3, 10)}).Project(l), approx)
}

func TestProjectedDistance(t *testing.T) {
	xAxis := Line{Pt(0, 0), Pt(1, 0)}
	if d := Pt(1, 5).ProjectedDistance(Pt(4, -2), xAxis); math.Abs(d-3) > 1e-12 {
		t.Errorf("got %v, want 3", d)
	}
	diag := Line{Pt(0, 0), Pt(1, 1)}
	if d := Pt(0, 0).ProjectedDistance(Pt(2, 0), diag); math.Abs(d-math.Sqrt2) > 1e-12 {
		t.Errorf("got %v, want √2", d)
	}
}

func TestDistanceToLine(t *testing.T) {
	l := Line{Pt(0, 0), Pt(1, 0)}
	for _, tt := range []struct {
		pt   Point
		want float64
	}{
		{Pt(0.5, 4), 4},
		{Pt(30, 4), 4},
		{Pt(-30, -2), 2},
		{Pt(7, 0), 0},
	} {
		if got := tt.pt.DistanceToLine(l); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("distance from %s: got %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestPerpendicularTo(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	diff(t, Line{Pt(3, 4), Pt(3, 0)}, Pt(3, 4).PerpendicularTo(l))
	if !Pt(3, 4).PerpendicularTo(l).IsPerpendicular(l) {
		t.Error("perpendicular line is not perpendicular")
	}
}

func TestIsOnSegment(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	for _, tt := range []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 0), true},
		{Pt(0, 0), true},
		{Pt(10, 0), true},
		{Pt(11, 0), false},
		{Pt(-1, 0), false},
		{Pt(5, 1e-3), false},
	} {
		if got := tt.pt.IsOnSegment(l, DefaultTolerance); got != tt.want {
			t.Errorf("IsOnSegment(%s): got %t, want %t", tt.pt, got, tt.want)
		}
	}
	if !Pt(5, 1e-3).IsOnSegment(l, 1e-6) {
		t.Error("expected a looser tolerance to accept a point near the segment")
	}
}

func TestPointString(t *testing.T) {
	if got, want := Pt(1.5, -2).String(), "(1.5, -2)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPointIsInf(t *testing.T) {
	if Pt(0, 1).IsInf() {
		t.Error("point is infinite but shouldn't be")
	}
	if !Pt(math.Inf(-1), 1).IsInf() {
		t.Error("point is finite but shouldn't be")
	}
	if !Pt(0, math.NaN()).IsNaN() {
		t.Error("point is not NaN but should be")
	}
}
