package geom

import "testing"

func square(cx, cy, half float64) Polygon {
	return NewPolygon([]Vector{
		{cx - half, cy - half},
		{cx + half, cy - half},
		{cx + half, cy + half},
		{cx - half, cy + half},
	})
}

func TestIsPointInside(t *testing.T) {
	s := square(0, 0, 1)
	if !s.IsPointInside(Vector{0, 0}) {
		t.Errorf("expected origin to be inside unit square")
	}
	if s.IsPointInside(Vector{2, 2}) {
		t.Errorf("expected (2,2) to be outside unit square")
	}
}

func TestCentroidArea(t *testing.T) {
	s := square(5, 5, 1)
	c, a := s.CentroidArea()
	if !c.Aeq(Vector{5, 5}) {
		t.Errorf("expected centroid (5,5), got %v", c)
	}
	if !Aeq(a, 4) {
		t.Errorf("expected area 4, got %v", a)
	}
}

func TestIntersectPolygonOverlapping(t *testing.T) {
	a := square(0, 0, 1)
	b := square(1.5, 0, 1)
	found, mtv, _ := a.IntersectPolygon(b)
	if !found {
		t.Fatalf("expected overlapping squares to intersect")
	}
	if mtv.Norm() <= 0 {
		t.Errorf("expected nonzero MTV, got %v", mtv)
	}
	// separating a by the mtv should remove the overlap.
	separated := a.Transform(Matrix22{1, 0, 0, 1}, mtv)
	if found2, _, _ := separated.IntersectPolygon(b); found2 {
		t.Errorf("expected squares to be separated after applying MTV")
	}
}

func TestIntersectPolygonSeparated(t *testing.T) {
	a := square(0, 0, 1)
	b := square(10, 0, 1)
	if found, _, _ := a.IntersectPolygon(b); found {
		t.Errorf("expected distant squares not to intersect")
	}
}

func TestIntersectCircle(t *testing.T) {
	s := square(0, 0, 1)
	found, mtv, _ := s.IntersectCircle(Vector{1.5, 0}, 1)
	if !found {
		t.Fatalf("expected circle overlapping square edge to intersect")
	}
	if mtv.Norm() <= 0 {
		t.Errorf("expected nonzero MTV for circle overlap")
	}
	if found2, _, _ := s.IntersectCircle(Vector{10, 0}, 1); found2 {
		t.Errorf("expected distant circle not to intersect")
	}
}

func TestGiftWrap(t *testing.T) {
	pts := []Vector{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 1}} // interior point
	hull := GiftWrap(pts)
	if len(hull.Vertices) != 4 {
		t.Errorf("expected interior point to be excluded, got %d vertices", len(hull.Vertices))
	}
}

func TestSegmentIntersect(t *testing.T) {
	s1 := Segment{A: Vector{0, 0}, B: Vector{2, 2}}
	s2 := Segment{A: Vector{0, 2}, B: Vector{2, 0}}
	p, hit := s1.IntersectInBounds(s2)
	if !hit {
		t.Fatalf("expected crossing segments to intersect")
	}
	if !p.Aeq(Vector{1, 1}) {
		t.Errorf("expected intersection at (1,1), got %v", p)
	}
}

func TestSegmentSignedDistance(t *testing.T) {
	// CCW bottom edge of a square walked left-to-right: left normal points up (+y), inside.
	s := Segment{A: Vector{-1, -1}, B: Vector{1, -1}}
	if d := s.SignedDistance(Vector{0, 0}); d <= 0 {
		t.Errorf("expected interior point to have positive signed distance, got %v", d)
	}
	if d := s.SignedDistance(Vector{0, -2}); d >= 0 {
		t.Errorf("expected exterior point to have negative signed distance, got %v", d)
	}
}
