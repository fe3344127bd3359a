package touchable

// Surface is the interactive region a Touchable is bound to. Both methods
// are queried on demand, never cached, so a surface that moves or resizes
// mid-gesture is reflected in the next update.
type Surface interface {
	// Offset returns the surface origin in document coordinates.
	Offset() Vec2
	// Size returns the surface's outer width and height.
	Size() Vec2
}

// HitTester is implemented by surfaces whose interactive area is not their
// full bounding rectangle. Sources use it to decide surface-scope delivery.
type HitTester interface {
	// HitTest reports whether document point p is over the surface.
	HitTest(p Vec2) bool
}

// HitShape defines a hit area in surface-local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]

		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// ShapedSurface is a rectangular surface with an optional narrower hit
// shape, e.g. a round knob inside its square bounds. Bounds remain the
// reference for LocalPoint and IsWithinBounds; Shape only affects which
// events count as over the surface.
type ShapedSurface struct {
	Bounds Rect
	Shape  HitShape
}

// Offset returns the bounds origin.
func (s *ShapedSurface) Offset() Vec2 { return s.Bounds.Offset() }

// Size returns the bounds size.
func (s *ShapedSurface) Size() Vec2 { return s.Bounds.Size() }

// HitTest reports whether p hits Shape, or the bounds when Shape is nil.
func (s *ShapedSurface) HitTest(p Vec2) bool {
	if s.Shape == nil {
		return s.Bounds.Contains(p.X, p.Y)
	}
	return s.Shape.Contains(p.X-s.Bounds.X, p.Y-s.Bounds.Y)
}

// surfaceContains hit-tests document point p against any Surface.
func surfaceContains(s Surface, p Vec2) bool {
	if ht, ok := s.(HitTester); ok {
		return ht.HitTest(p)
	}
	off := s.Offset()
	size := s.Size()
	return Rect{off.X, off.Y, size.X, size.Y}.Contains(p.X, p.Y)
}
