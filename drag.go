package touchable

// MovableSurface is a Surface whose origin can be repositioned.
type MovableSurface interface {
	Surface
	MoveTo(p Vec2)
}

// MoveTo sets the rectangle's origin.
func (r *Rect) MoveTo(p Vec2) {
	r.X, r.Y = p.X, p.Y
}

// MoveTo sets the bounds origin.
func (s *ShapedSurface) MoveTo(p Vec2) {
	s.Bounds.MoveTo(p)
}

// DragCallbacks receives drag events. Every slot is optional. Positions are
// the surface origin in document coordinates.
type DragCallbacks struct {
	DragDown func(pos Vec2)
	DragMove func(pos Vec2)
	DragUp   func(pos Vec2, wasTap bool)
}

// Draggable moves its own surface with the contact. When Parent is set the
// surface is kept fully inside it.
type Draggable struct {
	// Parent bounds the surface when non-nil.
	Parent *Rect

	t       *Touchable
	surface MovableSurface
	cb      DragCallbacks
}

// NewDraggable binds a Draggable to surface and enables tracking.
func NewDraggable(surface MovableSurface, src InputSource, cb DragCallbacks) *Draggable {
	d := &Draggable{surface: surface, cb: cb}
	d.t = Bind(surface, src, Callbacks{
		TouchDown: func(*PositionEvent) {
			if d.cb.DragDown != nil {
				d.cb.DragDown(d.Position())
			}
		},
		TouchMove: d.move,
		TouchUp: func(e *PositionEvent) {
			d.move(e)
			if d.cb.DragUp != nil {
				d.cb.DragUp(d.Position(), e.WasTap)
			}
		},
	})
	d.t.SetTouchable(true)
	return d
}

// Touchable returns the underlying Touchable.
func (d *Draggable) Touchable() *Touchable { return d.t }

// Position returns the surface origin.
func (d *Draggable) Position() Vec2 { return d.surface.Offset() }

// SetPosition moves the surface, clamped to Parent.
func (d *Draggable) SetPosition(p Vec2) {
	d.surface.MoveTo(d.clampToParent(p))
}

// Unbind detaches the Draggable from its surface.
func (d *Draggable) Unbind() { d.t.Unbind() }

// move applies and consumes the delta accumulated since the previous move.
func (d *Draggable) move(e *PositionEvent) {
	delta := e.DeltaTranslation
	e.ResetDeltaTranslation()
	if delta == (Vec2{}) {
		return
	}
	d.SetPosition(d.Position().Add(delta))
	if d.cb.DragMove != nil {
		d.cb.DragMove(d.Position())
	}
}

func (d *Draggable) clampToParent(p Vec2) Vec2 {
	if d.Parent == nil {
		return p
	}
	size := d.surface.Size()
	maxX := d.Parent.X + d.Parent.Width - size.X
	maxY := d.Parent.Y + d.Parent.Height - size.Y
	if maxX < d.Parent.X {
		maxX = d.Parent.X
	}
	if maxY < d.Parent.Y {
		maxY = d.Parent.Y
	}
	return Vec2{clamp(p.X, d.Parent.X, maxX), clamp(p.Y, d.Parent.Y, maxY)}
}
