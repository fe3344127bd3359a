package touchable

// DragKnob is a draggable handle with a label that a tap reveals or hides.
// Dragging hides a visible label.
type DragKnob struct {
	// OnMove fires whenever the knob moves.
	OnMove func(pos Vec2)
	// OnLabel fires when the label visibility changes.
	OnLabel func(visible bool)

	drag  *Draggable
	label bool
}

// NewDragKnob binds a DragKnob to surface, bounded by parent when non-nil.
func NewDragKnob(surface MovableSurface, parent *Rect, src InputSource) *DragKnob {
	k := &DragKnob{}
	k.drag = NewDraggable(surface, src, DragCallbacks{
		DragMove: func(pos Vec2) {
			k.setLabel(false)
			if k.OnMove != nil {
				k.OnMove(pos)
			}
		},
		DragUp: func(_ Vec2, wasTap bool) {
			if wasTap {
				k.setLabel(!k.label)
			}
		},
	})
	k.drag.Parent = parent
	return k
}

// Draggable returns the underlying Draggable.
func (k *DragKnob) Draggable() *Draggable { return k.drag }

// LabelVisible reports whether the label is shown.
func (k *DragKnob) LabelVisible() bool { return k.label }

// Unbind detaches the knob from its surface.
func (k *DragKnob) Unbind() { k.drag.Unbind() }

func (k *DragKnob) setLabel(visible bool) {
	if k.label == visible {
		return
	}
	k.label = visible
	if k.OnLabel != nil {
		k.OnLabel(visible)
	}
}
