package touchable

import "time"

const (
	// MoveThresholdSquared is the squared cumulative translation a contact
	// must exceed before it counts as moved (a radius of about 14.1 units).
	MoveThresholdSquared = 200.0

	// TapDuration is the exclusive upper bound on a contact's lifetime for it
	// to be classified as a tap.
	TapDuration = 300 * time.Millisecond
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and translations
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Rect is an axis-aligned rectangle in document coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
//
// A *Rect satisfies [Surface]; mutate it in place to move or resize the
// surface while a gesture is in progress.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Offset returns the rectangle's origin.
func (r *Rect) Offset() Vec2 { return Vec2{r.X, r.Y} }

// Size returns the rectangle's width and height.
func (r *Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Family identifies the device family a raw event came from.
type Family uint8

const (
	FamilyMouse Family = iota // single-button pointing device with hover
	FamilyTouch               // touch screen, one or more fingers, no hover
)

func (f Family) String() string {
	switch f {
	case FamilyMouse:
		return "mouse"
	case FamilyTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// Phase identifies the lifecycle step of a raw event.
type Phase uint8

const (
	PhaseBegin  Phase = iota // mouse button down or touch start
	PhaseMove                // pointer or finger moved
	PhaseEnd                 // mouse button up or touch end
	PhaseCancel              // touch cancelled by the platform
	PhaseLeave               // pointer left the surface
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseCancel:
		return "cancel"
	case PhaseLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Scope selects where a listener is attached: on the bound surface itself or
// on the document that owns it. Document listeners receive events anywhere,
// including ones that drift outside the surface.
type Scope uint8

const (
	ScopeSurface  Scope = iota // events targeting the surface
	ScopeDocument              // every event in the owning document
)

func (s Scope) String() string {
	switch s {
	case ScopeSurface:
		return "surface"
	case ScopeDocument:
		return "document"
	default:
		return "unknown"
	}
}

// DeviceLock records which device family a surface has committed to.
type DeviceLock uint8

const (
	DeviceLockUnset DeviceLock = iota // no input observed yet
	DeviceLockMouse                   // mouse seen first; touch may still take over
	DeviceLockTouch                   // touch seen; mouse-origin down and hover are off for good
)

func (d DeviceLock) String() string {
	switch d {
	case DeviceLockUnset:
		return "unset"
	case DeviceLockMouse:
		return "mouse"
	case DeviceLockTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// State is the coarse state of a Touchable.
type State uint8

const (
	StateIdle     State = iota // no contact, no hover
	StateHovering              // mouse over the surface with no active contact
	StateTracking              // one active contact
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovering:
		return "hovering"
	case StateTracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// EventType identifies which callback produced a GestureEvent.
type EventType uint8

const (
	EventTouchDown  EventType = iota // a new contact began
	EventTouchMove                   // the active contact moved
	EventTouchUp                     // the active contact ended or was cancelled
	EventHoverMove                   // the pointer moved over the surface with no contact
	EventHoverLeave                  // the pointer left the surface while hovering
)

func (e EventType) String() string {
	switch e {
	case EventTouchDown:
		return "touchDown"
	case EventTouchMove:
		return "touchMove"
	case EventTouchUp:
		return "touchUp"
	case EventHoverMove:
		return "hoverMove"
	case EventHoverLeave:
		return "hoverLeave"
	default:
		return "unknown"
	}
}
