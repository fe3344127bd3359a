package touchable

import (
	"time"

	"go.uber.org/zap"
)

// Callbacks is the set of handlers a consumer passes to Bind. Every slot is
// optional; nil slots are skipped.
//
// The *PositionEvent passed to a callback is owned by the Touchable. It stays
// valid after the callback returns, but the Touchable keeps mutating it for
// as long as the contact is live.
type Callbacks struct {
	TouchDown  func(*PositionEvent)
	TouchMove  func(*PositionEvent)
	TouchUp    func(*PositionEvent)
	HoverMove  func(*PositionEvent)
	HoverLeave func(*PositionEvent)
}

// Touchable unifies mouse and touch input on one surface into a single
// stream of down/move/up/hover callbacks. It tracks at most one contact at a
// time.
//
// A Touchable is driven synchronously by its InputSource and is not safe for
// concurrent use.
type Touchable struct {
	surface Surface
	source  InputSource
	cb      Callbacks

	bound     bool
	touchable bool
	hoverable bool
	lock      DeviceLock

	active  *PositionEvent
	touchID int // tracked finger, valid when active is a touch contact
	hover   *PositionEvent

	// Listeners bound once in Bind so every Subscribe hands out the same func.
	onMouseDown  Listener
	onMouseMove  Listener
	onMouseUp    Listener
	onTouchStart Listener
	onTouchMove  Listener
	onTouchEnd   Listener
	onHoverMove  Listener
	onHoverLeave Listener

	mouseDownSub  Subscription
	touchStartSub Subscription
	hoverMoveSub  Subscription
	hoverLeaveSub Subscription
	documentSubs  []Subscription

	baseLogger *zap.SugaredLogger
	logger     *zap.SugaredLogger
	store      EntityStore
	id         uint32
}

// Bind attaches a Touchable to surface, receiving raw events from src.
// Tracking and hover both start disabled; enable them with SetTouchable and
// SetHoverable.
func Bind(surface Surface, src InputSource, cb Callbacks) *Touchable {
	t := &Touchable{
		surface: surface,
		source:  src,
		cb:      cb,
		bound:   true,
	}
	t.SetLogger(nil)
	t.onMouseDown = t.mouseDown
	t.onMouseMove = t.mouseMove
	t.onMouseUp = t.mouseUp
	t.onTouchStart = t.touchStart
	t.onTouchMove = t.touchMove
	t.onTouchEnd = t.touchEnd
	t.onHoverMove = t.hoverMove
	t.onHoverLeave = t.hoverLeave
	return t
}

// Unbind detaches every listener and drops any contact without firing
// callbacks. Calling it again is a no-op, as are later toggles.
func (t *Touchable) Unbind() {
	if !t.bound {
		return
	}
	removeSub(&t.mouseDownSub)
	removeSub(&t.touchStartSub)
	removeSub(&t.hoverMoveSub)
	removeSub(&t.hoverLeaveSub)
	t.removeDocumentListeners()
	t.active = nil
	t.hover = nil
	t.touchable = false
	t.hoverable = false
	t.bound = false
	t.logger.Debug("Unbound")
}

// SetTouchable enables or disables down/move/up tracking. Disabling drops an
// in-flight contact without firing TouchUp.
func (t *Touchable) SetTouchable(enabled bool) {
	if !t.bound || t.touchable == enabled {
		return
	}
	t.touchable = enabled

	if enabled {
		if t.lock != DeviceLockTouch {
			t.mouseDownSub = t.source.Subscribe(ScopeSurface, FamilyMouse, PhaseBegin, t.onMouseDown)
		}
		t.touchStartSub = t.source.Subscribe(ScopeSurface, FamilyTouch, PhaseBegin, t.onTouchStart)
		t.logger.Debugw("Tracking enabled", "deviceLock", t.lock)
		return
	}

	removeSub(&t.mouseDownSub)
	removeSub(&t.touchStartSub)
	t.removeDocumentListeners()
	if t.active != nil {
		t.logger.Debugw("Discarding in-flight contact", "reason", "tracking disabled")
		t.active = nil
	}
	t.logger.Debug("Tracking disabled")
}

// SetHoverable enables or disables mouse hover tracking. Disabling drops a
// hover in progress without firing HoverLeave.
func (t *Touchable) SetHoverable(enabled bool) {
	if !t.bound || t.hoverable == enabled {
		return
	}
	t.hoverable = enabled

	if enabled {
		if t.lock != DeviceLockTouch {
			t.subscribeHover()
		}
		t.logger.Debugw("Hover enabled", "deviceLock", t.lock)
		return
	}

	removeSub(&t.hoverMoveSub)
	removeSub(&t.hoverLeaveSub)
	t.hover = nil
	t.logger.Debug("Hover disabled")
}

// SetLogger replaces the logger. A nil logger silences the Touchable.
func (t *Touchable) SetLogger(logger *zap.SugaredLogger) {
	if logger == nil {
		t.baseLogger = nopLogger()
	} else {
		t.baseLogger = logger.Named("touchable")
	}
	t.applyLoggerFields()
}

// SetEntityStore sets the optional ECS bridge. Events are only forwarded
// once the Touchable has a non-zero ID (see SetID).
func (t *Touchable) SetEntityStore(store EntityStore) {
	t.store = store
}

// SetID tags the surface for GestureEvent consumers.
func (t *Touchable) SetID(id uint32) {
	t.id = id
	t.applyLoggerFields()
}

// applyLoggerFields rebuilds the working logger from the base logger and ID.
func (t *Touchable) applyLoggerFields() {
	t.logger = t.baseLogger
	if t.id != 0 {
		t.logger = t.baseLogger.With("surface", t.id)
	}
}

// IsTouchable reports whether down/move/up tracking is enabled.
func (t *Touchable) IsTouchable() bool { return t.touchable }

// IsHoverable reports whether hover tracking is enabled.
func (t *Touchable) IsHoverable() bool { return t.hoverable }

// IsBound reports whether Unbind has not been called yet.
func (t *Touchable) IsBound() bool { return t.bound }

// DeviceLock returns the device family the surface has committed to.
func (t *Touchable) DeviceLock() DeviceLock { return t.lock }

// Surface returns the bound surface.
func (t *Touchable) Surface() Surface { return t.surface }

// ActiveContact returns the tracked contact, or nil when none is active.
func (t *Touchable) ActiveContact() *PositionEvent { return t.active }

// HoverContact returns the hover contact, or nil when not hovering.
func (t *Touchable) HoverContact() *PositionEvent { return t.hover }

// State reports the coarse state. An active contact takes precedence over
// hover.
func (t *Touchable) State() State {
	switch {
	case t.active != nil:
		return StateTracking
	case t.hover != nil:
		return StateHovering
	default:
		return StateIdle
	}
}

// --- Device lock ---

// observe records the family of an accepted or rejected event. The first
// touch permanently switches off the surface's mouse-origin listeners.
func (t *Touchable) observe(family Family) {
	switch family {
	case FamilyMouse:
		if t.lock == DeviceLockUnset {
			t.lock = DeviceLockMouse
			t.logger.Debugw("Device lock changed", "deviceLock", t.lock)
		}
	case FamilyTouch:
		if t.lock == DeviceLockTouch {
			return
		}
		t.lock = DeviceLockTouch
		removeSub(&t.mouseDownSub)
		removeSub(&t.hoverMoveSub)
		removeSub(&t.hoverLeaveSub)
		t.hover = nil
		t.logger.Debugw("Device lock changed", "deviceLock", t.lock)
	}
}

// --- Mouse ---

func (t *Touchable) mouseDown(ev RawEvent) {
	if !t.touchable || t.lock == DeviceLockTouch {
		return
	}
	if t.active != nil {
		t.logger.Debugw("Ignoring mouse down", "reason", "contact already active")
		return
	}
	t.observe(FamilyMouse)
	t.hover = nil

	// Moves and ups that drift off the surface are only seen by the document.
	t.subscribeDocument(FamilyMouse, PhaseMove, t.onMouseMove)
	t.subscribeDocument(FamilyMouse, PhaseEnd, t.onMouseUp)

	t.active = NewPositionEvent(t.surface, ev.Point, ev.Timestamp, true)
	t.logger.Debugw("Contact began", "family", FamilyMouse, "point", ev.Point)
	t.fire(EventTouchDown, t.cb.TouchDown, t.active)
}

func (t *Touchable) mouseMove(ev RawEvent) {
	if t.active == nil || !t.active.IsFromPointingDevice {
		return
	}
	t.active.Move(ev.Point, ev.Timestamp)
	t.fire(EventTouchMove, t.cb.TouchMove, t.active)
}

func (t *Touchable) mouseUp(ev RawEvent) {
	if t.active == nil || !t.active.IsFromPointingDevice {
		return
	}
	p := ev.Point
	t.finish(&p, ev.Timestamp)
}

// --- Touch ---

func (t *Touchable) touchStart(ev RawEvent) {
	if !t.touchable {
		return
	}
	t.observe(FamilyTouch)

	if t.active != nil || len(ev.Touches) > 1 {
		t.cancel(ev)
		return
	}

	var first Touch
	switch {
	case len(ev.ChangedTouches) > 0:
		first = ev.ChangedTouches[0]
	case len(ev.Touches) > 0:
		first = ev.Touches[0]
	default:
		t.logger.Debugw("Ignoring touch start", "reason", "no touch points")
		return
	}

	t.subscribeDocument(FamilyTouch, PhaseMove, t.onTouchMove)
	t.subscribeDocument(FamilyTouch, PhaseEnd, t.onTouchEnd)
	t.subscribeDocument(FamilyTouch, PhaseCancel, t.onTouchEnd)

	t.hover = nil
	t.touchID = first.ID
	t.active = NewPositionEvent(t.surface, first.Point, ev.Timestamp, false)
	t.logger.Debugw("Contact began", "family", FamilyTouch, "touch", first.ID, "point", first.Point)
	t.fire(EventTouchDown, t.cb.TouchDown, t.active)
}

// cancel handles an ambiguous touch start: the contact already being
// tracked, if any, is ended through the normal up path and the new touch
// is refused.
func (t *Touchable) cancel(ev RawEvent) {
	t.logger.Debugw("Rejecting touch start", "touches", len(ev.Touches), "active", t.active != nil)
	if t.active == nil {
		return
	}
	t.finish(nil, ev.Timestamp)
}

func (t *Touchable) touchMove(ev RawEvent) {
	if t.active == nil || t.active.IsFromPointingDevice {
		return
	}
	touch, ok := findTouch(ev.Touches, t.touchID)
	if !ok {
		t.logger.Debugw("Tracked touch lost", "touch", t.touchID)
		t.finish(nil, ev.Timestamp)
		return
	}
	t.active.Move(touch.Point, ev.Timestamp)
	t.fire(EventTouchMove, t.cb.TouchMove, t.active)
}

// touchEnd handles both touch end and touch cancel.
func (t *Touchable) touchEnd(ev RawEvent) {
	if t.active == nil || t.active.IsFromPointingDevice {
		return
	}
	if touch, ok := findTouch(ev.ChangedTouches, t.touchID); ok {
		p := touch.Point
		t.finish(&p, ev.Timestamp)
		return
	}
	t.finish(nil, ev.Timestamp)
}

// finish ends the active contact and fires TouchUp.
func (t *Touchable) finish(p *Vec2, ts time.Duration) {
	e := t.active
	t.active = nil
	t.removeDocumentListeners()

	e.Up(p, ts)
	t.logger.Debugw("Contact ended", "moved", e.HasMoved, "tap", e.WasTap, "elapsed", e.Elapsed())
	t.fire(EventTouchUp, t.cb.TouchUp, e)
}

// --- Hover ---

func (t *Touchable) hoverMove(ev RawEvent) {
	if !t.hoverable || t.lock == DeviceLockTouch {
		return
	}
	// A pressed mouse also moves over the surface; that is tracking, not
	// hover. The next move after release starts a fresh hover contact.
	if t.active != nil {
		return
	}
	t.observe(FamilyMouse)

	if t.hover == nil {
		t.hover = NewPositionEvent(t.surface, ev.Point, ev.Timestamp, true)
	} else {
		t.hover.Move(ev.Point, ev.Timestamp)
	}
	t.fire(EventHoverMove, t.cb.HoverMove, t.hover)
}

func (t *Touchable) hoverLeave(ev RawEvent) {
	if t.hover == nil {
		return
	}
	e := t.hover
	t.hover = nil
	e.Move(ev.Point, ev.Timestamp)
	t.fire(EventHoverLeave, t.cb.HoverLeave, e)
}

// --- Listener plumbing ---

func (t *Touchable) subscribeHover() {
	t.hoverMoveSub = t.source.Subscribe(ScopeSurface, FamilyMouse, PhaseMove, t.onHoverMove)
	t.hoverLeaveSub = t.source.Subscribe(ScopeSurface, FamilyMouse, PhaseLeave, t.onHoverLeave)
}

func (t *Touchable) subscribeDocument(family Family, phase Phase, fn Listener) {
	t.documentSubs = append(t.documentSubs, t.source.Subscribe(ScopeDocument, family, phase, fn))
}

func (t *Touchable) removeDocumentListeners() {
	for i := range t.documentSubs {
		t.documentSubs[i].Remove()
		t.documentSubs[i] = nil
	}
	t.documentSubs = t.documentSubs[:0]
}

func removeSub(s *Subscription) {
	if *s != nil {
		(*s).Remove()
		*s = nil
	}
}

// fire invokes the callback if present and forwards to the ECS bridge.
func (t *Touchable) fire(typ EventType, fn func(*PositionEvent), e *PositionEvent) {
	if fn != nil {
		fn(e)
	}
	t.emitGestureEvent(typ, e)
}
