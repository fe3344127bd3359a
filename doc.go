// Package touchable unifies mouse and touch input into a single positional
// gesture stream for interactive widgets such as sliders, draggable knobs,
// and scrub-to-preview controls.
//
// # Quick start
//
// Bind a [Touchable] to a [Surface] and an [InputSource], then enable the
// input you want:
//
//	src := touchable.NewEbitenSource(track)
//	t := touchable.Bind(track, src, touchable.Callbacks{
//		TouchDown: func(e *touchable.PositionEvent) { ... },
//		TouchMove: func(e *touchable.PositionEvent) { ... },
//		TouchUp: func(e *touchable.PositionEvent) {
//			if e.WasTap { ... }
//		},
//	})
//	t.SetTouchable(true)
//	t.SetHoverable(true)
//
// and call src.Update() from your [ebiten.Game] Update method.
//
// # Contacts
//
// A contact is one press-to-release interaction from the mouse or from a
// single finger. Each contact is described by a [PositionEvent] that tracks
// global and surface-local position, cumulative and resettable translation,
// and whether the contact was a tap (released within [TapDuration] without
// leaving the [MoveThresholdSquared] radius).
//
// A Touchable tracks at most one contact. A second finger, or a touch start
// while any contact is active, ends the active contact and is itself
// refused. The first touch input seen on a surface switches that surface's
// mouse press and hover listeners off for good; see [DeviceLock].
//
// Disabling tracking or hover with SetTouchable(false) or SetHoverable(false)
// drops the contact in progress without a terminal callback.
//
// # Input sources
//
// [Touchable] never talks to a platform directly. An [InputSource] delivers
// [RawEvent]s per device family, phase, and scope. [EbitenSource] polls
// Ebitengine; [Dispatcher] and [Injector] script events deterministically
// for tests, and [TestRunner] replays JSON traces through an Injector.
//
// # Widgets
//
// [Scrubbable], [Draggable], [Slider], and [DragKnob] are thin consumers
// built on Touchable. Slider settle animation uses [gween]. ECS
// integration lives in the touchable/ecs module (via [Donburi]).
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package touchable
