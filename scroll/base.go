// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scroll provides kinetic scroll views: [Base] turns swipes
// and wheel steps into a scroll position with momentum, bounds,
// bounce and overscroll; [Controller] owns a virtual list of items
// whose nodes are built lazily around the viewport; [Indicator] and
// [Overscroll] are the decorations of a view.
package scroll

import (
	"log/slog"

	"cogentcore.org/scroll/anim"
	"cogentcore.org/scroll/base/logx"
	"cogentcore.org/scroll/events"
	"cogentcore.org/scroll/input"
	"cogentcore.org/scroll/kinetic"
	"cogentcore.org/scroll/math32"
	"cogentcore.org/scroll/scene"
	"cogentcore.org/scroll/settings"
)

// Base is a scroll view node. Its content is the [Base.Root] node,
// which is translated along the layout axis by minus the scroll
// position, so that the visible part of the content is
// [position, position + size] in root coordinates. An item at
// position p of the [Controller] is placed at the start padding plus p.
//
// The bounds of the position are derived every frame from the
// controller: the minimum is its area offset, and the maximum is the
// area offset plus the paddings and the area size, minus the viewport
// size. Either is NaN while the geometry is unknown.
type Base struct {
	scene.NodeBase

	// Layout is the scroll direction, fixed by [Base.InitLayout].
	Layout Layouts `copier:"-"`

	// Root is the content root node that items are attached to.
	Root *scene.NodeBase `copier:"-"`

	// Controller provides the scroll area and lays out the items.
	Controller *Controller `copier:"-"`

	// Settings are the knobs of the view, a copy of [settings.Current]
	// taken when the view is initialized. Use [Base.SetSettings] to
	// replace them.
	Settings *settings.Scroll `copier:"-"`

	// Bounce is whether motion past a bound is elastic. Otherwise the
	// position stops at the bound and the overscroll callbacks are
	// called with the motion that did not happen.
	Bounce bool

	// Movement is the state of the scroll state machine.
	Movement Movements `copier:"-"`

	// Listener receives the input of the view.
	Listener *input.Listener `copier:"-"`

	// Press stops running animations when the view is pressed.
	Press *input.Press `copier:"-"`

	// Swipe drives the position while dragging.
	Swipe *input.Swipe `copier:"-"`

	// Wheel drives the position with wheel steps.
	Wheel *input.Wheel `copier:"-"`

	layoutInited bool
	position     float32
	padding      Sides
	spaceLimit   float32
	maxVelocity  float32

	// savedRelative is a relative position applied once the bounds are known.
	savedRelative float32

	// animation is the running scroll action, non-nil iff the
	// movement is Auto or Overscroll.
	animation anim.Action

	// curve is the kinetic curve played by animation, and curveU
	// its current progress.
	curve  kinetic.Curve
	curveU float32

	// adjustTarget is the target of an animated [Base.ScrollTo],
	// NaN when idle, and adjustIntensity is the distance to it relative
	// to the viewport, which scales the duration of the adjustment.
	adjustTarget    float32
	adjustIntensity float32

	pressed bool

	onScroll            []func(delta float32, finished bool)
	onOverscroll        []func(delta float32)
	onAnimationFinished []func()
}

// NewBase returns a new scroll view with the given layout and viewport size.
func NewBase(layout Layouts, size math32.Vector2) *Base {
	b := scene.New[*Base]()
	b.SetContentSize(size)
	b.InitLayout(layout)
	return b
}

func (b *Base) Init() {
	b.Settings = settings.Current.Clone()
	b.Bounce = true
	b.spaceLimit = math32.NaN()
	b.maxVelocity = math32.NaN()
	b.savedRelative = math32.NaN()
	b.adjustTarget = math32.NaN()

	b.Root = scene.New[*scene.NodeBase]()
	b.Root.Name = "content"
	b.AddChild(b.Root)

	b.Listener = b.AddListener()
	b.Press = b.Listener.AddPress(events.PointerMask, b.onPress)
	b.Swipe = b.Listener.AddSwipe(events.PointerMask, b.onSwipe)
	b.Swipe.Locked = true
	b.Swipe.Axis = math32.Y
	b.Swipe.Exclusive = true
	b.Wheel = b.Listener.AddWheel(b.onWheel)
	b.SetSettings(b.Settings)
}

func (b *Base) OnEnter(sc *scene.Scene) {
	if !b.layoutInited {
		b.InitLayout(AutoLayout)
	}
}

// InitLayout commits the scroll direction of the view. [AutoLayout]
// resolves to Horizontal if the view is wider than high, and to
// Vertical otherwise. It does nothing if the layout was already
// initialized; changing it is a programmer error.
func (b *Base) InitLayout(layout Layouts) {
	if b.layoutInited {
		logx.Assert(layout == AutoLayout || layout == b.Layout, "scroll: layout changed after init", "layout", b.Layout, "new", layout)
		return
	}
	if layout == AutoLayout {
		layout = Vertical
		if b.ContentSize.X > b.ContentSize.Y {
			layout = Horizontal
		}
	}
	b.Layout = layout
	b.layoutInited = true
	b.Swipe.Axis = layout.Dim()
	b.layoutRoot()
}

// SetSettings replaces the settings of the view and of its recognizers.
func (b *Base) SetSettings(s *settings.Scroll) {
	b.Settings = s
	b.Press.Settings = s
	b.Swipe.Settings = s
	b.Wheel.Settings = s
}

func (b *Base) knobs() *settings.Scroll {
	if b.Settings != nil {
		return b.Settings
	}
	return settings.Current
}

func (b *Base) dim() math32.Dims {
	return b.Layout.Dim()
}

// Size returns the viewport length along the scroll axis.
func (b *Base) Size() float32 {
	return b.ContentSize.Dim(b.dim())
}

// CrossSize returns the length of the content across the scroll axis:
// the viewport cross length, limited by the space limit.
func (b *Base) CrossSize() float32 {
	cross := b.ContentSize.Dim(math32.OtherDim(b.dim()))
	if !math32.IsNaN(b.spaceLimit) && cross > b.spaceLimit {
		return b.spaceLimit
	}
	return cross
}

// Geometry:

// area returns the offset and the size of the scroll area, from the
// items of the controller or, when it has none, from its scroll range.
func (b *Base) area() (offset, size float32) {
	nan := math32.NaN()
	c := b.Controller
	if c == nil {
		return nan, nan
	}
	if off := c.AreaOffset(); !math32.IsNaN(off) {
		return off, c.AreaSize()
	}
	mn, mx := c.ScrollMin(), c.ScrollMax()
	if math32.IsNaN(mn) || math32.IsNaN(mx) {
		return nan, nan
	}
	return mn, mx - mn
}

func (b *Base) padStart() float32 { return b.padding.Start(b.dim()) }
func (b *Base) padEnd() float32   { return b.padding.End(b.dim()) }

// ScrollMinPosition returns the minimal scroll position, or NaN if it
// is unknown.
func (b *Base) ScrollMinPosition() float32 {
	off, _ := b.area()
	return off
}

// ScrollMaxPosition returns the maximal scroll position, or NaN if it
// is unknown. It is never less than the minimal position.
func (b *Base) ScrollMaxPosition() float32 {
	off, size := b.area()
	if math32.IsNaN(off) {
		return off
	}
	return max(off, off+b.padStart()+size+b.padEnd()-b.Size())
}

// ScrollLength returns the length of the content including the
// paddings, or NaN if it is unknown.
func (b *Base) ScrollLength() float32 {
	_, size := b.area()
	return b.padStart() + size + b.padEnd()
}

func (b *Base) bounds() (mn, mx float32, ok bool) {
	mn, mx = b.ScrollMinPosition(), b.ScrollMaxPosition()
	return mn, mx, !math32.IsNaN(mn) && !math32.IsNaN(mx)
}

// overrun returns how far p is past the bounds: negative below the
// minimum, positive above the maximum, and zero within them.
func overrun(p, mn, mx float32) float32 {
	switch {
	case p < mn:
		return p - mn
	case p > mx:
		return p - mx
	}
	return 0
}

// Position:

// ScrollPosition returns the scroll position.
func (b *Base) ScrollPosition() float32 {
	return b.position
}

// SetScrollPosition sets the scroll position. Positions out of the
// bounds are accepted; they are fixed when the view is at rest.
func (b *Base) SetScrollPosition(p float32) {
	b.doSetScrollPosition(p)
}

func (b *Base) doSetScrollPosition(p float32) {
	b.position = p
	b.savedRelative = math32.NaN()
	b.layoutRoot()
	if b.Controller != nil {
		b.Controller.OnScrollPosition(false)
	}
}

// layoutRoot places the content root: minus the position along the
// axis, and centered across it when the space limit applies.
func (b *Base) layoutRoot() {
	if b.Root == nil {
		return
	}
	d, od := b.dim(), math32.OtherDim(b.dim())
	var pos, size math32.Vector2
	pos.SetDim(d, -b.position)
	cross := b.CrossSize()
	pos.SetDim(od, (b.ContentSize.Dim(od)-cross)/2)
	length := b.ScrollLength()
	if math32.IsNaN(length) {
		length = b.Size()
	}
	size.SetDim(d, length)
	size.SetDim(od, cross)
	if b.Root.Position != pos {
		b.Root.SetPosition(pos)
	}
	if b.Root.ContentSize != size {
		b.Root.SetContentSize(size)
	}
}

// ScrollRelativePosition returns the position relative to the bounds,
// in [0, 1] when at rest. It returns the pending relative position if
// one was set before the bounds were known, and NaN if there is none.
func (b *Base) ScrollRelativePosition() float32 {
	if !math32.IsNaN(b.savedRelative) {
		return b.savedRelative
	}
	mn, mx, ok := b.bounds()
	if !ok {
		return math32.NaN()
	}
	if mx <= mn {
		return 0
	}
	return (b.position - mn) / (mx - mn)
}

// SetScrollRelativePosition sets the position relative to the bounds,
// bringing a running scroll animation to rest. If the bounds are not known yet, it is applied by the first
// [Base.UpdateScrollBounds] that knows them.
func (b *Base) SetScrollRelativePosition(r float32) {
	r = math32.Clamp(r, 0, 1)
	mn, mx, ok := b.bounds()
	if !ok {
		b.savedRelative = r
		return
	}
	moving := b.Movement.IsAnimated()
	b.stopAnimation()
	b.doSetScrollPosition(mn + r*(mx-mn))
	if moving {
		b.finish(true)
	}
}

// Padding returns the outer padding of the content.
func (b *Base) Padding() Sides {
	return b.padding
}

// SetPadding sets the outer padding of the content. The position is
// shifted by the change of the start padding, so that the content
// stays in place in the viewport.
func (b *Base) SetPadding(p Sides) {
	shift := p.Start(b.dim()) - b.padStart()
	b.padding = p
	if shift != 0 {
		b.doSetScrollPosition(b.position + shift)
	}
	b.contentDirty()
}

// SpaceLimit returns the space limit, NaN if there is none.
func (b *Base) SpaceLimit() float32 {
	return b.spaceLimit
}

// SetSpaceLimit limits the cross axis length of the content, which is
// centered in the viewport when the viewport is wider. NaN removes the limit.
func (b *Base) SetSpaceLimit(l float32) {
	b.spaceLimit = l
	b.contentDirty()
}

// ScrollMaxVelocity returns the maximal fling velocity, NaN if unlimited.
func (b *Base) ScrollMaxVelocity() float32 {
	return b.maxVelocity
}

// SetScrollMaxVelocity limits the fling velocity. NaN removes the limit.
func (b *Base) SetScrollMaxVelocity(v float32) {
	b.maxVelocity = v
	b.contentDirty()
}

// contentDirty relayouts the content and its items after a change of
// the geometry settings.
func (b *Base) contentDirty() {
	b.UpdateScrollBounds()
	if b.Controller != nil {
		b.Controller.OnScrollPosition(true)
	}
}

// UpdateScrollBounds recomputes the bounds, applies a pending relative
// position once they are known, and fixes the position. It is called
// every frame.
func (b *Base) UpdateScrollBounds() {
	b.layoutRoot()
	mn, mx, ok := b.bounds()
	if !ok {
		return
	}
	if !math32.IsNaN(b.savedRelative) {
		r := b.savedRelative
		b.savedRelative = math32.NaN()
		b.doSetScrollPosition(mn + r*(mx-mn))
	}
	b.FixPosition()
}

// FixPosition clamps the position to the bounds when the view is at rest.
func (b *Base) FixPosition() {
	if b.Movement != NoMovement {
		return
	}
	mn, mx, ok := b.bounds()
	if !ok {
		return
	}
	if p := math32.Clamp(b.position, mn, mx); p != b.position {
		b.doSetScrollPosition(p)
	}
}

// IsMoved returns whether the view is moving.
func (b *Base) IsMoved() bool {
	return b.Movement != NoMovement
}

// IsHeld returns whether the view is pressed or dragged.
func (b *Base) IsHeld() bool {
	return b.pressed || b.Swipe.IsActive()
}

// State:

// Save returns the relative position of the view as {"value": r}.
func (b *Base) Save() any {
	r := b.ScrollRelativePosition()
	if math32.IsNaN(r) {
		r = 0
	}
	return map[string]any{"value": float64(r)}
}

// Load restores a relative position returned by [Base.Save].
func (b *Base) Load(v any) {
	m, ok := v.(map[string]any)
	if !ok {
		slog.Error("scroll.Base.Load: expected a map", "value", v)
		return
	}
	var r float64
	switch x := m["value"].(type) {
	case float64:
		r = x
	case float32:
		r = float64(x)
	case int:
		r = float64(x)
	case int64:
		r = float64(x)
	case uint64:
		r = float64(x)
	default:
		slog.Error("scroll.Base.Load: missing value", "value", v)
		return
	}
	b.SetScrollRelativePosition(float32(r))
}

// Callbacks:

// OnScroll adds a function called whenever the position moves because
// of input or animation, with the delta of the position, and once with
// finished set and a zero delta when the movement stops.
func (b *Base) OnScroll(f func(delta float32, finished bool)) {
	b.onScroll = append(b.onScroll, f)
}

// OnOverscroll adds a function called with the motion past a bound:
// negative at the start and positive at the end.
func (b *Base) OnOverscroll(f func(delta float32)) {
	b.onOverscroll = append(b.onOverscroll, f)
}

// OnAnimationFinished adds a function called when a scroll animation
// finishes or is stopped.
func (b *Base) OnAnimationFinished(f func()) {
	b.onAnimationFinished = append(b.onAnimationFinished, f)
}

func (b *Base) scrolled(delta float32, finished bool) {
	for _, f := range b.onScroll {
		f(delta, finished)
	}
}

func (b *Base) overscrolled(delta float32) {
	if delta == 0 {
		return
	}
	for _, f := range b.onOverscroll {
		f(delta)
	}
}

// Update updates the bounds and the item nodes of the view. It is
// called once per frame after the actions were stepped.
func (b *Base) Update(dt float32) {
	b.UpdateScrollBounds()
	if b.Controller != nil {
		b.Controller.OnScrollPosition(false)
	}
}

func (b *Base) OnContentSizeDirty() {
	b.contentDirty()
}

// AddScrollNode attaches the given item node to the content root,
// at the given position and size along the axis.
func (b *Base) AddScrollNode(n scene.Node, pos, size float32, z int, name string) {
	scene.InitNode(n)
	nb := n.AsNode()
	if name != "" {
		nb.Name = name
	}
	nb.SetZOrder(z)
	b.Root.AddChild(n)
	b.placeScrollNode(n, pos, size)
}

func (b *Base) placeScrollNode(n scene.Node, pos, size float32) {
	d := b.dim()
	nb := n.AsNode()
	p := math32.Vector2Dim(d, b.padStart()+pos)
	var sz math32.Vector2
	sz.SetDim(d, size)
	sz.SetDim(math32.OtherDim(d), b.CrossSize())
	nb.Anchor = math32.Vector2{}
	if nb.Position != p {
		nb.SetPosition(p)
	}
	if nb.ContentSize != sz {
		nb.SetContentSize(sz)
	}
}
