// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flex provides a layout with a flexible header that collapses
// and expands with the scrolling of a scroll view below it.
package flex

import (
	"log/slog"

	"cogentcore.org/scroll/anim"
	"cogentcore.org/scroll/base/logx"
	"cogentcore.org/scroll/math32"
	"cogentcore.org/scroll/scene"
	"cogentcore.org/scroll/scroll"
	"cogentcore.org/scroll/settings"
)

// Action tags of a [Layout].
const (
	TagLevel = 200 + iota
	TagExpand
)

// Layout stacks a flexible node (a header) on top of a base scroll view.
// The height of the flexible node is interpolated between its minimum
// and maximum heights by the flexible level in [0, 1], which follows
// the scroll deltas of the base node once they exceed the safe trigger.
// When the base node comes to rest with a partial level, the level
// completes to 0 or 1 if auto complete is on.
type Layout struct {
	scene.NodeBase

	// Base is the base scroll view.
	Base *scroll.Base `copier:"-"`

	// Flexible is the flexible node.
	Flexible scene.Node `copier:"-"`

	minHeight    float32
	maxHeight    float32
	level        float32
	autoComplete bool
	safeTrigger  bool
	baseNodePad  float32
	extraSpace   float32

	// expandTarget is the extra space the running expand action ends at.
	expandTarget float32

	// decoration is the height of the status bar decoration, which the
	// flexible node covers when fully expanded.
	decoration   float32
	decorTracked bool
	decorVisible bool

	scrolling bool
	triggered bool
	startPos  float32

	onLevel             []func(level float32)
	onDecorationVisible []func(visible bool)
}

// NewLayout returns a new [Layout] of the given size.
func NewLayout(size math32.Vector2) *Layout {
	l := scene.New[*Layout]()
	l.SetContentSize(size)
	return l
}

func (l *Layout) Init() {
	l.level = 1
	l.autoComplete = true
	l.decorVisible = true
}

func (l *Layout) knobs() *settings.Scroll {
	if l.Base != nil && l.Base.Settings != nil {
		return l.Base.Settings
	}
	return settings.Current
}

// SetBaseNode sets the base scroll view, which fills the layout below
// the flexible node. It must be vertical.
func (l *Layout) SetBaseNode(b *scroll.Base) {
	if l.Base == b {
		return
	}
	if l.Base != nil {
		l.Base.RemoveFromParent()
	}
	logx.Assert(b.Layout != scroll.Horizontal, "flex: base node must scroll vertically", "base", b.Name)
	l.Base = b
	l.AddChild(b)
	b.OnScroll(func(delta float32, finished bool) {
		if l.Base == b {
			l.onScroll(delta, finished)
		}
	})
	l.layout()
}

// SetFlexibleNode sets the flexible node, placed at the top of the layout
// above the base node.
func (l *Layout) SetFlexibleNode(n scene.Node) {
	if l.Flexible != nil {
		l.Flexible.AsNode().RemoveFromParent()
	}
	l.Flexible = n
	if n == nil {
		return
	}
	scene.InitNode(n)
	n.AsNode().SetZOrder(10)
	l.AddChild(n)
	l.layout()
}

// FlexibleMinHeight returns the height of the collapsed flexible node.
func (l *Layout) FlexibleMinHeight() float32 { return l.minHeight }

// FlexibleMaxHeight returns the height of the expanded flexible node,
// without the status bar decoration.
func (l *Layout) FlexibleMaxHeight() float32 { return l.maxHeight }

// SetFlexibleMinHeight sets the height of the collapsed flexible node.
func (l *Layout) SetFlexibleMinHeight(h float32) {
	l.minHeight = h
	logx.Assert(l.minHeight <= l.maxHeight || l.maxHeight == 0, "flex: min height above max height", "min", l.minHeight, "max", l.maxHeight)
	l.layout()
}

// SetFlexibleMaxHeight sets the height of the expanded flexible node.
func (l *Layout) SetFlexibleMaxHeight(h float32) {
	l.maxHeight = h
	logx.Assert(l.minHeight <= l.maxHeight, "flex: min height above max height", "min", l.minHeight, "max", l.maxHeight)
	l.layout()
}

// FlexibleLevel returns the flexible level, 0 collapsed and 1 expanded.
func (l *Layout) FlexibleLevel() float32 {
	return l.level
}

// SetFlexibleLevel sets the flexible level, stopping any level animation.
func (l *Layout) SetFlexibleLevel(level float32) {
	l.StopActionByTag(TagLevel)
	l.setLevel(level)
}

// SetFlexibleLevelAnimated animates the flexible level to the given
// level over dur seconds, accelerating when expanding and decelerating
// when collapsing.
func (l *Layout) SetFlexibleLevelAnimated(level, dur float32) anim.Action {
	level = math32.Clamp(level, 0, 1)
	if dur <= 0 || level == l.level {
		l.SetFlexibleLevel(level)
		return nil
	}
	curve := anim.Decelerate
	if level > l.level {
		curve = anim.Accelerate
	}
	tw := anim.NewTweenTo(dur, l.FlexibleLevel, level, l.setLevel)
	return l.RunAction(anim.WithTag(anim.NewEase(curve, tw), TagLevel))
}

// LevelAnimation returns the running level animation, or nil.
func (l *Layout) LevelAnimation() anim.Action {
	return l.ActionByTag(TagLevel)
}

// SetFlexibleAutoComplete sets whether a partial level completes to 0
// or 1 when the base node comes to rest.
func (l *Layout) SetFlexibleAutoComplete(on bool) {
	l.autoComplete = on
}

// SetSafeTrigger sets whether the scroll distance needed before the
// level follows the scroll is the full flexible range, rather than the
// default safe trigger distance.
func (l *Layout) SetSafeTrigger(on bool) {
	l.safeTrigger = on
}

// SetBaseNodePadding sets the padding added below the expanded flexible
// node at the start of the base node content.
func (l *Layout) SetBaseNodePadding(pad float32) {
	l.baseNodePad = pad
	l.layout()
}

// SetStatusBarDecoration sets the height of the status bar decoration,
// which is added to the maximum height of the flexible node.
func (l *Layout) SetStatusBarDecoration(h float32) {
	l.decoration = h
	l.layout()
}

// SetViewDecorationTracked sets whether the decoration of the view is
// only visible while the flexible node is fully expanded.
func (l *Layout) SetViewDecorationTracked(on bool) {
	l.decorTracked = on
	l.updateDecoration()
}

// IsDecorationVisible returns whether the decoration of the view is visible.
func (l *Layout) IsDecorationVisible() bool {
	return l.decorVisible
}

// OnDecorationVisible adds a function called when the visibility of the
// decoration of the view changes.
func (l *Layout) OnDecorationVisible(f func(visible bool)) {
	l.onDecorationVisible = append(l.onDecorationVisible, f)
}

// OnFlexibleLevel adds a function called when the flexible level changes.
func (l *Layout) OnFlexibleLevel(f func(level float32)) {
	l.onLevel = append(l.onLevel, f)
}

// ExpandFlexibleNode animates the extra space of the flexible node to
// delta over dur seconds.
func (l *Layout) ExpandFlexibleNode(delta, dur float32) {
	l.expandTarget = delta
	if dur <= 0 {
		l.StopActionByTag(TagExpand)
		l.setExtraSpace(delta)
		return
	}
	tw := anim.NewTweenTo(dur, l.ExtraSpace, delta, l.setExtraSpace)
	l.RunAction(anim.WithTag(anim.NewEase(anim.Standard, tw), TagExpand))
}

// ClearFlexibleExpand animates the extra space of the flexible node
// back to 0 over dur seconds.
func (l *Layout) ClearFlexibleExpand(dur float32) {
	l.ExpandFlexibleNode(0, dur)
}

// ExtraSpace returns the extra space of the flexible node.
func (l *Layout) ExtraSpace() float32 {
	return l.extraSpace
}

func (l *Layout) setExtraSpace(v float32) {
	l.extraSpace = v
	l.layout()
}

// isClearing returns whether an expand action is running back to 0.
func (l *Layout) isClearing() bool {
	return l.expandTarget == 0 && l.ActionByTag(TagExpand) != nil
}

// Geometry:

// flexRange returns the range of the flexible height.
func (l *Layout) flexRange() float32 {
	return max(l.maxHeight+l.decoration-l.minHeight, 0)
}

// FlexibleHeight returns the height of the flexible node for the
// current level, without the extra space.
func (l *Layout) FlexibleHeight() float32 {
	return l.minHeight + l.flexRange()*l.level
}

// BaseNodeOffset returns the offset of the visible start of the base
// node content: the bottom of the flexible node.
func (l *Layout) BaseNodeOffset() float32 {
	return l.FlexibleHeight() + l.extraSpace
}

func (l *Layout) setLevel(level float32) {
	level = math32.Clamp(level, 0, 1)
	if level == l.level {
		return
	}
	if settings.Debug.ScrollTrace {
		slog.Info("flex: level", "layout", l.Name, "from", l.level, "to", level)
	}
	l.level = level
	l.layout()
	for _, f := range l.onLevel {
		f(level)
	}
	l.updateDecoration()
}

func (l *Layout) updateDecoration() {
	vis := !l.decorTracked || l.level >= 1
	if vis == l.decorVisible {
		return
	}
	l.decorVisible = vis
	for _, f := range l.onDecorationVisible {
		f(vis)
	}
}

// contentFits returns whether the content of the base node fits in its
// viewport, or its length is unknown.
func (l *Layout) contentFits() bool {
	b := l.Base
	n := b.ScrollLength()
	return math32.IsNaN(n) || n <= b.Size()
}

// Scroll coupling:

func (l *Layout) onScroll(delta float32, finished bool) {
	b := l.Base
	if l.contentFits() {
		l.StopActionByTag(TagExpand)
		l.scrolling = false
		l.SetFlexibleLevel(1)
		return
	}
	if finished {
		l.finishScroll()
		return
	}
	if l.extraSpace != 0 && !l.isClearing() {
		l.ClearFlexibleExpand(settings.Seconds(l.knobs().FlexExpandClear))
	}
	pos := b.ScrollPosition()
	if !l.scrolling {
		l.scrolling = true
		l.triggered = false
		l.startPos = pos - delta
		l.StopActionByTag(TagLevel)
	}
	if !l.triggered {
		trigger := l.knobs().SafeTriggerDefault
		if l.safeTrigger {
			trigger = l.flexRange()
		}
		if math32.Abs(pos-l.startPos) < trigger {
			return
		}
		l.triggered = true
	}
	// only the motion within the bounds moves the flexible node
	mn, mx := b.ScrollMinPosition(), b.ScrollMaxPosition()
	d := math32.Clamp(pos, mn, mx) - math32.Clamp(pos-delta, mn, mx)
	if d == 0 || l.flexRange() == 0 {
		return
	}
	h := math32.Clamp(l.FlexibleHeight()-d, l.minHeight, l.maxHeight+l.decoration)
	l.setLevel((h - l.minHeight) / l.flexRange())
}

// finishScroll completes a partial level when the base node comes to rest.
func (l *Layout) finishScroll() {
	dist := math32.Abs(l.Base.ScrollPosition() - l.startPos)
	if !l.scrolling {
		dist = 0
	}
	l.scrolling = false
	l.triggered = false
	if !l.autoComplete || l.level <= 0 || l.level >= 1 {
		return
	}
	s := l.knobs()
	target := float32(0)
	if l.level > 0.5 || dist < l.maxHeight-l.minHeight {
		target = 1
	}
	dur := settings.Lerp(s.FlexAutoCompleteDurMin, s.FlexAutoCompleteDurMax, min(l.level, 1-l.level))
	l.SetFlexibleLevelAnimated(target, dur)
}

// Layout:

// layout places the flexible node and the base node for the current
// level, and the leading overscroll visual below the flexible node.
func (l *Layout) layout() {
	size := l.ContentSize
	if b := l.Base; b != nil {
		if b.Position != (math32.Vector2{}) {
			b.SetPosition(math32.Vector2{})
		}
		if b.ContentSize != size {
			b.SetContentSize(size)
		}
		pad := b.Padding()
		if top := l.maxHeight + l.baseNodePad; pad.Top != top {
			// the content starts below the expanded flexible node
			pos := b.ScrollPosition()
			pad.Top = top
			b.SetPadding(pad)
			b.SetScrollPosition(pos)
		}
		for _, kid := range b.Children {
			if ov, ok := kid.(*scroll.Overscroll); ok {
				ov.SetFrontOffset(l.BaseNodeOffset())
			}
		}
	}
	if l.Flexible != nil {
		fn := l.Flexible.AsNode()
		pos := math32.Vector2{}
		fsize := math32.Vec2(size.X, l.BaseNodeOffset())
		if fn.Position != pos {
			fn.SetPosition(pos)
		}
		if fn.ContentSize != fsize {
			fn.SetContentSize(fsize)
		}
	}
}

// Update lays out the nodes every frame.
func (l *Layout) Update(dt float32) {
	if l.Base != nil && math32.IsNaN(l.Base.ScrollLength()) && l.LevelAnimation() == nil {
		l.setLevel(1)
	}
	l.layout()
}

func (l *Layout) OnContentSizeDirty() {
	l.layout()
}
