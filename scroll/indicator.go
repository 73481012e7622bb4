// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"cogentcore.org/scroll/anim"
	"cogentcore.org/scroll/math32"
	"cogentcore.org/scroll/scene"
	"cogentcore.org/scroll/settings"
)

// Indicator is the auto hiding position indicator of a scroll view,
// a thin bar along the inner cross axis edge of the view. It fades in
// when the view scrolls and fades out after the hold time.
// It is hidden while the content fits in the viewport.
type Indicator struct {
	scene.NodeBase
	scroll *Base
}

// NewIndicator adds a new [Indicator] to the given scroll view.
func NewIndicator(b *Base) *Indicator {
	ind := scene.New[*Indicator]()
	ind.Name = "indicator"
	ind.scroll = b
	ind.Opacity = 0
	ind.Visible = false
	ind.ZOrder = 1000
	b.AddChild(ind)
	b.OnScroll(ind.onScroll)
	return ind
}

// Fits returns whether the content fits in the viewport, or its
// length is unknown.
func (ind *Indicator) Fits() bool {
	l := ind.scroll.ScrollLength()
	return math32.IsNaN(l) || l <= ind.scroll.Size()
}

func (ind *Indicator) opacity() float32 { return ind.Opacity }

func (ind *Indicator) onScroll(delta float32, finished bool) {
	if finished || ind.Fits() {
		return
	}
	s := ind.scroll.knobs()
	if ind.Opacity < 1 && ind.ActionByTag(TagIndicatorFadeIn) == nil {
		fin := anim.NewTweenTo(settings.Seconds(s.IndicatorFadeIn), ind.opacity, 1, ind.SetOpacity)
		ind.RunAction(anim.WithTag(fin, TagIndicatorFadeIn))
	}
	fout := anim.NewTweenTo(settings.Seconds(s.IndicatorFadeOut), ind.opacity, 0, ind.SetOpacity)
	ind.RunAction(anim.WithTag(anim.NewSequence(settings.Seconds(s.IndicatorHold), fout), TagIndicatorFadeOut))
}

// Update lays out the indicator for the current position.
func (ind *Indicator) Update(dt float32) {
	b := ind.scroll
	if ind.Fits() {
		ind.SetVisible(false)
		return
	}
	s := b.knobs()
	d, od := b.dim(), math32.OtherDim(b.dim())
	view := b.Size()
	length := min(max(view*view/b.ScrollLength(), s.IndicatorMinLen), view)
	frac := b.ScrollRelativePosition()
	if math32.IsNaN(frac) {
		frac = 0
	}
	frac = math32.Clamp(frac, 0, 1)

	var pos, size math32.Vector2
	pos.SetDim(d, frac*(view-length))
	pos.SetDim(od, b.ContentSize.Dim(od)-s.IndicatorMargin-s.IndicatorThickness)
	size.SetDim(d, length)
	size.SetDim(od, s.IndicatorThickness)
	if ind.Position != pos {
		ind.SetPosition(pos)
	}
	if ind.ContentSize != size {
		ind.SetContentSize(size)
	}
	ind.SetVisible(ind.Opacity > 0)
}
