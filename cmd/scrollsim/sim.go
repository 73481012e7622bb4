// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"cogentcore.org/scroll/anim"
	"cogentcore.org/scroll/base/errors"
	"cogentcore.org/scroll/events"
	"cogentcore.org/scroll/flex"
	"cogentcore.org/scroll/kinetic"
	"cogentcore.org/scroll/math32"
	"cogentcore.org/scroll/scene"
	"cogentcore.org/scroll/scroll"
	"cogentcore.org/scroll/settings"
	"github.com/spf13/cobra"
)

// sim runs a scene in simulated time.
type sim struct {
	cfg *Config
	sc  *scene.Scene
	out io.Writer
}

func newSim(cfg *Config, out io.Writer, root scene.Node) *sim {
	sc := scene.NewScene(root)
	// frames are simulated, so they never stall
	sc.MaxFrameDelta = 0
	s := &sim{cfg: cfg, sc: sc, out: out}
	if cfg.Watch {
		s.watchSettings()
	}
	return s
}

// watchSettings reloads the settings file in a scene task and swaps
// the current settings on the scene goroutine.
func (s *sim) watchSettings() {
	w, err := settings.NewWatcher(s.cfg.Settings)
	if errors.Log(err) != nil {
		return
	}
	s.sc.Perform(func(ctx context.Context) error {
		return w.Run(ctx, func(st *settings.Scroll) {
			s.sc.Post(func() {
				slog.Info("settings reloaded", "file", s.cfg.Settings)
				settings.Current = st
			})
		})
	}, nil)
}

// dt returns the duration of a frame.
func (s *sim) dt() time.Duration {
	fps := s.cfg.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / float64(fps))
}

// seconds returns the simulated time at the given frame.
func (s *sim) seconds(frame int) float32 {
	return float32(frame) * float32(s.dt().Seconds())
}

// run steps frames until done returns true, the frame limit is reached,
// or ctx is cancelled. It returns the number of frames run.
func (s *sim) run(ctx context.Context, done func() bool, trace func(frame int)) int {
	defer s.sc.Close()
	for i := 1; i <= s.cfg.Frames; i++ {
		if ctx.Err() != nil {
			return i - 1
		}
		s.sc.Update(s.dt())
		if trace != nil {
			trace(i)
		}
		if done() {
			return i
		}
	}
	return s.cfg.Frames
}

func newRoot(size math32.Vector2) *scene.NodeBase {
	root := scene.New[*scene.NodeBase]()
	root.Name = "root"
	root.SetContentSize(size)
	return root
}

func newFlingCmd(cfg *Config) *cobra.Command {
	var velocity, content, view, position float32
	var noBounce bool
	var state string
	cmd := &cobra.Command{
		Use:   "fling",
		Short: "Fling a vertical list and trace its position until rest",
		RunE: func(cmd *cobra.Command, args []string) error {
			size := math32.Vec2(400, view)
			root := newRoot(size)
			b := scroll.NewBase(scroll.Vertical, size)
			b.Name = "list"
			b.Bounce = !noBounce
			root.AddChild(b)
			scroll.NewController(b).AddItem(content, nil)
			scroll.NewIndicator(b)
			scroll.NewOverscroll(b)
			b.SetScrollPosition(position)
			if state != "" {
				err := scene.OpenStateFile(root, state)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					errors.Log(err)
				}
			}
			s := newSim(cfg, cmd.OutOrStdout(), root)
			b.OnOverscroll(func(delta float32) {
				fmt.Fprintf(s.out, "overscroll %.2f\n", delta)
			})
			s.sc.Update(0)
			b.OnSwipeBegin(0)
			b.OnSwipeEnd(velocity)
			n := s.run(cmd.Context(), func() bool { return !b.IsMoved() }, func(frame int) {
				fmt.Fprintf(s.out, "%5d %7.3fs %10.2f %v\n", frame, s.seconds(frame), b.ScrollPosition(), b.Movement)
			})
			fmt.Fprintf(s.out, "rest after %d frames at %.2f (%.3f)\n", n, b.ScrollPosition(), b.ScrollRelativePosition())
			if state != "" {
				return errors.Log(scene.SaveStateFile(root, state))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float32Var(&velocity, "velocity", 3000, "release velocity of the position, in px/s")
	f.Float32Var(&content, "content", 2000, "length of the content")
	f.Float32Var(&view, "view", 600, "length of the viewport")
	f.Float32Var(&position, "position", 0, "start position")
	f.BoolVar(&noBounce, "no-bounce", false, "stop at the bounds instead of bouncing")
	f.StringVar(&state, "state", "", "YAML state file restored before and saved after the fling")
	return cmd
}

func newWheelCmd(cfg *Config) *cobra.Command {
	var amount, content, view, position float32
	var steps int
	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Send wheel steps to a horizontal list",
		RunE: func(cmd *cobra.Command, args []string) error {
			size := math32.Vec2(view, 400)
			root := newRoot(size)
			b := scroll.NewBase(scroll.Horizontal, size)
			b.Name = "list"
			root.AddChild(b)
			scroll.NewController(b).AddItem(content, nil)
			b.SetScrollPosition(position)
			s := newSim(cfg, cmd.OutOrStdout(), root)
			b.OnScroll(func(delta float32, finished bool) {
				if !finished {
					fmt.Fprintf(s.out, "scroll %.2f\n", delta)
				}
			})
			// each step is sent after a frame and handled by the next one
			sent, cur, last := 0, 0, 0
			done := func() bool { return sent >= steps && cur > last }
			s.run(cmd.Context(), done, func(frame int) {
				cur = frame
				fmt.Fprintf(s.out, "%5d %10.2f %v\n", frame, b.ScrollPosition(), b.Movement)
				if sent < steps {
					s.sc.Send(events.NewWheel(size.MulScalar(0.5), math32.Vec2(amount, 0), time.Time{}))
					sent++
					last = frame
				}
			})
			fmt.Fprintf(s.out, "final %.2f\n", b.ScrollPosition())
			return nil
		},
	}
	f := cmd.Flags()
	f.Float32Var(&amount, "amount", 120, "wheel amount of each step")
	f.IntVar(&steps, "steps", 1, "number of wheel steps")
	f.Float32Var(&content, "content", 10000, "length of the content")
	f.Float32Var(&view, "view", 800, "length of the viewport")
	f.Float32Var(&position, "position", 1000, "start position")
	return cmd
}

func newBallCmd(cfg *Config) *cobra.Command {
	var vx, vy, width, height float32
	var bounces int
	cmd := &cobra.Command{
		Use:   "ball",
		Short: "Bounce a sprite inside a box with constant speed",
		RunE: func(cmd *cobra.Command, args []string) error {
			size := math32.Vec2(width, height)
			root := newRoot(size)
			ball := scene.New[*scene.NodeBase]()
			ball.Name = "ball"
			ball.SetPosition(size.MulScalar(0.5))
			root.AddChild(ball)
			s := newSim(cfg, cmd.OutOrStdout(), root)

			bounds := math32.B2(0, 0, width, height)
			v := math32.Vec2(vx, vy)
			hits := 0
			var launch func()
			launch = func() {
				for range 4 {
					ln, edges := kinetic.NewWithBounds(ball.Position, v, bounds)
					if ln == nil {
						if edges == 0 {
							return
						}
						v = kinetic.Reflect(v, edges)
						continue
					}
					pl := kinetic.Play(ln, func(pos math32.Vector2, u float32) { ball.SetPosition(pos) })
					ball.RunAction(anim.WithTag(anim.NewSequence(pl, func() {
						hits++
						v = kinetic.Reflect(v, edges)
						fmt.Fprintf(s.out, "bounce %d at %v on %v\n", hits, ball.Position, edges)
						if hits < bounces {
							launch()
						}
					}), 1))
					return
				}
			}
			launch()
			n := s.run(cmd.Context(), func() bool { return hits >= bounces || ball.NumActions() == 0 }, nil)
			fmt.Fprintf(s.out, "%d bounces in %.3fs\n", hits, s.seconds(n))
			return nil
		},
	}
	f := cmd.Flags()
	f.Float32Var(&vx, "vx", 300, "horizontal velocity")
	f.Float32Var(&vy, "vy", 200, "vertical velocity")
	f.Float32Var(&width, "width", 400, "width of the box")
	f.Float32Var(&height, "height", 300, "height of the box")
	f.IntVar(&bounces, "bounces", 5, "number of bounces")
	return cmd
}

func newFlexCmd(cfg *Config) *cobra.Command {
	var level, drag, minH, maxH, content float32
	cmd := &cobra.Command{
		Use:   "flex",
		Short: "Drag a list below a flexible header and trace the header level",
		RunE: func(cmd *cobra.Command, args []string) error {
			size := math32.Vec2(400, 800)
			root := newRoot(size)
			l := flex.NewLayout(size)
			l.Name = "flex"
			root.AddChild(l)
			l.SetFlexibleMinHeight(minH)
			l.SetFlexibleMaxHeight(maxH)
			b := scroll.NewBase(scroll.Vertical, size)
			b.Name = "list"
			scroll.NewController(b).AddItem(content, nil)
			l.SetBaseNode(b)
			l.SetFlexibleNode(scene.New[*scene.NodeBase]())
			b.SetScrollPosition(content / 2)
			l.SetFlexibleLevel(level)
			s := newSim(cfg, cmd.OutOrStdout(), root)
			s.sc.Update(0)

			const step = 10
			left := drag
			b.OnSwipeBegin(0)
			if left == 0 {
				b.OnSwipeEnd(0)
			}
			done := func() bool {
				return left == 0 && !b.IsMoved() && l.LevelAnimation() == nil
			}
			s.run(cmd.Context(), done, func(frame int) {
				if left != 0 {
					d := math32.Sign(left) * min(math32.Abs(left), step)
					left -= d
					b.OnSwipe(d)
					if left == 0 {
						b.OnSwipeEnd(0)
					}
				}
				fmt.Fprintf(s.out, "%5d %7.3fs %10.2f level %.3f\n", frame, s.seconds(frame), b.ScrollPosition(), l.FlexibleLevel())
			})
			fmt.Fprintf(s.out, "final level %.3f\n", l.FlexibleLevel())
			return nil
		},
	}
	f := cmd.Flags()
	f.Float32Var(&level, "level", 0.7, "start level")
	f.Float32Var(&drag, "drag", 100, "dragged distance; positive collapses the header")
	f.Float32Var(&minH, "min", 56, "collapsed height")
	f.Float32Var(&maxH, "max", 200, "expanded height")
	f.Float32Var(&content, "content", 3000, "length of the content")
	return cmd
}
