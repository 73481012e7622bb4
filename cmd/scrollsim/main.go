// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scrollsim drives headless scroll scenes frame by frame and
// prints traces of their state, to tune the scroll settings.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/scroll/base/errors"
	"cogentcore.org/scroll/base/logx"
	"cogentcore.org/scroll/settings"
	"github.com/spf13/cobra"
)

// Config is the configuration shared by all of the commands.
type Config struct {

	// Settings is the settings file; a missing file means defaults.
	Settings string

	// Frames is the maximum number of frames to simulate.
	Frames int

	// FPS is the simulated frame rate.
	FPS float32

	// Verbose and the other level flags set the log level.
	Verbose, VeryVerbose, Quiet bool

	// Trace turns on the scroll and gesture traces.
	Trace bool

	// Watch reloads the settings file while a simulation runs.
	Watch bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &Config{}
	root := &cobra.Command{
		Use:          "scrollsim",
		Short:        "Simulate scroll views without a window",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
			logx.SetDefaultLogger()
			s, err := settings.Load(c.Settings)
			if err != nil {
				return errors.Log(err)
			}
			settings.Current = s
			settings.Debug.ScrollTrace = c.Trace
			settings.Debug.GestureTrace = c.Trace
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&c.Settings, "settings", settings.Filename(), "settings file")
	pf.IntVar(&c.Frames, "frames", 2000, "maximum number of frames")
	pf.Float32Var(&c.FPS, "fps", 120, "frames per second")
	pf.BoolVarP(&c.Verbose, "verbose", "v", false, "log info messages")
	pf.BoolVar(&c.VeryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&c.Quiet, "quiet", "q", false, "only log errors")
	pf.BoolVar(&c.Trace, "trace", false, "log scroll and gesture traces")
	pf.BoolVar(&c.Watch, "watch", false, "reload the settings file when it changes")

	root.AddCommand(newFlingCmd(c), newWheelCmd(c), newBallCmd(c), newFlexCmd(c))
	return root
}
