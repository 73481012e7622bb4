// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// NewHandler returns a text [slog.Handler] writing to w at [UserLevel],
// with level names colored according to the terminal capabilities of w.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			return slog.String(a.Key, LevelString(out, lvl))
		},
	})
}

// LevelString returns the name of the given level styled for the given output.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	st := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		st = st.Foreground(termenv.ANSIRed).Bold()
	case lvl >= slog.LevelWarn:
		st = st.Foreground(termenv.ANSIYellow)
	case lvl >= slog.LevelInfo:
		st = st.Foreground(termenv.ANSICyan)
	default:
		st = st.Faint()
	}
	return st.String()
}

// SetDefaultLogger sets the default logger to a [NewHandler] logger
// writing to [os.Stderr] at the current [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
