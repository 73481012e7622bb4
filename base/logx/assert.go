// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import "log/slog"

// Assert reports an invariant violation when cond is false.
// It always logs the message at [slog.LevelError]; in builds
// tagged debug it also panics.
func Assert(cond bool, msg string, args ...any) bool {
	if cond {
		return true
	}
	slog.Error("invariant violation: "+msg, args...)
	if debugBuild {
		panic("invariant violation: " + msg)
	}
	return false
}
