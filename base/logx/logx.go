// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a simple leveled front end to [log/slog] with
// colored level tags. The framework logs diagnostics through slog; logx
// supplies the handler that makes them readable on a terminal, and a
// process-wide [UserLevel] that framework settings control.
package logx

import (
	"log/slog"
	"os"
)

// UserLevel is the verbosity level that the user has selected,
// typically through framework settings or command line flags.
// It defaults per build tag (info for normal builds). Handlers made
// by [NewHandler] consult it dynamically, so changing it takes
// effect immediately.
var UserLevel = defaultUserLevel

// UseColor is whether to use color in log messages. It is on by
// default when standard error is a terminal.
var UseColor = true

// Init installs a logx handler writing to standard error as the
// default slog logger. It is typically called once at startup by
// applications that want colored, level-gated framework diagnostics;
// library code never calls it.
func Init() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// gated helpers for printf-style output that respects UserLevel,
// for tools that mix direct printing with slog logging.

// PrintlnDebug prints the given arguments with a newline if [UserLevel]
// is at or below [slog.LevelDebug].
func PrintlnDebug(a ...any) {
	printlnLevel(slog.LevelDebug, a...)
}

// PrintlnInfo prints the given arguments with a newline if [UserLevel]
// is at or below [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	printlnLevel(slog.LevelInfo, a...)
}

// PrintlnWarn prints the given arguments with a newline if [UserLevel]
// is at or below [slog.LevelWarn].
func PrintlnWarn(a ...any) {
	printlnLevel(slog.LevelWarn, a...)
}

// PrintlnError prints the given arguments with a newline; errors are
// always printed.
func PrintlnError(a ...any) {
	printlnLevel(slog.LevelError, a...)
}
