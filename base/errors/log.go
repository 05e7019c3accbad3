// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Log logs the given error to [slog.Error] if it is non-nil and
// returns it either way. The intended usage is to wrap calls whose
// error should be reported but not otherwise handled:
//
//	errors.Log(core.SaveSettings(se))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 is a version of [Log] for functions that return a value and an
// error. It logs the error if it is non-nil and returns the value.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil, for errors that can only
// come from programmer mistakes.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 is a version of [Must] for functions that return a value and
// an error. It panics if the error is non-nil and returns the value.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 returns only the value of a (value, error) pair, for call
// sites where the error genuinely does not matter.
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns the file, line, and function of the caller of the
// function that calls it, for inclusion in log messages.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d (%s)", file, line, runtime.FuncForPC(pc).Name())
}
