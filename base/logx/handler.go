// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// handler is a [slog.Handler] that writes human-readable, optionally
// colored log lines gated on [UserLevel].
type handler struct {
	w      io.Writer
	mu     *sync.Mutex
	out    *termenv.Output
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a new [slog.Handler] writing to the given writer,
// with level tags colored via termenv when [UseColor] is on.
func NewHandler(w io.Writer) slog.Handler {
	return &handler{
		w:   w,
		mu:  &sync.Mutex{},
		out: termenv.NewOutput(w),
	}
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(h.levelTag(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	if prefix != "" {
		prefix += "."
	}
	for _, a := range h.attrs {
		writeAttr(b, prefix, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(b, prefix, a)
		return true
	})
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	fmt.Fprintf(b, " %s%s=%v", prefix, a.Key, a.Value)
}

// levelTag returns the possibly colored tag for the given level.
func (h *handler) levelTag(level slog.Level) string {
	tag := strings.ToUpper(level.String())
	if !UseColor {
		return tag
	}
	s := h.out.String(tag)
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(h.out.Color("1")) // red
	case level >= slog.LevelWarn:
		s = s.Foreground(h.out.Color("3")) // yellow
	case level >= slog.LevelInfo:
		s = s.Foreground(h.out.Color("4")) // blue
	default:
		s = s.Faint()
	}
	return s.String()
}

// printlnLevel prints to standard error if the given level
// is at or above [UserLevel].
func printlnLevel(level slog.Level, a ...any) {
	if level < UserLevel {
		return
	}
	fmt.Fprintln(termenv.DefaultOutput().Writer(), a...)
}
