// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides boilerplate wrapper functions for reading and
// writing values through standard decoder and encoder interfaces,
// which the format-specific subpackages (jsonx, tomlx, yamlx) wrap.
package iox

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"os"
)

// Decoder is an interface for standard decoders.
type Decoder interface {

	// Decode decodes from its input into the given value.
	Decode(v any) error
}

// DecoderFunc returns a new [Decoder] reading from the given reader.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc returns a [DecoderFunc] for the given
// format-specific decoder constructor.
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// Open reads the given value from the given filename
// using the given [DecoderFunc].
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// OpenFS reads the given value from the given filename in the given
// filesystem using the given [DecoderFunc].
func OpenFS(v any, fsys fs.FS, filename string, f DecoderFunc) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// OpenFromBytes reads the given value from the given bytes
// using the given [DecoderFunc].
func OpenFromBytes(v any, b []byte, f DecoderFunc) error {
	return Read(v, bytes.NewReader(b), f)
}

// Read reads the given value from the given reader
// using the given [DecoderFunc].
func Read(v any, reader io.Reader, f DecoderFunc) error {
	return f(reader).Decode(v)
}

// Encoder is an interface for standard encoders.
type Encoder interface {

	// Encode encodes the given value to its output.
	Encode(v any) error
}

// EncoderFunc returns a new [Encoder] writing to the given writer.
type EncoderFunc func(w io.Writer) Encoder

// NewEncoderFunc returns an [EncoderFunc] for the given
// format-specific encoder constructor.
func NewEncoderFunc[T Encoder](f func(w io.Writer) T) EncoderFunc {
	return func(w io.Writer) Encoder { return f(w) }
}

// Save writes the given value to the given filename
// using the given [EncoderFunc].
func Save(v any, filename string, f EncoderFunc) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := Write(v, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteBytes writes the given value to bytes
// using the given [EncoderFunc].
func WriteBytes(v any, f EncoderFunc) ([]byte, error) {
	b := &bytes.Buffer{}
	err := Write(v, b, f)
	return b.Bytes(), err
}

// Write writes the given value to the given writer
// using the given [EncoderFunc].
func Write(v any, writer io.Writer, f EncoderFunc) error {
	return f(writer).Encode(v)
}
