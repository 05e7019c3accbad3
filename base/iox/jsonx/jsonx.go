// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx reads and writes values in the JSON format.
package jsonx

import (
	"encoding/json"
	"io"
	"io/fs"

	"tessera.dev/tessera/base/iox"
)

// Open reads the given value from the given JSON file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(json.NewDecoder))
}

// OpenFS reads the given value from the given JSON file
// in the given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, iox.NewDecoderFunc(json.NewDecoder))
}

// Read reads the given value from the given reader as JSON.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(json.NewDecoder))
}

// Save writes the given value to the given JSON file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, iox.NewEncoderFunc(json.NewEncoder))
}

// SaveIndent writes the given value to the given JSON file
// with tab indentation.
func SaveIndent(v any, filename string) error {
	return iox.Save(v, filename, indentEncoderFunc)
}

// Write writes the given value to the given writer as JSON.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, iox.NewEncoderFunc(json.NewEncoder))
}

// WriteIndent writes the given value to the given writer as JSON
// with tab indentation.
func WriteIndent(v any, writer io.Writer) error {
	return iox.Write(v, writer, indentEncoderFunc)
}

func indentEncoderFunc(w io.Writer) iox.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", "\t")
	return e
}
