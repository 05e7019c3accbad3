// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strcase converts identifiers between naming conventions.
// It preserves acronym runs in the input ("JSONData" becomes "json-data",
// not "j-s-o-n-data"), which matters for deriving stable ID names from
// Go type names.
package strcase

import (
	"strings"
	"unicode"
)

// ToKebab returns the given string in kebab-case (lower case words
// joined by dashes). Word boundaries are case transitions and any
// existing separator characters.
func ToKebab(s string) string {
	return toWords(s, '-')
}

// ToSnake returns the given string in snake_case (lower case words
// joined by underscores).
func ToSnake(s string) string {
	return toWords(s, '_')
}

// toWords splits s into words and writes them lower cased,
// joined by the given delimiter.
func toWords(s string, delim rune) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(runes) + 4)
	inWord := false
	for i, r := range runes {
		if isSeparator(r) {
			inWord = false
			continue
		}
		if inWord && splitBefore(runes, i) {
			inWord = false
		}
		if !inWord && b.Len() > 0 {
			b.WriteRune(delim)
		}
		b.WriteRune(unicode.ToLower(r))
		inWord = true
	}
	return b.String()
}

// splitBefore reports whether a new word starts at index i,
// given that we are already inside a word.
func splitBefore(runes []rune, i int) bool {
	curr := runes[i]
	if !unicode.IsUpper(curr) {
		return false
	}
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true // fooBar
	}
	// inside an acronym run: split before the last upper if a lower follows,
	// so JSONData becomes json-data
	if i+1 < len(runes) && unicode.IsUpper(prev) && unicode.IsLower(runes[i+1]) {
		return true
	}
	return false
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '_', '-', '.', '/':
		return true
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
