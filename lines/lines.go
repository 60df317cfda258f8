// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package lines inspects the text returned by textres.
package lines

import (
	"strings"
	"unicode/utf8"
)

// FirstLine returns the first line of text without its line ending.
// It returns false if text is empty.
func FirstLine(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

// LastRuneOfFirstLine returns the last character of the first line of text.
// It returns false if text is empty or its first line is.
func LastRuneOfFirstLine(text string) (rune, bool) {
	line, ok := FirstLine(text)
	if !ok {
		return 0, false
	}
	return lastRune(line)
}

func lastRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r, true
}
