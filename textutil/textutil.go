// Package textutil holds small string helpers used around tables: multi-value
// replacement, punctuation stripping, trimming, base64 and HTML line breaks.
package textutil

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/bjaus/tabkit"
)

// ErrLengthMismatch is returned by [ReplaceEach] when symbols and
// replacements differ in length.
var ErrLengthMismatch = errors.New("symbols and replacements differ in length")

// ReplaceAll replaces every occurrence of each symbol with replacement.
// Symbols are applied in order, so a later symbol also matches text produced
// by an earlier replacement. Empty symbols are ignored.
//
//	ReplaceAll("abcdefghiabc", []string{"a", "b", "c"}, "x") // "xxxdefghixxx"
func ReplaceAll(s string, symbols []string, replacement string) string {
	for _, sym := range symbols {
		if sym == "" {
			continue
		}
		s = strings.ReplaceAll(s, sym, replacement)
	}
	return s
}

// ReplaceEach replaces symbols[i] with replacements[i], in order.
func ReplaceEach(s string, symbols, replacements []string) (string, error) {
	if len(symbols) != len(replacements) {
		return "", fmt.Errorf("%w: %d symbols, %d replacements", ErrLengthMismatch, len(symbols), len(replacements))
	}
	for i, sym := range symbols {
		if sym == "" {
			continue
		}
		s = strings.ReplaceAll(s, sym, replacements[i])
	}
	return s, nil
}

var punctuation = runes.Remove(runes.In(unicode.P))

// StripPunctuation removes every Unicode punctuation rune from s.
func StripPunctuation(s string) string {
	out, _, err := transform.String(punctuation, s)
	if err != nil {
		return s
	}
	return out
}

// TrimAll returns a copy of values with leading and trailing white space
// removed from each element.
func TrimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// ToBase64 encodes s with standard padded base64.
func ToBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// FromBase64 decodes standard padded base64.
func FromBase64(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}
	return string(b), nil
}

// Nl2Br replaces each platform line break ([tabkit.Newline]) with "<br />".
func Nl2Br(s string) string {
	return strings.ReplaceAll(s, tabkit.Newline, "<br />")
}
