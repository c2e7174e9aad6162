// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// id_fn.go - vertex naming schemes for the index-based constructors.
//
// Schemes (ParseIDScheme spelling in brackets):
//   - DefaultIDFn  [numeric]    0,1,2,...
//   - LetterIDFn   [letters]    A..Z, AA..AZ, BA,... (unbounded)
//   - PrefixIDFn   [prefix:<p>] p0,p1,p2,...

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Scheme names accepted by ParseIDScheme.
const (
	SchemeNumeric = "numeric"
	SchemeLetters = "letters"
	SchemePrefix  = "prefix:"
)

// IDFn maps a zero-based vertex index to its name. It must be pure and
// injective over the indexes a constructor asks for.
type IDFn func(idx int) string

// DefaultIDFn names vertex idx by its decimal index.
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// LetterIDFn names vertex idx the way spreadsheets name columns, so a graph
// of any order gets letter names. Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: LetterIDFn(%d)", idx))
	}
	var buf [16]byte
	pos := len(buf)
	for i := idx + 1; i > 0; i = (i - 1) / 26 {
		pos--
		buf[pos] = byte('A' + (i-1)%26)
	}
	return string(buf[pos:])
}

// PrefixIDFn returns a scheme naming vertex idx prefix+idx, e.g. "v3".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// ParseIDScheme resolves a scheme name: "numeric", "letters" or
// "prefix:<p>" with a non-empty p. Unknown names wrap ErrUnknownIDScheme.
func ParseIDScheme(name string) (IDFn, error) {
	switch {
	case name == "" || name == SchemeNumeric:
		return DefaultIDFn, nil
	case name == SchemeLetters:
		return LetterIDFn, nil
	case strings.HasPrefix(name, SchemePrefix) && len(name) > len(SchemePrefix):
		return PrefixIDFn(strings.TrimPrefix(name, SchemePrefix)), nil
	}
	return nil, fmt.Errorf("%w: %q (want %s, %s or %s<p>)",
		ErrUnknownIDScheme, name, SchemeNumeric, SchemeLetters, SchemePrefix)
}

// WithLetterIDs names vertices with LetterIDFn.
func WithLetterIDs() BuilderOption { return WithIDScheme(LetterIDFn) }

// WithPrefixIDs names vertices with PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
