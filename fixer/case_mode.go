package fixer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/oasnorm/oaserrors"
	"golang.org/x/text/cases"
)

// CaseMode selects how enum values are compared for case-insensitive
// equality.
type CaseMode string

const (
	// CaseModeOrdinal compares values after a simple per-rune upper-case
	// mapping with no locale rules. "ß" and "SS" are different values.
	CaseModeOrdinal CaseMode = "ordinal"
	// CaseModeUnicodeFold compares values after full Unicode case folding,
	// so "straße" and "STRASSE" are the same value.
	CaseModeUnicodeFold CaseMode = "unicode"
)

// ParseCaseMode converts user input to a CaseMode. The empty string
// selects CaseModeOrdinal.
func ParseCaseMode(s string) (CaseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(CaseModeOrdinal):
		return CaseModeOrdinal, nil
	case string(CaseModeUnicodeFold), "fold":
		return CaseModeUnicodeFold, nil
	}
	return "", &oaserrors.ConfigError{
		Option:  "case mode",
		Value:   s,
		Message: "must be one of: ordinal, unicode",
	}
}

// keyFunc returns a function mapping a value to its comparison key. The
// returned function is not safe for concurrent use. Bytes that are not valid
// UTF-8 are copied into the key unchanged, so values that differ in such
// bytes never share a key.
func (m CaseMode) keyFunc() func(string) string {
	if m == CaseModeUnicodeFold {
		return foldValidRuns(cases.Fold().String)
	}
	return ordinalKey
}

// ordinalKey upper-cases s rune by rune.
func ordinalKey(s string) string {
	if utf8.ValidString(s) {
		return strings.ToUpper(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		i += size
	}
	return b.String()
}

// foldValidRuns applies fold to each maximal valid UTF-8 run of s and copies
// invalid bytes between the runs through.
func foldValidRuns(fold func(string) string) func(string) string {
	return func(s string) string {
		if utf8.ValidString(s) {
			return fold(s)
		}
		var b strings.Builder
		b.Grow(len(s))
		start := 0
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				b.WriteString(fold(s[start:i]))
				b.WriteByte(s[i])
				start = i + 1
			}
			i += size
		}
		b.WriteString(fold(s[start:]))
		return b.String()
	}
}
