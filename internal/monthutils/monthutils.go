// Package monthutils resolves heterogeneous month representations into a
// zero-based calendar index.
package monthutils

import (
	"strconv"
	"strings"
)

// Names lists the canonical month names in calendar order. Display labels
// and name matching are fixed to the Italian locale.
var Names = []string{
	"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
	"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
}

var nameIndex = func() map[string]int {
	m := make(map[string]int, len(Names))
	for i, name := range Names {
		m[strings.ToLower(name)] = i
	}
	return m
}()

// Labels returns the month names in calendar order for correlated display
// with a twelve-bucket table.
func Labels() []string {
	labels := make([]string, len(Names))
	copy(labels, Names)
	return labels
}

// Resolve parses a raw month cell into a zero-based index in [0,11].
//
// Numeric input (or a numeric-looking string) is treated as a 1-12 calendar
// month and clamped into range: 13 resolves to December, zero or negative
// values to January. Otherwise the value is matched case-insensitively
// against the Italian month names.
//
// Unrecognized or empty input resolves to January with ok=false, so callers
// can surface the fallback instead of silently accepting it.
func Resolve(raw string) (index int, ok bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}

	if num, err := strconv.Atoi(s); err == nil {
		return clamp(num - 1), true
	}

	if i, found := nameIndex[s]; found {
		return i, true
	}

	return 0, false
}

func clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > 11 {
		return 11
	}
	return i
}
