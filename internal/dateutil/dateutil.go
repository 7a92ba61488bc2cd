// Package dateutil turns the index date setting into a printable stamp.
//
// The setting is either a literal, "auto" (ISO date of the build) or
// "auto:FORMAT" where FORMAT uses the tokens YYYY, YY, MMMM, MMM, MM, M, DD
// and D, or one of the presets in Presets. Text inside brackets is kept as is.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an unusable date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength bounds the length of a format string.
const MaxFormatLength = 50

// DefaultFormat is used by a bare "auto".
const DefaultFormat = "YYYY-MM-DD"

const autoPrefix = "auto"

// Presets are named shortcuts accepted after "auto:".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// tokens is ordered longest first so scanning is greedy.
var tokens = [...]struct{ token, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Layout converts a token format into a Go time layout.
func Layout(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	case len(format) > MaxFormatLength:
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	for rest := format; rest != ""; {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}
		n := 1
		lit := rest[:1]
		for _, tk := range tokens {
			if strings.HasPrefix(rest, tk.token) {
				n, lit = len(tk.token), tk.layout
				break
			}
		}
		b.WriteString(lit)
		rest = rest[n:]
	}
	return b.String(), nil
}

// Resolve renders value for the time now. Values not starting with "auto"
// (case-insensitive) are returned unchanged, including the empty string.
func Resolve(value string, now time.Time) (string, error) {
	if len(value) < len(autoPrefix) || !strings.EqualFold(value[:len(autoPrefix)], autoPrefix) {
		return value, nil
	}

	format := DefaultFormat
	if rest := value[len(autoPrefix):]; rest != "" {
		if rest[0] != ':' {
			return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		format = rest[1:]
		if format == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := Presets[strings.ToLower(format)]; ok {
			format = preset
		}
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
