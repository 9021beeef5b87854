package runner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxLineLength bounds one answer, in characters, when the handler sets no limit.
const DefaultMaxLineLength = 4096

var (
	ErrLineTooLong = errors.New("line too long")
	ErrInvalidUTF8 = errors.New("line is not valid UTF-8")
)

// cleanLine turns a raw terminal line into an answer the parsers can split on
// whitespace. Escape sequences left by arrow keys are removed, tabs become
// spaces and other control characters are dropped.
func cleanLine(raw string, limit int) (string, error) {
	if !utf8.ValidString(raw) {
		return "", ErrInvalidUTF8
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRuneInString(raw[i:])
		switch {
		case r == '\x1b':
			i += escapeLen(raw[i:])
			continue
		case r == '\t':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
		i += size
	}

	line := strings.TrimSpace(b.String())
	if n := utf8.RuneCountInString(line); n > limit {
		return "", fmt.Errorf("%w: %d characters, at most %d allowed", ErrLineTooLong, n, limit)
	}
	return line, nil
}

// escapeLen returns the length of the ANSI sequence at the start of s:
// ESC [ params final for CSI, ESC plus one byte otherwise.
func escapeLen(s string) int {
	if len(s) < 2 {
		return len(s)
	}
	if s[1] != '[' {
		return 2
	}
	for i := 2; i < len(s); i++ {
		if s[i] >= 0x40 && s[i] <= 0x7e {
			return i + 1
		}
	}
	return len(s)
}
