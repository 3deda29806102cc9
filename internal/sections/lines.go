// Package sections implements the line grammar used to recover structure from
// extracted document text: heading anchors, section ranges, bullet lists with
// continuation lines, and a cursor shared by the record parsers.
package sections

import (
	"strings"
	"unicode"
)

// NotFound is returned by FindHeading when no line matches.
const NotFound = -1

// Bullet glyphs that open a list item.
var bullets = []string{"•", "◦", "-"}

// SplitLines breaks text into its non-blank lines. Trailing whitespace is
// removed; leading indentation is kept so callers can detect nesting.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRightFunc(l, unicode.IsSpace)
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// Normalize upper-cases s and strips every whitespace rune.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// IsBullet reports whether the trimmed line opens a list item.
func IsBullet(line string) bool {
	line = strings.TrimSpace(line)
	for _, b := range bullets {
		if strings.HasPrefix(line, b) {
			return true
		}
	}
	return false
}

// StripBullet removes one leading bullet glyph and the space after it.
func StripBullet(line string) string {
	line = strings.TrimSpace(line)
	for _, b := range bullets {
		if strings.HasPrefix(line, b) {
			return strings.TrimSpace(strings.TrimPrefix(line, b))
		}
	}
	return line
}

// ContainsFold reports whether s contains substr, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}

// JoinTrimmed joins the trimmed lines with single spaces.
func JoinTrimmed(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
