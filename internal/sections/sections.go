package sections

import "strings"

// FindHeading returns the index of the first line whose normalized form
// equals or starts with the normalized heading. Prefix matching lets
// headings that carry inline content still anchor.
func FindHeading(lines []string, heading string) int {
	want := Normalize(heading)
	if want == "" {
		return NotFound
	}
	for i, l := range lines {
		if strings.HasPrefix(Normalize(l), want) {
			return i
		}
	}
	return NotFound
}

// Bounds resolves a (start, stop) boundary to the half-open range of lines
// strictly between the two headings. A missing stop heading extends the
// range to the end; ok is false when start is missing.
func Bounds(lines []string, start, stop string) (from, to int, ok bool) {
	si := FindHeading(lines, start)
	if si == NotFound {
		return 0, 0, false
	}
	to = len(lines)
	if stop != "" {
		if ei := FindHeading(lines, stop); ei != NotFound {
			to = ei
		}
	}
	from = si + 1
	if to < from {
		to = from
	}
	return from, to, true
}

// ExtractSection joins the lines between start and stop with single spaces.
func ExtractSection(lines []string, start, stop string) string {
	from, to, ok := Bounds(lines, start, stop)
	if !ok {
		return ""
	}
	return strings.TrimSpace(JoinTrimmed(lines[from:to]))
}

// ExtractList collects the bullet items between start and stop. A bullet
// line opens an item and absorbs the following non-bullet lines as
// continuation text; lines outside any item are ignored. The result is never
// nil.
func ExtractList(lines []string, start, stop string) []string {
	items := []string{}
	from, to, ok := Bounds(lines, start, stop)
	if !ok {
		return items
	}
	c := NewCursor(lines).Slice(from, to)
	return appendBulletItems(items, c)
}

func appendBulletItems(items []string, c *Cursor) []string {
	for !c.Done() {
		if !IsBullet(c.Raw()) {
			c.Advance()
			continue
		}
		var b strings.Builder
		b.WriteString(StripBullet(c.Raw()))
		c.Advance()
		for !c.Done() {
			t := c.Text()
			if t == "" || IsBullet(t) {
				break
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t)
			c.Advance()
		}
		items = append(items, strings.TrimSpace(b.String()))
	}
	return items
}
