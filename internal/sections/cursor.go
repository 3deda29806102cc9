package sections

import "strings"

// Cursor walks a line sequence. Text returns the trimmed current line and
// Raw the line with its indentation.
type Cursor struct {
	lines []string
	pos   int
	end   int
}

// NewCursor positions a cursor on the first line.
func NewCursor(lines []string) *Cursor {
	return &Cursor{lines: lines, end: len(lines)}
}

// Slice returns a cursor over lines[from:to]; bounds are clamped.
func (c *Cursor) Slice(from, to int) *Cursor {
	if from < 0 {
		from = 0
	}
	if to > len(c.lines) {
		to = len(c.lines)
	}
	if to < from {
		to = from
	}
	return &Cursor{lines: c.lines, pos: from, end: to}
}

func (c *Cursor) Done() bool { return c.pos >= c.end }

func (c *Cursor) Pos() int { return c.pos }

// Raw returns the current line untrimmed, or "" past the end.
func (c *Cursor) Raw() string {
	if c.Done() {
		return ""
	}
	return c.lines[c.pos]
}

// Text returns the current line trimmed, or "" past the end.
func (c *Cursor) Text() string {
	return strings.TrimSpace(c.Raw())
}

// Peek returns the trimmed line after the current one.
func (c *Cursor) Peek() (string, bool) {
	if c.pos+1 >= c.end {
		return "", false
	}
	return strings.TrimSpace(c.lines[c.pos+1]), true
}

func (c *Cursor) Advance() {
	if c.pos < c.end {
		c.pos++
	}
}

// Next returns the trimmed current line and advances past it.
func (c *Cursor) Next() (string, bool) {
	if c.Done() {
		return "", false
	}
	t := c.Text()
	c.pos++
	return t, true
}

// SeekContains moves to the first line at or after the current position
// containing substr (case-insensitive). On a miss the cursor is exhausted.
func (c *Cursor) SeekContains(substr string) bool {
	for ; !c.Done(); c.pos++ {
		if ContainsFold(c.lines[c.pos], substr) {
			return true
		}
	}
	return false
}

// Rest returns the remaining lines without advancing.
func (c *Cursor) Rest() []string {
	if c.Done() {
		return nil
	}
	return c.lines[c.pos:c.end]
}
