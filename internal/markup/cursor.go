package markup

// Cursor is a read position over a field sequence. It is a value: advancing
// returns a new cursor and leaves the receiver untouched.
type Cursor struct {
	fields []Field
	pos    int
}

// NewCursor positions a cursor at the first of fields.
func NewCursor(fields []Field) Cursor {
	return Cursor{fields: fields}
}

// Done reports whether every field has been consumed.
func (c Cursor) Done() bool {
	return c.pos >= len(c.fields)
}

// Peek returns the current field without consuming it.
func (c Cursor) Peek() (Field, bool) {
	if c.Done() {
		return Field{}, false
	}
	return c.fields[c.pos], true
}

// Advance returns a cursor past the current field.
func (c Cursor) Advance() Cursor {
	if !c.Done() {
		c.pos++
	}
	return c
}

// AtTag reports whether the current field is a tag or the end marker.
func (c Cursor) AtTag() bool {
	f, ok := c.Peek()
	return ok && IsTag(f.Text)
}

// IsSectionEnd reports whether the open section cannot take more fields.
func (c Cursor) IsSectionEnd() bool {
	return c.Done() || c.AtTag()
}

// IsRecordEnd reports whether the current field closes a record.
func (c Cursor) IsRecordEnd() bool {
	f, ok := c.Peek()
	return ok && f.Text == EndMarker
}

// Pos is the index of the current field.
func (c Cursor) Pos() int { return c.pos }

// takeUntilTag consumes fields up to the next tag.
func takeUntilTag(c Cursor) ([]string, Cursor) {
	var out []string
	for !c.IsSectionEnd() {
		f, _ := c.Peek()
		out = append(out, f.Text)
		c = c.Advance()
	}
	return out, c
}
