package nas

// Cursor is a read-only view over a decode buffer. It never mutates the
// underlying slice; every read advances the offset and the offset never
// moves backwards during a walk.
type Cursor struct {
	data []byte
	off  int
}

// NewCursor wraps data in a cursor positioned at the first octet.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread octets.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.off
}

// Peek returns the octet at the current position without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.off >= len(c.data) {
		return 0, false
	}
	return c.data[c.off], true
}

// ReadByte consumes one octet.
func (c *Cursor) ReadByte() (byte, bool) {
	if c.off >= len(c.data) {
		return 0, false
	}
	b := c.data[c.off]
	c.off++
	return b, true
}

// ReadBytes consumes n octets and returns them as a sub-slice of the
// underlying buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, bool) {
	if n < 0 || c.Remaining() < n {
		return nil, false
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, true
}

// ReadUint16 consumes a two-octet big-endian value.
func (c *Cursor) ReadUint16() (uint16, bool) {
	b, ok := c.ReadBytes(2)
	if !ok {
		return 0, false
	}
	return uint16(b[0])<<8 | uint16(b[1]), true
}

// Skip consumes n octets without returning them.
func (c *Cursor) Skip(n int) bool {
	if n < 0 || c.Remaining() < n {
		return false
	}
	c.off += n
	return true
}

// Rest consumes and returns everything left in the buffer.
func (c *Cursor) Rest() []byte {
	b := c.data[c.off:]
	c.off = len(c.data)
	return b
}
