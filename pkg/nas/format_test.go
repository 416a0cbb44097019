package nas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorReads(t *testing.T) {
	cur := NewCursor([]byte{0x12, 0x34, 0x56, 0x78})

	b, ok := cur.Peek()
	require.True(t, ok)
	assert.Equal(t, byte(0x12), b)
	assert.Equal(t, 0, cur.Offset(), "peek must not advance")

	v, ok := cur.ReadUint16()
	require.True(t, ok)
	assert.Equal(t, uint16(0x1234), v, "lengths are big-endian")

	rest := cur.Rest()
	assert.Equal(t, []byte{0x56, 0x78}, rest)
	assert.Equal(t, 0, cur.Remaining())

	_, ok = cur.ReadByte()
	assert.False(t, ok)
}

func TestCursorShortReads(t *testing.T) {
	cur := NewCursor([]byte{0x01})
	_, ok := cur.ReadUint16()
	assert.False(t, ok)

	cur = NewCursor([]byte{0x01, 0x02})
	_, ok = cur.ReadBytes(3)
	assert.False(t, ok)
	assert.Equal(t, 2, cur.Remaining(), "failed read must not consume")
}

func TestReadTVHalfOctet(t *testing.T) {
	cur := NewCursor([]byte{0xb5, 0xff})
	content, ok := readTV(cur, halfOctet)
	require.True(t, ok)
	assert.Equal(t, []byte{0x05}, content, "half-octet TV value lives in the tag's low nibble")
	assert.Equal(t, 1, cur.Offset())
}

func TestReadLVE(t *testing.T) {
	cur := NewCursor([]byte{0x00, 0x03, 0xaa, 0xbb, 0xcc, 0xdd})
	content, ok := readLVE(cur)
	require.True(t, ok)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc}, content)
	assert.Equal(t, 1, cur.Remaining())

	cur = NewCursor([]byte{0x00, 0x09, 0xaa})
	_, ok = readLVE(cur)
	assert.False(t, ok, "declared length past the buffer must fail")
}

func TestReadLV(t *testing.T) {
	cur := NewCursor([]byte{0x02, 0x11, 0x22, 0x33})
	content, ok := readLV(cur)
	require.True(t, ok)
	assert.Equal(t, []byte{0x11, 0x22}, content)
}
