package nas

// Format is the transfer syntax of an information element, TS 24.007
// clause 11.2.1.1.
type Format uint8

const (
	FormatV    Format = iota // value only, size known from the catalog
	FormatLV                 // 1-octet length + value
	FormatTV                 // tag (full octet or high nibble) + value
	FormatTLV                // tag + 1-octet length + value
	FormatLVE                // 2-octet length + value
	FormatTLVE               // tag + 2-octet length + value
)

func (f Format) String() string {
	switch f {
	case FormatV:
		return "V"
	case FormatLV:
		return "LV"
	case FormatTV:
		return "TV"
	case FormatTLV:
		return "TLV"
	case FormatLVE:
		return "LV-E"
	case FormatTLVE:
		return "TLV-E"
	default:
		return "?"
	}
}

// halfOctet marks a V or TV element whose value occupies four bits.
const halfOctet = -1

// Each primitive consumes the element's full wire footprint (tag and
// length octets included) and returns the content span. On a declared
// length exceeding the remaining buffer the cursor is left where the
// inconsistency was found so the caller can attribute the leftover bytes.

// readV consumes a fixed-size value. size must be >= 0; half-octet
// values are handled by the executor's nibble state, not here.
func readV(cur *Cursor, size int) ([]byte, bool) {
	return cur.ReadBytes(size)
}

// readLV consumes a 1-octet length and that many content octets.
func readLV(cur *Cursor) ([]byte, bool) {
	n, ok := cur.ReadByte()
	if !ok {
		return nil, false
	}
	return cur.ReadBytes(int(n))
}

// readTV consumes the tag octet and a fixed-size value. For half-octet
// TV elements the value lives in the tag octet's low nibble and size
// must be halfOctet; the returned single byte then holds that nibble.
func readTV(cur *Cursor, size int) ([]byte, bool) {
	tag, ok := cur.ReadByte()
	if !ok {
		return nil, false
	}
	if size == halfOctet {
		return []byte{tag & 0x0f}, true
	}
	return cur.ReadBytes(size)
}

// readTLV consumes tag, 1-octet length and content.
func readTLV(cur *Cursor) ([]byte, bool) {
	if !cur.Skip(1) {
		return nil, false
	}
	return readLV(cur)
}

// readLVE consumes a 2-octet big-endian length and content.
func readLVE(cur *Cursor) ([]byte, bool) {
	n, ok := cur.ReadUint16()
	if !ok {
		return nil, false
	}
	return cur.ReadBytes(int(n))
}

// readTLVE consumes tag, 2-octet length and content.
func readTLVE(cur *Cursor) ([]byte, bool) {
	if !cur.Skip(1) {
		return nil, false
	}
	return readLVE(cur)
}
