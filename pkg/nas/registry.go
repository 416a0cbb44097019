package nas

// Protocol identifies the sub-protocol whose element catalog and message
// tables apply to a buffer.
type Protocol uint8

const (
	ProtocolMM   Protocol = iota // 5GS mobility management
	ProtocolSM                   // 5GS session management
	ProtocolUPDP                 // UE policy delivery
)

func (p Protocol) String() string {
	switch p {
	case ProtocolMM:
		return "5GMM"
	case ProtocolSM:
		return "5GSM"
	case ProtocolUPDP:
		return "UPDP"
	default:
		return "?"
	}
}

// ElemID names one entry of an element catalog. The wire tag of an
// optional element belongs to the message table, not to the catalog:
// the same element can be tagged differently in different messages.
type ElemID uint16

// ieDecoder decodes the content octets of one element into children and
// values of e. content excludes the element's tag and length octets;
// off is the content's offset within the enclosing message buffer. A
// half-octet value arrives as a single byte holding the nibble.
type ieDecoder func(dc *decodeContext, content []byte, off int, e *Element)

// ieDescriptor is one catalog entry. size is the fixed value size for V
// and TV elements (halfOctet for nibble values); length-prefixed formats
// leave it zero. A nil decode keeps the content as an opaque span.
type ieDescriptor struct {
	name   string
	size   int
	decode ieDecoder
}

// lookupIE resolves an element against the sub-protocol catalog first
// and the shared catalog second.
func lookupIE(p Protocol, id ElemID) (ieDescriptor, bool) {
	var catalog map[ElemID]ieDescriptor
	switch p {
	case ProtocolMM:
		catalog = mmIEs
	case ProtocolSM:
		catalog = smIEs
	case ProtocolUPDP:
		catalog = updpIEs
	}
	if d, ok := catalog[id]; ok {
		return d, true
	}
	d, ok := commonIEs[id]
	return d, ok
}

// ieSlot is one row of a message table: the element to expect, the
// transfer format used in this message, and, for optional elements, the
// discriminating tag. Tags 0x1..0xf occupy the high nibble of the first
// octet; larger tags occupy the whole octet.
type ieSlot struct {
	iei      byte
	id       ElemID
	format   Format
	optional bool
	name     string // overrides the catalog name when set
}

// msgDescriptor is the ordered IE sequence of one message type.
type msgDescriptor struct {
	msgType  byte
	name     string
	slots    []ieSlot
	reserved bool // "Not used in this version of the protocol"
}

func mand(id ElemID, f Format) ieSlot {
	return ieSlot{id: id, format: f}
}

func mandNamed(name string, id ElemID, f Format) ieSlot {
	return ieSlot{id: id, format: f, name: name}
}

func opt(iei byte, id ElemID, f Format) ieSlot {
	return ieSlot{iei: iei, id: id, format: f, optional: true}
}

func optNamed(name string, iei byte, id ElemID, f Format) ieSlot {
	return ieSlot{iei: iei, id: id, format: f, optional: true, name: name}
}

// lookupMessage resolves a message type byte for a sub-protocol.
func lookupMessage(p Protocol, msgType byte) (*msgDescriptor, bool) {
	var table map[byte]*msgDescriptor
	switch p {
	case ProtocolMM:
		table = mmMessages
	case ProtocolSM:
		table = smMessages
	case ProtocolUPDP:
		table = updpMessages
	}
	d, ok := table[msgType]
	return d, ok
}
